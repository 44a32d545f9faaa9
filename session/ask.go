package session

import (
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jongio/termkit/editor"
	"github.com/jongio/termkit/question"
	"github.com/jongio/termkit/template"
)

// Ask builds a Question from the prompt text and answer kind, applies the
// optional configurator, and runs it through AskQuestion.
func (s *Session) Ask(text string, kind question.Kind, configure func(*question.Question)) (question.Answer, error) {
	q := question.New(text, kind)
	if configure != nil {
		configure(q)
	}
	return s.AskQuestion(q)
}

// AskQuestion renders q's prompt and reads input until one attempt
// survives validation, conversion, range checking, and confirmation.
// Recoverable failures print the matching response message and retry;
// configuration and I/O errors return immediately.
func (s *Session) AskQuestion(q *question.Question) (question.Answer, error) {
	if err := q.Check(); err != nil {
		return question.Answer{}, err
	}

	prompt, err := template.Expand(q.Text, template.Context{Question: q.Text})
	if err != nil {
		return question.Answer{}, err
	}
	if err := s.write(prompt); err != nil {
		return question.Answer{}, err
	}

	for {
		raw, err := s.read(q)
		if err != nil {
			return question.Answer{}, err
		}

		ans, err := s.attempt(q, raw)
		if err == nil {
			return ans, nil
		}
		fail, recoverable := question.AsFailure(err)
		if !recoverable {
			return question.Answer{}, err
		}
		if err := s.respond(q, fail, prompt); err != nil {
			return question.Answer{}, err
		}
	}
}

// attempt runs one prepared input through the remaining pipeline stages.
func (s *Session) attempt(q *question.Question, raw string) (question.Answer, error) {
	if err := q.Valid(raw); err != nil {
		return question.Answer{}, err
	}
	ans, err := q.Convert(raw)
	if err != nil {
		return question.Answer{}, err
	}
	if err := q.CheckRange(ans); err != nil {
		return question.Answer{}, err
	}
	if err := s.confirmAnswer(q, ans); err != nil {
		return question.Answer{}, err
	}
	return ans, nil
}

// respond reports a recoverable failure and prepares the retry: the
// situation message first, then whatever the on-error directive says
// comes next.
func (s *Session) respond(q *question.Question, fail *question.Failure, prompt string) error {
	s.log.Debug("retrying question", "reason", fail.Kind.String(), "input", fail.Value)

	if msg := q.Responses.Message(fail.Kind, q); msg != "" {
		if err := s.write(msg); err != nil {
			return err
		}
	}

	switch q.Responses.OnError {
	case question.OnErrorRepeat:
		return s.write(prompt)
	case question.OnErrorMessage:
		return s.write(q.Responses.OnErrorText)
	default:
		return nil
	}
}

// read collects one raw input per the question's echo settings and
// normalizes it. A final unterminated line before EOF still counts;
// EOF with nothing read propagates.
func (s *Session) read(q *question.Question) (string, error) {
	switch {
	case q.Character:
		c, err := s.chars.ReadChar()
		if err != nil {
			return "", err
		}
		return q.Prepare(string(c)), nil
	case q.HideInput || q.Mask != "":
		raw, err := s.readMasked(q.Mask)
		if err != nil {
			return "", err
		}
		return q.Prepare(raw), nil
	default:
		line, err := s.br.ReadString('\n')
		if err != nil {
			if err == io.EOF && line != "" {
				return q.Prepare(line), nil
			}
			return "", err
		}
		return q.Prepare(line), nil
	}
}

// readMasked reads a line one character at a time without echoing it,
// printing the mask string per keystroke instead when one is set. The
// newline the terminal swallowed in raw mode is emitted at the end.
func (s *Session) readMasked(mask string) (string, error) {
	var buf strings.Builder
	for {
		c, err := s.chars.ReadChar()
		if err != nil {
			if err == io.EOF && buf.Len() > 0 {
				break
			}
			return "", err
		}
		if c == '\r' || c == '\n' {
			break
		}
		buf.WriteByte(c)
		if mask != "" {
			if _, err := io.WriteString(s.out, mask); err != nil {
				return "", err
			}
		}
	}
	if _, err := io.WriteString(s.out, "\n"); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// confirmAnswer runs the configured confirmation on a nested session. A
// negative reply is a recoverable declined failure, sending the whole
// question back around silently.
func (s *Session) confirmAnswer(q *question.Question, ans question.Answer) error {
	var text string
	switch q.Confirm.Mode {
	case question.ConfirmNone:
		return nil
	case question.ConfirmYesNo:
		text = "Are you sure? "
	case question.ConfirmTemplate:
		expanded, err := template.Expand(q.Confirm.Template, template.Context{
			Question: q.Text,
			Answer:   ans.Value(),
		})
		if err != nil {
			return err
		}
		text = expanded
	}

	ok, err := s.clone().Agree(text)
	if err != nil {
		return err
	}
	if !ok {
		return &question.Failure{Kind: question.FailDeclined, Value: ans.Raw}
	}
	return nil
}

var yesNoPattern = regexp.MustCompile(`(?i)^(y(es)?|no?)$`)

// Agree asks a yes/no question and reports the reply as a boolean. Only
// the four canonical spellings are accepted; anything else retries. The
// affirmative check decodes the reply's first rune and lower-cases it,
// so a multi-byte first rune (which validation rejects anyway) can never
// be byte-sliced into a false 'y'.
func (s *Session) Agree(text string) (bool, error) {
	ans, err := s.Ask(text, question.String, func(q *question.Question) {
		q.Validate = yesNoPattern
		q.Responses.NotValid = `Please enter "yes" or "no".`
	})
	if err != nil {
		return false, err
	}
	return affirmative(ans.String()), nil
}

// affirmative reports whether a validated yes/no reply means yes, keyed
// off the first rune case-insensitively.
func affirmative(reply string) bool {
	r, _ := utf8.DecodeRuneInString(reply)
	return unicode.ToLower(r) == 'y'
}

// AskString asks for a free-form string answer with default settings.
func (s *Session) AskString(text string) (string, error) {
	ans, err := s.Ask(text, question.String, nil)
	if err != nil {
		return "", err
	}
	return ans.String(), nil
}

// AskInt asks for an integer answer, retrying until the input parses.
func (s *Session) AskInt(text string) (int, error) {
	ans, err := s.Ask(text, question.Int, nil)
	if err != nil {
		return 0, err
	}
	return ans.Int(), nil
}

// AskFloat asks for a numeric answer, retrying until the input parses.
func (s *Session) AskFloat(text string) (float64, error) {
	ans, err := s.Ask(text, question.Float, nil)
	if err != nil {
		return 0, err
	}
	return ans.Float(), nil
}

// AskEditor prints the prompt, then collects a long-form answer by
// opening the user's external editor seeded with initial content,
// returning whatever was saved.
func (s *Session) AskEditor(text, initial string) (string, error) {
	if text != "" {
		if err := s.Say(text); err != nil {
			return "", err
		}
	}
	return editor.Compose(initial)
}
