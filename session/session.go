package session

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jongio/termkit/layout"
	"github.com/jongio/termkit/logutil"
	"github.com/jongio/termkit/question"
	"github.com/jongio/termkit/template"
	"github.com/jongio/termkit/termread"
)

// Session drives one conversation over a pair of streams. It owns its
// input and output exclusively for its lifetime; nested prompts run on a
// clone sharing the same underlying streams.
type Session struct {
	in    io.Reader
	br    *bufio.Reader
	out   io.Writer
	chars termread.CharReader
	log   *logutil.ComponentLogger

	// WrapAt re-flows output at this column when positive.
	WrapAt int

	// PageAt paginates output after this many lines when positive.
	PageAt int
}

// Option configures a Session.
type Option func(*Session)

// WithWrap sets the wrap column limit.
func WithWrap(cols int) Option {
	return func(s *Session) { s.WrapAt = cols }
}

// WithPage sets the page line limit.
func WithPage(lines int) Option {
	return func(s *Session) { s.PageAt = lines }
}

// WithCharReader injects the single-character input service, replacing
// platform detection. Tests use this to script character input.
func WithCharReader(r termread.CharReader) Option {
	return func(s *Session) { s.chars = r }
}

// WithLogger replaces the session's component logger.
func WithLogger(l *logutil.ComponentLogger) Option {
	return func(s *Session) { s.log = l }
}

// New creates a Session over the given streams. Nil streams default to
// stdin and stdout. The character-input service is selected once here:
// raw-mode terminal reads when in is a terminal, plain byte reads
// otherwise.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	s := &Session{
		in:  in,
		br:  bufio.NewReader(in),
		out: out,
		log: logutil.NewLogger("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chars == nil {
		if f, ok := in.(*os.File); ok && termread.IsTerminal(f) {
			s.chars = termread.NewTTY(f)
		} else {
			// Share the buffered reader so no scripted input is lost
			// between line and character reads.
			s.chars = termread.NewReaderChars(s.br)
		}
	}
	return s
}

// clone returns an independent Session sharing the same streams, reader
// buffer, and layout settings. Nested prompts (confirmation, pagination)
// run on clones so their state never touches the outer call.
func (s *Session) clone() *Session {
	c := *s
	return &c
}

// Say renders text to the output stream: inline template tags are
// expanded, the result wrapped and paginated per the session settings. A
// trailing space or tab suppresses the newline and flushes instead,
// leaving the cursor on the line for further output.
func (s *Session) Say(text string) error {
	expanded, err := template.Expand(text, template.Context{})
	if err != nil {
		return err
	}
	return s.write(expanded)
}

// write is Say without template expansion, shared by the prompt paths.
func (s *Session) write(text string) error {
	if s.WrapAt > 0 {
		text = layout.Wrap(text, s.WrapAt)
	}
	if s.PageAt > 0 {
		rest, err := s.pagePrint(text)
		if err != nil {
			return err
		}
		text = rest
	}
	if text == "" {
		return nil
	}

	last := text[len(text)-1]
	if last == ' ' || last == '\t' {
		if _, err := io.WriteString(s.out, text); err != nil {
			return err
		}
		s.flush()
		return nil
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(s.out, text)
	return err
}

func (s *Session) flush() {
	type flusher interface{ Flush() error }
	if f, ok := s.out.(flusher); ok {
		f.Flush() //nolint:errcheck // best-effort flush
	}
}

// pagePrint emits text one page at a time, pausing on a "press enter"
// prompt whenever more output follows a full page. A shorter-than-page
// tail is returned unprinted so the caller's trailing-output convention
// still applies to it.
func (s *Session) pagePrint(text string) (string, error) {
	lines := layout.SplitLines(text)

	for len(lines) >= s.PageAt {
		page := strings.Join(lines[:s.PageAt], "")
		if _, err := io.WriteString(s.out, page); err != nil {
			return "", err
		}
		if _, err := io.WriteString(s.out, "\n"); err != nil {
			return "", err
		}
		lines = lines[s.PageAt:]
		if len(lines) == 0 {
			break
		}
		if err := s.pausePage(); err != nil {
			return "", err
		}
	}
	return strings.Join(lines, ""), nil
}

// pausePage blocks until the user presses enter. The prompt is itself a
// single-line ask with no validation, on a clone with paging off.
func (s *Session) pausePage() error {
	sub := s.clone()
	sub.PageAt = 0
	_, err := sub.Ask("press enter/return to continue ", question.String, nil)
	return err
}

// Width probes the output stream's display width, falling back to the
// standard 80 columns for non-terminal sinks.
func (s *Session) Width() int {
	if f, ok := s.out.(*os.File); ok {
		return layout.DetectWidth(f)
	}
	return layout.DefaultWidth
}
