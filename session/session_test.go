package session

import (
	"bytes"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/termkit/layout"
	"github.com/jongio/termkit/menu"
	"github.com/jongio/termkit/question"
	"github.com/jongio/termkit/testutil"
)

func newTestSession(input string, opts ...Option) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	s := New(strings.NewReader(input), out, opts...)
	return s, out
}

func TestAskHappyPath(t *testing.T) {
	s, out := newTestSession(testutil.Script("hello"))

	got, err := s.AskString("What? ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "What? ", out.String())
}

func TestAskIntRetriesUntilValid(t *testing.T) {
	s, out := newTestSession(testutil.Script("abc", "4x", "42"))

	got, err := s.AskInt("Number? ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	assert.Equal(t, 2, strings.Count(out.String(), "You must enter a valid integer."))
	assert.Equal(t, 3, strings.Count(out.String(), "Number? "))
}

func TestAskDefaultOnEmptyInput(t *testing.T) {
	s, _ := newTestSession(testutil.Script(""))

	ans, err := s.Ask("Color? ", question.String, func(q *question.Question) {
		q.Default = "blue"
	})
	require.NoError(t, err)
	assert.Equal(t, "blue", ans.String())
}

func TestAskRangeRetry(t *testing.T) {
	s, out := newTestSession(testutil.Script("0", "151", "35"))

	ans, err := s.Ask("Age? ", question.Int, func(q *question.Question) {
		q.Above = question.Float64(0)
		q.Below = question.Float64(150)
	})
	require.NoError(t, err)
	assert.Equal(t, 35, ans.Int())
	assert.Equal(t, 2, strings.Count(out.String(), "Your answer isn't within the expected range."))
}

func TestAskInRangeSetRetry(t *testing.T) {
	s, out := newTestSession(testutil.Script("huge", "small"))

	ans, err := s.Ask("Size? ", question.String, func(q *question.Question) {
		q.InRange = []string{"small", "medium", "large"}
	})
	require.NoError(t, err)
	assert.Equal(t, "small", ans.String())
	assert.Contains(t, out.String(), "Your answer isn't within the expected range.")
}

func TestAskValidationMessage(t *testing.T) {
	s, out := newTestSession(testutil.Script("nope", "ab12"))

	ans, err := s.Ask("Code? ", question.String, func(q *question.Question) {
		q.Validate = regexp.MustCompile(`^[a-z]{2}\d{2}$`)
	})
	require.NoError(t, err)
	assert.Equal(t, "ab12", ans.String())
	assert.Contains(t, out.String(), "Your answer isn't valid")
}

func TestAskOnErrorMessageDirective(t *testing.T) {
	s, out := newTestSession(testutil.Script("abc", "7"))

	ans, err := s.Ask("N? ", question.Int, func(q *question.Question) {
		q.Responses.OnError = question.OnErrorMessage
		q.Responses.OnErrorText = "try again: "
	})
	require.NoError(t, err)
	assert.Equal(t, 7, ans.Int())

	// The full question is not repeated; the short form is.
	assert.Equal(t, 1, strings.Count(out.String(), "N? "))
	assert.Contains(t, out.String(), "try again: ")
}

func TestAskOnErrorSilentDirective(t *testing.T) {
	s, out := newTestSession(testutil.Script("abc", "7"))

	_, err := s.Ask("N? ", question.Int, func(q *question.Question) {
		q.Responses.OnError = question.OnErrorSilent
	})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "N? "))
}

func TestAskConflictingValidatorsFatal(t *testing.T) {
	s, _ := newTestSession(testutil.Script("anything"))

	_, err := s.Ask("? ", question.String, func(q *question.Question) {
		q.Validate = regexp.MustCompile(`^a$`)
		q.In = []string{"a"}
	})
	assert.ErrorIs(t, err, question.ErrConflictingValidators)
}

func TestAskEOFPropagates(t *testing.T) {
	s, _ := newTestSession("")

	_, err := s.AskString("? ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskAcceptsUnterminatedFinalLine(t *testing.T) {
	s, _ := newTestSession("42")

	got, err := s.AskInt("? ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestAskCharacterMode(t *testing.T) {
	s, _ := newTestSession("q")

	ans, err := s.Ask("Press a key: ", question.String, func(q *question.Question) {
		q.Character = true
	})
	require.NoError(t, err)
	assert.Equal(t, "q", ans.String())
}

func TestAskMaskedInput(t *testing.T) {
	s, out := newTestSession("secret\n")

	ans, err := s.Ask("Password: ", question.String, func(q *question.Question) {
		q.Mask = "*"
	})
	require.NoError(t, err)
	assert.Equal(t, "secret", ans.String())

	assert.Contains(t, out.String(), "******")
	assert.NotContains(t, out.String(), "secret")
}

func TestAskHiddenInputNoEcho(t *testing.T) {
	s, out := newTestSession("hush\n")

	ans, err := s.Ask("Secret: ", question.String, func(q *question.Question) {
		q.HideInput = true
	})
	require.NoError(t, err)
	assert.Equal(t, "hush", ans.String())
	assert.NotContains(t, out.String(), "hush")
}

func TestAskConfirmDeclinedRetries(t *testing.T) {
	s, out := newTestSession(testutil.Script("first", "no", "second", "yes"))

	ans, err := s.Ask("Value? ", question.String, func(q *question.Question) {
		q.Confirm = question.YesNo()
	})
	require.NoError(t, err)
	assert.Equal(t, "second", ans.String())

	assert.Equal(t, 2, strings.Count(out.String(), "Are you sure? "))
	assert.Equal(t, 2, strings.Count(out.String(), "Value? "))
}

func TestAskConfirmTemplateSeesAnswer(t *testing.T) {
	s, out := newTestSession(testutil.Script("staging", "yes"))

	ans, err := s.Ask("Environment? ", question.String, func(q *question.Question) {
		q.Confirm = question.Templated("Really delete <% .Answer %>? ")
	})
	require.NoError(t, err)
	assert.Equal(t, "staging", ans.String())
	assert.Contains(t, out.String(), "Really delete staging? ")
}

func TestAgree(t *testing.T) {
	tests := []struct {
		name    string
		replies []string
		want    bool
		retries int
	}{
		{"yes", []string{"yes"}, true, 0},
		{"single y", []string{"y"}, true, 0},
		{"no", []string{"no"}, false, 0},
		{"case folded", []string{"YES"}, true, 0},
		{"retry then no", []string{"maybe", "n"}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession(testutil.Script(tt.replies...))

			got, err := s.Agree("Continue? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.retries, strings.Count(out.String(), `Please enter "yes" or "no".`))
		})
	}
}

func TestAffirmative(t *testing.T) {
	assert.True(t, affirmative("yes"))
	assert.True(t, affirmative("Y"))
	assert.False(t, affirmative("no"))
	assert.False(t, affirmative("N"))
	assert.False(t, affirmative(""))

	// The first rune is decoded whole, never byte-sliced: a multi-byte
	// first rune is not affirmative, and never misreads as one.
	assert.False(t, affirmative("ÿes"))
	assert.False(t, affirmative("Ÿ"))
	assert.False(t, affirmative("是"))
	assert.False(t, affirmative("да"))
}

func TestSayTrailingWhitespaceKeepsLine(t *testing.T) {
	s, out := newTestSession("")

	require.NoError(t, s.Say("Name: "))
	assert.Equal(t, "Name: ", out.String())

	out.Reset()
	require.NoError(t, s.Say("done"))
	assert.Equal(t, "done\n", out.String())

	out.Reset()
	require.NoError(t, s.Say("already terminated\n"))
	assert.Equal(t, "already terminated\n", out.String())
}

func TestSayExpandsTemplates(t *testing.T) {
	s, out := newTestSession("")

	require.NoError(t, s.Say("plain text, no tags"))
	assert.Equal(t, "plain text, no tags\n", out.String())
}

func TestSayWraps(t *testing.T) {
	s, out := newTestSession("", WithWrap(10))

	require.NoError(t, s.Say("aaa bbb ccc ddd"))
	assert.Equal(t, "aaa bbb\nccc ddd\n", out.String())
}

func TestPagePrintExactPageNoPause(t *testing.T) {
	s, out := newTestSession("", WithPage(3))

	require.NoError(t, s.Say("l1\nl2\nl3\n"))
	assert.NotContains(t, out.String(), "press enter")
	assert.Contains(t, out.String(), "l1\nl2\nl3\n")
}

func TestPagePrintPausesBetweenPages(t *testing.T) {
	s, out := newTestSession(testutil.Script(""), WithPage(3))

	require.NoError(t, s.Say("l1\nl2\nl3\nl4\n"))
	assert.Equal(t, 1, strings.Count(out.String(), "press enter/return to continue "))
	assert.Contains(t, out.String(), "l4")
}

func TestPagePrintTwoPauses(t *testing.T) {
	s, out := newTestSession(testutil.Script("", ""), WithPage(2))

	require.NoError(t, s.Say("a\nb\nc\nd\ne\n"))
	assert.Equal(t, 2, strings.Count(out.String(), "press enter/return to continue "))
}

func TestChooseByPosition(t *testing.T) {
	s, out := newTestSession(testutil.Script("2"))

	choice, err := s.Choose(menu.New("help", "exit", "set"))
	require.NoError(t, err)
	assert.Equal(t, 1, choice.Index)
	assert.Equal(t, "exit", choice.Item)
	assert.Contains(t, out.String(), "1. help")
	assert.Contains(t, out.String(), "? ")
}

func TestChooseByUniquePrefix(t *testing.T) {
	s, _ := newTestSession(testutil.Script("e"))

	choice, err := s.Choose(menu.New("help", "exit", "set"))
	require.NoError(t, err)
	assert.Equal(t, "exit", choice.Item)
}

func TestChooseRetriesOutOfRange(t *testing.T) {
	s, out := newTestSession(testutil.Script("9", "1"))

	choice, err := s.Choose(menu.New("help", "exit"))
	require.NoError(t, err)
	assert.Equal(t, "help", choice.Item)
	assert.Contains(t, out.String(), "Your answer isn't within the expected range.")
}

func TestChooseAmbiguousRetries(t *testing.T) {
	s, out := newTestSession(testutil.Script("se", "set"))

	choice, err := s.Choose(menu.New("set", "send"))
	require.NoError(t, err)
	assert.Equal(t, "set", choice.Item)
	assert.Contains(t, out.String(), "Ambiguous choice.")
}

func TestChooseShellModeKeepsArgsVerbatim(t *testing.T) {
	s, _ := newTestSession(testutil.Script("h foo  bar"))

	m := menu.New("help", "exit")
	m.Shell = true

	choice, err := s.Choose(m)
	require.NoError(t, err)
	assert.Equal(t, "help", choice.Item)
	assert.Equal(t, "foo  bar", choice.Args)
}

func TestChooseEmptyMenuFatal(t *testing.T) {
	s, _ := newTestSession("")

	_, err := s.Choose(menu.New())
	assert.ErrorIs(t, err, menu.ErrNoItems)
}

func TestAskEditorPrintsPromptAndReturnsContent(t *testing.T) {
	// "true" exits without touching the file, so the seeded content comes
	// back unchanged.
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not found in PATH")
	}
	t.Setenv("EDITOR", "true")
	t.Setenv("VISUAL", "")

	s, out := newTestSession("")

	got, err := s.AskEditor("Describe the change:", "seed text\n")
	require.NoError(t, err)
	assert.Equal(t, "seed text\n", got)
	assert.Contains(t, out.String(), "Describe the change:")
}

func TestNestedSessionSharesBufferedInput(t *testing.T) {
	// The confirmation prompt must see the line already sitting in the
	// outer session's read buffer.
	s, _ := newTestSession("value\nyes\n")

	ans, err := s.Ask("V? ", question.String, func(q *question.Question) {
		q.Confirm = question.YesNo()
	})
	require.NoError(t, err)
	assert.Equal(t, "value", ans.String())
}

func TestDefaultOutputIsStdout(t *testing.T) {
	// Construct inside the capture so the session picks up the redirected
	// stdout.
	output := testutil.CaptureOutput(t, func() error {
		s := New(strings.NewReader(""), nil)
		return s.Say("written to stdout")
	})
	assert.Equal(t, "written to stdout\n", output)
}

func TestWidthFallsBackForNonTerminalSinks(t *testing.T) {
	s, _ := newTestSession("")
	assert.Equal(t, layout.DefaultWidth, s.Width())
}
