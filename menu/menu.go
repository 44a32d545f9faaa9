// Package menu builds selection prompts on top of the question pipeline.
//
// A Menu renders its items in a configurable layout, then resolves the
// user's reply either to exactly one item (by position or by name) or, in
// shell mode, to an item plus the untouched remainder of the command
// line.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jongio/termkit/layout"
	"github.com/jongio/termkit/question"
)

// IndexStyle decorates rendered items with a selector.
type IndexStyle int

const (
	// IndexNumber prefixes items with "1. ", "2. ", ...
	IndexNumber IndexStyle = iota
	// IndexLetter prefixes items with "a. ", "b. ", ...
	IndexLetter
	// IndexNone renders bare item labels.
	IndexNone
)

// ErrNoItems is returned when selection begins on an empty menu.
var ErrNoItems = errors.New("menu: no items configured")

// Menu configures one selection prompt.
type Menu struct {
	// Items are the ordered selectable labels. Must be non-empty.
	Items []string

	// Layout arranges the rendered items.
	Layout layout.ListMode

	// Index decorates items with a position selector.
	Index IndexStyle

	// Header, when set, is printed above the item list.
	Header string

	// Prompt overrides the default "? " selection prompt.
	Prompt string

	// Shell treats input as a command line: the first token selects an
	// item by unique prefix, the rest is passed through as arguments.
	Shell bool

	// Responses overrides the retry messages for selection failures.
	Responses question.Responses
}

// Choice is a resolved selection.
type Choice struct {
	// Index is the 0-based position of the selected item.
	Index int
	// Item is the selected label.
	Item string
	// Args is the verbatim remainder after the command token, shell mode
	// only.
	Args string
}

// New returns a menu over the given items.
func New(items ...string) *Menu {
	return &Menu{Items: items}
}

// Check verifies the menu before selection begins.
func (m *Menu) Check() error {
	if len(m.Items) == 0 {
		return ErrNoItems
	}
	return nil
}

// PromptText is the selection prompt, defaulting to "? ".
func (m *Menu) PromptText() string {
	if m.Prompt != "" {
		return m.Prompt
	}
	return "? "
}

// Render formats the header and decorated item list. wrapAt feeds the
// column count computation for the column layouts.
func (m *Menu) Render(wrapAt int) string {
	decorated := make([]string, len(m.Items))
	for i, item := range m.Items {
		decorated[i] = m.decorate(i, item)
	}

	var b strings.Builder
	if m.Header != "" {
		b.WriteString(m.Header)
		b.WriteString(":\n")
	}
	listed := layout.List(decorated, m.Layout, &layout.ListOptions{WrapAt: wrapAt})
	b.WriteString(listed)
	if m.Layout == layout.Inline {
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Menu) decorate(i int, item string) string {
	switch m.Index {
	case IndexLetter:
		return fmt.Sprintf("%c. %s", 'a'+i, item)
	case IndexNone:
		return item
	default:
		return fmt.Sprintf("%d. %s", i+1, item)
	}
}

// Resolve maps a normal-mode reply to exactly one configured item, by
// 1-based position, letter selector, exact label, or unique prefix.
func (m *Menu) Resolve(raw string) (Choice, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > len(m.Items) {
			return Choice{}, &question.Failure{Kind: question.FailNotInRange, Value: raw}
		}
		return Choice{Index: n - 1, Item: m.Items[n-1]}, nil
	}

	if m.Index == IndexLetter && len(raw) == 1 {
		if i := int(raw[0] - 'a'); i >= 0 && i < len(m.Items) {
			return Choice{Index: i, Item: m.Items[i]}, nil
		}
	}

	match, err := question.Complete(raw, m.Items)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Index: m.indexOf(match), Item: match}, nil
}

// ResolveShell maps a shell-mode command line to a Choice. The first
// whitespace-delimited token resolves by unique prefix; the remainder
// keeps its internal whitespace verbatim.
func (m *Menu) ResolveShell(line string) (Choice, error) {
	token, args := splitCommand(line)

	match, err := question.Complete(token, m.Items)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Index: m.indexOf(match), Item: match, Args: args}, nil
}

// splitCommand splits off the first whitespace-delimited token. The
// remainder loses only the whitespace immediately following the token.
func splitCommand(line string) (token, args string) {
	line = strings.TrimLeft(line, " \t")
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimLeft(line[i:], " \t")
	}
	return line, ""
}

func (m *Menu) indexOf(item string) int {
	for i, candidate := range m.Items {
		if candidate == item {
			return i
		}
	}
	return -1
}

// Question wraps the menu into a question consumed by the prompt
// pipeline: selection runs as the conversion step, so selection failures
// share the pipeline's retry policy.
func (m *Menu) Question() *question.Question {
	q := question.New(m.PromptText(), question.Choice)
	q.Responses = m.Responses
	q.ConvertWith = func(raw string) (any, error) {
		if m.Shell {
			return m.ResolveShell(raw)
		}
		return m.Resolve(raw)
	}
	if m.Shell {
		// The command line keeps its internal spacing; only the
		// terminator is stripped before resolution.
		q.Whitespace = question.WhitespaceKeep
	}
	return q
}
