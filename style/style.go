// Package style provides ANSI escape styling for terminal text.
// Styles are looked up by symbolic name from a fixed table, so callers
// never deal with raw escape sequences directly.
package style

import (
	"regexp"
	"strings"
)

// Style is the symbolic name of an ANSI text attribute.
type Style string

// Text attributes.
const (
	Reset     Style = "reset"
	Bold      Style = "bold"
	Dark      Style = "dark"
	Underline Style = "underline"
	Blink     Style = "blink"
	Reverse   Style = "reverse"
	Concealed Style = "concealed"

	EraseLine Style = "erase_line"
	EraseChar Style = "erase_char"
)

// Foreground colors.
const (
	Black   Style = "black"
	Red     Style = "red"
	Green   Style = "green"
	Yellow  Style = "yellow"
	Blue    Style = "blue"
	Magenta Style = "magenta"
	Cyan    Style = "cyan"
	White   Style = "white"
	Gray    Style = "gray"

	BrightRed     Style = "bright_red"
	BrightGreen   Style = "bright_green"
	BrightYellow  Style = "bright_yellow"
	BrightBlue    Style = "bright_blue"
	BrightMagenta Style = "bright_magenta"
	BrightCyan    Style = "bright_cyan"
)

// Background colors.
const (
	OnBlack   Style = "on_black"
	OnRed     Style = "on_red"
	OnGreen   Style = "on_green"
	OnYellow  Style = "on_yellow"
	OnBlue    Style = "on_blue"
	OnMagenta Style = "on_magenta"
	OnCyan    Style = "on_cyan"
	OnWhite   Style = "on_white"
)

// sequences is the closed mapping from style names to escape sequences.
var sequences = map[Style]string{
	Reset:     "\033[0m",
	Bold:      "\033[1m",
	Dark:      "\033[2m",
	Underline: "\033[4m",
	Blink:     "\033[5m",
	Reverse:   "\033[7m",
	Concealed: "\033[8m",

	EraseLine: "\033[K",
	EraseChar: "\033[P",

	Black:   "\033[30m",
	Red:     "\033[31m",
	Green:   "\033[32m",
	Yellow:  "\033[33m",
	Blue:    "\033[34m",
	Magenta: "\033[35m",
	Cyan:    "\033[36m",
	White:   "\033[37m",
	Gray:    "\033[90m",

	BrightRed:     "\033[91m",
	BrightGreen:   "\033[92m",
	BrightYellow:  "\033[93m",
	BrightBlue:    "\033[94m",
	BrightMagenta: "\033[95m",
	BrightCyan:    "\033[96m",

	OnBlack:   "\033[40m",
	OnRed:     "\033[41m",
	OnGreen:   "\033[42m",
	OnYellow:  "\033[43m",
	OnBlue:    "\033[44m",
	OnMagenta: "\033[45m",
	OnCyan:    "\033[46m",
	OnWhite:   "\033[47m",
}

// Sequence returns the escape sequence for a style name.
// The second return value is false for names outside the table.
func Sequence(s Style) (string, bool) {
	seq, ok := sequences[s]
	return seq, ok
}

// Known reports whether s names a style in the table.
func Known(s Style) bool {
	_, ok := sequences[s]
	return ok
}

// Apply decorates text with the given styles: every style's escape
// sequence, then the text, then a single reset. Names outside the table
// contribute nothing.
func Apply(text string, styles ...Style) string {
	var b strings.Builder
	for _, s := range styles {
		if seq, ok := sequences[s]; ok {
			b.WriteString(seq)
		}
	}
	b.WriteString(text)
	b.WriteString(sequences[Reset])
	return b.String()
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Strip removes all ANSI escape sequences from s.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansiPattern.ReplaceAllString(s, "")
}
