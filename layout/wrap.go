// Package layout arranges text for terminal display: soft and hard line
// wrapping, inline and columnar list formatting, and physical line
// splitting for pagination.
package layout

import "strings"

// Wrap re-flows text so that no line segment exceeds limit characters.
// For each over-long line it breaks at the last space at or before the
// limit column, swallowing the indentation that would otherwise lead the
// new line. A run with no breakable space is hard-broken at exactly the
// limit column. Existing newlines are never removed, only added.
// A limit of zero or less returns text unchanged.
func Wrap(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, limit)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, limit int) string {
	rest := []rune(line)
	var b strings.Builder

	for len(rest) > limit {
		if i := lastSpaceAt(rest, limit); i >= 0 {
			b.WriteString(string(rest[:i]))
			b.WriteByte('\n')
			rest = trimLeadingBlank(rest[i+1:])
		} else {
			b.WriteString(string(rest[:limit]))
			b.WriteByte('\n')
			rest = rest[limit:]
		}
	}
	b.WriteString(string(rest))
	return b.String()
}

// lastSpaceAt returns the index of the last space at or before column
// limit, or -1 when the run is unbreakable.
func lastSpaceAt(runes []rune, limit int) int {
	for i := limit; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func trimLeadingBlank(runes []rune) []rune {
	for len(runes) > 0 && (runes[0] == ' ' || runes[0] == '\t') {
		runes = runes[1:]
	}
	return runes
}
