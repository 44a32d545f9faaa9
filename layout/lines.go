package layout

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// SplitLines splits text into physical lines, each keeping its trailing
// newline. The final element has no newline when text does not end with
// one. Empty text yields nil.
func SplitLines(text string) []string {
	var lines []string
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// DetectWidth probes the display width for f: the COLUMNS environment
// variable wins, then the terminal size, then DefaultWidth.
func DetectWidth(f *os.File) int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		var width int
		if n, err := fmt.Sscanf(cols, "%d", &width); err == nil && n == 1 && width > 0 {
			return width
		}
	}
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}
