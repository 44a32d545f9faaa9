package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jongio/termkit/style"
)

// ListMode selects how List arranges its items.
type ListMode int

const (
	// Rows prints one item per line.
	Rows ListMode = iota
	// Inline joins items with ", " and a configurable final separator.
	Inline
	// ColumnsAcross lays items into a grid filled left to right.
	ColumnsAcross
	// ColumnsDown lays items into a grid filled top to bottom.
	ColumnsDown
)

// DefaultWidth is assumed when no wrap limit is configured and the
// terminal width is unknown.
const DefaultWidth = 80

// ListOptions tunes List. The zero value (or nil) means: " or " as the
// inline separator, column count computed from WrapAt or DefaultWidth.
type ListOptions struct {
	// Separator joins the final two items in Inline mode.
	Separator string
	// Columns forces the column count for the column modes.
	Columns int
	// WrapAt is the display width used to compute a column count when
	// Columns is zero.
	WrapAt int
}

// List formats items in the given mode. Column and row output is
// newline-terminated per row; Inline output carries no newline.
func List(items []string, mode ListMode, opts *ListOptions) string {
	if opts == nil {
		opts = &ListOptions{}
	}

	switch mode {
	case Inline:
		return inlineList(items, opts.Separator)
	case ColumnsAcross, ColumnsDown:
		return columnList(items, mode, opts)
	default:
		return rowList(items)
	}
}

func inlineList(items []string, separator string) string {
	if separator == "" {
		separator = " or "
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + separator + items[len(items)-1]
	}
}

func rowList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}

func columnList(items []string, mode ListMode, opts *ListOptions) string {
	if len(items) == 0 {
		return ""
	}

	maxWidth := 0
	for _, item := range items {
		if w := runewidth.StringWidth(style.Strip(item)); w > maxWidth {
			maxWidth = w
		}
	}

	cols := opts.Columns
	if cols <= 0 {
		limit := opts.WrapAt
		if limit <= 0 {
			limit = DefaultWidth
		}
		cols = (limit + 2) / (maxWidth + 2)
		if cols < 1 {
			cols = 1
		}
	}
	if cols > len(items) {
		cols = len(items)
	}
	rows := (len(items) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if mode == ColumnsDown {
				idx = c*rows + r
			}
			if idx >= len(items) {
				continue
			}
			cells = append(cells, pad(items[idx], maxWidth))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// pad right-pads an item to width display columns, ignoring any ANSI
// styling it carries.
func pad(item string, width int) string {
	gap := width - runewidth.StringWidth(style.Strip(item))
	if gap <= 0 {
		return item
	}
	return item + strings.Repeat(" ", gap)
}
