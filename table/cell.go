// Package table renders bordered, column-aligned tables, connector
// trees, and progress bars for terminal output. All layout math runs on
// display width (package textwidth), so colored cells, emoji, and CJK
// text line up correctly.
package table

import (
	"strings"

	"github.com/blackwell-systems/termgrid/ansi"
	"github.com/blackwell-systems/termgrid/textwidth"
)

// Align selects where content sits inside its column.
type Align int

const (
	// AlignLeft pads on the right. The zero value, and the default.
	AlignLeft Align = iota
	// AlignCenter splits padding, remainder on the right.
	AlignCenter
	// AlignRight pads on the left.
	AlignRight
)

// Cell is one table entry: a value, an optional opening color sequence
// (see ansi.ForegroundHSL), and an alignment. Cells are plain values;
// construct them fresh per render.
type Cell struct {
	Value string
	Color string
	Align Align
}

// FormatCell pads content to width columns under the given alignment,
// optionally wrapping the content in color. Padding is computed on
// visible width, so escape sequences inside content do not skew it, and
// the padding itself stays uncolored.
//
// Content at or above width is returned unpadded and untruncated;
// shortening is the caller's job via textwidth.Truncate.
func FormatCell(content string, width int, align Align, color string) string {
	w := textwidth.String(content)
	body := content
	if color != "" {
		body = color + content + ansi.Reset
	}
	if w >= width {
		return body
	}

	gap := width - w
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + body
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + body + strings.Repeat(" ", gap-left)
	default:
		return body + strings.Repeat(" ", gap)
	}
}
