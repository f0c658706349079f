package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/termgrid/ansi"
	"github.com/blackwell-systems/termgrid/textwidth"
)

// ErrShapeMismatch is returned when a row's cell count differs from the
// header's. Silent padding would hide bugs in calling code, so the
// renderer refuses instead.
var ErrShapeMismatch = errors.New("row cell count does not match header cell count")

// ErrNoColumns is returned for a table with no header cells.
var ErrNoColumns = errors.New("table has no columns")

// DefaultPadding is the extra width per column: one space each side of
// the content.
const DefaultPadding = 2

// Options configures Render. The zero value is usable: left alignment,
// DefaultPadding, no colors.
type Options struct {
	// Padding is the total extra columns per cell, split around the
	// content. Zero means DefaultPadding.
	Padding int

	// Align overrides alignment per column index. Columns beyond its
	// length fall back to each cell's own Align.
	Align []Align

	// BorderColor is an opening escape applied to box-drawing output.
	BorderColor string

	// HeaderColor is an opening escape composed before each header
	// cell's own color.
	HeaderColor string

	// RowColors are opening escapes cycled across body rows and
	// composed before each cell's own color.
	RowColors []string
}

// Render lays out headers and rows as a box-drawn grid:
//
//	┌───────┬───────┐
//	│ Name  │ Score │
//	├───────┼───────┤
//	│ Alice │ 10    │
//	└───────┴───────┘
//
// Column widths derive from the widest visible content in each column
// plus padding. The output has exactly 4+len(rows) lines and no
// trailing newline. Zero rows still renders the header and borders.
//
// Every row must have exactly len(headers) cells; a mismatch returns
// ErrShapeMismatch. An empty header set returns ErrNoColumns with an
// empty string, never a panic.
func Render(headers []Cell, rows [][]Cell, opts Options) (string, error) {
	cols := len(headers)
	if cols == 0 {
		return "", ErrNoColumns
	}
	for i, row := range rows {
		if len(row) != cols {
			return "", fmt.Errorf("row %d has %d cells, header has %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
	}

	pad := opts.Padding
	if pad <= 0 {
		pad = DefaultPadding
	}
	lp, rp := pad/2, pad-pad/2

	// Widest visible content per column.
	inner := make([]int, cols)
	for i, h := range headers {
		inner[i] = textwidth.String(h.Value)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := textwidth.String(c.Value); w > inner[i] {
				inner[i] = w
			}
		}
	}

	alignFor := func(i int, c Cell) Align {
		if i < len(opts.Align) {
			return opts.Align[i]
		}
		return c.Align
	}

	bar := "│"
	if opts.BorderColor != "" {
		bar = opts.BorderColor + "│" + ansi.Reset
	}

	borderLine := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range inner {
			if i > 0 {
				b.WriteString(mid)
			}
			b.WriteString(strings.Repeat("─", w+pad))
		}
		b.WriteString(right)
		if opts.BorderColor != "" {
			return opts.BorderColor + b.String() + ansi.Reset
		}
		return b.String()
	}

	contentLine := func(cells []Cell, rowColor string) string {
		var b strings.Builder
		b.WriteString(bar)
		for i, c := range cells {
			b.WriteString(strings.Repeat(" ", lp))
			b.WriteString(FormatCell(c.Value, inner[i], alignFor(i, c), rowColor+c.Color))
			b.WriteString(strings.Repeat(" ", rp))
			b.WriteString(bar)
		}
		return b.String()
	}

	lines := make([]string, 0, 4+len(rows))
	lines = append(lines, borderLine("┌", "┬", "┐"))
	lines = append(lines, contentLine(headers, opts.HeaderColor))
	lines = append(lines, borderLine("├", "┼", "┤"))
	for i, row := range rows {
		rowColor := ""
		if len(opts.RowColors) > 0 {
			rowColor = opts.RowColors[i%len(opts.RowColors)]
		}
		lines = append(lines, contentLine(row, rowColor))
	}
	lines = append(lines, borderLine("└", "┴", "┘"))

	return strings.Join(lines, "\n"), nil
}

// Table is a convenience builder over Render for the common
// plain-string case.
type Table struct {
	headers []string
	rows    [][]string

	// Options are applied at render time.
	Options Options
}

// New creates a table with the given column headers.
func New(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row of values. The count must match the headers;
// this is checked at render time, not silently corrected here.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render returns the formatted table.
func (t *Table) Render() (string, error) {
	headers := make([]Cell, len(t.headers))
	for i, h := range t.headers {
		headers[i] = Cell{Value: h}
	}
	rows := make([][]Cell, len(t.rows))
	for i, r := range t.rows {
		row := make([]Cell, len(r))
		for j, v := range r {
			row[j] = Cell{Value: v}
		}
		rows[i] = row
	}
	return Render(headers, rows, t.Options)
}

// String implements fmt.Stringer. Render errors collapse to the empty
// string; call Render directly when the error matters.
func (t *Table) String() string {
	s, err := t.Render()
	if err != nil {
		return ""
	}
	return s
}
