package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables. Widths are measured in runes so that
// translated labels line up.
type Table struct {
	columns []Column
	rows    [][]string
	styles  []ColorFunc
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	t.AddStyledRow(nil, values...)
}

// AddStyledRow appends a row whose first cell is drawn with style.
func (t *Table) AddStyledRow(style ColorFunc, values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
	t.styles = append(t.styles, style)
}

// Len returns the number of rows added.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := t.renderHeader(w, widths); err != nil {
		return err
	}

	parts := make([]string, len(t.columns))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	if err := writeLine(w, parts); err != nil {
		return err
	}

	for r, row := range t.rows {
		if err := t.renderRow(w, row, t.styles[r], widths); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) renderHeader(w io.Writer, widths []int) error {
	bold := color.New(color.Bold)
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = pad(bold.Sprint(col.Header), col.Header, widths[i], col.Align)
	}
	return writeLine(w, parts)
}

func (t *Table) renderRow(w io.Writer, values []string, style ColorFunc, widths []int) error {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := values[i]
		display := val
		switch {
		case i == 0 && style != nil:
			display = style(val)
		case col.Color != nil:
			display = col.Color(val)
		}
		parts[i] = pad(display, val, widths[i], col.Align)
	}
	return writeLine(w, parts)
}

// pad justifies display using the width of the uncolored raw value.
func pad(display, raw string, width int, align Alignment) string {
	n := width - utf8.RuneCountInString(raw)
	if n < 0 {
		n = 0
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + display
	}
	return display + strings.Repeat(" ", n)
}

func writeLine(w io.Writer, parts []string) error {
	line := strings.TrimRight("  "+strings.Join(parts, "  "), " ")
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
