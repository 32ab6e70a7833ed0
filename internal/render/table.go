// Package render draws row sets as bordered text tables.
package render

import (
	"io"
	"strings"
)

// Widths returns the display width of each column, sized by its widest
// cell across all rows.
func Widths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	w := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c < len(w) && len(cell) > w[c] {
				w[c] = len(cell)
			}
		}
	}
	return w
}

// Table writes rows (row 0 = header) as a bordered table:
//
//	+----+------+
//	| id | name |
//	+----+------+
//	| 1  | Ann  |
//	+----+------+
//
// With zero data rows the bottom border directly follows the header
// separator.
func Table(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)

	var b strings.Builder
	writeBorder(&b, widths)
	writeRow(&b, rows[0], widths)
	writeBorder(&b, widths)
	for _, row := range rows[1:] {
		writeRow(&b, row, widths)
	}
	writeBorder(&b, widths)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBorder(b *strings.Builder, widths []int) {
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	b.WriteByte('|')
	for c, w := range widths {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-len(cell)+1))
		b.WriteByte('|')
	}
	b.WriteByte('\n')
}
