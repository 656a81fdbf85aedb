// Package table pads rows of cells into aligned columns. The engine uses it
// to line up candidate annotations in the panel.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in display cells so wide runes line up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
