package engine

import (
	"fmt"

	"github.com/nofmysfk/vertico/internal/format/table"
)

// selection markers for candidate rows.
const (
	markerSelected = "> "
	markerPlain    = "  "
)

// CandidateOverlay renders the visible slice of the match set as plain rows:
// selection marker, value, and an aligned annotation column. Styling is the
// caller's business.
func (e *Engine) CandidateOverlay(selected, offset, rows int) []string {
	if rows <= 0 || len(e.matched) == 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(e.matched) {
		offset = len(e.matched) - 1
	}
	end := offset + rows
	if end > len(e.matched) {
		end = len(e.matched)
	}
	cells := make([][]string, 0, end-offset)
	for i := offset; i < end; i++ {
		marker := markerPlain
		if i == selected {
			marker = markerSelected
		}
		cells = append(cells, []string{marker + e.matched[i].Value, e.matched[i].Annotation})
	}
	return table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

// CountOverlay renders the match counter shown before the prompt.
func (e *Engine) CountOverlay() string {
	return e.FormatCount(len(e.matched), len(e.full))
}

// FormatCount renders a matched/total counter.
func (e *Engine) FormatCount(matched, total int) string {
	return fmt.Sprintf("%d/%d ", matched, total)
}
