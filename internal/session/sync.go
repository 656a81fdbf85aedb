package session

import "github.com/nofmysfk/vertico/internal/logging/events"

// truncateThreshold is the fraction of the panel width the input cursor may
// occupy before long lines wrap instead of truncating.
const truncateThreshold = 0.8

// SyncState is the per-tick reconciliation result. It is derived from the
// current surface geometry and input position and never persisted.
type SyncState struct {
	CursorHidden bool
	Truncate     bool
	Scroll       int
}

// TruncateAt reports whether panel lines should truncate for the given input
// cursor column and surface width. The flag flips to wrapping once the
// cursor reaches the threshold column.
func TruncateAt(cursorCol, width int) bool {
	return float64(cursorCol) < truncateThreshold*float64(width)
}

// onRedraw is the frame synchronizer. The layout invokes it once per visible
// surface on every redraw cycle; it is cheap and side-effect-free for
// surfaces the session does not own.
func (s *Session) onRedraw(sfc Surface) {
	if s.done || !sfc.Live() {
		return
	}
	switch sfc.ID() {
	case s.input.ID():
		// Solid block cursor only while the logical focus is the input
		// view, regardless of which surface looks focused.
		sfc.SetCursorHidden(!s.mgr.focusInput)
	case s.panel.ID():
		st := SyncState{
			CursorHidden: !s.mgr.focusInput,
			Truncate:     TruncateAt(s.input.Cursor(), sfc.Width()),
		}
		sfc.SetTruncate(st.Truncate)
		sfc.SetCursor(s.input.Cursor())
		if s.hideInput && s.input.Live() {
			s.input.SetScroll(s.input.ContentLen())
		}
		st.Scroll = s.input.Scroll()
		s.last = st
		events.Sync.Tick(sfc.ID(), st.Truncate, st.Scroll)
	}
}
