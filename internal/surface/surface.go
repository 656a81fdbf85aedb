package surface

import (
	"fmt"

	"github.com/nofmysfk/vertico/internal/session"
)

// Kind distinguishes the original input line from allocated panel regions.
type Kind int

const (
	KindInput Kind = iota
	KindPanel
)

// Window parameter names understood by the layout manager.
const (
	ParamNoOtherWindow = session.ParamNoOtherWindow
	ParamNoDeleteOther = session.ParamNoDeleteOther
)

// Surface is one rectangular on-screen region. Geometry is tracked in
// character cells; PixelHeight derives from the layout's line height so
// callers can size themselves the way the host measures windows.
type Surface struct {
	id         string
	kind       Kind
	width      int
	rows       int
	lineHeight int
	policy     session.Policy

	params  map[string]bool
	content []string
	scroll  int
	spacer  int

	cursorCol    int
	cursorHidden bool
	truncate     bool

	live bool
}

func newSurface(id string, kind Kind, width, rows, lineHeight int) *Surface {
	return &Surface{
		id:         id,
		kind:       kind,
		width:      width,
		rows:       rows,
		lineHeight: lineHeight,
		params:     make(map[string]bool),
		live:       true,
	}
}

func (s *Surface) ID() string  { return s.id }
func (s *Surface) Kind() Kind  { return s.kind }
func (s *Surface) Live() bool  { return s.live }
func (s *Surface) Width() int  { return s.width }
func (s *Surface) Rows() int   { return s.rows }
func (s *Surface) Scroll() int { return s.scroll }
func (s *Surface) Cursor() int { return s.cursorCol }

// PixelHeight reports the surface height the way the host measures it.
func (s *Surface) PixelHeight() int {
	return s.rows * s.lineHeight
}

// SetParameter stores a window parameter and returns the previous value.
// Unset parameters read as false.
func (s *Surface) SetParameter(name string, value bool) bool {
	old := s.params[name]
	if s.live {
		s.params[name] = value
	}
	return old
}

// Parameter reads a window parameter.
func (s *Surface) Parameter(name string) bool {
	return s.params[name]
}

// SetContent replaces the surface's visible lines.
func (s *Surface) SetContent(lines []string) {
	if !s.live {
		return
	}
	s.content = append(s.content[:0:0], lines...)
	if s.scroll > len(s.content) {
		s.scroll = len(s.content)
	}
}

// Content returns the full backing content, ignoring scroll.
func (s *Surface) Content() []string {
	return s.content
}

// ContentLen reports the backing line count, excluding spacer filler.
func (s *Surface) ContentLen() int {
	return len(s.content)
}

// SetScroll positions the viewport. Offsets beyond the content land in the
// spacer region, which renders blank.
func (s *Surface) SetScroll(offset int) {
	if !s.live {
		return
	}
	if offset < 0 {
		offset = 0
	}
	max := len(s.content) + s.spacer
	if offset > max {
		offset = max
	}
	s.scroll = offset
}

// SetSpacer appends n blank filler rows after the content so the real lines
// can be scrolled fully out of view. n <= 0 removes the spacer.
func (s *Surface) SetSpacer(rows int) {
	if !s.live {
		return
	}
	if rows < 0 {
		rows = 0
	}
	s.spacer = rows
	if s.scroll > len(s.content)+s.spacer {
		s.scroll = len(s.content) + s.spacer
	}
}

// VisibleContent returns the lines currently in view, spacer rows rendered
// as empty strings, capped at the surface height.
func (s *Surface) VisibleContent() []string {
	if !s.live {
		return nil
	}
	total := len(s.content) + s.spacer
	out := make([]string, 0, s.rows)
	for i := s.scroll; i < total && len(out) < s.rows; i++ {
		if i < len(s.content) {
			out = append(out, s.content[i])
		} else {
			out = append(out, "")
		}
	}
	return out
}

// SetCursor moves the surface's view cursor to the given column.
func (s *Surface) SetCursor(col int) {
	if !s.live {
		return
	}
	if col < 0 {
		col = 0
	}
	s.cursorCol = col
}

// SetCursorHidden suppresses or restores the block cursor.
func (s *Surface) SetCursorHidden(hidden bool) {
	if !s.live {
		return
	}
	s.cursorHidden = hidden
}

// CursorHidden reports whether the block cursor is suppressed.
func (s *Surface) CursorHidden() bool {
	return s.cursorHidden
}

// SetTruncate switches the surface between truncating and wrapping long lines.
func (s *Surface) SetTruncate(truncate bool) {
	if !s.live {
		return
	}
	s.truncate = truncate
}

// Truncate reports the current line-wrap policy.
func (s *Surface) Truncate() bool {
	return s.truncate
}

// Release marks the surface dead. Dead surfaces keep their last parameter
// values readable but ignore all mutation.
func (s *Surface) Release() {
	s.live = false
}

func (s *Surface) String() string {
	return fmt.Sprintf("%s %dx%d", s.id, s.width, s.rows)
}
