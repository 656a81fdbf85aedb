package surface

import (
	"errors"
	"fmt"

	"github.com/nofmysfk/vertico/internal/session"
)

// ErrSurfaceBusy reports that a panel surface is already live; the layout
// hands out at most one at a time.
var ErrSurfaceBusy = errors.New("panel surface already allocated")

const (
	// DefaultLineHeight is the pixel height of one text row, matching the
	// unit hosts report window heights in.
	DefaultLineHeight = 20

	defaultFraction = 0.3
	minPanelRows    = 3
)

type redrawEntry struct {
	id int
	fn func(session.Surface)
}

type exitEntry struct {
	id int
	fn func()
}

// Layout owns the frame, the input surface, the single panel surface, the
// episode nesting depth, and the redraw/exit callback registries. It is the
// concrete layout-manager capability behind session.Layout.
//
// All methods run on the host's event loop; the layout never invokes a
// callback concurrently with another.
type Layout struct {
	width      int
	height     int
	lineHeight int

	input *Surface
	panel *Surface

	depth  int
	redraw []redrawEntry
	exit   []exitEntry
	nextID int
	serial int
}

// New builds a layout for a frame of width x height character cells. The
// input surface spans the top row.
func New(width, height, lineHeight int) *Layout {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	l := &Layout{width: width, height: height, lineHeight: lineHeight}
	l.input = newSurface("input", KindInput, width, 1, lineHeight)
	return l
}

// InputSurface returns the surface hosting the original input line.
func (l *Layout) InputSurface() session.Surface { return l.input }

// Input returns the concrete input surface for rendering.
func (l *Layout) Input() *Surface { return l.input }

// Panel returns the live panel surface, or nil.
func (l *Layout) Panel() *Surface {
	if l.panel != nil && l.panel.live {
		return l.panel
	}
	return nil
}

// CurrentDepth reports how many interactive episodes are stacked.
func (l *Layout) CurrentDepth() int { return l.depth }

// LineHeight reports the pixel height of one text row.
func (l *Layout) LineHeight() int { return l.lineHeight }

// AllocateSurface carves the panel region described by the policy out of the
// frame. Only one panel may be live at a time.
func (l *Layout) AllocateSurface(policy session.Policy) (session.Surface, error) {
	if l.panel != nil && l.panel.live {
		return nil, ErrSurfaceBusy
	}
	width, rows := l.geometry(policy)
	l.serial++
	s := newSurface(fmt.Sprintf("panel-%d", l.serial), KindPanel, width, rows, l.lineHeight)
	s.policy = policy
	l.panel = s
	return s, nil
}

// geometry resolves a policy against the current frame size.
func (l *Layout) geometry(policy session.Policy) (width, rows int) {
	width = l.width
	avail := l.height - 1 // input row

	switch policy.Placement {
	case session.SideLeft, session.SideRight:
		fraction := policy.Fraction
		if fraction <= 0 || fraction >= 1 {
			fraction = defaultFraction
		}
		width = int(float64(l.width) * fraction)
		if width < 1 {
			width = 1
		}
		rows = avail
	default:
		rows = policy.Rows
		if rows <= 0 {
			fraction := policy.Fraction
			if fraction <= 0 || fraction >= 1 {
				fraction = defaultFraction
			}
			rows = int(float64(l.height) * fraction)
		}
	}
	if rows < minPanelRows {
		rows = minPanelRows
	}
	if avail > 0 && rows > avail {
		rows = avail
	}
	return width, rows
}

// SetFrameSize resizes the frame, the input surface, and any live panel.
func (l *Layout) SetFrameSize(width, height int) {
	l.width = width
	l.height = height
	l.input.width = width
	if panel := l.Panel(); panel != nil {
		panel.width, panel.rows = l.geometry(panel.policy)
	}
}

// BeginEpisode opens a nested interactive episode and returns the new depth.
func (l *Layout) BeginEpisode() int {
	l.depth++
	return l.depth
}

// EndEpisode closes the innermost episode. Exit callbacks fire while the
// closing episode's depth is still current, so depth-guarded cleanup can
// match against its creation depth.
func (l *Layout) EndEpisode() {
	if l.depth == 0 {
		return
	}
	l.fireExit()
	l.depth--
}

// Abort unwinds every open episode, firing exit callbacks at each depth on
// the way down. This is the path abrupt multi-level escapes take; episode
// local cleanup never runs for them.
func (l *Layout) Abort() {
	for l.depth > 0 {
		l.fireExit()
		l.depth--
	}
}

func (l *Layout) fireExit() {
	pending := append([]exitEntry(nil), l.exit...)
	for _, entry := range pending {
		entry.fn()
	}
}

// RedrawAll delivers one redraw tick per visible surface to every registered
// callback, input surface first.
func (l *Layout) RedrawAll() {
	callbacks := append([]redrawEntry(nil), l.redraw...)
	surfaces := []*Surface{l.input}
	if panel := l.Panel(); panel != nil {
		surfaces = append(surfaces, panel)
	}
	for _, s := range surfaces {
		for _, entry := range callbacks {
			entry.fn(s)
		}
	}
}

// RegisterRedraw adds a per-tick callback. The returned func removes it.
func (l *Layout) RegisterRedraw(fn func(session.Surface)) (cancel func()) {
	l.nextID++
	id := l.nextID
	l.redraw = append(l.redraw, redrawEntry{id: id, fn: fn})
	return func() {
		for i, entry := range l.redraw {
			if entry.id == id {
				l.redraw = append(l.redraw[:i], l.redraw[i+1:]...)
				return
			}
		}
	}
}

// RegisterExit adds an episode-exit callback. The returned func removes it.
func (l *Layout) RegisterExit(fn func()) (cancel func()) {
	l.nextID++
	id := l.nextID
	l.exit = append(l.exit, exitEntry{id: id, fn: fn})
	return func() {
		for i, entry := range l.exit {
			if entry.id == id {
				l.exit = append(l.exit[:i], l.exit[i+1:]...)
				return
			}
		}
	}
}
