// Package session implements the display-session lifecycle manager: the
// binder that opens a panel surface and ties the input view to it, the
// per-tick frame synchronizer that keeps the two views aligned, and the
// depth-guarded teardown that restores prior state exactly once no matter
// how the interactive episode ends.
package session

import (
	"errors"
	"fmt"

	"github.com/nofmysfk/vertico/internal/logging/events"
)

var (
	// ErrNoActiveEpisode reports a Start call outside an interactive
	// episode. This is a contract violation; callers must open an episode
	// first.
	ErrNoActiveEpisode = errors.New("no interactive episode active")

	// ErrSessionActive reports that a session already owns the panel.
	ErrSessionActive = errors.New("display session already active")
)

// chromeRows is the fixed allowance subtracted from the derived row count
// for the panel's surrounding chrome.
const chromeRows = 2

// Manager owns the single active display session and implements the
// engine's RenderTarget strategy while the panel mode is enabled.
type Manager struct {
	layout Layout
	engine Engine

	active     *Session
	focusInput bool

	enabled     bool
	policy      Policy
	hideInput   bool
	cancelSetup func()
}

// NewManager wires the manager against its host capabilities. Logical focus
// starts on the input view.
func NewManager(layout Layout, engine Engine) *Manager {
	return &Manager{layout: layout, engine: engine, focusInput: true}
}

// Session is one panel-bound interactive episode. It holds the saved state
// the teardown guard restores and the depth token that keys its cleanup.
type Session struct {
	mgr       *Manager
	policy    Policy
	hideInput bool
	depth     int

	panel Surface
	input Surface

	savedNoOther  bool
	savedNoDelete bool
	savedScroll   int

	rows int
	last SyncState

	cancelRedraw func()
	cancelExit   func()
	done         bool
}

// Start binds a new display session: it allocates the panel surface, marks
// it excluded from window navigation and delete-other-windows (recording the
// prior values), derives the visible row count, publishes it to the engine,
// and registers the synchronizer and teardown callbacks.
//
// Start must be called inside an active interactive episode; the layout
// delivers no redraw tick for the session before Start returns.
func (m *Manager) Start(policy Policy, hideInput bool) (*Session, error) {
	depth := m.layout.CurrentDepth()
	if depth == 0 {
		return nil, ErrNoActiveEpisode
	}
	if m.active != nil && !m.active.done {
		return nil, ErrSessionActive
	}

	panel, err := m.layout.AllocateSurface(policy)
	if err != nil {
		return nil, fmt.Errorf("allocate surface: %w", err)
	}
	input := m.layout.InputSurface()

	s := &Session{
		mgr:         m,
		policy:      policy,
		hideInput:   hideInput,
		depth:       depth,
		panel:       panel,
		input:       input,
		savedScroll: input.Scroll(),
	}
	s.savedNoOther = panel.SetParameter(ParamNoOtherWindow, true)
	s.savedNoDelete = panel.SetParameter(ParamNoDeleteOther, true)

	s.rows = deriveRows(panel.PixelHeight(), m.layout.LineHeight())
	m.engine.ResizeNotify(s.rows)

	if hideInput {
		viewRows := input.PixelHeight() / m.layout.LineHeight()
		if viewRows < 1 {
			viewRows = 1
		}
		input.SetSpacer(viewRows)
	}

	s.cancelRedraw = m.layout.RegisterRedraw(s.onRedraw)
	s.cancelExit = m.layout.RegisterExit(s.teardown)
	m.active = s

	events.Session.Start(policy.String(), depth, s.rows, hideInput)
	events.Session.Bind(panel.ID())
	return s, nil
}

// deriveRows converts a surface's pixel height into the candidate-list row
// count published to the engine.
func deriveRows(pixelHeight, lineHeight int) int {
	if lineHeight <= 0 {
		return 0
	}
	rows := pixelHeight/lineHeight - chromeRows
	if rows < 0 {
		rows = 0
	}
	return rows
}

// Refresh re-derives the row count after the panel geometry changed and
// republishes it to the engine.
func (s *Session) Refresh() {
	if s.done || !s.panel.Live() {
		return
	}
	rows := deriveRows(s.panel.PixelHeight(), s.mgr.layout.LineHeight())
	if rows == s.rows {
		return
	}
	s.rows = rows
	s.mgr.engine.ResizeNotify(rows)
	events.Session.Resize(rows)
}

// Rows reports the candidate-list height derived at bind time.
func (s *Session) Rows() int { return s.rows }

// Panel exposes the bound panel surface.
func (s *Session) Panel() Surface { return s.panel }

// Done reports whether the teardown guard has already acted.
func (s *Session) Done() bool { return s.done }

// Sync returns the state produced by the most recent synchronizer tick.
func (s *Session) Sync() SyncState { return s.last }

// Active returns the session currently holding the panel, or nil.
func (m *Manager) Active() *Session {
	if m.active != nil && !m.active.done {
		return m.active
	}
	return nil
}

// SetFocusInput records where the logical input focus sits. The synchronizer
// draws the input view's block cursor only while this is true; the panel may
// look focused, but the input line stays the semantic target.
func (m *Manager) SetFocusInput(focused bool) {
	m.focusInput = focused
}
