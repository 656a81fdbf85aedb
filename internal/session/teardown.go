package session

import "github.com/nofmysfk/vertico/internal/logging/events"

// teardown is the session's exit-callback. The layout fires it on every exit
// path: explicit confirm, explicit cancel, and multi-level aborts that skip
// episode-local cleanup.
//
// The depth token keys idempotence: a session created at depth N acts only
// when the episode stack has unwound back to N. Exits of inner episodes are
// no-ops that leave the guard registered for the matching outer unwind.
func (s *Session) teardown() {
	if s.done {
		return
	}
	current := s.mgr.layout.CurrentDepth()
	if current != s.depth {
		events.Teardown.Skip(s.depth, current)
		return
	}
	s.done = true

	if s.panel.Live() {
		s.panel.SetParameter(ParamNoOtherWindow, s.savedNoOther)
		s.panel.SetParameter(ParamNoDeleteOther, s.savedNoDelete)
		s.panel.Release()
	} else {
		// Closed independently; nothing left to restore there.
		events.Teardown.Stale(s.panel.ID())
	}

	if s.input.Live() {
		s.input.SetSpacer(0)
		s.input.SetScroll(s.savedScroll)
		s.input.SetCursorHidden(false)
	}

	// Deregister unconditionally, even when the panel was already gone.
	s.cancelRedraw()
	s.cancelExit()
	if s.mgr.active == s {
		s.mgr.active = nil
	}
	events.Teardown.Run(s.panel.ID(), s.depth)
}
