package session

import "github.com/nofmysfk/vertico/internal/logging/events"

// Enable switches the panel mode on: the binder's setup hook is installed
// into the engine's episode setup routine and the manager becomes the
// engine's render target, which also disables the engine's native resize
// handling while sizing is owned here. Enabling twice is a no-op.
func (m *Manager) Enable(policy Policy, hideInput bool) {
	if m.enabled {
		return
	}
	m.enabled = true
	m.policy = policy
	m.hideInput = hideInput
	m.cancelSetup = m.engine.RegisterSetupHook(m.setup)
	m.engine.SetRenderTarget(m)
}

// Disable removes the setup hook and the render target, handing display
// control back to the engine. Any bound session stays alive until its
// episode unwinds.
func (m *Manager) Disable() {
	if !m.enabled {
		return
	}
	m.enabled = false
	if m.cancelSetup != nil {
		m.cancelSetup()
		m.cancelSetup = nil
	}
	m.engine.SetRenderTarget(nil)
}

// Enabled reports whether the panel mode is on.
func (m *Manager) Enabled() bool { return m.enabled }

// setup is the hook the engine runs when an interactive episode starts.
func (m *Manager) setup() {
	if _, err := m.Start(m.policy, m.hideInput); err != nil {
		events.Session.Error(err)
	}
}

// Rows implements RenderTarget: the candidate-list height owned by the
// active session.
func (m *Manager) Rows() int {
	if s := m.Active(); s != nil {
		return s.Rows()
	}
	return 0
}

// Redirected implements RenderTarget: overlays move into the panel only
// when the active session also hides the input line.
func (m *Manager) Redirected() bool {
	s := m.Active()
	return s != nil && s.hideInput
}
