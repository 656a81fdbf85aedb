package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nofmysfk/vertico/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter":
		return m.confirm()
	case "esc", "ctrl+c":
		return m.cancel()
	case "ctrl+g":
		return m.abort()
	case "up", "ctrl+p":
		if m.list.MoveCursorUp() {
			events.UI.Cursor(m.list.Cursor)
		}
		m.list.EnsureCursorVisible(m.visibleRows())
		return nil
	case "down", "ctrl+n":
		if m.list.MoveCursorDown() {
			events.UI.Cursor(m.list.Cursor)
		}
		m.list.EnsureCursorVisible(m.visibleRows())
		return nil
	case "pgup":
		m.list.MoveCursorPageUp(m.visibleRows())
		m.list.EnsureCursorVisible(m.visibleRows())
		return nil
	case "pgdown":
		m.list.MoveCursorPageDown(m.visibleRows())
		m.list.EnsureCursorVisible(m.visibleRows())
		return nil
	case "alt+<":
		m.list.MoveCursorHome()
		m.list.EnsureCursorVisible(m.visibleRows())
		return nil
	case "alt+>":
		m.list.MoveCursorEnd()
		m.list.EnsureCursorVisible(m.visibleRows())
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.engine.Filter(m.input.Value())
		m.list.SetItems(candidateValues(m.engine.Candidates()))
	}
	return cmd
}

// confirm ends the episode over the normal exit path and reports the
// selected candidate.
func (m *Model) confirm() tea.Cmd {
	m.result = m.list.Selected()
	m.chose = m.result != ""
	events.App.Confirm(m.result)
	m.layout.EndEpisode()
	return tea.Quit
}

// cancel ends the episode without a selection.
func (m *Model) cancel() tea.Cmd {
	events.App.Cancel()
	m.layout.EndEpisode()
	return tea.Quit
}

// abort unwinds every open episode at once, the path an outer control
// escape takes. Episode-local cleanup never runs here; the session's
// teardown guard still does.
func (m *Model) abort() tea.Cmd {
	events.App.Abort(m.layout.CurrentDepth())
	m.layout.Abort()
	return tea.Quit
}
