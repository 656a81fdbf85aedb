package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/nofmysfk/vertico/internal/session"
	"github.com/nofmysfk/vertico/internal/surface"
)

// View implements tea.Model. Surfaces are refreshed first, then the layout
// runs a redraw cycle (which is where the session's frame synchronizer
// ticks), and only then is the frame composed from the surfaces' visible
// content.
func (m *Model) View() string {
	m.syncSurfaces()
	m.layout.RedrawAll()
	return m.render()
}

// syncSurfaces pushes the query line into the input surface and the
// candidate overlay into the panel.
func (m *Model) syncSurfaces() {
	in := m.layout.Input()
	prefix := m.inputPrefix()
	in.SetContent([]string{prefix + m.input.Value()})
	in.SetCursor(runewidth.StringWidth(prefix) + m.queryCursorWidth())

	if panel := m.layout.Panel(); panel != nil {
		rows := m.visibleRows()
		m.list.EnsureCursorVisible(rows)
		lines := m.engine.CandidateOverlay(m.list.Cursor, m.list.ViewportOffset, rows)
		if m.engine.Redirected() {
			lines = append([]string{m.engine.CountOverlay()}, lines...)
		}
		panel.SetContent(lines)
	}
}

// inputPrefix is the text before the query: the match counter (unless it has
// been redirected into the panel) and the prompt.
func (m *Model) inputPrefix() string {
	prefix := ""
	if !m.engine.Redirected() {
		prefix = m.engine.CountOverlay()
	}
	return prefix + m.engine.Prompt()
}

// queryCursorWidth measures the query text left of the edit cursor in cells.
func (m *Model) queryCursorWidth() int {
	runes := []rune(m.input.Value())
	pos := m.input.Position()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	return runewidth.StringWidth(string(runes[:pos]))
}

func (m *Model) render() string {
	inputLine := m.renderInput()
	panel := m.layout.Panel()
	if panel == nil {
		return inputLine
	}
	panelBox := m.renderPanel(panel)

	switch m.policy.Placement {
	case session.SideLeft:
		return lipgloss.JoinHorizontal(lipgloss.Top, panelBox, inputLine)
	case session.SideRight:
		return lipgloss.JoinHorizontal(lipgloss.Top, inputLine, panelBox)
	case session.SideTop:
		return lipgloss.JoinVertical(lipgloss.Left, panelBox, inputLine)
	case session.BelowTarget:
		return lipgloss.JoinVertical(lipgloss.Left, inputLine, panelBox)
	default:
		// bottom-of-frame placements: blank filler pushes the panel down.
		sections := []string{inputLine}
		if filler := m.height - 1 - lipgloss.Height(panelBox); filler > 0 {
			sections = append(sections, strings.Repeat("\n", filler-1))
		}
		sections = append(sections, panelBox)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
}

// renderInput draws the original input line. When the session scrolled it
// out of view the line renders blank; otherwise the prefix, query, and a
// block cursor (unless suppressed) are styled in place.
func (m *Model) renderInput() string {
	in := m.layout.Input()
	if in.Scroll() >= in.ContentLen() && in.ContentLen() > 0 {
		line := ""
		if m.errMsg != "" {
			line = styles.Error.Render(m.errMsg)
		}
		return line
	}

	var b strings.Builder
	if !m.engine.Redirected() {
		b.WriteString(styles.Count.Render(m.engine.CountOverlay()))
	}
	b.WriteString(styles.Prompt.Render(m.engine.Prompt()))

	runes := []rune(m.input.Value())
	pos := m.input.Position()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	b.WriteString(styles.Query.Render(string(runes[:pos])))
	if in.CursorHidden() {
		b.WriteString(styles.Query.Render(string(runes[pos:])))
	} else if pos < len(runes) {
		b.WriteString(styles.Cursor.Render(string(runes[pos])))
		b.WriteString(styles.Query.Render(string(runes[pos+1:])))
	} else {
		b.WriteString(styles.Cursor.Render(" "))
	}
	if m.errMsg != "" {
		b.WriteString(" ")
		b.WriteString(styles.Error.Render(m.errMsg))
	}
	return b.String()
}

// renderPanel draws the panel surface's visible content, honouring the
// truncation policy the synchronizer computed for this tick.
func (m *Model) renderPanel(panel *surface.Surface) string {
	lines := panel.VisibleContent()
	if len(lines) == 0 {
		return styles.Info.Render("(no matches)")
	}
	selectedRow := m.list.Cursor - m.list.ViewportOffset
	headerRows := 0
	if m.engine.Redirected() {
		headerRows = 1
	}
	width := panel.Width()
	out := make([]string, len(lines))
	for i, line := range lines {
		if panel.Truncate() && width > 0 {
			line = truncate.String(line, uint(width))
		}
		style := styles.Item
		switch {
		case headerRows > 0 && i == 0:
			style = styles.Count
		case i-headerRows == selectedRow:
			style = styles.SelectedItem
		}
		out[i] = style.Render(line)
	}
	return strings.Join(out, "\n")
}
