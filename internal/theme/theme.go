package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Prompt       *lipgloss.Style
	Count        *lipgloss.Style
	Query        *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Annotation   *lipgloss.Style
	PanelBorder  *lipgloss.Style
	Info         *lipgloss.Style
	Error        *lipgloss.Style
	Cursor       *lipgloss.Style
}

var defaultStyles = Styles{
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Count: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Annotation: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PanelBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
