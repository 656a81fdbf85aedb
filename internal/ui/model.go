package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nofmysfk/vertico/internal/engine"
	"github.com/nofmysfk/vertico/internal/logging/events"
	"github.com/nofmysfk/vertico/internal/session"
	"github.com/nofmysfk/vertico/internal/surface"
	"github.com/nofmysfk/vertico/internal/theme"
	uistate "github.com/nofmysfk/vertico/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the panel picker.
type Model struct {
	layout  *surface.Layout
	engine  *engine.Engine
	manager *session.Manager
	policy  session.Policy

	list  *uistate.List
	input textinput.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	verbose     bool

	errMsg  string
	result  string
	chose   bool
	started bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over its host collaborators. The episode
// itself opens in Init, not here.
func NewModel(layout *surface.Layout, eng *engine.Engine, manager *session.Manager, policy session.Policy, width, height int, verbose bool) *Model {
	input := textinput.New()
	input.Prompt = ""
	m := &Model{
		layout:  layout,
		engine:  eng,
		manager: manager,
		policy:  policy,
		list:    uistate.NewList(candidateValues(eng.Candidates())),
		input:   input,
		verbose: verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init opens the interactive episode and runs the engine's setup routine;
// with the panel mode enabled that binds the display session before the
// first redraw tick.
func (m *Model) Init() tea.Cmd {
	if !m.started {
		m.started = true
		m.layout.BeginEpisode()
		m.engine.Setup()
	}
	return m.input.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.layout.SetFrameSize(m.width, m.height)
	// Native sizing reaction; a no-op while the session manager owns it.
	m.engine.HandleFrameResize(m.height - 1)
	if s := m.manager.Active(); s != nil {
		s.Refresh()
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

// visibleRows reports the candidate-list height currently in force.
func (m *Model) visibleRows() int {
	if rows := m.engine.Rows(); rows > 0 {
		return rows
	}
	if m.height > 1 {
		return m.height - 1
	}
	return len(m.list.Items)
}

// Result returns the confirmed candidate value and whether one was chosen.
func (m *Model) Result() (string, bool) {
	return m.result, m.chose
}

func candidateValues(candidates []engine.Candidate) []string {
	values := make([]string, len(candidates))
	for i, c := range candidates {
		values[i] = c.Value
	}
	return values
}
