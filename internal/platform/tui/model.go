// Package tui implements the game backend on top of Bubble Tea.
//
// The game session keeps its own blocking loop, so the Bubble Tea program
// runs in a goroutine: the model only records key presses and window sizes
// and displays whatever frame the session last pushed.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// frameMsg carries a rendered frame from the session to the program.
type frameMsg string

// Model is the Bubble Tea model behind Backend.
type Model struct {
	keys   KeyBindings
	events chan<- core.KeyEvent
	resize func(core.Viewport)
	frame  string
}

// NewModel creates a model that forwards translated keys to events and
// reports window sizes to resize.
func NewModel(keys KeyBindings, events chan<- core.KeyEvent, resize func(core.Viewport)) Model {
	return Model{
		keys:   keys,
		events: events,
		resize: resize,
	}
}

// Init does nothing; the terminal size arrives as a WindowSizeMsg.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Update must not block; a full type-ahead buffer drops the key.
		select {
		case m.events <- m.keys.Translate(msg):
		default:
		}

	case tea.WindowSizeMsg:
		m.resize(core.Viewport{Height: msg.Height, Width: msg.Width})

	case frameMsg:
		m.frame = string(msg)
	}

	return m, nil
}

// View returns the last frame pushed by the session.
func (m Model) View() string {
	return m.frame
}
