package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// KeyBindings translates Bubble Tea key messages to game actions.
// It also satisfies help.KeyMap so the bindings can be listed.
type KeyBindings struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding
	Delete  key.Binding
}

// NewKeyBindings builds bindings from a configured key map.
func NewKeyBindings(km core.KeyMap) KeyBindings {
	return KeyBindings{
		Up:      binding(km, core.ActionUp, "up"),
		Down:    binding(km, core.ActionDown, "down"),
		Left:    binding(km, core.ActionLeft, "left"),
		Right:   binding(km, core.ActionRight, "right"),
		Confirm: binding(km, core.ActionConfirm, "confirm"),
		Quit:    binding(km, core.ActionQuit, "quit"),
		Delete:  binding(km, core.ActionDelete, "delete digit"),
	}
}

func binding(km core.KeyMap, a core.Action, desc string) key.Binding {
	names := km.Names(a)
	sort.Strings(names)
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// Translate maps a key message to a key event. Bound keys win; an unbound
// single digit becomes ActionDigit; anything else is ActionNone.
func (kb KeyBindings) Translate(msg tea.KeyMsg) core.KeyEvent {
	switch {
	case key.Matches(msg, kb.Quit):
		return core.Key(core.ActionQuit)
	case key.Matches(msg, kb.Up):
		return core.Key(core.ActionUp)
	case key.Matches(msg, kb.Down):
		return core.Key(core.ActionDown)
	case key.Matches(msg, kb.Left):
		return core.Key(core.ActionLeft)
	case key.Matches(msg, kb.Right):
		return core.Key(core.ActionRight)
	case key.Matches(msg, kb.Confirm):
		return core.Key(core.ActionConfirm)
	case key.Matches(msg, kb.Delete):
		return core.Key(core.ActionDelete)
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		if r := msg.Runes[0]; r >= '0' && r <= '9' {
			return core.Digit(r)
		}
	}
	return core.Key(core.ActionNone)
}

// ShortHelp returns the steering and quit bindings.
func (kb KeyBindings) ShortHelp() []key.Binding {
	return []key.Binding{kb.Up, kb.Down, kb.Left, kb.Right, kb.Quit}
}

// FullHelp groups every binding by the screen that uses it.
func (kb KeyBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{kb.Up, kb.Down, kb.Left, kb.Right},
		{kb.Confirm, kb.Delete, kb.Quit},
	}
}

// HelpView renders every binding of km as a help block.
func HelpView(km core.KeyMap) string {
	h := help.New()
	h.ShowAll = true
	return h.View(NewKeyBindings(km))
}
