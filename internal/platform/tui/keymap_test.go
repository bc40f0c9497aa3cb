package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTranslate(t *testing.T) {
	kb := NewKeyBindings(config.DefaultMinesConfig().Keys.KeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{"k", runeKey('k'), core.Key(core.ActionUp)},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.Key(core.ActionUp)},
		{"j", runeKey('j'), core.Key(core.ActionDown)},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.Key(core.ActionDown)},
		{"h", runeKey('h'), core.Key(core.ActionLeft)},
		{"l", runeKey('l'), core.Key(core.ActionRight)},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.Key(core.ActionRight)},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Key(core.ActionConfirm)},
		{"q", runeKey('q'), core.Key(core.ActionQuit)},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Key(core.ActionQuit)},
		{"x", runeKey('x'), core.Key(core.ActionDelete)},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.Key(core.ActionDelete)},
		{"digit", runeKey('4'), core.Digit('4')},
		{"alt digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}, Alt: true}, core.Key(core.ActionNone)},
		{"unbound", runeKey('z'), core.Key(core.ActionNone)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := kb.Translate(tc.msg); got != tc.want {
				t.Errorf("Translate(%q) = %+v, want %+v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestTranslateBoundDigitWins(t *testing.T) {
	kb := NewKeyBindings(core.KeyMap{"8": core.ActionUp})

	if got := kb.Translate(runeKey('8')); got != core.Key(core.ActionUp) {
		t.Errorf("bound digit = %+v, want ActionUp", got)
	}
}

func TestHelpViewListsBindings(t *testing.T) {
	view := HelpView(config.DefaultMinesConfig().Keys.KeyMap())

	for _, want := range []string{"down/j", "k/up", "ctrl+c/q", "backspace/x", "quit", "delete digit"} {
		if !contains(view, want) {
			t.Errorf("help view missing %q:\n%s", want, view)
		}
	}
}
