package termcell

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

func newSimBackend(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	b := New(config.DefaultMinesConfig().Keys.KeyMap(), WithScreen(func() (tcell.Screen, error) {
		return sim, nil
	}))
	require.NoError(t, b.Init())
	t.Cleanup(b.Fini)

	sim.SetSize(20, 6)
	return b, sim
}

func TestSizeFollowsScreen(t *testing.T) {
	b, _ := newSimBackend(t)
	assert.Equal(t, core.Viewport{Height: 6, Width: 20}, b.Size())
}

func TestShowCopiesCells(t *testing.T) {
	b, sim := newSimBackend(t)

	screen := core.NewScreen(b.Size())
	screen.SetColored(1, 2, 'o', core.ColorBrightWhite)
	screen.SetColored(3, 4, '*', core.ColorBrightRed)
	screen.DrawText(0, 9, "Tokens: 3")
	b.Show(screen)

	r, _, style, _ := sim.GetContent(2, 1)
	assert.Equal(t, 'o', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)

	r, _, style, _ = sim.GetContent(4, 3)
	assert.Equal(t, '*', r)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)

	r, _, _, _ = sim.GetContent(9, 0)
	assert.Equal(t, 'T', r)
}

func TestWaitKeyTranslates(t *testing.T) {
	b, sim := newSimBackend(t)

	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '7', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, core.Key(core.ActionUp), b.WaitKey())
	assert.Equal(t, core.Key(core.ActionDown), b.WaitKey())
	assert.Equal(t, core.Digit('7'), b.WaitKey())
	assert.Equal(t, core.Key(core.ActionConfirm), b.WaitKey())
}

func TestPollKeyNeverBlocks(t *testing.T) {
	b, sim := newSimBackend(t)

	_, ok := b.PollKey()
	assert.False(t, ok)

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	var ev core.KeyEvent
	require.Eventually(t, func() bool {
		ev, ok = b.PollKey()
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, core.ActionQuit, ev.Action)
}

func TestWaitKeyAfterFini(t *testing.T) {
	b, _ := newSimBackend(t)
	b.Fini()
	b.Fini()

	assert.Equal(t, core.Key(core.ActionQuit), b.WaitKey())
}

func TestInitFailure(t *testing.T) {
	boom := errors.New("no terminal")
	b := New(core.KeyMap{}, WithScreen(func() (tcell.Screen, error) {
		return nil, boom
	}))

	err := b.Init()
	assert.ErrorIs(t, err, boom)
	assert.NotPanics(t, b.Fini)
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{tcell.KeyRune, 'j', tcell.ModNone, "j"},
		{tcell.KeyRune, '0', tcell.ModNone, "0"},
		{tcell.KeyRune, ' ', tcell.ModNone, " "},
		{tcell.KeyUp, 0, tcell.ModNone, "up"},
		{tcell.KeyDown, 0, tcell.ModNone, "down"},
		{tcell.KeyLeft, 0, tcell.ModNone, "left"},
		{tcell.KeyRight, 0, tcell.ModNone, "right"},
		{tcell.KeyEnter, 0, tcell.ModNone, "enter"},
		{tcell.KeyBackspace, 0, tcell.ModNone, "backspace"},
		{tcell.KeyBackspace2, 0, tcell.ModNone, "backspace"},
		{tcell.KeyEscape, 0, tcell.ModNone, "esc"},
		{tcell.KeyCtrlC, 0, tcell.ModCtrl, "ctrl+c"},
		{tcell.KeyF5, 0, tcell.ModNone, ""},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, KeyName(tcell.NewEventKey(tc.key, tc.r, tc.mod)))
		})
	}
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("tcell"))

	b, err := registry.Create("tcell", core.RuntimeConfig{Keys: core.KeyMap{}})
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
}

func TestPollKeyAfterReaderStops(t *testing.T) {
	b := &Backend{
		events: make(chan core.KeyEvent, 1),
		done:   make(chan struct{}),
	}
	b.events <- core.Key(core.ActionLeft)
	close(b.done)

	ev, ok := b.PollKey()
	assert.True(t, ok)
	assert.Equal(t, core.Key(core.ActionLeft), ev, "queued keys drain first")

	ev, ok = b.PollKey()
	assert.True(t, ok)
	assert.Equal(t, core.Key(core.ActionQuit), ev)
}
