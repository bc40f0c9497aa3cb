package mines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

func TestRenderObjects(t *testing.T) {
	e := newTestEngine(1)
	screen := core.NewScreen(core.Viewport{Height: 5, Width: 20})
	st := State{
		Ball:  pt(1, 1),
		Mines: []core.Point{pt(2, 2), pt(3, 7)},
		Token: pt(4, 4),
		Score: 7,
	}

	e.Render(screen, st)

	assert.Equal(t, 'o', screen.Get(1, 1))
	assert.Equal(t, core.ColorBrightWhite, screen.GetCell(1, 1).Color)
	assert.Equal(t, '*', screen.Get(2, 2))
	assert.Equal(t, '*', screen.Get(3, 7))
	assert.Equal(t, core.ColorBrightRed, screen.GetCell(3, 7).Color)
	assert.Equal(t, '@', screen.Get(4, 4))
	assert.Equal(t, core.ColorBrightYellow, screen.GetCell(4, 4).Color)

	assert.Equal(t, "         Tokens: 7  ", screen.Row(0))
}

func TestRenderClipsOffscreenBall(t *testing.T) {
	e := newTestEngine(1)
	screen := core.NewScreen(core.Viewport{Height: 3, Width: 15})

	assert.NotPanics(t, func() {
		e.Render(screen, State{Ball: pt(-4, 40), Token: pt(2, 2)})
	})
	assert.NotContains(t, screen.Row(1)+screen.Row(2), "o")
	assert.Equal(t, '@', screen.Get(2, 2))
}

func TestRenderSpeedMenu(t *testing.T) {
	screen := core.NewScreen(core.Viewport{Height: 8, Width: 50})
	m := NewSpeedMenu()
	m.Handle(core.Key(core.ActionDown))

	RenderSpeedMenu(screen, m)

	assert.True(t, strings.HasPrefix(screen.Row(0), "  Slow"))
	assert.True(t, strings.HasPrefix(screen.Row(1), "> Fast"))
	assert.True(t, strings.HasPrefix(screen.Row(2), "  Custom"))
	assert.Equal(t, "Select game speed with j and k (q to quit)", strings.TrimRight(screen.Row(4), " "))
}

func TestRenderCustomEntry(t *testing.T) {
	screen := core.NewScreen(core.Viewport{Height: 10, Width: 80})
	c := NewCustomEntry(16)
	c.Handle(core.Digit('2'))
	c.Handle(core.Digit('5'))

	RenderCustomEntry(screen, c, config.DefaultMinesConfig().Speed)

	assert.Equal(t, "25", strings.TrimRight(screen.Row(0), " "))
	assert.Equal(t, "Enter speed (redraw delay in microseconds) (x to delete, q to quit)", strings.TrimRight(screen.Row(5), " "))
	assert.Equal(t, "[Default slow speed is 100k, default fast speed is 30k]", strings.TrimRight(screen.Row(7), " "))
}

func TestShortMicros(t *testing.T) {
	assert.Equal(t, "100k", shortMicros(100000))
	assert.Equal(t, "30k", shortMicros(30000))
	assert.Equal(t, "1500", shortMicros(1500))
	assert.Equal(t, "0", shortMicros(0))
}
