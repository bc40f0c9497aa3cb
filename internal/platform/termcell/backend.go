// Package termcell implements the game backend on top of tcell.
//
// A reader goroutine turns tcell events into translated key presses and
// parks them in a buffered channel, which gives the game loop the
// type-ahead queue it polls once per tick.
package termcell

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// keyBuffer is how many key presses may wait between two polls.
const keyBuffer = 64

func init() {
	registry.Register("tcell", "full-screen cell backend (tcell)", func(cfg core.RuntimeConfig) core.Backend {
		return New(cfg.Keys)
	})
}

// Backend drives a tcell screen.
type Backend struct {
	keys      core.KeyMap
	newScreen func() (tcell.Screen, error)

	screen tcell.Screen
	events chan core.KeyEvent
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Option configures a Backend.
type Option func(*Backend)

// WithScreen replaces the terminal screen constructor, e.g. with a
// tcell simulation screen.
func WithScreen(newScreen func() (tcell.Screen, error)) Option {
	return func(b *Backend) {
		b.newScreen = newScreen
	}
}

// New creates an uninitialized backend that translates keys with km.
func New(km core.KeyMap, opts ...Option) *Backend {
	b := &Backend{
		keys:      km,
		newScreen: tcell.NewScreen,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init acquires the terminal and starts the event reader.
func (b *Backend) Init() error {
	s, err := b.newScreen()
	if err != nil {
		return fmt.Errorf("termcell: cannot create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("termcell: cannot init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	b.screen = s
	b.events = make(chan core.KeyEvent, keyBuffer)
	b.quit = make(chan struct{})
	b.done = make(chan struct{})

	go b.readEvents()
	return nil
}

// readEvents forwards key presses until the screen is finalized.
func (b *Backend) readEvents() {
	defer close(b.done)

	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			select {
			case b.events <- b.keys.Lookup(KeyName(ev)):
			case <-b.quit:
				return
			}
		}
	}
}

// Fini restores the terminal. Safe to call more than once.
func (b *Backend) Fini() {
	if b.screen == nil {
		return
	}
	b.once.Do(func() {
		close(b.quit)
		b.screen.Fini()
		<-b.done
	})
}

// Size returns the current terminal size.
func (b *Backend) Size() core.Viewport {
	w, h := b.screen.Size()
	return core.Viewport{Height: h, Width: w}
}

// Show copies the buffer into the tcell back buffer and flushes it.
func (b *Backend) Show(s *core.Screen) {
	b.screen.Clear()
	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			cell := s.GetCell(row, col)
			b.screen.SetContent(col, row, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	b.screen.Show()
}

// PollKey returns the oldest waiting key press, if any. Once the
// event reader has stopped and the queue is drained it reports ActionQuit.
func (b *Backend) PollKey() (core.KeyEvent, bool) {
	select {
	case ev := <-b.events:
		return ev, true
	default:
	}

	select {
	case <-b.done:
		return core.Key(core.ActionQuit), true
	default:
		return core.KeyEvent{}, false
	}
}

// WaitKey blocks for the next key press. It reports ActionQuit once the
// backend is shut down.
func (b *Backend) WaitKey() core.KeyEvent {
	select {
	case ev := <-b.events:
		return ev
	case <-b.quit:
		return core.Key(core.ActionQuit)
	case <-b.done:
		return core.Key(core.ActionQuit)
	}
}

// KeyName spells a tcell key event the way the key bindings name keys.
// Unsupported keys return "".
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return " "
		}
		return string(ev.Rune())
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return ""
	}
}

var palette = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.ColorMaroon,
	core.ColorGreen:        tcell.ColorGreen,
	core.ColorYellow:       tcell.ColorOlive,
	core.ColorBlue:         tcell.ColorNavy,
	core.ColorMagenta:      tcell.ColorPurple,
	core.ColorCyan:         tcell.ColorTeal,
	core.ColorWhite:        tcell.ColorSilver,
	core.ColorBrightRed:    tcell.ColorRed,
	core.ColorBrightYellow: tcell.ColorYellow,
	core.ColorBrightWhite:  tcell.ColorWhite,
	core.ColorGray:         tcell.ColorGray,
}

func styleFor(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}
