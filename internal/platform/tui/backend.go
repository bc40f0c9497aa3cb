package tui

import (
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

const (
	keyBuffer = 64

	fallbackWidth  = 80
	fallbackHeight = 24
)

// ErrNotTerminal is returned by Init when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: not a terminal")

func init() {
	registry.Register("tea", "alternate-screen backend (Bubble Tea)", func(cfg core.RuntimeConfig) core.Backend {
		return New(cfg.Keys)
	})
}

// Backend runs a Bubble Tea program in the background and exposes it as a
// core.Backend.
type Backend struct {
	keys     KeyBindings
	progOpts []tea.ProgramOption
	checkTTY bool

	program *tea.Program
	events  chan core.KeyEvent
	done    chan struct{}
	once    sync.Once

	mu     sync.Mutex
	size   core.Viewport
	runErr error
}

// Option configures a Backend.
type Option func(*Backend)

// WithProgramOptions appends Bubble Tea program options. Passing any option
// also disables the terminal check in Init, so tests can supply their own
// input and output.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(b *Backend) {
		b.progOpts = append(b.progOpts, opts...)
		b.checkTTY = false
	}
}

// WithSize sets the size reported until the first WindowSizeMsg arrives.
func WithSize(vp core.Viewport) Option {
	return func(b *Backend) {
		b.size = vp
	}
}

// New creates an uninitialized backend that translates keys with km.
func New(km core.KeyMap, opts ...Option) *Backend {
	b := &Backend{
		keys:     NewKeyBindings(km),
		checkTTY: true,
		size:     core.Viewport{Height: fallbackHeight, Width: fallbackWidth},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init starts the program on the alternate screen.
func (b *Backend) Init() error {
	if b.checkTTY {
		in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
		if !term.IsTerminal(in) || !term.IsTerminal(out) {
			return ErrNotTerminal
		}
		if w, h, err := term.GetSize(out); err == nil {
			b.setSize(core.Viewport{Height: h, Width: w})
		}
	}

	b.events = make(chan core.KeyEvent, keyBuffer)
	b.done = make(chan struct{})

	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, b.progOpts...)
	b.program = tea.NewProgram(NewModel(b.keys, b.events, b.setSize), opts...)

	go func() {
		defer close(b.done)
		if _, err := b.program.Run(); err != nil {
			b.mu.Lock()
			b.runErr = fmt.Errorf("tui: program stopped: %w", err)
			b.mu.Unlock()
		}
	}()
	return nil
}

// Fini stops the program and waits for the terminal to be restored.
func (b *Backend) Fini() {
	if b.program == nil {
		return
	}
	b.once.Do(func() {
		b.program.Quit()
		<-b.done
	})
}

// Err returns the error the program stopped with, if any.
func (b *Backend) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.runErr
}

func (b *Backend) setSize(vp core.Viewport) {
	b.mu.Lock()
	b.size = vp
	b.mu.Unlock()
}

// Size returns the last known terminal size.
func (b *Backend) Size() core.Viewport {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Show hands a rendered frame to the program.
func (b *Backend) Show(s *core.Screen) {
	b.program.Send(frameMsg(RenderScreen(s)))
}

// PollKey returns the oldest waiting key press, if any. Once the
// program has stopped and the queue is drained it reports ActionQuit.
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
// program has stopped.
func (b *Backend) WaitKey() core.KeyEvent {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return core.Key(core.ActionQuit)
	}
}
