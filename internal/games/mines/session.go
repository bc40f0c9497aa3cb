package mines

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Result is the outcome of one session.
type Result struct {
	Score  int
	Status Status        // StatusQuit also covers quitting before the loop
	Delay  time.Duration // zero if the player quit during speed selection
	Final  Snapshot
}

// Message returns the line printed after the terminal is released.
func (r Result) Message() string {
	if r.Score == 1 {
		return "You collected 1 token!"
	}
	return fmt.Sprintf("You collected %d tokens!", r.Score)
}

// Session runs one game on a backend: speed selection, then the tick loop.
type Session struct {
	backend core.Backend
	cfg     config.MinesConfig
	seed    int64
	logger  *log.Logger
	sleep   func(time.Duration)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithSeed fixes the spawn RNG seed. 0 means seed from the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithSleep replaces the end-of-tick pause.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Session) {
		s.sleep = sleep
	}
}

// NewSession creates a session that will drive the given backend.
func NewSession(b core.Backend, cfg config.MinesConfig, opts ...Option) *Session {
	s := &Session{
		backend: b,
		cfg:     cfg,
		logger:  log.New(io.Discard),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run acquires the backend, plays one game and releases the backend on every
// exit path. The only error is a failure to acquire the backend or to place
// the first token.
func (s *Session) Run() (Result, error) {
	if err := s.backend.Init(); err != nil {
		return Result{}, fmt.Errorf("mines: cannot initialize backend: %w", err)
	}
	defer func() {
		s.backend.Fini()
		s.logger.Debug("backend released")
	}()
	s.logger.Debug("backend acquired", "viewport", s.backend.Size())

	delay, ok := s.selectSpeed()
	if !ok {
		s.logger.Info("quit during speed selection")
		return Result{Status: StatusQuit}, nil
	}
	s.logger.Info("speed selected", "delay", delay)

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := NewEngine(RulesFromConfig(s.cfg), NewPlacer(rand.New(rand.NewSource(seed))))

	st, err := engine.NewState(s.backend.Size())
	if err != nil {
		return Result{Delay: delay}, err
	}

	st = s.loop(engine, st, delay)

	result := Result{
		Score:  st.Score,
		Status: st.Status,
		Delay:  delay,
		Final:  st.Snapshot(),
	}
	s.logger.Info("game over", "status", st.Status, "score", st.Score, "ticks", st.Tick, "mines", len(st.Mines))
	return result, nil
}

// loop renders, steps and pauses until the engine leaves StatusRunning.
func (s *Session) loop(engine *Engine, st State, delay time.Duration) State {
	screen := core.NewScreen(s.backend.Size())

	for {
		screen.Resize(s.backend.Size())
		screen.Clear()
		engine.Render(screen, st)
		s.backend.Show(screen)

		prevScore, prevMines := st.Score, len(st.Mines)
		st = engine.Step(st, s.backend)
		if st.Score != prevScore {
			s.logger.Debug("token collected", "score", st.Score, "token", st.Token)
		}
		if len(st.Mines) != prevMines {
			s.logger.Debug("mine placed", "at", st.Mines[len(st.Mines)-1], "count", len(st.Mines))
		}

		if st.Status != StatusRunning {
			return st
		}
		s.sleep(delay)
	}
}

// selectSpeed shows the speed menu and, for Custom, the text entry.
// It reports false if the player quit.
func (s *Session) selectSpeed() (time.Duration, bool) {
	menu := NewSpeedMenu()
	screen := core.NewScreen(s.backend.Size())

	for {
		screen.Resize(s.backend.Size())
		screen.Clear()
		RenderSpeedMenu(screen, menu)
		s.backend.Show(screen)

		if menu.Handle(s.backend.WaitKey()) {
			break
		}
	}

	switch menu.Choice() {
	case ChoiceSlow:
		return s.cfg.Speed.SlowDelay(), true
	case ChoiceFast:
		return s.cfg.Speed.FastDelay(), true
	case ChoiceCustom:
		return s.enterCustomSpeed(screen)
	default:
		return 0, false
	}
}

// enterCustomSpeed runs the blocking digit entry.
func (s *Session) enterCustomSpeed(screen *core.Screen) (time.Duration, bool) {
	entry := NewCustomEntry(s.cfg.Speed.CustomBuffer)

	for {
		screen.Resize(s.backend.Size())
		screen.Clear()
		RenderCustomEntry(screen, entry, s.cfg.Speed)
		s.backend.Show(screen)

		if entry.Handle(s.backend.WaitKey()) {
			break
		}
	}

	if entry.Quit() {
		return 0, false
	}
	s.logger.Debug("custom speed entered", "micros", entry.Micros())
	return entry.Delay(), true
}
