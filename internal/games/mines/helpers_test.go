package mines

import (
	"math/rand"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// scriptEnv feeds a fixed viewport and a queue of key presses, one per poll.
type scriptEnv struct {
	vp    core.Viewport
	keys  []core.KeyEvent
	polls int
}

func (e *scriptEnv) Size() core.Viewport {
	return e.vp
}

func (e *scriptEnv) PollKey() (core.KeyEvent, bool) {
	e.polls++
	if len(e.keys) == 0 {
		return core.KeyEvent{}, false
	}
	k := e.keys[0]
	e.keys = e.keys[1:]
	return k, true
}

func newTestEngine(seed int64) *Engine {
	return NewEngine(DefaultRules(), NewPlacer(rand.New(rand.NewSource(seed))))
}

// fakeBackend is a scripted core.Backend. WaitKey pops waitKeys, PollKey pops
// polls (a zero KeyEvent entry means "no key this tick").
type fakeBackend struct {
	vp       core.Viewport
	initErr  error
	waitKeys []core.KeyEvent
	polls    []core.KeyEvent

	inits  int
	finis  int
	frames []string
}

func (b *fakeBackend) Init() error {
	b.inits++
	return b.initErr
}

func (b *fakeBackend) Fini() {
	b.finis++
}

func (b *fakeBackend) Size() core.Viewport {
	return b.vp
}

func (b *fakeBackend) Show(s *core.Screen) {
	b.frames = append(b.frames, s.String())
}

func (b *fakeBackend) PollKey() (core.KeyEvent, bool) {
	if len(b.polls) == 0 {
		return core.KeyEvent{}, false
	}
	k := b.polls[0]
	b.polls = b.polls[1:]
	return k, k.Action != core.ActionNone
}

func (b *fakeBackend) WaitKey() core.KeyEvent {
	if len(b.waitKeys) == 0 {
		return core.Key(core.ActionQuit)
	}
	k := b.waitKeys[0]
	b.waitKeys = b.waitKeys[1:]
	return k
}

func (b *fakeBackend) lastFrame() string {
	if len(b.frames) == 0 {
		return ""
	}
	return b.frames[len(b.frames)-1]
}
