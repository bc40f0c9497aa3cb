package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Env is what one tick reads from the outside world.
// core.Backend satisfies it.
type Env interface {
	Size() core.Viewport
	PollKey() (core.KeyEvent, bool)
}

// Engine advances the simulation one tick at a time.
type Engine struct {
	rules  Rules
	placer *Placer
}

// NewEngine creates an engine with the given rules and spawn placer.
func NewEngine(rules Rules, placer *Placer) *Engine {
	return &Engine{rules: rules, placer: placer}
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// NewState creates the initial running state: ball at the start position
// with zero velocity, no mines, and a token placed away from the ball.
func (e *Engine) NewState(vp core.Viewport) (State, error) {
	st := State{
		Ball:   e.rules.Start,
		Mines:  make([]core.Point, 0, core.Min(e.rules.MineMax, 64)),
		Status: StatusRunning,
	}

	token, err := e.placer.Place(vp, NewPointSet(st.Ball))
	if err != nil {
		return State{}, fmt.Errorf("mines: cannot place first token: %w", err)
	}
	st.Token = token
	return st, nil
}

// Step advances a running state by one tick and returns the new state.
// Rendering and the end-of-tick pause are left to the caller.
//
// Order within a tick: mine collision check, viewport query, token
// collection, boundary reflection, one key poll, movement, mine timer.
func (e *Engine) Step(st State, env Env) State {
	if st.Status != StatusRunning {
		return st
	}

	// Collision ends the run with no further mutation
	if st.OnMine() {
		st.Status = StatusCollided
		return st
	}
	st.Tick++

	vp := env.Size()

	// Token collection
	if st.Ball == st.Token {
		st.Score++
		if token, err := e.placer.Place(vp, st.Occupied()); err == nil {
			st.Token = token
		}
	}

	// Reflection is per axis and based on position only, so a ball resting
	// on an edge flips again on the next tick.
	if st.Ball.Row <= 0 || st.Ball.Row >= vp.Height {
		st.Velocity.Row = -st.Velocity.Row
	}
	if st.Ball.Col <= 0 || st.Ball.Col >= vp.Width {
		st.Velocity.Col = -st.Velocity.Col
	}

	// Steering: at most one buffered key per tick
	if ev, ok := env.PollKey(); ok {
		switch ev.Action {
		case core.ActionDown:
			st.Velocity.Row += e.rules.Step
		case core.ActionUp:
			st.Velocity.Row -= e.rules.Step
		case core.ActionRight:
			st.Velocity.Col += e.rules.Step
		case core.ActionLeft:
			st.Velocity.Col -= e.rules.Step
		case core.ActionQuit:
			st.Status = StatusQuit
			return st
		}
	}

	// No speed cap
	st.Ball = st.Ball.Add(st.Velocity)

	st.MineTimer++
	if st.MineTimer >= e.rules.MineDelay {
		st.MineTimer = 0
		if len(st.Mines) < e.rules.MineMax {
			if mine, err := e.placer.Place(vp, st.Occupied()); err == nil {
				st.Mines = append(st.Mines, mine)
			}
		}
	}

	return st
}
