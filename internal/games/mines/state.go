package mines

import (
	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Status is the engine's state machine position.
type Status int

const (
	StatusRunning  Status = iota
	StatusCollided        // ball landed on a mine
	StatusQuit            // player pressed quit during the loop
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCollided:
		return "collided"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Rules holds the fixed parameters of one run.
type Rules struct {
	Start     core.Point
	Step      int // velocity change per key press
	MineDelay int // ticks between mine spawns
	MineMax   int // mine capacity

	BallGlyph  rune
	MineGlyph  rune
	TokenGlyph rune
}

// RulesFromConfig extracts the engine rules from a loaded configuration.
func RulesFromConfig(cfg config.MinesConfig) Rules {
	ball, mine, token := cfg.Glyphs.Runes()
	return Rules{
		Start:      cfg.Ball.StartPoint(),
		Step:       cfg.Ball.Step,
		MineDelay:  cfg.Mines.DelayTicks,
		MineMax:    cfg.Mines.Max,
		BallGlyph:  ball,
		MineGlyph:  mine,
		TokenGlyph: token,
	}
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultMinesConfig())
}

// State is the complete simulation state of one run.
// It is passed by value into Engine.Step and returned updated; the caller
// must drop the old value since the mine slice may be shared.
type State struct {
	Tick      uint64
	Ball      core.Point
	Velocity  core.Point // (row-delta, col-delta) per tick
	Mines     []core.Point
	Token     core.Point
	Score     int
	MineTimer int // ticks since the last spawn, in [0, MineDelay)
	Status    Status
}

// OnMine reports whether the ball shares a cell with any mine.
func (s State) OnMine() bool {
	for _, m := range s.Mines {
		if m == s.Ball {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells held by the ball, the token and every mine.
func (s State) Occupied() PointSet {
	set := make(PointSet, len(s.Mines)+2)
	set[s.Ball] = struct{}{}
	set[s.Token] = struct{}{}
	for _, m := range s.Mines {
		set[m] = struct{}{}
	}
	return set
}
