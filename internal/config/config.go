// Package config provides YAML-based game configuration loading for Mines.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// MinesConfig contains all configuration for the Mines game.
type MinesConfig struct {
	Speed  SpeedConfig `yaml:"speed"`
	Mines  MineConfig  `yaml:"mines"`
	Ball   BallConfig  `yaml:"ball"`
	Glyphs GlyphConfig `yaml:"glyphs"`
	Keys   KeyConfig   `yaml:"keys"`
}

// SpeedConfig defines the speed menu presets and custom entry limits.
type SpeedConfig struct {
	SlowDelayUS  int `yaml:"slow_delay_us"`
	FastDelayUS  int `yaml:"fast_delay_us"`
	CustomBuffer int `yaml:"custom_buffer"`
}

// MineConfig defines the mine spawn cadence and capacity.
type MineConfig struct {
	DelayTicks int `yaml:"delay_ticks"`
	Max        int `yaml:"max"`
}

// BallConfig defines the ball's start position and steering step.
type BallConfig struct {
	Start [2]int `yaml:"start"` // (row, col)
	Step  int    `yaml:"step"`
}

// GlyphConfig defines the single characters drawn for game objects.
type GlyphConfig struct {
	Ball  string `yaml:"ball"`
	Mine  string `yaml:"mine"`
	Token string `yaml:"token"`
}

// KeyConfig lists key names bound to each action.
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Confirm []string `yaml:"confirm"`
	Quit    []string `yaml:"quit"`
	Delete  []string `yaml:"delete"`
}

// SlowDelay returns the tick delay of the "Slow" preset.
func (s SpeedConfig) SlowDelay() time.Duration {
	return time.Duration(s.SlowDelayUS) * time.Microsecond
}

// FastDelay returns the tick delay of the "Fast" preset.
func (s SpeedConfig) FastDelay() time.Duration {
	return time.Duration(s.FastDelayUS) * time.Microsecond
}

// StartPoint returns the ball's start position.
func (b BallConfig) StartPoint() core.Point {
	return core.Point{Row: b.Start[0], Col: b.Start[1]}
}

// Runes returns the ball, mine and token glyphs as runes.
func (g GlyphConfig) Runes() (ball, mine, token rune) {
	ball, _ = utf8.DecodeRuneInString(g.Ball)
	mine, _ = utf8.DecodeRuneInString(g.Mine)
	token, _ = utf8.DecodeRuneInString(g.Token)
	return ball, mine, token
}

// KeyMap builds the key name -> action table for the backends.
// Validate rejects a name listed under several actions.
func (k KeyConfig) KeyMap() core.KeyMap {
	km := make(core.KeyMap)
	bind := func(names []string, a core.Action) {
		for _, n := range names {
			km[n] = a
		}
	}
	bind(k.Up, core.ActionUp)
	bind(k.Down, core.ActionDown)
	bind(k.Left, core.ActionLeft)
	bind(k.Right, core.ActionRight)
	bind(k.Confirm, core.ActionConfirm)
	bind(k.Quit, core.ActionQuit)
	bind(k.Delete, core.ActionDelete)
	return km
}

// Validate checks that every value is usable by the game.
func (c MinesConfig) Validate() error {
	switch {
	case c.Speed.SlowDelayUS < 0:
		return fmt.Errorf("%w: speed.slow_delay_us must be >= 0, got %d", ErrInvalid, c.Speed.SlowDelayUS)
	case c.Speed.FastDelayUS < 0:
		return fmt.Errorf("%w: speed.fast_delay_us must be >= 0, got %d", ErrInvalid, c.Speed.FastDelayUS)
	case c.Speed.CustomBuffer <= 0:
		return fmt.Errorf("%w: speed.custom_buffer must be > 0, got %d", ErrInvalid, c.Speed.CustomBuffer)
	case c.Speed.CustomBuffer > 18:
		// More digits could overflow a 64-bit microsecond count.
		return fmt.Errorf("%w: speed.custom_buffer must be <= 18, got %d", ErrInvalid, c.Speed.CustomBuffer)
	case c.Mines.DelayTicks <= 0:
		return fmt.Errorf("%w: mines.delay_ticks must be > 0, got %d", ErrInvalid, c.Mines.DelayTicks)
	case c.Mines.Max < 0:
		return fmt.Errorf("%w: mines.max must be >= 0, got %d", ErrInvalid, c.Mines.Max)
	case c.Ball.Step <= 0:
		return fmt.Errorf("%w: ball.step must be > 0, got %d", ErrInvalid, c.Ball.Step)
	}

	for name, glyph := range map[string]string{
		"ball":  c.Glyphs.Ball,
		"mine":  c.Glyphs.Mine,
		"token": c.Glyphs.Token,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%w: glyphs.%s must be exactly one character, got %q", ErrInvalid, name, glyph)
		}
	}

	if len(c.Keys.Quit) == 0 {
		return fmt.Errorf("%w: keys.quit must bind at least one key", ErrInvalid)
	}
	if len(c.Keys.Confirm) == 0 {
		return fmt.Errorf("%w: keys.confirm must bind at least one key", ErrInvalid)
	}

	bound := make(map[string]string)
	for _, group := range []struct {
		action string
		names  []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"confirm", c.Keys.Confirm},
		{"quit", c.Keys.Quit},
		{"delete", c.Keys.Delete},
	} {
		for _, name := range group.names {
			if prev, ok := bound[name]; ok && prev != group.action {
				return fmt.Errorf("%w: key %q is bound to both keys.%s and keys.%s", ErrInvalid, name, prev, group.action)
			}
			bound[name] = group.action
		}
	}
	return nil
}
