package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the default Mines configuration.
// It mirrors defaults/mines.yaml and is used when the embedded file fails to parse.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Speed: SpeedConfig{
			SlowDelayUS:  100000,
			FastDelayUS:  30000,
			CustomBuffer: 16,
		},
		Mines: MineConfig{
			DelayTicks: 10,
			Max:        1000,
		},
		Ball: BallConfig{
			Start: [2]int{1, 1},
			Step:  1,
		},
		Glyphs: GlyphConfig{
			Ball:  "o",
			Mine:  "*",
			Token: "@",
		},
		Keys: KeyConfig{
			Up:      []string{"k", "up"},
			Down:    []string{"j", "down"},
			Left:    []string{"h", "left"},
			Right:   []string{"l", "right"},
			Confirm: []string{"enter"},
			Quit:    []string{"q", "ctrl+c"},
			Delete:  []string{"x", "backspace"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
