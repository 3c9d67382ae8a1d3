package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It mirrors defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Speed: SpeedConfig{
			InitialIntervalMS: 800,
			Factor:            0.8,
			MinIntervalMS:     100,
		},
		Scoring: ScoringConfig{
			BasePoints:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
		Randomizer: "uniform",
		Sound:      false,
		Keys:       DefaultKeyBindings(),
	}
}

// DefaultKeyBindings returns the key layout of the original game:
// arrows move and drop, space rotates.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:     []string{"left", "h"},
		Right:    []string{"right", "l"},
		SoftDrop: []string{"down", "j"},
		HardDrop: []string{"up"},
		Rotate:   []string{" ", "x", "k"},
		Pause:    []string{"p", "esc"},
		Restart:  []string{"r"},
		Quit:     []string{"q", "ctrl+c"},
		Help:     []string{"?"},
	}
}
