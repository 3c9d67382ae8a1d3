// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunable settings of the game.
// Board dimensions are deliberately absent: the board is always 10x20.
type TetrisConfig struct {
	Speed      SpeedConfig   `yaml:"speed"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Randomizer string        `yaml:"randomizer"` // "uniform" or "bag"
	Sound      bool          `yaml:"sound"`
	Keys       KeyBindings   `yaml:"keys"`
}

// SpeedConfig defines the fall interval curve.
type SpeedConfig struct {
	InitialIntervalMS int     `yaml:"initial_interval_ms"`
	Factor            float64 `yaml:"factor"`          // Interval multiplier per level gained
	MinIntervalMS     int     `yaml:"min_interval_ms"` // Floor for the interval
}

// ScoringConfig defines line-clear rewards and level pacing.
type ScoringConfig struct {
	BasePoints    []int `yaml:"base_points"` // Indexed by rows cleared in one placement
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// KeyBindings lists terminal key names per command, in bubbletea notation.
type KeyBindings struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	SoftDrop []string `yaml:"soft_drop"`
	HardDrop []string `yaml:"hard_drop"`
	Rotate   []string `yaml:"rotate"`
	Pause    []string `yaml:"pause"`
	Restart  []string `yaml:"restart"`
	Quit     []string `yaml:"quit"`
	Help     []string `yaml:"help"`
}

// InitialInterval returns the starting fall interval.
func (s SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(s.InitialIntervalMS) * time.Millisecond
}

// MinInterval returns the fall interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// Validate reports settings the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Speed.InitialIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial_interval_ms must be positive, got %d", c.Speed.InitialIntervalMS))
	}
	if c.Speed.MinIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_interval_ms must be positive, got %d", c.Speed.MinIntervalMS))
	}
	if c.Speed.MinIntervalMS > c.Speed.InitialIntervalMS {
		errs = append(errs, errors.New("speed.min_interval_ms must not exceed speed.initial_interval_ms"))
	}
	if c.Speed.Factor <= 0 || c.Speed.Factor > 1 {
		errs = append(errs, fmt.Errorf("speed.factor must be in (0, 1], got %g", c.Speed.Factor))
	}
	if len(c.Scoring.BasePoints) != 5 {
		errs = append(errs, fmt.Errorf("scoring.base_points needs 5 entries (0-4 rows), got %d", len(c.Scoring.BasePoints)))
	}
	for i, p := range c.Scoring.BasePoints {
		if p < 0 {
			errs = append(errs, fmt.Errorf("scoring.base_points[%d] must not be negative", i))
		}
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	return errors.Join(errs...)
}
