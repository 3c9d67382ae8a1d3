package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Rules holds the scoring and speed parameters of a game.
type Rules struct {
	InitialInterval time.Duration
	SpeedFactor     float64       // interval multiplier per level gained
	MinInterval     time.Duration // interval floor
	BasePoints      []int         // indexed by rows cleared in one placement
	LinesPerLevel   int
}

// DefaultRules returns the classic rules: 800ms start, x0.8 per level,
// 100/300/500/800 points, a level every 10 rows.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig builds rules from a loaded configuration.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	points := make([]int, len(cfg.Scoring.BasePoints))
	copy(points, cfg.Scoring.BasePoints)
	return Rules{
		InitialInterval: cfg.Speed.InitialInterval(),
		SpeedFactor:     cfg.Speed.Factor,
		MinInterval:     cfg.Speed.MinInterval(),
		BasePoints:      points,
		LinesPerLevel:   cfg.Scoring.LinesPerLevel,
	}
}

// Points returns the award for clearing lines rows at once on the given level.
func (r Rules) Points(lines, level int) int {
	if lines <= 0 || len(r.BasePoints) == 0 {
		return 0
	}
	idx := min(lines, len(r.BasePoints)-1)
	return r.BasePoints[idx] * level
}

// LevelFor derives the level from the lifetime number of cleared rows.
func (r Rules) LevelFor(totalLines int) int {
	if r.LinesPerLevel <= 0 {
		return 1
	}
	return totalLines/r.LinesPerLevel + 1
}

// NextInterval returns the fall interval after one level-up.
func (r Rules) NextInterval(cur time.Duration) time.Duration {
	return max(time.Duration(float64(cur)*r.SpeedFactor), r.MinInterval)
}
