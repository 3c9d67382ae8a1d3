package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only move the starting fall interval; progression is unchanged.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. An empty name means "keep the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// InitialIntervalForPreset returns the starting fall interval in milliseconds.
func InitialIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1000
	case DifficultyHard:
		return 500
	default:
		return 800
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	return fmt.Sprintf("pieces start falling every %dms", InitialIntervalForPreset(p))
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Speed.InitialIntervalMS = InitialIntervalForPreset(preset)
	if cfg.Speed.MinIntervalMS > cfg.Speed.InitialIntervalMS {
		cfg.Speed.MinIntervalMS = cfg.Speed.InitialIntervalMS
	}
}
