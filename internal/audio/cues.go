package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueTetris
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueTetris:
		return "tetris"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CuesFor picks the cues for an engine event, in play order.
// Movement and pause events are silent.
func CuesFor(ev tetris.Event) []Cue {
	var cues []Cue
	switch ev.Kind {
	case tetris.EventPlaced:
		switch {
		case ev.Lines >= 4:
			cues = append(cues, CueTetris)
		case ev.Lines > 0:
			cues = append(cues, CueClear)
		default:
			cues = append(cues, CueLock)
		}
		if ev.LevelUp {
			cues = append(cues, CueLevelUp)
		}
	case tetris.EventGameOver:
		cues = append(cues, CueGameOver)
	}
	return cues
}

// Streamer builds a fresh streamer for a cue. Streamers are single use.
func Streamer(c Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueLock:
		return newVolume(tone(110, 60*ms, WaveTriangle, rate), 0.4)
	case CueClear:
		return newVolume(beep.Seq(
			tone(523.25, 70*ms, WaveSquare, rate), // C5
			tone(659.25, 90*ms, WaveSquare, rate), // E5
		), 0.15)
	case CueTetris:
		return newVolume(beep.Seq(
			tone(523.25, 70*ms, WaveSquare, rate),
			tone(659.25, 70*ms, WaveSquare, rate),
			tone(783.99, 70*ms, WaveSquare, rate),
			tone(1046.5, 160*ms, WaveSquare, rate),
		), 0.15)
	case CueLevelUp:
		return newVolume(beep.Mix(
			tone(880, 200*ms, WaveSine, rate),
			newVolume(tone(1760, 200*ms, WaveSine, rate), 0.4),
		), 0.3)
	case CueGameOver:
		return newVolume(beep.Seq(
			tone(392, 180*ms, WaveTriangle, rate),
			tone(311.13, 180*ms, WaveTriangle, rate),
			tone(261.63, 400*ms, WaveTriangle, rate),
		), 0.4)
	default:
		return nil
	}
}
