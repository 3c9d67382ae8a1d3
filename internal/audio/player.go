package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues onto the default audio device.
// A Player that was never started is silent, so callers can wire it
// unconditionally and only Start it when sound is enabled.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	started bool
}

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Start opens the audio device. Safe to call more than once.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play queues cues to sound one after another.
func (p *Player) Play(cues ...Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || len(cues) == 0 {
		return
	}
	speaker.Lock()
	p.enqueue(cues)
	speaker.Unlock()
}

// enqueue adds the cue sequence to the mixer. The caller holds the speaker
// lock when the device is running.
func (p *Player) enqueue(cues []Cue) {
	streams := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		if s := Streamer(c, sampleRate); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) > 0 {
		p.mixer.Add(beep.Seq(streams...))
	}
}

// Observe is a tetris.Observer that plays the cues for each event.
func (p *Player) Observe(ev tetris.Event, _ tetris.Snapshot) {
	p.Play(CuesFor(ev)...)
}

// Close silences pending cues and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}
