package tetris

import "time"

// Tick identifies one armed timer. Gen tells a live tick from a stale one.
type Tick struct {
	Gen      uint64
	Interval time.Duration
}

// Scheduler tracks the automatic fall timer. It does not own a clock: platforms
// arm a real timer for each Tick it hands out and report back through Fire.
// Any change of interval or a pause invalidates outstanding ticks, so resuming
// always waits a full fresh interval.
type Scheduler struct {
	gen      uint64
	interval time.Duration
	armed    bool
}

// Sync reconciles the timer with the engine. It returns the tick to arm when
// the timer must start again: after a fired tick, on resume, and when the
// interval changed.
func (s *Scheduler) Sync(running bool, interval time.Duration) (Tick, bool) {
	if !running {
		if s.armed {
			s.armed = false
			s.gen++
		}
		return Tick{}, false
	}

	if s.armed && interval == s.interval {
		return Tick{}, false
	}

	s.gen++
	s.armed = true
	s.interval = interval
	return Tick{Gen: s.gen, Interval: interval}, true
}

// Fire reports whether t is the live tick and consumes it.
func (s *Scheduler) Fire(t Tick) bool {
	if !s.armed || t.Gen != s.gen {
		return false
	}
	s.armed = false
	return true
}

// Armed reports whether a tick is outstanding.
func (s *Scheduler) Armed() bool {
	return s.armed
}
