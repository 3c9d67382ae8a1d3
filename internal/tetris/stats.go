package tetris

// Stats counts locked pieces and clears over one game. Subscribe Observe to
// an engine to keep it current; a reset starts the count over.
type Stats struct {
	Pieces [len(catalog)]int // indexed by Tag-1
	Clears [5]int            // placements by rows cleared, 0..4
}

// Observe is an Observer.
func (s *Stats) Observe(ev Event, _ Snapshot) {
	switch ev.Kind {
	case EventReset:
		*s = Stats{}
	case EventPlaced, EventGameOver:
		if ev.Piece != TagNone && int(ev.Piece) <= len(s.Pieces) {
			s.Pieces[ev.Piece-1]++
		}
		if ev.Lines >= 0 && ev.Lines < len(s.Clears) {
			s.Clears[ev.Lines]++
		}
	}
}

// Count returns how many pieces of the given kind locked.
func (s *Stats) Count(t Tag) int {
	if t == TagNone || int(t) > len(s.Pieces) {
		return 0
	}
	return s.Pieces[t-1]
}

// Total returns the number of locked pieces.
func (s *Stats) Total() int {
	n := 0
	for _, c := range s.Pieces {
		n += c
	}
	return n
}
