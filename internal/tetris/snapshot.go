package tetris

import "time"

// Snapshot is a read-only copy of the engine state handed to renderers.
// Pieces carry their own shapes, so writing to them leaves the engine alone.
type Snapshot struct {
	Board    Board
	Active   Piece
	Next     Piece
	Ghost    Piece // where the active piece would land
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	State    State
}

// Paused reports whether the game is paused.
func (s Snapshot) Paused() bool {
	return s.State == StatePaused
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:    e.board,
		Active:   e.active.Clone(),
		Next:     e.next.Clone(),
		Ghost:    e.dropTarget().Clone(),
		Score:    e.score,
		Level:    e.level,
		Lines:    e.lines,
		Interval: e.interval,
		State:    e.state,
	}
}

// Composite returns the board with the active piece drawn over it.
// Cells of the piece above the top edge are not visible.
func (s Snapshot) Composite() Board {
	b := s.Board
	if s.GameOver() {
		return b
	}
	b.Place(s.Active)
	return b
}
