package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind tells observers what an operation did.
type EventKind int

const (
	EventMoved    EventKind = iota // shifted sideways
	EventRotated                   // rotation accepted
	EventDropped                   // advanced one row without locking
	EventPlaced                    // locked into the board
	EventGameOver                  // locked at the top; the game ended
	EventPaused
	EventResumed
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventRotated:
		return "rotated"
	case EventDropped:
		return "dropped"
	case EventPlaced:
		return "placed"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event describes one state change. Piece, Lines, Points and LevelUp are only
// set for EventPlaced and EventGameOver.
type Event struct {
	Kind    EventKind
	Piece   Tag // the piece that locked
	Lines   int
	Points  int
	LevelUp bool
}

// Observer is notified after every operation that changed the engine state.
type Observer func(Event, Snapshot)

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes piece generation deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRules replaces the default scoring and speed rules.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		e.rules = r
	}
}

// WithRandomizer selects a registered randomizer by name.
func WithRandomizer(name string) Option {
	return func(e *Engine) {
		e.randomizerName = name
	}
}

type subscription struct {
	id int
	fn Observer
}

// Engine owns the whole game state. Methods are the only mutation path.
// It is not safe for concurrent use: one loop (the UI) drives it.
type Engine struct {
	rules          Rules
	rng            *rand.Rand
	randomizerName string
	randomizer     registry.Randomizer

	board    Board
	active   Piece
	next     Piece
	score    int
	level    int
	lines    int
	interval time.Duration
	state    State

	observers []subscription
	nextSubID int
}

// New creates an engine and starts a fresh game.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		rules:          DefaultRules(),
		randomizerName: DefaultRandomizer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !registry.Exists(e.randomizerName) {
		return nil, fmt.Errorf("tetris: unknown randomizer %q", e.randomizerName)
	}

	e.reset()
	return e, nil
}

// Subscribe registers an observer and returns a function that removes it.
func (e *Engine) Subscribe(fn Observer) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.observers = append(e.observers, subscription{id: id, fn: fn})
	return func() {
		// Build a fresh slice: notify may be ranging over the old one.
		kept := make([]subscription, 0, len(e.observers))
		for _, s := range e.observers {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		e.observers = kept
	}
}

// notify calls the observers registered when the event fired, even if one of
// them subscribes or unsubscribes along the way.
func (e *Engine) notify(ev Event) {
	if len(e.observers) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, s := range e.observers {
		s.fn(ev, snap)
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Running reports whether gameplay operations are currently accepted.
func (e *Engine) Running() bool {
	return e.state == StateRunning
}

// Interval returns the current fall interval.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level.
func (e *Engine) Level() int {
	return e.level
}

// Dispatch routes an input command to the matching operation.
// Actions that are not gameplay commands are ignored and report false.
func (e *Engine) Dispatch(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return e.MoveHorizontal(-1)
	case core.ActionRight:
		return e.MoveHorizontal(1)
	case core.ActionSoftDrop:
		return e.SoftDrop()
	case core.ActionHardDrop:
		return e.HardDrop()
	case core.ActionRotate:
		return e.Rotate()
	case core.ActionPause:
		return e.TogglePause()
	case core.ActionRestart:
		e.Reset()
		return true
	default:
		return false
	}
}

// MoveHorizontal shifts the active piece dx columns, one column at a time,
// stopping at the first column that collides. Reports whether the piece moved.
func (e *Engine) MoveHorizontal(dx int) bool {
	if e.state != StateRunning || dx == 0 {
		return false
	}

	step := core.Sign(dx)
	moved := false
	for range core.Abs(dx) {
		candidate := e.active.Moved(step, 0)
		if Collides(candidate.Shape, candidate.Pos, &e.board) {
			break
		}
		e.active = candidate
		moved = true
	}

	if moved {
		e.notify(Event{Kind: EventMoved})
	}
	return moved
}

// SoftDrop advances the active piece one row, or places it when it cannot move.
func (e *Engine) SoftDrop() bool {
	if e.state != StateRunning {
		return false
	}

	candidate := e.active.Moved(0, 1)
	if !Collides(candidate.Shape, candidate.Pos, &e.board) {
		e.active = candidate
		e.notify(Event{Kind: EventDropped})
		return true
	}

	e.notify(e.place())
	return true
}

// Tick is the scheduler's advance operation; it is a soft drop.
func (e *Engine) Tick() bool {
	return e.SoftDrop()
}

// Rotate turns the active piece clockwise. Rotations that collide are rejected;
// no alternative offsets are tried.
func (e *Engine) Rotate() bool {
	if e.state != StateRunning {
		return false
	}

	candidate := e.active.Rotated()
	if Collides(candidate.Shape, candidate.Pos, &e.board) {
		return false
	}

	e.active = candidate
	e.notify(Event{Kind: EventRotated})
	return true
}

// HardDrop moves the active piece to the lowest legal row and places it.
func (e *Engine) HardDrop() bool {
	if e.state != StateRunning {
		return false
	}

	e.active = e.dropTarget()
	e.notify(e.place())
	return true
}

// dropTarget returns the active piece moved down as far as it legally goes.
func (e *Engine) dropTarget() Piece {
	dropped := e.active
	for {
		candidate := dropped.Moved(0, 1)
		if Collides(candidate.Shape, candidate.Pos, &e.board) {
			return dropped
		}
		dropped = candidate
	}
}

// TogglePause switches between running and paused. It does nothing after game over.
func (e *Engine) TogglePause() bool {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
		e.notify(Event{Kind: EventPaused})
		return true
	case StatePaused:
		e.state = StateRunning
		e.notify(Event{Kind: EventResumed})
		return true
	default:
		return false
	}
}

// Reset starts a new game from any state.
func (e *Engine) Reset() {
	e.reset()
	e.notify(Event{Kind: EventReset})
}

func (e *Engine) reset() {
	// Factory existence is checked in New.
	e.randomizer, _ = registry.Create(e.randomizerName, e.rng, len(catalog))
	e.board = Board{}
	e.active = e.spawn()
	e.next = e.spawn()
	e.score = 0
	e.level = 1
	e.lines = 0
	e.interval = max(e.rules.InitialInterval, e.rules.MinInterval)
	e.state = StateRunning
}

func (e *Engine) spawn() Piece {
	return NewPiece(catalog[e.randomizer.Next()])
}

// place locks the active piece, clears rows, scores, promotes the next piece
// and ends the game when the lock happened at the top row or above.
func (e *Engine) place() Event {
	placed := e.active
	e.board.Place(placed)

	ev := Event{Kind: EventPlaced, Piece: placed.Tag}
	if lines := e.board.ClearLines(); lines > 0 {
		ev.Lines = lines
		ev.Points = e.rules.Points(lines, e.level)
		e.score += ev.Points
		e.lines += lines

		for target := e.rules.LevelFor(e.lines); e.level < target; e.level++ {
			e.interval = e.rules.NextInterval(e.interval)
			ev.LevelUp = true
		}
	}

	e.active = e.next
	e.next = e.spawn()

	if placed.Pos.Y <= 0 {
		e.state = StateGameOver
		ev.Kind = EventGameOver
	}
	return ev
}
