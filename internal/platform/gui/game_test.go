package gui

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newTestGame(t *testing.T) (*Game, *tetris.Engine) {
	t.Helper()
	engine, err := tetris.New(tetris.WithSeed(7))
	require.NoError(t, err)
	return NewGame(engine, Options{Keys: config.DefaultKeyBindings()}), engine
}

func TestKeysFor(t *testing.T) {
	got := keysFor([]string{"left", "h", " ", "esc", "7", "ctrl+c", "?"})
	assert.Equal(t, []ebiten.Key{
		ebiten.KeyArrowLeft, ebiten.KeyH, ebiten.KeySpace, ebiten.KeyEscape, ebiten.Key7,
	}, got)
}

func TestBindingsForDefaults(t *testing.T) {
	actions := make(map[ebiten.Key]core.Action)
	for _, b := range bindingsFor(config.DefaultKeyBindings()) {
		actions[b.key] = b.action
	}

	assert.Equal(t, core.ActionLeft, actions[ebiten.KeyArrowLeft])
	assert.Equal(t, core.ActionRight, actions[ebiten.KeyL])
	assert.Equal(t, core.ActionSoftDrop, actions[ebiten.KeyArrowDown])
	assert.Equal(t, core.ActionHardDrop, actions[ebiten.KeyArrowUp])
	assert.Equal(t, core.ActionRotate, actions[ebiten.KeySpace])
	assert.Equal(t, core.ActionPause, actions[ebiten.KeyEscape])
	assert.Equal(t, core.ActionRestart, actions[ebiten.KeyR])
	assert.Equal(t, core.ActionQuit, actions[ebiten.KeyQ])
}

func TestShouldFire(t *testing.T) {
	assert.False(t, shouldFire(0, true), "not pressed")
	assert.True(t, shouldFire(1, false), "first frame")
	assert.False(t, shouldFire(2, true))
	assert.False(t, shouldFire(repeatDelay, false), "no repeat for one-shot keys")
	assert.True(t, shouldFire(repeatDelay, true))
	assert.False(t, shouldFire(repeatDelay+1, true))
	assert.True(t, shouldFire(repeatDelay+repeatInterval, true))
}

func TestStepFallsOnDeadline(t *testing.T) {
	g, engine := newTestGame(t)
	start := time.Unix(1000, 0)

	g.step(start)
	require.True(t, g.sched.Armed())
	assert.Equal(t, 0, engine.Snapshot().Active.Pos.Y)

	g.step(start.Add(799 * time.Millisecond))
	assert.Equal(t, 0, engine.Snapshot().Active.Pos.Y, "before the deadline")

	g.step(start.Add(800 * time.Millisecond))
	assert.Equal(t, 1, engine.Snapshot().Active.Pos.Y)
	assert.Equal(t, start.Add(1600*time.Millisecond), g.deadline, "re-armed from the firing frame")
}

func TestStepWaitsFullIntervalAfterResume(t *testing.T) {
	g, engine := newTestGame(t)
	start := time.Unix(1000, 0)
	g.step(start)

	engine.TogglePause()
	g.step(start.Add(700 * time.Millisecond))
	assert.False(t, g.sched.Armed())

	engine.TogglePause()
	resumed := start.Add(2 * time.Second)
	g.step(resumed)
	g.step(resumed.Add(100 * time.Millisecond))
	assert.Equal(t, 0, engine.Snapshot().Active.Pos.Y, "old deadline does not carry over")

	g.step(resumed.Add(800 * time.Millisecond))
	assert.Equal(t, 1, engine.Snapshot().Active.Pos.Y)
}

func TestLayoutIsFixed(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, ScreenWidth, w)
	assert.Equal(t, ScreenHeight, h)
}
