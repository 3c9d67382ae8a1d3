package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// namedKeys translates terminal key names to window keys.
var namedKeys = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	" ":         ebiten.KeySpace,
	"space":     ebiten.KeySpace,
	"esc":       ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
}

var letterKeys = [26]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [10]ebiten.Key{ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// keysFor converts configured key names to window keys. Names with no
// window equivalent, such as ctrl+c, are skipped.
func keysFor(names []string) []ebiten.Key {
	var keys []ebiten.Key
	for _, n := range names {
		if k, ok := namedKeys[n]; ok {
			keys = append(keys, k)
			continue
		}
		if len(n) != 1 {
			continue
		}
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			keys = append(keys, letterKeys[c-'a'])
		case c >= '0' && c <= '9':
			keys = append(keys, digitKeys[c-'0'])
		}
	}
	return keys
}

// binding pairs a window key with the action it triggers.
type binding struct {
	key    ebiten.Key
	action core.Action
	repeat bool // fires again while held
}

// bindingsFor builds the window key table from the configured bindings.
func bindingsFor(kb config.KeyBindings) []binding {
	groups := []struct {
		names  []string
		action core.Action
		repeat bool
	}{
		{kb.Left, core.ActionLeft, true},
		{kb.Right, core.ActionRight, true},
		{kb.SoftDrop, core.ActionSoftDrop, true},
		{kb.HardDrop, core.ActionHardDrop, false},
		{kb.Rotate, core.ActionRotate, false},
		{kb.Pause, core.ActionPause, false},
		{kb.Restart, core.ActionRestart, false},
		{kb.Quit, core.ActionQuit, false},
	}

	var out []binding
	for _, g := range groups {
		for _, k := range keysFor(g.names) {
			out = append(out, binding{key: k, action: g.action, repeat: g.repeat})
		}
	}
	return out
}

// Key repeat timing, in frames at 60 TPS.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

// shouldFire reports whether a key held for d frames triggers this frame.
func shouldFire(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
