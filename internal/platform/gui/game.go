// Package gui runs the game engine in a desktop window.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Window layout in pixels.
const (
	CellSize     = 28
	margin       = 16
	wellX        = margin
	wellY        = margin
	wellW        = tetris.BoardWidth * CellSize
	wellH        = tetris.BoardHeight * CellSize
	sideX        = wellX + wellW + margin
	ScreenWidth  = sideX + 6*CellSize
	ScreenHeight = wellY + wellH + margin
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	gridColor       = color.RGBA{44, 44, 56, 255}
	ghostColor      = color.RGBA{120, 120, 140, 255}
	overlayColor    = color.RGBA{0, 0, 0, 180}
)

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {230, 57, 70, 255},
	core.ColorGreen:   {87, 204, 99, 255},
	core.ColorYellow:  {247, 211, 60, 255},
	core.ColorBlue:    {56, 102, 230, 255},
	core.ColorMagenta: {168, 80, 212, 255},
	core.ColorCyan:    {72, 214, 230, 255},
	core.ColorOrange:  {245, 143, 41, 255},
	core.ColorWhite:   {240, 240, 240, 255},
	core.ColorGray:    {140, 140, 150, 255},
}

// Options configures a window session.
type Options struct {
	Keys   config.KeyBindings
	Logger *log.Logger // nil discards
	Scale  int         // window scale factor, 1 when unset
}

// Game implements ebiten.Game around an engine.
// Ebiten calls Update and Draw from one goroutine, which makes it the single
// owner of the engine.
type Game struct {
	engine   *tetris.Engine
	sched    tetris.Scheduler
	pending  tetris.Tick
	deadline time.Time
	bindings []binding
	logger   *log.Logger
	now      func() time.Time
}

// NewGame creates a window game driving the engine.
func NewGame(engine *tetris.Engine, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		engine:   engine,
		bindings: bindingsFor(opts.Keys),
		logger:   logger,
		now:      time.Now,
	}
}

// Update handles input and the fall timer once per frame.
func (g *Game) Update() error {
	for _, b := range g.bindings {
		if !shouldFire(inpututil.KeyPressDuration(b.key), b.repeat) {
			continue
		}
		if b.action == core.ActionQuit {
			g.logger.Debug("quit requested")
			return ebiten.Termination
		}
		if !g.engine.Dispatch(b.action) {
			g.logger.Debug("input rejected", "action", b.action, "state", g.engine.State())
		}
	}

	g.step(g.now())
	return nil
}

// step re-arms the timer when needed and fires it once its deadline passed.
func (g *Game) step(now time.Time) {
	g.sync(now)
	if !g.sched.Armed() || now.Before(g.deadline) {
		return
	}
	if g.sched.Fire(g.pending) {
		g.engine.Tick()
	}
	g.sync(now)
}

func (g *Game) sync(now time.Time) {
	if t, ok := g.sched.Sync(g.engine.Running(), g.engine.Interval()); ok {
		g.pending = t
		g.deadline = now.Add(t.Interval)
	}
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.Snapshot()
	screen.Fill(backgroundColor)

	vector.DrawFilledRect(screen, wellX, wellY, wellW, wellH, wellColor, false)
	for y := range tetris.BoardHeight {
		for x := range tetris.BoardWidth {
			px, py := cellOrigin(x, y)
			vector.StrokeRect(screen, px, py, CellSize, CellSize, 1, gridColor, false)
		}
	}

	if !snap.GameOver() {
		for _, c := range snap.Ghost.Cells() {
			if tetris.InBounds(c.X, c.Y) {
				px, py := cellOrigin(c.X, c.Y)
				vector.StrokeRect(screen, px+2, py+2, CellSize-4, CellSize-4, 2, ghostColor, false)
			}
		}
	}

	comp := snap.Composite()
	for y := range tetris.BoardHeight {
		for x := range tetris.BoardWidth {
			if t := comp.Cell(x, y); t != tetris.TagNone {
				drawBlock(screen, wellX+float32(x*CellSize), wellY+float32(y*CellSize), t)
			}
		}
	}

	g.drawSide(screen, snap)

	switch {
	case snap.GameOver():
		drawOverlay(screen, fmt.Sprintf("GAME OVER\n\nscore %d\n\nR to restart", snap.Score))
	case snap.Paused():
		drawOverlay(screen, "PAUSED\n\nP to resume")
	}
}

func (g *Game) drawSide(screen *ebiten.Image, snap tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "NEXT", sideX, wellY)
	for _, c := range snap.Next.Shape.Cells() {
		drawBlock(screen, float32(sideX+c.X*CellSize), float32(wellY+20+c.Y*CellSize), snap.Next.Tag)
	}

	hud := fmt.Sprintf("SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d\n\nSPEED\n%dms",
		snap.Score, snap.Level, snap.Lines, snap.Interval.Milliseconds())
	ebitenutil.DebugPrintAt(screen, hud, sideX, wellY+4*CellSize)
}

func cellOrigin(x, y int) (float32, float32) {
	return wellX + float32(x*CellSize), wellY + float32(y*CellSize)
}

func drawBlock(screen *ebiten.Image, px, py float32, t tetris.Tag) {
	c, ok := palette[t.Color()]
	if !ok {
		c = palette[core.ColorWhite]
	}
	vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, c, false)
}

func drawOverlay(screen *ebiten.Image, msg string) {
	vector.DrawFilledRect(screen, wellX, wellY+wellH/3, wellW, wellH/3, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, msg, wellX+wellW/2-40, wellY+wellH/3+CellSize)
}

// Layout keeps a fixed logical size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed or the quit key is pressed.
func Run(engine *tetris.Engine, opts Options) error {
	scale := max(opts.Scale, 1)
	ebiten.SetWindowSize(ScreenWidth*scale, ScreenHeight*scale)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(engine, opts)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
