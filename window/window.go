// Package window presents the game in a desktop window using ebiten.
package window

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"vectoroids/game"
)

// Window adapts a game.Game to ebiten's Update/Draw/Layout loop
type Window struct {
	game   *game.Game
	clock  game.Clock
	meter  *game.FPSMeter
	log    *slog.Logger
	pixels []byte
}

// New creates a window adapter for g, timing frames with clk
func New(g *game.Game, clk game.Clock, log *slog.Logger) *Window {
	if log == nil {
		log = slog.Default()
	}
	return &Window{
		game:  g,
		clock: clk,
		meter: game.NewFPSMeter(0.5, 45),
		log:   log,
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// An error means the display could not be created.
func Run(g *game.Game, clk game.Clock, title string, log *slog.Logger) error {
	cfg := g.Config()

	ebiten.SetWindowSize(cfg.ScreenWidth(), cfg.ScreenHeight())
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)
	ebiten.SetTPS(int(time.Second / cfg.FrameInterval))

	return ebiten.RunGame(New(g, clk, log))
}

// Update advances the game by one frame
func (w *Window) Update() error {
	in := pollInput()
	if in.Exit {
		return ebiten.Termination
	}

	dt := w.clock.Elapsed()
	w.game.Frame(in, dt)

	if w.meter.Tick(dt) {
		w.log.Warn("frame rate drop", "fps", w.meter.FPS())
	}
	return nil
}

// Draw uploads the finished framebuffer
func (w *Window) Draw(screen *ebiten.Image) {
	w.pixels = w.game.Canvas().RGBA(w.pixels)
	screen.WritePixels(w.pixels)
}

// Layout returns the world size; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := w.game.Config()
	return cfg.WorldWidth, cfg.WorldHeight
}

// pollInput reads held keys for steering and just-pressed keys for actions
func pollInput() game.Input {
	return game.Input{
		Thrust:      anyPressed(ebiten.KeyW, ebiten.KeyK, ebiten.KeyArrowUp),
		TurnLeft:    anyPressed(ebiten.KeyA, ebiten.KeyH, ebiten.KeyArrowLeft),
		TurnRight:   anyPressed(ebiten.KeyD, ebiten.KeyL, ebiten.KeyArrowRight),
		Fire:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		Exit:        ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
