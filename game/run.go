package game

import (
	"errors"
	"fmt"
)

// ErrDisplaySize is returned when a display does not match the world size.
var ErrDisplaySize = errors.New("display size does not match world")

// Run drives the frame loop until the display reports an exit request.
// Each iteration reads the elapsed time, polls input, advances the game
// and presents the canvas.
func Run(d Display, clk Clock, g *Game) error {
	w, h := d.Size()
	if w != g.config.WorldWidth || h != g.config.WorldHeight {
		return fmt.Errorf("%w: display %dx%d, world %dx%d",
			ErrDisplaySize, w, h, g.config.WorldWidth, g.config.WorldHeight)
	}

	frames := 0
	for {
		dt := clk.Elapsed()
		in := d.Poll()
		if in.Exit {
			logger().Info("exit requested", "frames", frames, "score", g.score)
			return nil
		}

		g.Frame(in, dt)
		if err := d.Present(g.canvas.Buffer); err != nil {
			return fmt.Errorf("present frame %d: %w", frames, err)
		}
		frames++
	}
}
