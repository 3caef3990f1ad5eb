package game

import (
	"errors"
	"testing"
	"time"
)

type stubDisplay struct {
	width, height int
	inputs        []Input
	presented     int
	lastFrame     []uint32
	presentErr    error
}

func (d *stubDisplay) Size() (int, int) { return d.width, d.height }

func (d *stubDisplay) Poll() Input {
	if len(d.inputs) == 0 {
		return Input{Exit: true}
	}
	in := d.inputs[0]
	d.inputs = d.inputs[1:]
	return in
}

func (d *stubDisplay) Present(buffer []uint32) error {
	if d.presentErr != nil {
		return d.presentErr
	}
	d.presented++
	d.lastFrame = append(d.lastFrame[:0], buffer...)
	return nil
}

type fixedClock float64

func (c fixedClock) Elapsed() float64 { return float64(c) }

func TestRunPresentsUntilExit(t *testing.T) {
	g := newTestGame()
	d := &stubDisplay{
		width:  160,
		height: 100,
		inputs: []Input{{}, {Fire: true}, {}, {Exit: true}, {}},
	}

	if err := Run(d, fixedClock(1.0/60), g); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if d.presented != 3 {
		t.Fatalf("presented %d frames, want 3", d.presented)
	}
	if len(d.lastFrame) != 160*100 {
		t.Fatalf("presented buffer has %d pixels, want %d", len(d.lastFrame), 160*100)
	}
	if len(d.inputs) != 1 {
		t.Fatalf("Run polled past the exit request")
	}
	if n := len(g.Projectiles()); n != 1 {
		t.Fatalf("projectiles = %d, want 1", n)
	}
}

func TestRunPresentError(t *testing.T) {
	boom := errors.New("surface lost")
	d := &stubDisplay{width: 160, height: 100, inputs: []Input{{}}, presentErr: boom}

	err := Run(d, fixedClock(0), newTestGame())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestRunRejectsMismatchedDisplay(t *testing.T) {
	d := &stubDisplay{width: 80, height: 50}

	err := Run(d, fixedClock(0), newTestGame())
	if !errors.Is(err, ErrDisplaySize) {
		t.Fatalf("err = %v, want ErrDisplaySize", err)
	}
	if d.presented != 0 {
		t.Fatalf("presented %d frames on a mismatched display", d.presented)
	}
}

func TestWallClock(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := &WallClock{last: base, maxDelta: 0.1, now: func() time.Time { return now }}

	now = base.Add(16 * time.Millisecond)
	if got := c.Elapsed(); got != 0.016 {
		t.Fatalf("Elapsed = %v, want 0.016", got)
	}

	now = now.Add(2 * time.Second)
	if got := c.Elapsed(); got != 0.1 {
		t.Fatalf("Elapsed after stall = %v, want clamp 0.1", got)
	}

	if got := c.Elapsed(); got != 0 {
		t.Fatalf("Elapsed with no time passing = %v, want 0", got)
	}
}
