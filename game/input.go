package game

import "time"

// Input holds the control intents for one frame.
// Thrust and the turn flags are held state; Fire, Restart and ToggleDebug
// are edge-triggered by the display and true for a single frame per press.
type Input struct {
	Thrust      bool
	TurnLeft    bool
	TurnRight   bool
	Fire        bool
	Restart     bool
	ToggleDebug bool
	Exit        bool
}

// Display presents finished frames and reports player input
type Display interface {
	// Size returns the framebuffer dimensions the display was opened with
	Size() (width, height int)

	// Poll returns the input state for the next frame
	Poll() Input

	// Present shows a row-major packed-RGB buffer, blocking until the next
	// frame may be produced
	Present(buffer []uint32) error
}

// Clock reports the time elapsed since the previous query
type Clock interface {
	// Elapsed returns seconds since the last call
	Elapsed() float64
}

// WallClock is a monotonic Clock that caps each delta
type WallClock struct {
	last     time.Time
	maxDelta float64
	now      func() time.Time
}

// NewWallClock creates a clock starting now; deltas above maxDelta seconds
// are clamped to maxDelta.
func NewWallClock(maxDelta float64) *WallClock {
	return &WallClock{
		last:     time.Now(),
		maxDelta: maxDelta,
		now:      time.Now,
	}
}

// Elapsed returns seconds since the previous call
func (c *WallClock) Elapsed() float64 {
	now := c.now()
	delta := now.Sub(c.last).Seconds()
	c.last = now

	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	if delta < 0 {
		delta = 0
	}
	return delta
}
