package game

// FPSMeter averages the frame rate over fixed sampling windows
type FPSMeter struct {
	fps      float64
	frames   int
	timer    float64
	window   float64
	lowWater float64
}

// NewFPSMeter samples every window seconds and flags rates below lowWater
func NewFPSMeter(window, lowWater float64) *FPSMeter {
	return &FPSMeter{fps: 60, window: window, lowWater: lowWater}
}

// Tick records one frame of dt seconds. It reports true once per window in
// which the average rate fell below the low-water mark.
func (m *FPSMeter) Tick(dt float64) bool {
	m.timer += dt
	m.frames++
	if m.timer < m.window {
		return false
	}

	m.fps = float64(m.frames) / m.timer
	m.frames = 0
	m.timer = 0
	return m.fps < m.lowWater
}

// FPS returns the rate measured over the last complete window
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
