package game

import (
	"math"
	"time"
)

// Config holds game configuration constants
type Config struct {
	// WorldWidth is the width of the world and framebuffer in pixels
	WorldWidth int

	// WorldHeight is the height of the world and framebuffer in pixels
	WorldHeight int

	// DisplayScale is the integer window magnification
	DisplayScale int

	// FrameInterval is the target time between presented frames
	FrameInterval time.Duration

	// MaxDelta caps the elapsed time fed into a single frame, in seconds
	MaxDelta float64

	// TurnRate is the ship rotation speed in radians per second
	TurnRate float64

	// ThrustAccel is the ship acceleration in pixels per second^2
	ThrustAccel float64

	// ProjectileSpeed is the muzzle speed in pixels per second
	ProjectileSpeed float64

	// SplitThreshold is the size an asteroid must exceed to split when destroyed
	SplitThreshold float64

	// ChildSpeed is the speed of asteroids spawned by a split
	ChildSpeed float64

	// AsteroidSpin is the asteroid rotation rate in radians per second
	AsteroidSpin float64

	// ScorePerKill is added to the score for every destroyed asteroid
	ScorePerKill int

	// AsteroidVertices is the vertex count of the asteroid template
	AsteroidVertices int

	// AsteroidMinRadius and AsteroidMaxRadius bound the per-vertex radius jitter
	AsteroidMinRadius float64
	AsteroidMaxRadius float64

	// Colors, packed 0xRRGGBB
	BackgroundColor uint32
	AsteroidColor   uint32
	ShipColor       uint32
	ProjectileColor uint32
	TextColor       uint32

	// HUDX, HUDY is the top-left of the score text
	HUDX, HUDY float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		WorldWidth:        160,
		WorldHeight:       100,
		DisplayScale:      4,
		FrameInterval:     16600 * time.Microsecond, // ~60 fps
		MaxDelta:          0.1,
		TurnRate:          5.0,
		ThrustAccel:       100.0,
		ProjectileSpeed:   100.0,
		SplitThreshold:    4.0,
		ChildSpeed:        10.0,
		AsteroidSpin:      0.5,
		ScorePerKill:      100,
		AsteroidVertices:  20,
		AsteroidMinRadius: 0.8,
		AsteroidMaxRadius: 1.2,
		BackgroundColor:   0x000000,
		AsteroidColor:     0xffff00,
		ShipColor:         0xffffff,
		ProjectileColor:   0xffffff,
		TextColor:         0xffffff,
		HUDX:              2,
		HUDY:              2,
	}
}

// ScreenWidth returns the window width in pixels
func (c Config) ScreenWidth() int {
	return c.WorldWidth * c.DisplayScale
}

// ScreenHeight returns the window height in pixels
func (c Config) ScreenHeight() int {
	return c.WorldHeight * c.DisplayScale
}

// fullTurn is one revolution in radians.
const fullTurn = 2 * math.Pi
