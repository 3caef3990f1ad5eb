package game

import (
	"fmt"
	"math"
)

// Game owns the simulation state for one play session
type Game struct {
	config Config
	canvas *Canvas
	rng    RandomSource

	// Polygon templates shared by every instance of a kind
	shipModel     []Point
	asteroidModel []Point

	ship        SpaceObject
	asteroids   []SpaceObject
	projectiles []SpaceObject

	score int
	debug DebugState
}

// NewGame creates a game with its starting field. The asteroid template is
// generated once from rng and kept across restarts.
func NewGame(config Config, rng RandomSource) *Game {
	g := &Game{
		config:    config,
		canvas:    NewCanvas(config.WorldWidth, config.WorldHeight),
		rng:       rng,
		shipModel: ShipModel(),
		asteroidModel: NewAsteroidModel(
			config.AsteroidVertices,
			config.AsteroidMinRadius,
			config.AsteroidMaxRadius,
			rng,
		),
	}
	g.reset()

	logger().Info("game started",
		"width", config.WorldWidth, "height", config.WorldHeight,
		"asteroids", len(g.asteroids))
	return g
}

// reset restores the starting ship, seed asteroids and score
func (g *Game) reset() {
	g.ship = SpaceObject{
		X:    float64(g.config.WorldWidth / 2),
		Y:    float64(g.config.WorldHeight / 2),
		Size: 1,
	}
	g.asteroids = []SpaceObject{
		{X: 20, Y: 20, DX: 16, DY: -20, Size: 16},
		{X: 100, Y: 20, DX: -8, DY: -13, Size: 16},
	}
	g.projectiles = make([]SpaceObject, 0, 16)
	g.score = 0
}

// Restart throws away the current session and starts a fresh one
func (g *Game) Restart() {
	g.reset()
	logger().Info("game restarted")
}

// Frame advances the simulation by dt seconds and renders the result
// into the canvas.
func (g *Game) Frame(in Input, dt float64) {
	if in.Restart {
		g.Restart()
	}
	if in.ToggleDebug {
		g.debug.ShowCounts = !g.debug.ShowCounts
	}

	g.canvas.Clear(g.config.BackgroundColor)

	g.applyInput(in, dt)
	g.updateAsteroids(dt)
	g.updateShip(dt)
	g.updateProjectiles(dt)
	g.drawHUD()
}

// applyInput steers the ship and fires
func (g *Game) applyInput(in Input, dt float64) {
	if in.Thrust {
		g.ship.DX += math.Sin(g.ship.Angle) * g.config.ThrustAccel * dt
		g.ship.DY += -math.Cos(g.ship.Angle) * g.config.ThrustAccel * dt
	}
	if in.TurnLeft {
		g.ship.Angle -= g.config.TurnRate * dt
	}
	if in.TurnRight {
		g.ship.Angle += g.config.TurnRate * dt
	}
	if in.Fire {
		g.Fire()
	}
}

// Fire launches a projectile from the ship along its heading
func (g *Game) Fire() {
	g.projectiles = append(g.projectiles, SpaceObject{
		X:    g.ship.X,
		Y:    g.ship.Y,
		DX:   g.config.ProjectileSpeed * math.Sin(g.ship.Angle),
		DY:   -g.config.ProjectileSpeed * math.Cos(g.ship.Angle),
		Size: 1,
	})
}

func (g *Game) updateAsteroids(dt float64) {
	w, h := g.config.WorldWidth, g.config.WorldHeight
	for i := range g.asteroids {
		a := &g.asteroids[i]
		a.Move(dt)
		a.WrapTo(w, h)
		a.Angle += g.config.AsteroidSpin * dt

		g.canvas.DrawWireframeModel(g.asteroidModel, a.X, a.Y, a.Angle, a.Size, g.config.AsteroidColor)
	}
}

func (g *Game) updateShip(dt float64) {
	g.ship.Move(dt)
	g.ship.WrapTo(g.config.WorldWidth, g.config.WorldHeight)

	g.canvas.DrawWireframeModel(g.shipModel, g.ship.X, g.ship.Y, g.ship.Angle, g.ship.Size, g.config.ShipColor)
}

func (g *Game) drawHUD() {
	g.canvas.DrawText(fmt.Sprintf("SCORE: %d", g.score), g.config.HUDX, g.config.HUDY, g.config.TextColor)
	if g.debug.ShowCounts {
		g.drawDebugOverlay()
	}
}

// Canvas returns the framebuffer the game renders into
func (g *Game) Canvas() *Canvas {
	return g.canvas
}

// Config returns the configuration the game was created with
func (g *Game) Config() Config {
	return g.config
}

// Score returns the current score
func (g *Game) Score() int {
	return g.score
}

// Ship returns the current ship state
func (g *Game) Ship() SpaceObject {
	return g.ship
}

// SetShip replaces the ship state
func (g *Game) SetShip(ship SpaceObject) {
	g.ship = ship
}

// Asteroids returns a copy of the live asteroids in scan order
func (g *Game) Asteroids() []SpaceObject {
	return append([]SpaceObject(nil), g.asteroids...)
}

// Projectiles returns a copy of the live projectiles
func (g *Game) Projectiles() []SpaceObject {
	return append([]SpaceObject(nil), g.projectiles...)
}

// SetAsteroids replaces the live asteroid set
func (g *Game) SetAsteroids(asteroids []SpaceObject) {
	g.asteroids = append(g.asteroids[:0], asteroids...)
}

// SpawnProjectile adds a projectile with an arbitrary motion state
func (g *Game) SpawnProjectile(p SpaceObject) {
	g.projectiles = append(g.projectiles, p)
}
