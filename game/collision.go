package game

import "math"

// Split returns the children of a destroyed asteroid: none when its size
// does not exceed the split threshold, otherwise two half-size asteroids at
// the parent's position with independent random headings.
func Split(parent SpaceObject, cfg Config, rng RandomSource) []SpaceObject {
	if parent.Size <= cfg.SplitThreshold {
		return nil
	}

	children := make([]SpaceObject, 0, 2)
	for i := 0; i < 2; i++ {
		angle := rng.Float64Range(0, fullTurn)
		children = append(children, SpaceObject{
			X:     parent.X,
			Y:     parent.Y,
			DX:    cfg.ChildSpeed * math.Sin(angle),
			DY:    cfg.ChildSpeed * math.Cos(angle),
			Size:  parent.Size / 2,
			Angle: angle,
		})
	}
	return children
}

// strike resolves one projectile against the live asteroids. Only the first
// asteroid in scan order containing the projectile is destroyed; its
// children join the set after the scan so the same projectile cannot hit
// them. Reports whether the projectile scored.
func (g *Game) strike(p SpaceObject) bool {
	hit := -1
	for i, a := range g.asteroids {
		if a.Contains(p.X, p.Y) {
			hit = i
			break
		}
	}
	if hit < 0 {
		return false
	}

	parent := g.asteroids[hit]
	g.asteroids = append(g.asteroids[:hit], g.asteroids[hit+1:]...)
	g.score += g.config.ScorePerKill

	children := Split(parent, g.config, g.rng)
	g.asteroids = append(g.asteroids, children...)

	logger().Debug("asteroid destroyed",
		"x", parent.X, "y", parent.Y, "size", parent.Size,
		"children", len(children), "score", g.score)
	return true
}

// updateProjectiles moves, draws and culls projectiles. The slice is
// rebuilt in place: every projectile present at the start is visited once
// and kept only if it neither scored nor left the world.
func (g *Game) updateProjectiles(dt float64) {
	w, h := g.config.WorldWidth, g.config.WorldHeight

	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Move(dt)
		g.canvas.Draw(p.X, p.Y, g.config.ProjectileColor)

		scored := g.strike(p)
		if scored || p.Outside(w, h) {
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
}
