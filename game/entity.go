package game

// SpaceObject is the motion state shared by the ship, asteroids and projectiles
type SpaceObject struct {
	// Position in world coordinates (pixels)
	X, Y float64

	// Velocity in pixels per second
	DX, DY float64

	// Collision radius and render scale
	Size float64

	// Heading in radians; only used for rendering and ship thrust
	Angle float64
}

// Move integrates the position over dt seconds
func (o *SpaceObject) Move(dt float64) {
	o.X += o.DX * dt
	o.Y += o.DY * dt
}

// WrapTo folds the position back onto a width x height torus
func (o *SpaceObject) WrapTo(width, height int) {
	o.X = Wrap(o.X, float64(width))
	o.Y = Wrap(o.Y, float64(height))
}

// Contains reports whether (px, py) lies strictly inside the object's circle.
// A point exactly on the boundary is not a hit.
func (o SpaceObject) Contains(px, py float64) bool {
	dx := o.X - px
	dy := o.Y - py
	return dx*dx+dy*dy < o.Size*o.Size
}

// Outside reports whether the position is off the [0,width] x [0,height] rectangle
func (o SpaceObject) Outside(width, height int) bool {
	return o.X < 0 || o.Y < 0 || o.X > float64(width) || o.Y > float64(height)
}
