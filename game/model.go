package game

import "math"

// ShipModel returns the ship's triangle, nose pointing up (-y)
func ShipModel() []Point {
	return []Point{
		{X: 0, Y: -5},
		{X: -2.5, Y: 2.5},
		{X: 2.5, Y: 2.5},
	}
}

// NewAsteroidModel generates a jagged unit circle with verts vertices whose
// radii are drawn uniformly from [minRadius, maxRadius).
func NewAsteroidModel(verts int, minRadius, maxRadius float64, rng RandomSource) []Point {
	points := make([]Point, 0, verts)
	for i := 0; i < verts; i++ {
		radius := rng.Float64Range(minRadius, maxRadius)
		a := float64(i) / float64(verts) * fullTurn
		points = append(points, Point{
			X: radius * math.Sin(a),
			Y: radius * math.Cos(a),
		})
	}
	return points
}
