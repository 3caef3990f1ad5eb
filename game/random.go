package game

import (
	"math/rand"
)

// RandomSource supplies uniform floats for model generation and split headings
type RandomSource interface {
	// Float64Range returns a value in [lo, hi)
	Float64Range(lo, hi float64) float64
}

// MathRand adapts *rand.Rand to RandomSource
type MathRand struct {
	r *rand.Rand
}

// NewMathRand creates a random source seeded with seed
func NewMathRand(seed int64) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

// Float64Range returns a uniform value in [lo, hi)
func (m *MathRand) Float64Range(lo, hi float64) float64 {
	return lo + m.r.Float64()*(hi-lo)
}
