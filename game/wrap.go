package game

// Wrap maps n back into [0, max) when it lies at most one period outside.
// Values further out are shifted by a single period only.
func Wrap(n, max float64) float64 {
	if n < 0 {
		return n + max
	}
	if n >= max {
		return n - max
	}
	return n
}
