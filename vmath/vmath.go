package vmath

import "math"

// Float64 angle constants, radians
const (
	TwoPi   = 2 * math.Pi
	Deg2Rad = math.Pi / 180
)

// --- Scalars ---

// Lerp interpolates a..b by t, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Deg converts degrees to radians
func Deg(d float64) float64 {
	return d * Deg2Rad
}

// Mod returns x modulo m in [0, m) for positive m, negative x wraps upward
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// math.Mod(-tiny, m)+m can round up to m
	if r >= m {
		r = 0
	}
	return r
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
