// pkg/utils/math.go
package utils

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ExpDecay moves from a towards b at the given rate, frame-rate independently.
func ExpDecay(a, b, rate, dt float64) float64 {
	return b + (a-b)*math.Exp(-rate*dt)
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
