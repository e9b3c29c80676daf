package hexmath

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle maps any radian value into the canonical range (-Pi, Pi].
// The double-offset modulo handles negative inputs, which math.Mod
// would otherwise leave on the wrong side of zero.
func WrapAngle(v float64) float64 {
	w := math.Mod(v+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}
