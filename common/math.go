package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle normalizes an angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// RotateToward rotates from toward to, moving at most maxDelta radians.
// The result stays normalized to (-pi, pi].
func RotateToward(from, to, maxDelta float64) float64 {
	diff := WrapAngle(to - from)
	if diff > maxDelta {
		diff = maxDelta
	}
	if diff < -maxDelta {
		diff = -maxDelta
	}
	return WrapAngle(from + diff)
}
