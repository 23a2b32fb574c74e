package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + Clamp01(t)*(b-a)
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

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Sign returns -1 for negative values and 1 otherwise, including zero.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Approximately reports whether a and b differ by less than eps.
func Approximately(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
