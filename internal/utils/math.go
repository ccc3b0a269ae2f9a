package utils

import "math"

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorMod wraps x into [0, m) even when x is negative. A truncating
// `%` would map -1 to -1, not m-1, which breaks index wraparound.
func FloorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// FloorModF is FloorMod for continuous offsets.
func FloorModF(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
