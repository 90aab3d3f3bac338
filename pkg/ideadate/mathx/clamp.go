// Package mathx holds the small set of numeric helpers shared by every
// scoring, arc, and constraint computation in the engine. Keeping them here
// (rather than duplicating clampFloat-style helpers per package, as some
// single-purpose analysis modules do) keeps the deterministic rounding and
// clamping rules consistent across the whole pipeline.
package mathx

import "math"

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 constrains v to [0,1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Round100 rounds a [0,1] score to an integer on [0,100].
func Round100(v float64) int {
	return int(math.Round(Clamp01(v) * 100))
}

// RoundN rounds v to n decimal places. Used for sort-stable normalization of
// arc and journey deltas (§4.8, §9).
func RoundN(v float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(v*scale) / scale
}

// NearEqual reports whether a and b differ by no more than eps.
func NearEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
