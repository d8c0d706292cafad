// Package mathutil provides the scalar helpers used to map positions that
// fall outside a curve's keyframe domain back into it.
package mathutil

import (
	"math"
)

// Wrap maps x into [lo, lo+span) by removing whole periods of length span.
//
// It returns the wrapped position and the signed number of whole periods
// that were removed, so x == wrapped + cycles*span up to rounding.
// span must be positive; callers handle the degenerate case.
func Wrap(x, lo, span float64) (wrapped, cycles float64) {
	cycles = math.Floor((x - lo) / span)
	wrapped = lo + (x - lo) - cycles*span

	// Rounding can push a value that sits on a period boundary to lo+span.
	if wrapped >= lo+span {
		wrapped = lo
		cycles++
	} else if wrapped < lo {
		wrapped = lo
	}
	return wrapped, cycles
}

// Mirror folds x into [lo, lo+span] as a triangle wave with period 2*span:
// the first period runs forward, the next one backward, and so on.
func Mirror(x, lo, span float64) float64 {
	u, _ := Wrap(x, lo, mirrorPeriodFactor*span)
	u -= lo
	if u > span {
		u = mirrorPeriodFactor*span - u
	}
	return lo + u
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
