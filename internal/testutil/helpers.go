// Package testutil provides reusable test helper functions for animation curve tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	RootTolerance    = 1e-7
	BakeTolerance    = 1e-2
)

// Sample evaluates f at n evenly spaced positions in [lo, hi].
func Sample(f func(float64) float64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = f(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = f(lo + float64(i)*step)
	}
	return out
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertClose verifies that actual matches expected within an absolute or
// relative tolerance, whichever is looser.
func AssertClose(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if scalar.EqualWithinAbsOrRel(expected, actual, tolerance, tolerance) {
		return true
	}
	return assert.Fail(t, "values differ",
		"expected %v, actual %v (tolerance %e)", expected, actual, tolerance)
}

// AssertSlicesClose verifies element-wise closeness of two equal-length slices.
func AssertSlicesClose(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !scalar.EqualWithinAbsOrRel(expected[i], actual[i], tolerance, tolerance) {
			return assert.Fail(t, "slices differ",
				"index %d: expected %v, actual %v (tolerance %e)", i, expected[i], actual[i], tolerance)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
