// Package polynomial implements the real-root solvers and the reusable cubic
// Bezier polynomial used by weighted curve segments.
package polynomial

import (
	"math"
)

// SolveLinear returns the root of c0 + c1 x = 0.
//
// When c1 is zero there is either no root (c0 != 0) or every x is a root
// (c0 == 0); the latter reports a single 0.
func SolveLinear(c0, c1 float64) ([1]float64, int) {
	if c1 == 0 {
		if c0 == 0 {
			return [1]float64{0}, 1
		}
		return [1]float64{}, 0
	}
	return [1]float64{-c0 / c1}, 1
}

// SolveQuadratic returns the real roots of c0 + c1 x + c2 x² = 0 in ascending
// order. The second return value is the number of roots found.
//
// A vanishing or negligible c2 degrades to the linear equation.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if negligible(c2, c0, c1) {
		r, n := SolveLinear(c0, c1)
		return [2]float64{r[0]}, n
	}

	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		r, n := SolveLinear(c0, c1)
		return [2]float64{r[0]}, n
	}

	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed; take root1 from sc1 x + x² = 0 and the other from
		// the product of roots.
		root1 = -sc1
	} else {
		switch {
		case arg < 0:
			return [2]float64{}, 0
		case arg == 0:
			return [2]float64{-0.5 * sc1}, 1
		}
		// Citardauq form avoids cancellation between sc1 and the square root.
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 < root1 {
		return [2]float64{root2, root1}, 2
	}
	return [2]float64{root1, root2}, 2
}

// SolveCubic returns the real roots of c0 + c1 x + c2 x² + c3 x³ = 0.
// The second return value is the number of roots found (0 to 3).
//
// The closed form follows Jim Blinn's "How to Solve a Cubic Equation": the
// discriminant selects between one real root (Cardano), a repeated root, or
// three real roots (trigonometric form). A triple root is reported once per
// distinct branch, so callers see it as one or two equal values. When c3 is
// negligible the quadratic is solved instead.
//
// See: https://momentsingraphics.de/CubicRoots.html
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	if negligible(c3, c0, c1, c2) {
		r, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{r[0], r[1]}, n
	}

	recip := 1.0 / c3
	s2 := c2 * (oneThird * recip)
	s1 := c1 * (oneThird * recip)
	s0 := c0 * recip
	if math.IsInf(s0, 0) || math.IsInf(s1, 0) || math.IsInf(s2, 0) {
		r, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{r[0], r[1]}, n
	}

	d0 := math.FMA(-s2, s2, s1)
	d1 := math.FMA(-s1, s2, s0)
	d2 := s2*s0 - s1*s1
	disc := 4.0*d0*d2 - d1*d1
	de := math.FMA(-2.0*s2, d0, d1)

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - s2}, 1
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - s2, -2.0*t1 - s2}, 2
	default:
		th := math.Atan2(math.Sqrt(disc), -de) * oneThird
		sin, cos := math.Sincos(th)
		ss3 := sin * sqrt3
		r1 := 0.5 * (-cos + ss3)
		r2 := 0.5 * (-cos - ss3)
		t := 2.0 * math.Sqrt(-d0)
		return [3]float64{
			math.FMA(t, cos, -s2),
			math.FMA(t, r1, -s2),
			math.FMA(t, r2, -s2),
		}, 3
	}
}

// negligible reports whether lead is zero or tiny next to the largest of rest.
func negligible(lead float64, rest ...float64) bool {
	if lead == 0 {
		return true
	}
	var scale float64
	for _, c := range rest {
		scale = math.Max(scale, math.Abs(c))
	}
	return math.Abs(lead) <= degenerateRatio*scale
}
