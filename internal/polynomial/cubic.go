package polynomial

import (
	"math"

	"github.com/tphakala/go-animcurve/internal/simdops"
)

// Power-form columns of the cubic Bernstein basis. Row i of the matrix
// [basisA basisB basisC basisD] holds the coefficients of B_i(t).
var (
	basisA = []float64{1, 0, 0, 0}
	basisB = []float64{-3, 3, 0, 0}
	basisC = []float64{3, -6, 3, 0}
	basisD = []float64{-1, 3, -3, 1}
)

// Cubic is a one-dimensional cubic Bezier polynomial on t in [0, 1].
//
// A Cubic is a reusable work buffer: SetBezier overwrites it in place and no
// method allocates. It is not safe for concurrent use; give every worker its
// own instance.
type Cubic struct {
	ctrl   [4]float64
	coeffs [4]float64 // power form, coeffs[i] multiplies t^i
}

// SetBezier loads the four control values and derives the power-form
// coefficients.
func (c *Cubic) SetBezier(p0, p1, p2, p3 float64) {
	c.ctrl = [4]float64{p0, p1, p2, p3}
	c.coeffs = [4]float64{
		p0,
		3 * (p1 - p0),
		3 * (p0 - 2*p1 + p2),
		-p0 + 3*p1 - 3*p2 + p3,
	}
}

// Control returns the Bezier control values.
func (c *Cubic) Control() [4]float64 {
	return c.ctrl
}

// Coefficients returns the power-form coefficients c0..c3.
func (c *Cubic) Coefficients() [4]float64 {
	return c.coeffs
}

// Eval evaluates the polynomial at t.
func (c *Cubic) Eval(t float64) float64 {
	return simdops.Float64Ops().CubicInterpDot(c.ctrl[:], basisA, basisB, basisC, basisD, t)
}

// Deriv evaluates the first derivative at t.
func (c *Cubic) Deriv(t float64) float64 {
	return (3*c.coeffs[3]*t+2*c.coeffs[2])*t + c.coeffs[1]
}

// InvertUnit returns t in [0, 1] such that Eval(t) == v.
//
// The polynomial must be non-decreasing on [0, 1], which holds when the
// control values are ordered. The algebraic roots are tried first; a root
// within rootTolerance of the interval is clamped into it and polished with
// at most maxNewtonSteps Newton iterations. If no usable root exists the
// result comes from a bisection capped at maxBisectIterations.
func (c *Cubic) InvertUnit(v float64) float64 {
	if v <= c.ctrl[0] {
		return 0
	}
	if v >= c.ctrl[3] {
		return 1
	}

	roots, n := SolveCubic(c.coeffs[0]-v, c.coeffs[1], c.coeffs[2], c.coeffs[3])

	t := math.NaN()
	best := math.Inf(1)
	for _, r := range roots[:n] {
		if math.IsNaN(r) || r < -rootTolerance || r > 1+rootTolerance {
			continue
		}
		r = clampUnit(r)
		if e := math.Abs(c.Eval(r) - v); e < best {
			t, best = r, e
		}
	}
	if math.IsNaN(t) {
		return c.bisect(v)
	}

	for range maxNewtonSteps {
		d := c.Deriv(t)
		if d <= 0 {
			break
		}
		next := t - (c.Eval(t)-v)/d
		if next < 0 || next > 1 {
			break
		}
		t = next
	}
	return t
}

func (c *Cubic) bisect(v float64) float64 {
	lo, hi := 0.0, 1.0
	for range maxBisectIterations {
		mid := 0.5 * (lo + hi)
		if c.Eval(mid) < v {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

func clampUnit(t float64) float64 {
	return math.Min(1, math.Max(0, t))
}
