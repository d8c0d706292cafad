package animcurve

import (
	"math"

	"github.com/tphakala/go-animcurve/internal/mathutil"
)

// EvalSegment evaluates the segment between k0 and k1 at x.
//
// The left keyframe's interpolation selects the shape:
//   - InterpStep holds k0.Value
//   - InterpLinear interpolates the two values linearly
//   - InterpSpline on an unweighted curve is the cubic Hermite through both
//     values with slopes k0.OutTangent and k1.InTangent
//   - InterpSpline on a weighted curve is a cubic Bezier whose x handles are
//     placed by k0.OutWeight and k1.InWeight; x is inverted to the Bezier
//     parameter with a bounded root solve
//
// scratch is only used by weighted splines; nil uses a temporary.
func EvalSegment(x float64, k0, k1 Keyframe, weighted bool, scratch *PolynomialPair) float64 {
	dx := k1.Position - k0.Position
	if dx <= 0 {
		return k0.Value
	}

	switch k0.Interpolation {
	case InterpLinear:
		return mathutil.Lerp(k0.Value, k1.Value, (x-k0.Position)/dx)
	case InterpSpline:
		if weighted {
			return evalWeighted(x, k0, k1, dx, scratch)
		}
		return evalHermite((x-k0.Position)/dx, k0.Value, k1.Value, k0.OutTangent*dx, k1.InTangent*dx)
	default:
		return k0.Value
	}
}

// evalHermite evaluates the cubic Hermite with end values y0, y1 and
// end derivatives d0, d1 (already scaled to the unit parameter) at t.
// Uses the form y = ((a*t + b)*t + c)*t + d.
func evalHermite(t, y0, y1, d0, d1 float64) float64 {
	coefA := hermiteEndScale*(y0-y1) + d0 + d1
	coefB := hermiteMidScale*(y1-y0) - hermiteEndScale*d0 - d1
	coefC := d0
	coefD := y0
	return ((coefA*t+coefB)*t+coefC)*t + coefD
}

// evalWeighted evaluates a weighted spline segment. The x polynomial is built
// on the normalized segment [0, 1] so the root solve does not depend on the
// curve's position scale.
func evalWeighted(x float64, k0, k1 Keyframe, dx float64, scratch *PolynomialPair) float64 {
	if scratch == nil {
		scratch = new(PolynomialPair)
	}

	w0 := math.Max(k0.OutWeight, 0)
	w1 := math.Max(k1.InWeight, 0)
	// Handles may not cross, or x(t) stops being monotone.
	if sum := w0 + w1; sum > maxHandleWeightSum {
		scale := maxHandleWeightSum / sum
		w0 *= scale
		w1 *= scale
	}

	h0 := w0 * handleFraction
	h1 := w1 * handleFraction

	scratch.x.SetBezier(0, h0, 1-h1, 1)
	scratch.y.SetBezier(
		k0.Value,
		k0.Value+k0.OutTangent*h0*dx,
		k1.Value-k1.InTangent*h1*dx,
		k1.Value,
	)

	t := scratch.x.InvertUnit((x - k0.Position) / dx)
	return scratch.y.Eval(t)
}
