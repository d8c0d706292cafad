// Package simdops provides SIMD operations for the polynomial code.
// Only float64 is instantiated; Ops stays generic over Float so a float32
// table can be added without changing callers.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// CubicInterpDot computes the fused cubic dot product:
	//   Σ hist[i] * (a[i] + x*(b[i] + x*(c[i] + x*d[i])))
	// With hist holding Bezier control values and a..d the power-form
	// Bernstein basis columns, this evaluates a cubic Bezier at x.
	CubicInterpDot func(hist, a, b, c, d []F, x F) F
}

var ops64 = Ops[float64]{
	CubicInterpDot: f64.CubicInterpDot,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}
