package animcurve

import (
	"errors"
	"slices"
)

// Errors returned by Build and the configuration helpers.
var (
	// ErrInvalidCurve wraps every structural build failure. The curve is
	// discarded and evaluation yields 0.
	ErrInvalidCurve = errors.New("invalid curve")

	// ErrEmptyCurve indicates that no keyframes were supplied.
	ErrEmptyCurve = errors.New("curve has no keyframes")

	// ErrLengthMismatch indicates positions and values of different lengths.
	ErrLengthMismatch = errors.New("positions and values must have the same length")

	// ErrElementType indicates positions or values that are not float arrays.
	ErrElementType = errors.New("positions and values must be float arrays")

	// ErrNonFinite indicates a NaN or infinite keyframe position.
	ErrNonFinite = errors.New("keyframe position is not finite")

	// ErrDuplicatePosition indicates two keyframes at the same position.
	ErrDuplicatePosition = errors.New("duplicate keyframe position")

	// ErrInvalidParams indicates an unparseable mode name or option value.
	ErrInvalidParams = errors.New("invalid curve parameters")
)

// Curve is an immutable, validated keyframe curve.
//
// A Curve is safe for concurrent evaluation by multiple goroutines as long as
// each supplies its own scratch (or nil). A nil *Curve is the invalid curve:
// it evaluates to 0 everywhere.
type Curve struct {
	keys      []Keyframe
	positions []float64 // keys[i].Position, kept contiguous for searching
	weighted  bool
	pre       Infinity
	post      Infinity
	fallbacks Fallback
}

// Valid reports whether c can be evaluated to something other than the
// default value.
func (c *Curve) Valid() bool {
	return c != nil && len(c.keys) > 0
}

// Len returns the number of keyframes.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keyframe returns keyframe i in position order. It panics when i is out of
// range, including on the invalid curve, which has no keyframes.
func (c *Curve) Keyframe(i int) Keyframe {
	return c.keys[i]
}

// Keyframes returns a copy of the keyframes in position order.
func (c *Curve) Keyframes() []Keyframe {
	if c == nil {
		return nil
	}
	return slices.Clone(c.keys)
}

// Weighted reports whether spline segments use keyframe weights.
func (c *Curve) Weighted() bool {
	return c != nil && c.weighted
}

// PreInfinity returns the policy applied before the first keyframe.
func (c *Curve) PreInfinity() Infinity {
	if c == nil {
		return InfConstant
	}
	return c.pre
}

// PostInfinity returns the policy applied after the last keyframe.
func (c *Curve) PostInfinity() Infinity {
	if c == nil {
		return InfConstant
	}
	return c.post
}

// Fallbacks reports which supplied inputs were ignored by Build.
func (c *Curve) Fallbacks() Fallback {
	if c == nil {
		return 0
	}
	return c.fallbacks
}

// Domain returns the first and last keyframe positions. The invalid curve
// reports an empty domain at 0.
func (c *Curve) Domain() (start, end float64) {
	if !c.Valid() {
		return 0, 0
	}
	return c.positions[0], c.positions[len(c.positions)-1]
}

// Eval returns the curve value at x.
//
// scratch supplies the polynomial buffers for weighted spline segments; pass
// the caller's slot from a ScratchPool. A nil scratch is allowed and uses a
// temporary. Unweighted curves never touch it.
func (c *Curve) Eval(x float64, scratch *PolynomialPair) float64 {
	if !c.Valid() {
		return 0
	}
	r := c.resolve(x)
	if r.direct {
		return r.value
	}
	return c.interpolate(r.x, scratch) + r.offset
}

// interpolate evaluates an in-domain position. Positions that hit a keyframe
// return its value exactly.
func (c *Curve) interpolate(x float64, scratch *PolynomialPair) float64 {
	i, found := slices.BinarySearch(c.positions, x)
	if found {
		return c.keys[i].Value
	}
	if i == 0 {
		return c.keys[0].Value
	}
	if i == len(c.keys) {
		return c.keys[i-1].Value
	}
	return EvalSegment(x, c.keys[i-1], c.keys[i], c.weighted, scratch)
}
