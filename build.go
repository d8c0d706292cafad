package animcurve

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Params holds the raw per-update inputs a curve is built from.
//
// Positions and Values are mandatory float arrays of equal length. The other
// arrays are optional and are ignored, with a logged warning, when their
// length or element type does not match.
type Params struct {
	Positions      Array
	Values         Array
	Interpolations Array // int-typed Interpolation values
	InTangents     Array
	OutTangents    Array
	InWeights      Array
	OutWeights     Array

	DefaultInterpolation Interpolation
	PreInfinity          Infinity
	PostInfinity         Infinity
}

// Build validates p and returns the curve it describes, sorted by position.
//
// A structural problem (length mismatch, non-float positions or values,
// non-finite or duplicate positions) returns a nil curve and an error
// wrapping ErrInvalidCurve. Zero keyframes is reported as ErrEmptyCurve.
// Malformed optional arrays never fail the build: they fall back to their
// defaults and are recorded in the curve's Fallbacks.
//
// The weighted flag is decided from p alone on every call.
func Build(p Params) (*Curve, error) {
	n := p.Positions.Len()
	if n != p.Values.Len() {
		return nil, fmt.Errorf("%w: %w: %d positions, %d values",
			ErrInvalidCurve, ErrLengthMismatch, n, p.Values.Len())
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, ErrEmptyCurve)
	}
	if p.Positions.Type() != TypeFloat || p.Values.Type() != TypeFloat {
		return nil, fmt.Errorf("%w: %w: got %s positions and %s values",
			ErrInvalidCurve, ErrElementType, p.Positions.Type(), p.Values.Type())
	}
	for i := range n {
		if x := p.Positions.Float(i); math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %w: positions[%d] = %v", ErrInvalidCurve, ErrNonFinite, i, x)
		}
	}

	// Sort indices rather than keyframes so every per-index array entry
	// travels with its position.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(p.Positions.Float(a), p.Positions.Float(b))
	})
	for k := 1; k < n; k++ {
		if p.Positions.Float(order[k]) == p.Positions.Float(order[k-1]) {
			return nil, fmt.Errorf("%w: %w: %v at indices %d and %d", ErrInvalidCurve,
				ErrDuplicatePosition, p.Positions.Float(order[k]), order[k-1], order[k])
		}
	}

	c := &Curve{
		keys:      make([]Keyframe, n),
		positions: make([]float64, n),
	}

	defInterp := p.DefaultInterpolation
	if !defInterp.Valid() {
		Logger().Warn("invalid default interpolation, using step",
			slog.Int("default_interpolation", int(defInterp)))
		defInterp = InterpStep
		c.fallbacks |= FallbackDefaultInterpolation
	}
	c.pre = c.checkInfinity("pre_infinity", p.PreInfinity)
	c.post = c.checkInfinity("post_infinity", p.PostInfinity)

	hasInterp := c.checkOptional("interpolations", p.Interpolations, TypeInt, n, FallbackInterpolations,
		func(i int) bool { return Interpolation(p.Interpolations.Int(i)).Valid() })
	hasIn := c.checkOptional("in_tangents", p.InTangents, TypeFloat, n, FallbackInTangents, nil)
	hasOut := c.checkOptional("out_tangents", p.OutTangents, TypeFloat, n, FallbackOutTangents, nil)
	c.weighted = c.checkWeights(p.InWeights, p.OutWeights, n)

	for k, i := range order {
		key := Keyframe{
			Position:      p.Positions.Float(i),
			Value:         p.Values.Float(i),
			Interpolation: defInterp,
		}
		if hasInterp {
			key.Interpolation = Interpolation(p.Interpolations.Int(i))
		}
		if hasIn {
			key.InTangent = p.InTangents.Float(i)
		}
		if hasOut {
			key.OutTangent = p.OutTangents.Float(i)
		}
		if c.weighted {
			key.InWeight = p.InWeights.Float(i)
			key.OutWeight = p.OutWeights.Float(i)
		}
		c.keys[k] = key
		c.positions[k] = key.Position
	}

	Logger().Debug("curve built",
		slog.Int("keyframes", n),
		slog.Bool("weighted", c.weighted),
		slog.String("pre_infinity", c.pre.String()),
		slog.String("post_infinity", c.post.String()))

	return c, nil
}

func (c *Curve) checkInfinity(name string, inf Infinity) Infinity {
	if inf.Valid() {
		return inf
	}
	Logger().Warn("invalid infinity policy, using constant", slog.Int(name, int(inf)))
	c.fallbacks |= FallbackInfinity
	return InfConstant
}

// checkOptional reports whether an optional per-keyframe array can be used.
// An absent array is not a fallback; a present but malformed one is.
func (c *Curve) checkOptional(name string, a Array, typ ElemType, n int, flag Fallback, valid func(int) bool) bool {
	if a.Len() == 0 {
		Logger().Debug("optional array not set, using defaults", slog.String("array", name))
		return false
	}
	ok := a.usable(typ, n)
	for i := 0; ok && valid != nil && i < n; i++ {
		ok = valid(i)
	}
	if !ok {
		Logger().Warn("invalid optional array type, size or content, using defaults",
			slog.String("array", name),
			slog.String("type", a.Type().String()),
			slog.Int("len", a.Len()),
			slog.Int("keyframes", n))
		c.fallbacks |= flag
	}
	return ok
}

// checkWeights reports whether the weight pair makes the curve weighted.
// Both arrays must be usable; one bad array disables both.
func (c *Curve) checkWeights(in, out Array, n int) bool {
	if in.Len() == 0 && out.Len() == 0 {
		return false
	}
	ok := in.usable(TypeFloat, n) && out.usable(TypeFloat, n)
	for i := 0; ok && i < n; i++ {
		ok = validWeight(in.Float(i)) && validWeight(out.Float(i))
	}
	if !ok {
		Logger().Warn("invalid weights, evaluating as non-weighted",
			slog.String("in_weights_type", in.Type().String()),
			slog.Int("in_weights_len", in.Len()),
			slog.String("out_weights_type", out.Type().String()),
			slog.Int("out_weights_len", out.Len()),
			slog.Int("keyframes", n))
		c.fallbacks |= FallbackWeights
	}
	return ok
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0)
}
