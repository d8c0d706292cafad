package animcurve

import (
	"fmt"
	"strings"
)

// Interpolation selects the shape of the segment that starts at a keyframe.
type Interpolation int

const (
	// InterpStep holds the left keyframe's value until the next keyframe.
	InterpStep Interpolation = iota

	// InterpLinear interpolates linearly between the two keyframes.
	InterpLinear

	// InterpSpline uses a cubic segment shaped by the keyframe tangents,
	// and by their weights when the curve is weighted.
	InterpSpline
)

var interpolationNames = [...]string{"step", "linear", "spline"}

// String returns the lower-case mode name.
func (i Interpolation) String() string {
	if i.Valid() {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// Valid reports whether i is one of the defined modes.
func (i Interpolation) Valid() bool {
	return i >= InterpStep && i <= InterpSpline
}

// ParseInterpolation parses a mode name ("step", "linear", "spline").
func ParseInterpolation(s string) (Interpolation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range interpolationNames {
		if n == name {
			return Interpolation(i), nil
		}
	}
	return InterpStep, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidParams, s)
}

// Infinity is the extrapolation policy applied before the first or after the
// last keyframe.
type Infinity int

const (
	// InfConstant clamps to the boundary keyframe's value.
	InfConstant Infinity = iota

	// InfLinear extends the boundary keyframe's outward tangent.
	InfLinear

	// InfLoop repeats the curve with the period of its domain.
	InfLoop

	// InfLoopOffset repeats the curve, offsetting each repeat by the
	// difference between the last and first values.
	InfLoopOffset

	// InfMirror repeats the curve alternately forward and backward.
	InfMirror
)

var infinityNames = [...]string{"constant", "linear", "loop", "loop_offset", "mirror"}

// String returns the lower-case policy name.
func (i Infinity) String() string {
	if i.Valid() {
		return infinityNames[i]
	}
	return fmt.Sprintf("Infinity(%d)", int(i))
}

// Valid reports whether i is one of the defined policies.
func (i Infinity) Valid() bool {
	return i >= InfConstant && i <= InfMirror
}

// ParseInfinity parses a policy name ("constant", "linear", "loop",
// "loop_offset", "mirror"). A hyphen is accepted in place of the underscore.
func ParseInfinity(s string) (Infinity, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range infinityNames {
		if n == name {
			return Infinity(i), nil
		}
	}
	return InfConstant, fmt.Errorf("%w: unknown infinity policy %q", ErrInvalidParams, s)
}

// Keyframe pins the curve to Value at Position.
//
// Tangents are slopes (dy/dx). Weights only matter on weighted curves, where
// they scale the tangent handles along x: a weight of 1 places the handle a
// third of the way across the segment.
type Keyframe struct {
	Position      float64
	Value         float64
	Interpolation Interpolation
	InTangent     float64
	OutTangent    float64
	InWeight      float64
	OutWeight     float64
}

// Fallback records which supplied inputs were ignored during a build.
// Optional arrays that were simply not set are not fallbacks.
type Fallback uint8

const (
	// FallbackInterpolations means interpolations were supplied but unusable,
	// so every keyframe uses the default interpolation.
	FallbackInterpolations Fallback = 1 << iota

	// FallbackInTangents means input tangents were supplied but unusable, so
	// every input tangent is flat.
	FallbackInTangents

	// FallbackOutTangents means output tangents were supplied but unusable.
	FallbackOutTangents

	// FallbackWeights means weights were supplied but unusable, so the curve
	// is unweighted.
	FallbackWeights

	// FallbackDefaultInterpolation means the default interpolation was not a
	// defined mode and InterpStep was used.
	FallbackDefaultInterpolation

	// FallbackInfinity means a pre or post infinity policy was not defined
	// and InfConstant was used.
	FallbackInfinity
)

var fallbackNames = [...]string{
	"interpolations",
	"in_tangents",
	"out_tangents",
	"weights",
	"default_interpolation",
	"infinity",
}

// Has reports whether all bits of f2 are set in f.
func (f Fallback) Has(f2 Fallback) bool {
	return f&f2 == f2
}

// Names returns the feature name of every set bit, in bit order.
func (f Fallback) Names() []string {
	var names []string
	for i, n := range fallbackNames {
		if f&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return names
}
