package animcurve

import (
	"github.com/tphakala/go-animcurve/internal/mathutil"
)

// resolution is the extrapolator's answer for one input position: either a
// direct value, or an in-domain position whose value is shifted by offset.
type resolution struct {
	x      float64
	offset float64
	value  float64
	direct bool
}

// resolve maps x into the keyframe domain according to the curve's
// infinity policies. Inputs inside the domain are returned unchanged.
func (c *Curve) resolve(x float64) resolution {
	first, last := c.keys[0], c.keys[len(c.keys)-1]

	var (
		policy   Infinity
		boundary Keyframe
		slope    float64
	)
	switch {
	case x < first.Position:
		policy, boundary, slope = c.pre, first, first.InTangent
	case x > last.Position:
		policy, boundary, slope = c.post, last, last.OutTangent
	default:
		return resolution{x: x}
	}

	span := last.Position - first.Position

	switch policy {
	case InfLinear:
		return resolution{value: boundary.Value + slope*(x-boundary.Position), direct: true}
	case InfLoop:
		if span > 0 {
			w, _ := mathutil.Wrap(x, first.Position, span)
			return resolution{x: w}
		}
	case InfLoopOffset:
		if span > 0 {
			w, cycles := mathutil.Wrap(x, first.Position, span)
			return resolution{x: w, offset: cycles * (last.Value - first.Value)}
		}
	case InfMirror:
		if span > 0 {
			return resolution{x: mathutil.Mirror(x, first.Position, span)}
		}
	}

	// Constant, or a periodic policy over a zero-width domain.
	return resolution{x: boundary.Position}
}
