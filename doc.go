// Package animcurve evaluates one-dimensional keyframed animation curves in
// pure Go.
//
// A curve is an ordered list of keyframes, each pinning a value to a
// position. Between keyframes the curve follows the left keyframe's
// interpolation mode; outside the keyframe range it follows the curve's
// pre and post infinity policies.
//
// # Features
//
//   - Step, linear and cubic spline interpolation per keyframe
//   - Weighted splines whose tangent handles are scaled along x, inverted with
//     a bounded closed-form cubic root solve
//   - Constant, linear, loop, loop-with-offset and mirror extrapolation
//   - Baking over a motion window into a sample table for constant-time lookup
//   - Lock-free concurrent evaluation with per-worker scratch storage
//   - Tolerant building: malformed optional inputs fall back to defaults and
//     are reported instead of failing
//
// # Quick Start
//
// Build a curve from parallel arrays and evaluate it:
//
//	c, err := animcurve.Build(animcurve.Params{
//	    Positions:            animcurve.Floats(0, 10, 20),
//	    Values:               animcurve.Floats(0, 5, 0),
//	    DefaultInterpolation: animcurve.InterpLinear,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := c.Eval(7.5, nil) // 3.75
//
// # Weighted Curves
//
// A curve is weighted when both the in and out weight arrays are supplied,
// have one entry per keyframe and hold finite non-negative values. Weighted
// spline segments need two cubic polynomials of work storage. Concurrent
// callers should take one [PolynomialPair] each from a [ScratchPool]:
//
//	pool := animcurve.NewScratchPool(workers)
//	// in worker w:
//	v := c.Eval(x, pool.Get(w))
//
// Passing nil is always allowed and allocates a temporary.
//
// # Baking
//
// [Bake] samples a curve at evenly spaced positions across a window, and
// [SampleTable.At] reads it back by normalized time with linear
// interpolation. [ResolveMotion] derives the window from the host's frame
// and shutter settings.
//
// # Nodes
//
// [Node] binds a curve to [RenderOptions] the way a shading node does.
// [Node.Update] rebuilds and atomically publishes the new state;
// [Node.Evaluate] reads it without locking.
//
// # Thread Safety
//
// [Curve] and [SampleTable] are immutable after construction and safe for
// concurrent use. A [PolynomialPair] must only be used by one goroutine at a
// time. [Node.Update] calls are serialized internally and may overlap with
// [Node.Evaluate].
//
// # Logging
//
// Diagnostics are written to a [log/slog] logger that discards everything by
// default. Install one with [SetLogger].
package animcurve
