package animcurve

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/tphakala/go-animcurve/internal/mathutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// MotionWindow is the span of positions a curve is baked over.
type MotionWindow struct {
	Frame float64 // current frame
	Start float64
	End   float64
	Steps int
}

// SampleTable is a curve baked at evenly spaced positions across a motion
// window. It is read-only once built and safe for concurrent use.
type SampleTable struct {
	samples []float64
	window  MotionWindow
	offset  float64
	lookup  interp.PiecewiseLinear // fitted when there are at least two samples
}

// Bake evaluates c at steps evenly spaced positions from start to end
// inclusive, each shifted by offset.
//
// A window with end <= start, or steps <= 1, produces a single sample equal
// to c.Eval(start + offset). steps is clamped to MaxMotionSteps. An invalid
// curve bakes to zeros.
func Bake(c *Curve, start, end float64, steps int, offset float64) (*SampleTable, error) {
	if steps > MaxMotionSteps {
		Logger().Warn("clamping motion steps", slog.Int("steps", steps), slog.Int("max", MaxMotionSteps))
		steps = MaxMotionSteps
	}

	// Baking runs on the single update path, so one scratch serves all samples.
	var scratch PolynomialPair

	if end <= start || steps <= 1 {
		return &SampleTable{
			samples: []float64{c.Eval(start+offset, &scratch)},
			window:  MotionWindow{Start: start, End: start, Steps: 1},
			offset:  offset,
		}, nil
	}

	positions := make([]float64, steps)
	floats.Span(positions, start, end)
	floats.AddConst(offset, positions)

	samples := make([]float64, steps)
	for i, x := range positions {
		samples[i] = c.Eval(x, &scratch)
	}

	t := &SampleTable{
		samples: samples,
		window:  MotionWindow{Start: start, End: end, Steps: steps},
		offset:  offset,
	}

	abscissae := make([]float64, steps)
	floats.Span(abscissae, 0, 1)
	if err := t.lookup.Fit(abscissae, samples); err != nil {
		return nil, fmt.Errorf("fit sample table: %w", err)
	}

	Logger().Debug("curve baked",
		slog.Float64("start", start),
		slog.Float64("end", end),
		slog.Int("steps", steps),
		slog.Float64("offset", offset))

	return t, nil
}

// At returns the table value at normalized time t in [0, 1], interpolating
// linearly between neighbouring samples. t outside [0, 1] is clamped.
func (t *SampleTable) At(time float64) float64 {
	if len(t.samples) == 1 {
		return t.samples[0]
	}
	return t.lookup.Predict(mathutil.Clamp(time, 0, 1))
}

// Len returns the number of samples.
func (t *SampleTable) Len() int {
	return len(t.samples)
}

// Samples returns a copy of the baked samples.
func (t *SampleTable) Samples() []float64 {
	return slices.Clone(t.samples)
}

// Window returns the window the table was baked over. A single-sample
// table reports Start == End and Steps == 1.
func (t *SampleTable) Window() MotionWindow {
	return t.window
}

// Offset returns the position offset applied to every sample.
func (t *SampleTable) Offset() float64 {
	return t.offset
}
