package animcurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-animcurve/internal/testutil"
)

func splineCurve(t *testing.T) *Curve {
	t.Helper()
	return mustBuild(t, Params{
		Positions:            Floats(0, 4, 10),
		Values:               Floats(0, 6, -2),
		InTangents:           Floats(0, 1, 0),
		OutTangents:          Floats(3, 1, 0),
		InWeights:            Floats(1, 0.5, 2),
		OutWeights:           Floats(1.2, 1, 1),
		DefaultInterpolation: InterpSpline,
		PostInfinity:         InfLinear,
	})
}

func TestBake_SamplesMatchDirectEvaluation(t *testing.T) {
	c := splineCurve(t)
	table, err := Bake(c, 1, 9, 17, 0.5)
	require.NoError(t, err)
	require.Equal(t, 17, table.Len())

	w := table.Window()
	assert.InDelta(t, 1.0, w.Start, 0)
	assert.InDelta(t, 9.0, w.End, 0)
	assert.Equal(t, 17, w.Steps)
	assert.InDelta(t, 0.5, table.Offset(), 0)

	samples := table.Samples()
	for k, got := range samples {
		x := 1 + float64(k)*0.5 + 0.5
		assert.InDelta(t, c.Eval(x, nil), got, 1e-12, "sample %d", k)
	}

	// Samples returns a copy.
	samples[0] = math.Inf(1)
	assert.False(t, math.IsInf(table.Samples()[0], 0))
}

func TestBake_LookupHitsStoredSamples(t *testing.T) {
	c := splineCurve(t)
	table, err := Bake(c, 0, 10, 11, 0)
	require.NoError(t, err)

	for k, want := range table.Samples() {
		assert.InDelta(t, want, table.At(float64(k)/10), 1e-12, "sample %d", k)
	}

	// Outside [0, 1] clamps to the end samples.
	s := table.Samples()
	assert.InDelta(t, s[0], table.At(-0.5), 1e-12)
	assert.InDelta(t, s[len(s)-1], table.At(3), 1e-12)
}

func TestBake_ErrorShrinksWithSteps(t *testing.T) {
	c := splineCurve(t)
	const a, b = 0.0, 10.0

	maxErr := func(steps int) float64 {
		table, err := Bake(c, a, b, steps, 0)
		require.NoError(t, err)
		worst := 0.0
		for i := 0; i <= 1000; i++ {
			tt := float64(i) / 1000
			worst = math.Max(worst, math.Abs(table.At(tt)-c.Eval(a+tt*(b-a), nil)))
		}
		return worst
	}

	coarse, medium, fine := maxErr(5), maxErr(33), maxErr(255)
	assert.Less(t, medium, coarse)
	assert.Less(t, fine, medium)
	assert.Less(t, fine, testutil.BakeTolerance)
}

func TestBake_DegenerateWindow(t *testing.T) {
	c := splineCurve(t)

	tests := []struct {
		name       string
		start, end float64
		steps      int
	}{
		{"inverted window", 5, 2, 10},
		{"empty window", 3, 3, 10},
		{"one step", 2, 8, 1},
		{"zero steps", 2, 8, 0},
		{"negative steps", 2, 8, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Bake(c, tt.start, tt.end, tt.steps, 0.25)
			require.NoError(t, err)
			require.Equal(t, 1, table.Len())

			want := c.Eval(tt.start+0.25, nil)
			for _, at := range []float64{0, 0.5, 1} {
				assert.InDelta(t, want, table.At(at), 0)
			}
			w := table.Window()
			assert.Equal(t, 1, w.Steps)
			assert.InDelta(t, w.Start, w.End, 0)
		})
	}
}

func TestBake_ClampsSteps(t *testing.T) {
	table, err := Bake(splineCurve(t), 0, 1, 10_000, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxMotionSteps, table.Len())
}

func TestBake_InvalidCurveBakesZeros(t *testing.T) {
	table, err := Bake(nil, 0, 1, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, table.Samples())
}
