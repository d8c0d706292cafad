package animcurve

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-animcurve/internal/testutil"
)

func mustBuild(t *testing.T, p Params) *Curve {
	t.Helper()
	c, err := Build(p)
	require.NoError(t, err)
	return c
}

// mixedParams covers every interpolation mode on a weighted curve.
func mixedParams() Params {
	return Params{
		Positions:      Floats(0, 1.5, 3, 4, 7),
		Values:         Floats(1, -2, 0.5, 4, 3),
		Interpolations: Interpolations(InterpSpline, InterpLinear, InterpSpline, InterpStep, InterpSpline),
		InTangents:     Floats(0.5, -1, 2, 0, 1),
		OutTangents:    Floats(-3, 1, 0.25, 0, -1),
		InWeights:      Floats(1, 0.5, 2, 1, 1.5),
		OutWeights:     Floats(0.2, 1, 2.5, 1, 1),
		PreInfinity:    InfMirror,
		PostInfinity:   InfLoopOffset,
	}
}

func TestEval_BoundaryExactness(t *testing.T) {
	for _, weighted := range []bool{false, true} {
		p := mixedParams()
		if !weighted {
			p.InWeights, p.OutWeights = Array{}, Array{}
		}
		c := mustBuild(t, p)
		require.Equal(t, weighted, c.Weighted())

		var scratch PolynomialPair
		for _, k := range c.Keyframes() {
			assert.Equal(t, k.Value, c.Eval(k.Position, &scratch), "key at %v", k.Position) //nolint:testifylint // exact
		}
	}
}

func TestEval_RebuildIsIdempotent(t *testing.T) {
	a := mustBuild(t, mixedParams())
	b := mustBuild(t, mixedParams())

	xs := testutil.Sample(func(x float64) float64 { return x }, -12, 20, 641)
	for _, x := range xs {
		assert.Equal(t, a.Eval(x, nil), b.Eval(x, nil), "x=%v", x) //nolint:testifylint // exact
	}
}

func TestEval_SortingInvariance(t *testing.T) {
	sorted := mixedParams()
	want := mustBuild(t, sorted)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 5 {
		perm := rng.Perm(sorted.Positions.Len())
		shuffled := sorted
		shuffled.Positions = permuteFloats(sorted.Positions, perm)
		shuffled.Values = permuteFloats(sorted.Values, perm)
		shuffled.InTangents = permuteFloats(sorted.InTangents, perm)
		shuffled.OutTangents = permuteFloats(sorted.OutTangents, perm)
		shuffled.InWeights = permuteFloats(sorted.InWeights, perm)
		shuffled.OutWeights = permuteFloats(sorted.OutWeights, perm)
		modes := make([]int, len(perm))
		for i, j := range perm {
			modes[i] = sorted.Interpolations.Int(j)
		}
		shuffled.Interpolations = Ints(modes...)

		got := mustBuild(t, shuffled)
		assert.Equal(t, want.Keyframes(), got.Keyframes())
		for x := -5.0; x <= 12; x += 0.125 {
			assert.Equal(t, want.Eval(x, nil), got.Eval(x, nil), "x=%v", x) //nolint:testifylint // exact
		}
	}
}

func permuteFloats(a Array, perm []int) Array {
	out := make([]float64, len(perm))
	for i, j := range perm {
		out[i] = a.Float(j)
	}
	return Floats(out...)
}

func TestEval_ConstantAndLinearExtrapolation(t *testing.T) {
	c := mustBuild(t, Params{
		Positions:            Floats(0, 1),
		Values:               Floats(0, 10),
		OutTangents:          Floats(10, 10),
		DefaultInterpolation: InterpLinear,
		PreInfinity:          InfConstant,
		PostInfinity:         InfLinear,
	})

	assert.InDelta(t, 0.0, c.Eval(-5, nil), 1e-12)
	assert.InDelta(t, 20.0, c.Eval(2, nil), 1e-12)
	assert.InDelta(t, 5.0, c.Eval(0.5, nil), 1e-12)
}

func TestEval_LinearPreInfinityUsesInTangent(t *testing.T) {
	c := mustBuild(t, Params{
		Positions:   Floats(0, 1),
		Values:      Floats(3, 10),
		InTangents:  Floats(-2, 0),
		PreInfinity: InfLinear,
	})
	assert.InDelta(t, 3.0+(-2.0)*(-4.0), c.Eval(-4, nil), 1e-12)
}

func TestEval_Loop(t *testing.T) {
	c := mustBuild(t, Params{
		Positions:            Floats(0, 1),
		Values:               Floats(0, 5),
		DefaultInterpolation: InterpLinear,
		PreInfinity:          InfLoop,
		PostInfinity:         InfLoop,
	})

	assert.InDelta(t, c.Eval(0.5, nil), c.Eval(1.5, nil), 1e-12)
	assert.InDelta(t, c.Eval(0.25, nil), c.Eval(7.25, nil), 1e-12)
	assert.InDelta(t, c.Eval(0.75, nil), c.Eval(-2.25, nil), 1e-12)
}

func TestEval_LoopOffset(t *testing.T) {
	c := mustBuild(t, Params{
		Positions:            Floats(0, 1),
		Values:               Floats(0, 5),
		DefaultInterpolation: InterpLinear,
		PreInfinity:          InfLoopOffset,
		PostInfinity:         InfLoopOffset,
	})

	assert.InDelta(t, c.Eval(0.5, nil)+2*(5-0), c.Eval(2.5, nil), 1e-12)
	assert.InDelta(t, c.Eval(0.5, nil)-1*(5-0), c.Eval(-0.5, nil), 1e-12)

	// A linear ramp stays a ramp across repeats.
	for x := -3.0; x <= 4; x += 0.25 {
		assert.InDelta(t, 5*x, c.Eval(x, nil), 1e-9, "x=%v", x)
	}
}

func TestEval_Mirror(t *testing.T) {
	c := mustBuild(t, Params{
		Positions:            Floats(2, 4),
		Values:               Floats(1, 9),
		DefaultInterpolation: InterpLinear,
		PreInfinity:          InfMirror,
		PostInfinity:         InfMirror,
	})

	// Runs backward over [4, 6], forward again over [6, 8].
	assert.InDelta(t, c.Eval(3.5, nil), c.Eval(4.5, nil), 1e-12)
	assert.InDelta(t, c.Eval(2, nil), c.Eval(6, nil), 1e-12)
	assert.InDelta(t, c.Eval(2.5, nil), c.Eval(6.5, nil), 1e-12)
	assert.InDelta(t, c.Eval(2.5, nil), c.Eval(1.5, nil), 1e-12)
	assert.InDelta(t, c.Eval(4, nil), c.Eval(0, nil), 1e-12)

	vals := testutil.Sample(func(x float64) float64 { return c.Eval(x, nil) }, -20, 20, 401)
	testutil.AssertAllInRange(t, vals, 1, 9)
}

func TestEval_DegenerateDomainFallsBackToConstant(t *testing.T) {
	for _, policy := range []Infinity{InfConstant, InfLoop, InfLoopOffset, InfMirror} {
		c := mustBuild(t, Params{
			Positions:    Floats(3),
			Values:       Floats(7),
			PreInfinity:  policy,
			PostInfinity: policy,
		})
		for _, x := range []float64{-100, 2.9, 3, 3.1, 1e9} {
			assert.InDelta(t, 7.0, c.Eval(x, nil), 0, "%s at %v", policy, x)
		}
	}

	// Linear has no period, so a single key still extends along its tangents.
	c := mustBuild(t, Params{
		Positions:    Floats(3),
		Values:       Floats(7),
		InTangents:   Floats(1),
		OutTangents:  Floats(2),
		PreInfinity:  InfLinear,
		PostInfinity: InfLinear,
	})
	assert.InDelta(t, 6.0, c.Eval(2, nil), 1e-12)
	assert.InDelta(t, 11.0, c.Eval(5, nil), 1e-12)
}

func TestEval_NoNaNOnExtremeInputs(t *testing.T) {
	c := mustBuild(t, mixedParams())
	var out []float64
	for _, x := range []float64{-1e12, -1e6, 1e6, 1e12, math.Nextafter(7, 8), math.Nextafter(0, -1)} {
		out = append(out, c.Eval(x, nil))
	}
	testutil.AssertNoNaNOrInf(t, out)
}

func TestCurve_NilAccessors(t *testing.T) {
	var c *Curve

	assert.False(t, c.Valid())
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Keyframes())
	assert.False(t, c.Weighted())
	assert.Equal(t, InfConstant, c.PreInfinity())
	assert.Equal(t, InfConstant, c.PostInfinity())
	assert.Zero(t, c.Fallbacks())

	start, end := c.Domain()
	assert.Zero(t, start)
	assert.Zero(t, end)
	assert.Zero(t, c.Eval(1, nil))
	assert.Panics(t, func() { c.Keyframe(0) })
}
