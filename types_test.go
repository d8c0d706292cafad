package animcurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func TestParseInterpolation(t *testing.T) {
	for _, mode := range []Interpolation{InterpStep, InterpLinear, InterpSpline} {
		got, err := ParseInterpolation(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseInterpolation(" Spline ")
	require.NoError(t, err)
	assert.Equal(t, InterpSpline, got)

	_, err = ParseInterpolation("bezier")
	require.ErrorIs(t, err, ErrInvalidParams)

	assert.Equal(t, "Interpolation(5)", Interpolation(5).String())
}

func TestParseInfinity(t *testing.T) {
	for _, policy := range []Infinity{InfConstant, InfLinear, InfLoop, InfLoopOffset, InfMirror} {
		got, err := ParseInfinity(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, got)
	}

	got, err := ParseInfinity("Loop-Offset")
	require.NoError(t, err)
	assert.Equal(t, InfLoopOffset, got)

	_, err = ParseInfinity("cycle")
	require.ErrorIs(t, err, ErrInvalidParams)

	assert.False(t, Infinity(-1).Valid())
}

func TestArray(t *testing.T) {
	var zero Array
	assert.Equal(t, TypeNone, zero.Type())
	assert.Zero(t, zero.Len())

	f := Floats(1, 2, 3)
	assert.Equal(t, TypeFloat, f.Type())
	assert.Equal(t, 3, f.Len())
	assert.InDelta(t, 2.0, f.Float(1), 0)
	assert.True(t, f.usable(TypeFloat, 3))
	assert.False(t, f.usable(TypeInt, 3))
	assert.False(t, f.usable(TypeFloat, 2))

	modes := Interpolations(InterpSpline, InterpStep)
	assert.Equal(t, TypeInt, modes.Type())
	assert.Equal(t, int(InterpSpline), modes.Int(0))
	assert.Equal(t, "int", modes.Type().String())
}
