package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

func samples() []Vec3[float64] {
	out := []Vec3[float64]{
		New(1.3, 0.0, -5.35501),
		New(1.0, 2.0, 3.0),
		New(-4.0, 0.5, 12.0),
		XAxis, YAxis, ZAxis, One,
	}
	for i := 0; i < 16; i++ {
		out = append(out, Random[float64]().Sub(New(0.5, 0.5, 0.5)).Scale(100))
	}
	return out
}

func TestCreate(t *testing.T) {
	v := New(1.3, 0.0, -5.35501)
	assert.Equal(t, 1.3, v.X)
	assert.Equal(t, 0.0, v.Y)
	assert.Equal(t, -5.35501, v.Z)

	x, y, z := v.Components()
	assert.Equal(t, [3]float64{x, y, z}, v.Array())
}

func TestConstants(t *testing.T) {
	assert.Equal(t, One, Zero.Add(XAxis).Add(YAxis).Add(ZAxis))
	assert.Equal(t, New[float32](1, 0, 0), UnitX[float32]())
	assert.Equal(t, New[float32](0, 1, 0), UnitY[float32]())
	assert.Equal(t, New[float32](0, 0, 1), UnitZ[float32]())
	assert.Equal(t, XAxis, Vec3[float64]{1, 0, 0})
}

func TestArithmetic(t *testing.T) {
	a := New(1.0, 2.0, 3.0)
	b := New(5.0, 0.0, -1.0)

	assert.Equal(t, New(6.0, 2.0, 2.0), a.Add(b))
	assert.Equal(t, New(-4.0, 2.0, 4.0), a.Sub(b))
	assert.Equal(t, New(-1.0, -2.0, -3.0), a.Neg())
	assert.Equal(t, New(2.0, 4.0, 6.0), a.Scale(2))
	assert.Equal(t, New(0.5, 1.0, 1.5), a.Divide(2))
	assert.Equal(t, New(5.0, 0.0, -3.0), a.MulComponents(b))
	assert.Equal(t, New(0.5, 1.0, 1.5), a.DivComponents(New(2.0, 2.0, 2.0)))
}

func TestAddCommutesAndNegates(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			assert.Equal(t, a.Add(b), b.Add(a))
		}
		assert.Equal(t, Zero, a.Add(a.Neg()))
	}
}

func TestDivideByZero(t *testing.T) {
	v := New(1.0, -1.0, 0.0).Divide(0)
	assert.True(t, math.IsInf(v.X, 1))
	assert.True(t, math.IsInf(v.Y, -1))
	assert.True(t, math.IsNaN(v.Z))
	assert.False(t, v.IsFinite())
	assert.True(t, v.IsNaN())

	assert.NotPanics(t, func() {
		_ = Zero.Divide(math.NaN())
	})
}

func TestMinMax(t *testing.T) {
	a := New(1.0, 5.0, 3.0)
	b := New(3.0, 2.0, 4.0)
	assert.Equal(t, New(3.0, 5.0, 4.0), a.Max(b))
	assert.Equal(t, New(1.0, 2.0, 3.0), a.Min(b))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", New(1.0, 2.5, -3.0).String())
	assert.Equal(t, "(0.1, 0, 0)", New[float32](0.1, 0, 0).String())
}

func TestFloat32(t *testing.T) {
	v := New[float32](3, 4, 0)
	assert.Equal(t, float32(5), v.Magnitude())
	assert.InDelta(t, 1.0, float64(v.Normalized().Magnitude()), 1e-6)
	assert.Equal(t, New[float32](0, 0, 1), UnitX[float32]().Cross(UnitY[float32]()))
}

func TestIsFinite(t *testing.T) {
	require.True(t, One.IsFinite())
	require.False(t, One.IsNaN())
	assert.False(t, New(math.Inf(1), 0, 0).IsFinite())
	assert.False(t, New(0, 0, math.Inf(1)).IsNaN())
}
