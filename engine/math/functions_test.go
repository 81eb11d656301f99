package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3DivScalar(t *testing.T) {
	v := NewVec3(10, 20, 30)

	result, err := v.DivScalar(2)
	assert.NoError(t, err)
	assert.True(t, result.Compare(NewVec3(5, 10, 15), K_FLOAT_EPSILON))
}

func TestVec3DivScalarByZero(t *testing.T) {
	v := NewVec3(10, 20, 30)

	_, err := v.DivScalar(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestVec3Div(t *testing.T) {
	v := NewVec3(10, 20, 30)

	result, err := v.Div(NewVec3(2, 4, 5))
	assert.NoError(t, err)
	assert.True(t, result.Compare(NewVec3(5, 5, 6), K_FLOAT_EPSILON))
}

func TestVec3DivZeroComponent(t *testing.T) {
	v := NewVec3(10, 20, 30)

	// A single zero component fails the whole division; no Inf/NaN leaks.
	_, err := v.Div(NewVec3(2, 0, 5))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestVec2DivScalarByZero(t *testing.T) {
	v := NewVec2(4, 8)

	_, err := v.DivScalar(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestVec3At(t *testing.T) {
	v := NewVec3(1, 2, 3)

	for i, expected := range []float32{1, 2, 3} {
		got, err := v.At(i)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := v.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVec2At(t *testing.T) {
	v := NewVec2(1, 2)

	_, err := v.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)

	n := v.Normalize()
	assert.InDelta(t, 1.0, float64(n.Length()), 1e-6)
}

func TestQuatIdentity(t *testing.T) {
	q := NewQuatIdentity()

	assert.Equal(t, float32(1.0), q.W)
	assert.InDelta(t, 1.0, float64(q.Normal()), 1e-6)
}

func TestDegRadRoundTrip(t *testing.T) {
	assert.InDelta(t, 90.0, float64(RadToDeg(DegToRad(90))), 1e-4)
}
