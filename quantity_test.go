package ucum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantityAddSameUnit(t *testing.T) {
	a, err := NewQuantity(2, "g")
	require.NoError(t, err)
	b, err := NewQuantity(3, "g")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, sum.Value, 1e-9)
	require.Equal(t, "g", sum.Unit)
}

func TestQuantityAddConvertsUnits(t *testing.T) {
	a, err := NewQuantity(1, "kg")
	require.NoError(t, err)
	b, err := NewQuantity(500, "g")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.InDelta(t, 1.5, sum.Value, 1e-9)
}

func TestQuantityAddIncompatibleDimensionErrors(t *testing.T) {
	a, err := NewQuantity(1, "kg")
	require.NoError(t, err)
	b, err := NewQuantity(1, "s")
	require.NoError(t, err)

	_, err = a.Add(b)
	require.Error(t, err)
}

func TestQuantityAddRejectsSpecialUnits(t *testing.T) {
	a, err := NewQuantity(10, "Cel")
	require.NoError(t, err)
	b, err := NewQuantity(5, "Cel")
	require.NoError(t, err)

	_, err = a.Add(b)
	require.Error(t, err)
}

func TestQuantityMultiplyComposesUnits(t *testing.T) {
	mass, err := NewQuantity(2, "kg")
	require.NoError(t, err)
	accel, err := NewQuantity(3, "m/s2")
	require.NoError(t, err)

	force, err := mass.Multiply(accel)
	require.NoError(t, err)
	require.InDelta(t, 6.0, force.Value, 1e-9)
	require.Equal(t, "(kg).(m/s2)", force.Unit)

	newton := canonicalizeString(t, "N")
	require.True(t, EqualDimension(newton.Dimension, force.Dimension()))
}

func TestQuantityDivide(t *testing.T) {
	distance, err := NewQuantity(100, "m")
	require.NoError(t, err)
	duration, err := NewQuantity(10, "s")
	require.NoError(t, err)

	speed, err := distance.Divide(duration)
	require.NoError(t, err)
	require.InDelta(t, 10.0, speed.Value, 1e-9)
}

func TestQuantityDivideByZeroErrors(t *testing.T) {
	a, err := NewQuantity(1, "m")
	require.NoError(t, err)
	zero, err := NewQuantity(0, "s")
	require.NoError(t, err)

	_, err = a.Divide(zero)
	require.Error(t, err)
}

func TestQuantityPow(t *testing.T) {
	length, err := NewQuantity(3, "m")
	require.NoError(t, err)

	area, err := length.Pow(2)
	require.NoError(t, err)
	require.InDelta(t, 9.0, area.Value, 1e-9)
	require.Equal(t, "(m)^2", area.Unit)
}
