package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisRotationQuarterTurns(t *testing.T) {
	tests := []struct {
		axis     Axis
		sign     int
		in       Vector3
		expected Vector3
	}{
		{AxisX, 1, NewVector3(0, 1, 0), NewVector3(0, 0, 1)},
		{AxisX, -1, NewVector3(0, 1, 0), NewVector3(0, 0, -1)},
		{AxisY, 1, NewVector3(0, 0, 1), NewVector3(1, 0, 0)},
		{AxisY, -1, NewVector3(0, 0, 1), NewVector3(-1, 0, 0)},
		{AxisZ, 1, NewVector3(1, 0, 0), NewVector3(0, 1, 0)},
		{AxisZ, -1, NewVector3(1, 0, 0), NewVector3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			got := AxisRotation(tt.axis, tt.sign).Apply(tt.in)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, sign := range []int{1, -1} {
			m := Identity()
			for i := 0; i < 4; i++ {
				m = ComposeRotation(AxisRotation(axis, sign), m)
			}
			assert.True(t, m.IsIdentity(1e-12), "axis %s sign %d: got %v", axis, sign, m)
		}
	}
}

func TestOppositeTurnsCancel(t *testing.T) {
	m := ComposeRotation(AxisRotation(AxisY, -1), AxisRotation(AxisY, 1))
	assert.True(t, m.IsIdentity(0))
}

func TestComposeRotationOrder(t *testing.T) {
	x := AxisRotation(AxisX, 1)
	z := AxisRotation(AxisZ, 1)

	// Rotating about X first, then Z: the newest turn is the left operand.
	xThenZ := ComposeRotation(z, x)
	zThenX := ComposeRotation(x, z)

	require.False(t, xThenZ.ApproxEqual(zThenX, 1e-12), "quarter turns about different axes must not commute")

	v := NewVector3(0, 1, 0)
	assert.Equal(t, z.Apply(x.Apply(v)), xThenZ.Apply(v))
}

func TestComposeRotationIdentity(t *testing.T) {
	m := AxisRotation(AxisZ, -1)
	assert.Equal(t, m, ComposeRotation(Identity(), m))
	assert.Equal(t, m, ComposeRotation(m, Identity()))
}

func TestParseAxis(t *testing.T) {
	axis, err := ParseAxis("Y")
	require.NoError(t, err)
	assert.Equal(t, AxisY, axis)

	_, err = ParseAxis("w")
	assert.Error(t, err)
}
