package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Matrix3 is a row-major 3x3 matrix. It holds the cumulative orientation of a
// mesh relative to the decoded original.
type Matrix3 [9]float64

// Identity returns the identity matrix
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Axis selects one of the three coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lower-case axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis accepts "x", "y" or "z" in either case
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q (must be x, y or z)", s)
}

// quarterTurns holds the six canonical 90° rotations, indexed by axis and then
// by direction (0 = positive/counter-clockwise, 1 = negative).
var quarterTurns = [3][2]Matrix3{
	AxisX: {
		{1, 0, 0, 0, 0, -1, 0, 1, 0},
		{1, 0, 0, 0, 0, 1, 0, -1, 0},
	},
	AxisY: {
		{0, 0, 1, 0, 1, 0, -1, 0, 0},
		{0, 0, -1, 0, 1, 0, 1, 0, 0},
	},
	AxisZ: {
		{0, -1, 0, 1, 0, 0, 0, 0, 1},
		{0, 1, 0, -1, 0, 0, 0, 0, 1},
	},
}

// AxisRotation returns the 90° rotation about axis. A negative sign selects the
// clockwise turn; any other value the counter-clockwise one.
func AxisRotation(axis Axis, sign int) Matrix3 {
	if axis < AxisX || axis > AxisZ {
		return Identity()
	}
	if sign < 0 {
		return quarterTurns[axis][1]
	}
	return quarterTurns[axis][0]
}

// ComposeRotation returns the product a·b. To stack a new turn on top of the
// existing orientation, pass the new turn as a and the history as b.
func ComposeRotation(a, b Matrix3) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = a[r*3]*b[c] + a[r*3+1]*b[3+c] + a[r*3+2]*b[6+c]
		}
	}
	return out
}

// Apply returns M·v
func (m Matrix3) Apply(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// IsIdentity reports whether m equals the identity within eps
func (m Matrix3) IsIdentity(eps float64) bool {
	return m.ApproxEqual(Identity(), eps)
}

// ApproxEqual compares all nine entries within eps
func (m Matrix3) ApproxEqual(other Matrix3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}
