package geometry

// DegenerateEpsilon is the cross-product magnitude below which a triangle is
// treated as having zero area.
const DegenerateEpsilon = 1e-12

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Cross returns (V2-V1) x (V3-V1). Its direction follows the right-hand rule on
// the winding and its length is twice the area.
func (t Triangle) Cross() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
}

// Normal returns the unit face normal. Degenerate triangles get (0,0,1).
func (t Triangle) Normal() Vector3 {
	cross := t.Cross()
	length := cross.Length()
	if length < DegenerateEpsilon {
		return Vector3{Z: 1}
	}
	return cross.Mul(1.0 / length)
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.Cross().Length() / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron spanned by the
// origin and the triangle.
func (t Triangle) SignedVolume() float64 {
	return t.V1.Dot(t.V2.Cross(t.V3)) / 6.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}
