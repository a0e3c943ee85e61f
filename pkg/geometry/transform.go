package geometry

import (
	"fmt"
	"math"
)

// Scale returns a new buffer with every scalar multiplied by factor. Always pass
// the decoded original; rescaling an already scaled buffer compounds rounding.
func Scale(original VertexBuffer, factor float64) VertexBuffer {
	out := make(VertexBuffer, len(original))
	for i, v := range original {
		out[i] = float32(float64(v) * factor)
	}
	return out
}

// Translate returns a new buffer with every vertex shifted by offset
func Translate(vertices VertexBuffer, offset Vector3) VertexBuffer {
	return vertices.mapVertices(func(v Vector3) Vector3 {
		return v.Add(offset)
	})
}

// RotateAboutPoint returns a new buffer where each vertex v becomes
// M·(v - center) + center.
func RotateAboutPoint(vertices VertexBuffer, center Vector3, m Matrix3) VertexBuffer {
	return vertices.mapVertices(func(v Vector3) Vector3 {
		return m.Apply(v.Sub(center)).Add(center)
	})
}

// TransformState is the user-controlled transform applied on top of a decoded
// mesh. It is owned by the caller and reset whenever a new file is loaded.
type TransformState struct {
	ScaleFactor float64
	Rotation    Matrix3
	// CenterModel moves the post-transform centroid to the origin.
	CenterModel bool
	// PlaceOnBed shifts the mesh along Z so its lowest point sits at Z=0.
	PlaceOnBed bool
}

// DefaultTransformState returns scale 1, no rotation, no translation.
func DefaultTransformState() TransformState {
	return TransformState{
		ScaleFactor: 1,
		Rotation:    Identity(),
	}
}

// Validate checks that the scale factor is a positive finite number
func (s TransformState) Validate() error {
	if math.IsNaN(s.ScaleFactor) || math.IsInf(s.ScaleFactor, 0) || s.ScaleFactor <= 0 {
		return fmt.Errorf("scale factor must be a positive number, got %v", s.ScaleFactor)
	}
	return nil
}

// Rotate stacks a 90° turn on top of the current orientation.
func (s *TransformState) Rotate(axis Axis, sign int) {
	s.Rotation = ComposeRotation(AxisRotation(axis, sign), s.Rotation)
}

// Apply recomputes the displayed mesh from original: scale, rotate about the
// post-scale centroid, then translate. original is never modified.
func (s TransformState) Apply(original VertexBuffer) VertexBuffer {
	out := Scale(original, s.ScaleFactor)
	if len(out) == 0 {
		return out
	}

	if !s.Rotation.IsIdentity(0) {
		out = RotateAboutPoint(out, Centroid(out), s.Rotation)
	}

	var offset Vector3
	if s.CenterModel || s.PlaceOnBed {
		bbox := ComputeBoundingBox(out)
		if s.CenterModel {
			offset = bbox.Center().Neg()
		}
		if s.PlaceOnBed {
			offset.Z = -bbox.Min.Z
		}
	}
	if offset != (Vector3{}) {
		out = Translate(out, offset)
	}
	return out
}
