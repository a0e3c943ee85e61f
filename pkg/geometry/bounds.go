package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min  Vector3
	Max  Vector3
	Size Vector3
}

// ComputeBoundingBox scans every scalar once, tracking componentwise min/max.
// An empty buffer yields +Inf minima and -Inf maxima; callers must not feed a
// zero-triangle mesh into downstream transforms.
func ComputeBoundingBox(vertices VertexBuffer) BoundingBox {
	min := Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for i := 0; i+2 < len(vertices); i += 3 {
		x, y, z := float64(vertices[i]), float64(vertices[i+1]), float64(vertices[i+2])
		if x < min.X {
			min.X = x
		}
		if x > max.X {
			max.X = x
		}
		if y < min.Y {
			min.Y = y
		}
		if y > max.Y {
			max.Y = y
		}
		if z < min.Z {
			min.Z = z
		}
		if z > max.Z {
			max.Z = z
		}
	}

	return BoundingBox{Min: min, Max: max, Size: max.Sub(min)}
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size.Length()
}

// Volume returns the volume of the box itself, not of the mesh inside it
func (b BoundingBox) Volume() float64 {
	return b.Size.X * b.Size.Y * b.Size.Z
}

// IsFinite reports whether both corners are finite, i.e. the box was computed
// from at least one vertex.
func (b BoundingBox) IsFinite() bool {
	return b.Min.IsFinite() && b.Max.IsFinite()
}

// Centroid returns the pivot used for rotation and centering: the center of the
// mesh bounding box.
func Centroid(vertices VertexBuffer) Vector3 {
	return ComputeBoundingBox(vertices).Center()
}
