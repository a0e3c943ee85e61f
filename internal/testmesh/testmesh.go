// Package testmesh builds small, hand-checked meshes for tests.
package testmesh

import "github.com/fixmystl/fixmystl/pkg/geometry"

// UnitCube returns the axis-aligned cube [0,1]^3 as 12 outward-wound triangles.
func UnitCube() geometry.VertexBuffer {
	return geometry.VertexBuffer{
		// bottom (z=0)
		0, 0, 0, 0, 1, 0, 1, 1, 0,
		0, 0, 0, 1, 1, 0, 1, 0, 0,
		// top (z=1)
		0, 0, 1, 1, 0, 1, 1, 1, 1,
		0, 0, 1, 1, 1, 1, 0, 1, 1,
		// front (y=0)
		0, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 0, 1, 0, 1, 0, 0, 1,
		// back (y=1)
		0, 1, 0, 0, 1, 1, 1, 1, 1,
		0, 1, 0, 1, 1, 1, 1, 1, 0,
		// left (x=0)
		0, 0, 0, 0, 0, 1, 0, 1, 1,
		0, 0, 0, 0, 1, 1, 0, 1, 0,
		// right (x=1)
		1, 0, 0, 1, 1, 0, 1, 1, 1,
		1, 0, 0, 1, 1, 1, 1, 0, 1,
	}
}

// Plate returns a flat square of side 1 at z=0. When up is true the two
// triangles are wound so their normals point +Z, otherwise -Z.
func Plate(up bool) geometry.VertexBuffer {
	if up {
		return geometry.VertexBuffer{
			0, 0, 0, 1, 0, 0, 1, 1, 0,
			0, 0, 0, 1, 1, 0, 0, 1, 0,
		}
	}
	return geometry.VertexBuffer{
		0, 0, 0, 1, 1, 0, 1, 0, 0,
		0, 0, 0, 0, 1, 0, 1, 1, 0,
	}
}

// RightTriangle returns the single triangle (0,0,0), (1,0,0), (0,1,0).
func RightTriangle() geometry.VertexBuffer {
	return geometry.VertexBuffer{0, 0, 0, 1, 0, 0, 0, 1, 0}
}

// Scaled returns a cube of the given edge length, built from UnitCube.
func Scaled(edge float32) geometry.VertexBuffer {
	out := UnitCube()
	for i := range out {
		out[i] *= edge
	}
	return out
}
