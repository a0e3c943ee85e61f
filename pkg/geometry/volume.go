package geometry

import "math"

// SignedVolume sums the signed tetrahedra formed by each triangle and the
// origin (divergence theorem). The result equals the enclosed volume only for
// a closed, consistently wound mesh; anything else yields a meaningless but
// finite number.
func SignedVolume(vertices VertexBuffer) float64 {
	volume := 0.0
	n := vertices.TriangleCount()
	for t := 0; t < n; t++ {
		volume += vertices.Triangle(t).SignedVolume()
	}
	return volume
}

// Volume returns the absolute value of SignedVolume, so inward-wound meshes
// still report a positive amount of material.
func Volume(vertices VertexBuffer) float64 {
	return math.Abs(SignedVolume(vertices))
}

// SurfaceArea calculates the total surface area of the mesh
func SurfaceArea(vertices VertexBuffer) float64 {
	total := 0.0
	n := vertices.TriangleCount()
	for t := 0; t < n; t++ {
		total += vertices.Triangle(t).Area()
	}
	return total
}
