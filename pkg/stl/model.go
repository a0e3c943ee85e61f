package stl

import (
	"fmt"

	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// SizeWarningThreshold is the file size above which ParsedMesh.SizeWarning is
// set. It is advisory only and never changes how a file is parsed.
const SizeWarningThreshold = 200 * 1024 * 1024

// Format identifies which STL encoding a buffer uses
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
)

// String returns "binary" or "ascii"
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParsedMesh is the result of decoding a file. It is the immutable original
// that every transform is recomputed from; nothing may modify Vertices after
// Parse returns.
type ParsedMesh struct {
	Format        Format
	Vertices      geometry.VertexBuffer
	TriangleCount int
	FileSizeBytes int64
	SizeWarning   bool
}

// BoundingBox calculates the bounding box of the decoded mesh
func (m *ParsedMesh) BoundingBox() geometry.BoundingBox {
	return geometry.ComputeBoundingBox(m.Vertices)
}

// IsEmpty reports whether the file contained no triangles
func (m *ParsedMesh) IsEmpty() bool {
	return m.TriangleCount == 0
}
