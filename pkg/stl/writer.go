package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// HeaderText is written at the start of every exported file. Readers ignore it.
const HeaderText = "FixMySTL binary export"

// EncodeBinary serializes vertices as a binary STL of exactly
// 84 + 50*triangleCount bytes. Each record gets a freshly computed unit normal;
// zero-area triangles get (0,0,1).
func EncodeBinary(vertices geometry.VertexBuffer, triangleCount int) ([]byte, error) {
	if triangleCount < 0 || len(vertices) != triangleCount*geometry.Stride {
		return nil, fmt.Errorf("%w: %d values for %d triangles", ErrVertexCountMismatch, len(vertices), triangleCount)
	}
	if int64(triangleCount) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d triangles exceeds the binary STL limit", ErrVertexCountMismatch, triangleCount)
	}

	buf := make([]byte, binarySize(uint32(triangleCount)))
	copy(buf[:headerSize], HeaderText)
	binary.LittleEndian.PutUint32(buf[headerSize:dataOffset], uint32(triangleCount))

	for t := 0; t < triangleCount; t++ {
		record := buf[dataOffset+t*recordSize : dataOffset+(t+1)*recordSize]

		normal := vertices.Triangle(t).Normal()
		putFloat32(record[0:], float32(normal.X))
		putFloat32(record[4:], float32(normal.Y))
		putFloat32(record[8:], float32(normal.Z))

		for i, v := range vertices[t*geometry.Stride : (t+1)*geometry.Stride] {
			putFloat32(record[12+4*i:], v)
		}
		// attribute byte count stays zero
	}

	return buf, nil
}

// WriteBinary encodes vertices and writes them to w
func WriteBinary(w io.Writer, vertices geometry.VertexBuffer) error {
	data, err := EncodeBinary(vertices, vertices.TriangleCount())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write STL: %w", err)
	}
	return nil
}

// WriteFile writes vertices to filename as binary STL
func WriteFile(filename string, vertices geometry.VertexBuffer) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteBinary(file, vertices); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
