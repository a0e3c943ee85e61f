package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/fixmystl/fixmystl/pkg/geometry"
)

var vertexKeyword = []byte("vertex ")

// ParseFile reads an STL file and returns the decoded mesh
func ParseFile(filename string) (*ParsedMesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data, int64(len(data)))
}

// Parse detects the encoding of data and decodes it. fileSizeBytes is the
// size reported by whoever loaded the bytes and only drives SizeWarning.
// Decode errors are returned unchanged and no partial mesh is produced.
func Parse(data []byte, fileSizeBytes int64) (*ParsedMesh, error) {
	var (
		mesh *ParsedMesh
		err  error
	)

	switch Detect(data) {
	case FormatASCII:
		mesh, err = DecodeASCII(data)
	default:
		mesh, err = DecodeBinary(data)
	}
	if err != nil {
		return nil, err
	}

	mesh.FileSizeBytes = fileSizeBytes
	mesh.SizeWarning = fileSizeBytes > SizeWarningThreshold
	return mesh, nil
}

// DecodeASCII parses an ASCII STL. Only "vertex x y z" lines matter; a vertex
// line whose coordinates do not parse is skipped rather than failing the file.
// The total number of coordinates must form whole triangles.
func DecodeASCII(data []byte) (*ParsedMesh, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	scanner.Split(scanAnyLines)

	var vertices geometry.VertexBuffer

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if !bytes.HasPrefix(line, vertexKeyword) {
			continue
		}

		fields := bytes.Fields(line[len(vertexKeyword):])
		if len(fields) < 3 {
			continue
		}

		var coords [3]float32
		ok := true
		for i := 0; i < 3; i++ {
			// Values beyond float32 range come back as ±Inf with ErrRange.
			v, err := strconv.ParseFloat(string(fields[i]), 32)
			if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(v) {
				ok = false
				break
			}
			coords[i] = float32(v)
		}
		if ok {
			vertices = append(vertices, coords[0], coords[1], coords[2])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	if !vertices.Valid() {
		return nil, &MalformedGeometryError{Values: len(vertices)}
	}

	return &ParsedMesh{
		Format:        FormatASCII,
		Vertices:      vertices,
		TriangleCount: vertices.TriangleCount(),
	}, nil
}

// DecodeBinary parses a binary STL. Stored normals and attribute words are
// ignored; normals are recomputed on export. Bytes beyond the last record are
// tolerated.
func DecodeBinary(data []byte) (*ParsedMesh, error) {
	count, ok := readCount(data)
	if !ok {
		return nil, &TruncatedInputError{Expected: dataOffset, Actual: int64(len(data))}
	}

	expected := binarySize(count)
	if int64(len(data)) < expected {
		return nil, &TruncatedInputError{Expected: expected, Actual: int64(len(data))}
	}

	n := int(count)
	vertices := make(geometry.VertexBuffer, n*geometry.Stride)

	for t := 0; t < n; t++ {
		// Skip the 12-byte stored normal
		record := data[dataOffset+t*recordSize+12:]
		out := vertices[t*geometry.Stride : (t+1)*geometry.Stride]
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(record[4*i:]))
		}
	}

	return &ParsedMesh{
		Format:        FormatBinary,
		Vertices:      vertices,
		TriangleCount: n,
	}, nil
}

// scanAnyLines is a bufio.SplitFunc that ends a line at \n, \r or \r\n.
func scanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\r' {
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				// Need one more byte to know whether this is \r\n
				return 0, nil, nil
			}
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
