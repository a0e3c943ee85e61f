package stl

import (
	"bytes"
	"encoding/binary"
)

// createTestBinary builds a binary STL with the given header text and
// triangles. Stored normals are filled with junk to prove they are ignored.
func createTestBinary(header string, triangles [][9]float32) []byte {
	buf := new(bytes.Buffer)

	var h [80]byte
	copy(h[:], header)
	buf.Write(h[:])

	binary.Write(buf, binary.LittleEndian, uint32(len(triangles)))

	for _, tri := range triangles {
		binary.Write(buf, binary.LittleEndian, [3]float32{9, 9, 9})
		binary.Write(buf, binary.LittleEndian, tri)
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}

	return buf.Bytes()
}

const asciiTriangle = `solid test
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid test
`
