package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/fixmystl/fixmystl/internal/testmesh"
	"github.com/fixmystl/fixmystl/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readNormal(data []byte, t int) geometry.Vector3 {
	record := data[dataOffset+t*recordSize:]
	return geometry.NewVector3(
		float64(math.Float32frombits(binary.LittleEndian.Uint32(record[0:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(record[4:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(record[8:]))),
	)
}

func TestEncodeDecodeScenario(t *testing.T) {
	input := createTestBinary("FixMySTL", [][9]float32{{0, 0, 0, 1, 0, 0, 0, 1, 0}})

	mesh, err := Parse(input, int64(len(input)))
	require.NoError(t, err)
	require.Equal(t, 1, mesh.TriangleCount)
	assert.Equal(t, geometry.VertexBuffer{0, 0, 0, 1, 0, 0, 0, 1, 0}, mesh.Vertices)

	out, err := EncodeBinary(mesh.Vertices, mesh.TriangleCount)
	require.NoError(t, err)

	assert.Len(t, out, 134)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(out[80:84]))
	assert.Equal(t, geometry.NewVector3(0, 0, 1), readNormal(out, 0))
	assert.Equal(t, []byte{0, 0}, out[132:134])
}

func TestEncodeHeader(t *testing.T) {
	out, err := EncodeBinary(testmesh.RightTriangle(), 1)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte(HeaderText)))
	assert.Equal(t, make([]byte, 80-len(HeaderText)), out[len(HeaderText):80])
}

func TestEncodeRoundTrip(t *testing.T) {
	original := testmesh.Scaled(25.4)

	first, err := EncodeBinary(original, original.TriangleCount())
	require.NoError(t, err)

	mesh, err := Parse(first, int64(len(first)))
	require.NoError(t, err)
	assert.Equal(t, FormatBinary, mesh.Format)
	assert.Equal(t, original, mesh.Vertices)

	second, err := EncodeBinary(mesh.Vertices, mesh.TriangleCount)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for i := 0; i < mesh.TriangleCount; i++ {
		assert.InDelta(t, 1.0, readNormal(second, i).Length(), 1e-6)
	}
}

func TestEncodeDegenerateNormal(t *testing.T) {
	vertices := geometry.VertexBuffer{
		1, 1, 1, 1, 1, 1, 1, 1, 1,
		0, 0, 0, 1, 1, 1, 2, 2, 2,
	}

	out, err := EncodeBinary(vertices, 2)
	require.NoError(t, err)

	assert.Equal(t, geometry.NewVector3(0, 0, 1), readNormal(out, 0))
	assert.Equal(t, geometry.NewVector3(0, 0, 1), readNormal(out, 1))
}

func TestEncodeEmpty(t *testing.T) {
	out, err := EncodeBinary(nil, 0)
	require.NoError(t, err)
	assert.Len(t, out, 84)
}

func TestEncodeRejectsCountMismatch(t *testing.T) {
	_, err := EncodeBinary(testmesh.RightTriangle(), 2)
	assert.True(t, errors.Is(err, ErrVertexCountMismatch))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	require.NoError(t, WriteFile(path, testmesh.UnitCube()))

	mesh, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, mesh.TriangleCount)
	assert.Equal(t, testmesh.UnitCube(), mesh.Vertices)
}
