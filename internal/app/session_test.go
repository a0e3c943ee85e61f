package app

import (
	"testing"

	"github.com/fixmystl/fixmystl/internal/testmesh"
	"github.com/fixmystl/fixmystl/pkg/estimate"
	"github.com/fixmystl/fixmystl/pkg/geometry"
	"github.com/fixmystl/fixmystl/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreview struct {
	setCalls    int
	updateCalls int
	triangles   int
	bbox        geometry.BoundingBox
	last        geometry.VertexBuffer
}

func (p *fakePreview) SetMesh(vertices geometry.VertexBuffer, triangleCount int, bbox geometry.BoundingBox) {
	p.setCalls++
	p.triangles = triangleCount
	p.bbox = bbox
	p.last = vertices
}

func (p *fakePreview) UpdateMeshPositions(vertices geometry.VertexBuffer) {
	p.updateCalls++
	p.last = vertices
}

type fakeTracker struct {
	events []string
}

func (t *fakeTracker) Track(event string, _ map[string]any) {
	t.events = append(t.events, event)
}

func cubeFile(t *testing.T, edge float32) []byte {
	t.Helper()
	vertices := testmesh.Scaled(edge)
	data, err := stl.EncodeBinary(vertices, vertices.TriangleCount())
	require.NoError(t, err)
	return data
}

func TestSessionRequiresMesh(t *testing.T) {
	s := NewSession()

	_, err := s.Mesh()
	assert.ErrorIs(t, err, ErrNoMesh)
	assert.ErrorIs(t, s.SetScale(2), ErrNoMesh)
	assert.ErrorIs(t, s.Rotate(geometry.AxisX, 1), ErrNoMesh)
	_, err = s.Export()
	assert.ErrorIs(t, err, ErrNoMesh)
}

func TestSessionLoad(t *testing.T) {
	preview := &fakePreview{}
	tracker := &fakeTracker{}
	s := NewSession(WithPreview(preview), WithTracker(tracker))

	require.NoError(t, s.Load("cube.stl", cubeFile(t, 2)))

	assert.Equal(t, "cube.stl", s.Name())
	assert.Equal(t, stl.FormatBinary, s.Original().Format)
	assert.Equal(t, 1, preview.setCalls)
	assert.Equal(t, 12, preview.triangles)
	assert.Equal(t, geometry.NewVector3(2, 2, 2), preview.bbox.Size)
	assert.Equal(t, []string{"file_loaded"}, tracker.events)
}

func TestSessionLoadErrors(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load("cube.stl", cubeFile(t, 1)))

	err := s.Load("broken.stl", make([]byte, 83))
	assert.ErrorIs(t, err, stl.ErrTruncatedInput)
	assert.Equal(t, "cube.stl", s.Name(), "failed load keeps previous mesh")

	err = s.Load("empty.stl", []byte("solid empty\nfacet normal 0 0 1\nendsolid empty\n"))
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestSessionLoadResetsTransform(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load("a.stl", cubeFile(t, 1)))
	require.NoError(t, s.SetScale(25.4))
	require.NoError(t, s.Rotate(geometry.AxisZ, 1))
	require.NoError(t, s.SetCenter(true))

	require.NoError(t, s.Load("b.stl", cubeFile(t, 3)))

	assert.Equal(t, geometry.DefaultTransformState(), s.State())
	mesh, err := s.Mesh()
	require.NoError(t, err)
	assert.Equal(t, testmesh.Scaled(3), mesh)
}

func TestSessionScaleRecomputesFromOriginal(t *testing.T) {
	preview := &fakePreview{}
	s := NewSession(WithPreview(preview))
	require.NoError(t, s.Load("cube.stl", cubeFile(t, 1)))

	require.NoError(t, s.SetScale(3))
	require.NoError(t, s.SetScale(0.7))
	require.NoError(t, s.SetScale(10))

	mesh, err := s.Mesh()
	require.NoError(t, err)
	assert.Equal(t, geometry.Scale(testmesh.UnitCube(), 10), mesh)
	assert.Equal(t, testmesh.UnitCube(), s.Original().Vertices)
	assert.Equal(t, 3, preview.updateCalls)
}

func TestSessionRejectsInvalidScale(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load("cube.stl", cubeFile(t, 1)))
	require.NoError(t, s.SetScale(2))

	assert.Error(t, s.SetScale(0))
	assert.Equal(t, 2.0, s.State().ScaleFactor)
}

func TestSessionRotateAndReset(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load("cube.stl", cubeFile(t, 1)))

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Rotate(geometry.AxisY, -1))
	}
	assert.True(t, s.State().Rotation.IsIdentity(1e-12))

	require.NoError(t, s.Rotate(geometry.AxisX, 1))
	require.NoError(t, s.Reset())
	assert.Equal(t, geometry.DefaultTransformState(), s.State())
}

func TestSessionStats(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load("cube.stl", cubeFile(t, 10)))
	require.NoError(t, s.SetPlaceOnBed(true))

	stats, err := s.Stats(estimate.DefaultSettings(), 45)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, stats.Report.Volume, 1e-3)
	assert.InDelta(t, 0.0, stats.Report.BoundingBox.Min.Z, 1e-6)
	assert.InDelta(t, 100.0/6.0, stats.Overhang.Pct, 1e-6)
	assert.Greater(t, stats.Material.MassGrams, 0.0)
}

func TestSessionExport(t *testing.T) {
	tracker := &fakeTracker{}
	s := NewSession(WithTracker(tracker))
	require.NoError(t, s.Load("cube.stl", cubeFile(t, 1)))
	require.NoError(t, s.ApplyState(geometry.TransformState{ScaleFactor: 2, Rotation: geometry.Identity()}))

	data, err := s.Export()
	require.NoError(t, err)
	assert.Len(t, data, 84+50*12)

	mesh, err := stl.Parse(data, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, testmesh.Scaled(2), mesh.Vertices)
	assert.Equal(t, "download", tracker.events[len(tracker.events)-1])

	assert.Error(t, s.ApplyState(geometry.TransformState{}), "zero scale is rejected")
}
