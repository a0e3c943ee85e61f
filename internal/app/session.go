// Package app holds the application layer: the loaded mesh, the user's
// transform and the hooks that display and record it.
package app

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/fixmystl/fixmystl/pkg/analysis"
	"github.com/fixmystl/fixmystl/pkg/estimate"
	"github.com/fixmystl/fixmystl/pkg/geometry"
	"github.com/fixmystl/fixmystl/pkg/stl"
)

// ErrNoMesh is returned by operations that need a loaded mesh.
var ErrNoMesh = errors.New("no mesh loaded")

// ErrEmptyMesh is returned by Load for files without triangles.
var ErrEmptyMesh = errors.New("file contains no triangles")

// Session owns one decoded mesh and the transform applied to it. The decoded
// original is never modified; the displayed mesh is recomputed from it after
// every change.
type Session struct {
	mu       sync.RWMutex
	name     string
	original *stl.ParsedMesh
	state    geometry.TransformState
	current  geometry.VertexBuffer

	preview Preview
	tracker Tracker
	log     *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithPreview attaches a preview that follows every change
func WithPreview(p Preview) Option {
	return func(s *Session) { s.preview = p }
}

// WithTracker attaches an event tracker
func WithTracker(t Tracker) Option {
	return func(s *Session) { s.tracker = t }
}

// WithLogger sets the session logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession creates an empty session
func NewSession(opts ...Option) *Session {
	s := &Session{
		state: geometry.DefaultTransformState(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load decodes data and replaces the current mesh. The transform is reset to
// its defaults. On error the previous mesh stays loaded.
func (s *Session) Load(name string, data []byte) error {
	mesh, err := stl.Parse(data, int64(len(data)))
	if err != nil {
		s.log.Warn("failed to parse file", zap.String("file", name), zap.Error(err))
		return err
	}
	if mesh.IsEmpty() {
		return fmt.Errorf("%s: %w", name, ErrEmptyMesh)
	}

	s.mu.Lock()
	s.name = name
	s.original = mesh
	s.state = geometry.DefaultTransformState()
	s.current = s.state.Apply(mesh.Vertices)
	current := s.current
	s.mu.Unlock()

	bbox := geometry.ComputeBoundingBox(current)
	s.log.Info("loaded mesh",
		zap.String("file", name),
		zap.Stringer("format", mesh.Format),
		zap.Int("triangles", mesh.TriangleCount),
		zap.Int64("bytes", mesh.FileSizeBytes),
	)
	if mesh.SizeWarning {
		s.log.Warn("large file, processing may be slow", zap.String("file", name), zap.Int64("bytes", mesh.FileSizeBytes))
	}

	if s.preview != nil {
		s.preview.SetMesh(current, mesh.TriangleCount, bbox)
	}
	s.track("file_loaded", map[string]any{
		"format":    mesh.Format.String(),
		"triangles": mesh.TriangleCount,
		"bytes":     mesh.FileSizeBytes,
	})
	return nil
}

// Original returns the decoded mesh, or nil before Load
func (s *Session) Original() *stl.ParsedMesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original
}

// Name returns the name passed to the last successful Load
func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// State returns a copy of the transform state
func (s *Session) State() geometry.TransformState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Mesh returns the transformed vertices. Callers must not modify them.
func (s *Session) Mesh() (geometry.VertexBuffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.original == nil {
		return nil, ErrNoMesh
	}
	return s.current, nil
}

// SetScale replaces the scale factor. The new mesh is scaled from the
// original, not from the previous result.
func (s *Session) SetScale(factor float64) error {
	return s.update("scale_applied", map[string]any{"factor": factor}, func(st *geometry.TransformState) error {
		next := *st
		next.ScaleFactor = factor
		if err := next.Validate(); err != nil {
			return err
		}
		*st = next
		return nil
	})
}

// Rotate stacks a 90° turn on top of the current orientation
func (s *Session) Rotate(axis geometry.Axis, sign int) error {
	return s.update("rotate", map[string]any{"axis": axis.String(), "sign": sign}, func(st *geometry.TransformState) error {
		st.Rotate(axis, sign)
		return nil
	})
}

// SetCenter toggles moving the mesh center to the origin
func (s *Session) SetCenter(center bool) error {
	return s.update("center_toggled", map[string]any{"center": center}, func(st *geometry.TransformState) error {
		st.CenterModel = center
		return nil
	})
}

// SetPlaceOnBed toggles dropping the mesh onto Z=0
func (s *Session) SetPlaceOnBed(onBed bool) error {
	return s.update("bed_toggled", map[string]any{"on_bed": onBed}, func(st *geometry.TransformState) error {
		st.PlaceOnBed = onBed
		return nil
	})
}

// ApplyState replaces the whole transform state at once
func (s *Session) ApplyState(state geometry.TransformState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	return s.update("transform_applied", nil, func(st *geometry.TransformState) error {
		*st = state
		return nil
	})
}

// Reset restores the default transform
func (s *Session) Reset() error {
	return s.update("reset", nil, func(st *geometry.TransformState) error {
		*st = geometry.DefaultTransformState()
		return nil
	})
}

// Stats are the derived numbers for the current mesh
type Stats struct {
	Report   *analysis.Report
	Material estimate.MaterialEstimate
	Overhang estimate.Overhang
}

// Stats measures the transformed mesh
func (s *Session) Stats(settings estimate.Settings, overhangThreshold float64) (*Stats, error) {
	vertices, err := s.Mesh()
	if err != nil {
		return nil, err
	}

	report := analysis.AnalyzeMesh(vertices)
	return &Stats{
		Report:   report,
		Material: estimate.Material(report.Volume, settings),
		Overhang: estimate.OverhangRisk(vertices, overhangThreshold),
	}, nil
}

// Export encodes the transformed mesh as binary STL
func (s *Session) Export() ([]byte, error) {
	vertices, err := s.Mesh()
	if err != nil {
		return nil, err
	}

	data, err := stl.EncodeBinary(vertices, vertices.TriangleCount())
	if err != nil {
		return nil, err
	}

	s.log.Info("exported mesh", zap.Int("triangles", vertices.TriangleCount()), zap.Int("bytes", len(data)))
	s.track("download", map[string]any{"bytes": len(data)})
	return data, nil
}

// update mutates the transform state and recomputes the mesh
func (s *Session) update(event string, fields map[string]any, mutate func(*geometry.TransformState) error) error {
	s.mu.Lock()
	if s.original == nil {
		s.mu.Unlock()
		return ErrNoMesh
	}
	if err := mutate(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = s.state.Apply(s.original.Vertices)
	current := s.current
	s.mu.Unlock()

	if s.preview != nil {
		s.preview.UpdateMeshPositions(current)
	}
	s.track(event, fields)
	return nil
}

func (s *Session) track(event string, fields map[string]any) {
	if s.tracker != nil {
		s.tracker.Track(event, fields)
	}
}
