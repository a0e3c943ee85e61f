package app

import (
	"go.uber.org/zap"

	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// Preview displays the current mesh. SetMesh is called when a file is
// loaded; UpdateMeshPositions whenever the transform changes.
type Preview interface {
	SetMesh(vertices geometry.VertexBuffer, triangleCount int, bbox geometry.BoundingBox)
	UpdateMeshPositions(vertices geometry.VertexBuffer)
}

// Tracker records user actions. It must not block; failures are its own
// business.
type Tracker interface {
	Track(event string, fields map[string]any)
}

// LogTracker writes tracked events to a zap logger at debug level.
type LogTracker struct {
	Log *zap.Logger
}

// Track implements Tracker
func (t LogTracker) Track(event string, fields map[string]any) {
	if t.Log == nil {
		return
	}
	zf := make([]zap.Field, 0, len(fields)+1)
	zf = append(zf, zap.String("event", event))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	t.Log.Debug("track", zf...)
}
