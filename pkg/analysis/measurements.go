package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/fixmystl/fixmystl/pkg/estimate"
	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// Report contains the measurements shown for a mesh
type Report struct {
	TriangleCount int
	BoundingBox   geometry.BoundingBox
	Volume        float64
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Suggestions   []ScaleSuggestion
}

// AnalyzeMesh measures vertices. The bounding box of an empty mesh is not
// finite, and Volume is only meaningful for closed meshes.
func AnalyzeMesh(vertices geometry.VertexBuffer) *Report {
	result := &Report{
		TriangleCount: vertices.TriangleCount(),
		BoundingBox:   geometry.ComputeBoundingBox(vertices),
		Volume:        geometry.Volume(vertices),
		SurfaceArea:   geometry.SurfaceArea(vertices),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edgeCount := 0

	for t := 0; t < result.TriangleCount; t++ {
		tri := vertices.Triangle(t)
		for _, length := range [3]float64{
			tri.V1.Distance(tri.V2),
			tri.V2.Distance(tri.V3),
			tri.V3.Distance(tri.V1),
		} {
			totalLength += length
			edgeCount++
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	if edgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(edgeCount)
	}

	if result.BoundingBox.IsFinite() {
		result.Suggestions = SuggestScale(result.BoundingBox)
	}

	return result
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// FormatDimensions formats a size vector as "W x D x H mm"
func FormatDimensions(size geometry.Vector3) string {
	return fmt.Sprintf("%.2f x %.2f x %.2f mm", size.X, size.Y, size.Z)
}

// FormatDuration formats a print time as hours and minutes
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// FormatBand formats an overhang result as "12.3% (medium)"
func FormatBand(o estimate.Overhang) string {
	return fmt.Sprintf("%.1f%% (%s)", o.Pct, o.Band)
}
