package estimate

import (
	"fmt"
	"math"

	"github.com/fixmystl/fixmystl/pkg/geometry"
)

// DefaultOverhangThreshold is the overhang angle, in degrees from vertical,
// most printers manage without supports.
const DefaultOverhangThreshold = 45.0

// Band is a coarse overhang risk rating
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// String returns "low", "medium" or "high"
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	case BandHigh:
		return "high"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// BandFor rates a risk percentage: below 10 is low, below 25 medium, else high.
func BandFor(pct float64) Band {
	switch {
	case pct < 10:
		return BandLow
	case pct < 25:
		return BandMedium
	default:
		return BandHigh
	}
}

// Overhang is the result of OverhangRisk. Areas are in squared model units.
type Overhang struct {
	ThresholdDegrees float64
	RiskArea         float64
	TotalArea        float64
	Pct              float64
	Band             Band
	RiskTriangles    int
}

// OverhangRisk measures how much of the surface faces down at more than
// thresholdDegrees from vertical, assuming +Z is up. Upward-facing surfaces
// never count, however steep.
func OverhangRisk(vertices geometry.VertexBuffer, thresholdDegrees float64) Overhang {
	result := Overhang{ThresholdDegrees: thresholdDegrees, Band: BandLow}
	limit := OverhangLimit(thresholdDegrees)

	n := vertices.TriangleCount()
	for t := 0; t < n; t++ {
		tri := vertices.Triangle(t)
		area := tri.Area()
		result.TotalArea += area

		if IsOverhanging(tri.Normal(), limit) {
			result.RiskArea += area
			result.RiskTriangles++
		}
	}

	if result.TotalArea > 0 {
		result.Pct = 100 * result.RiskArea / result.TotalArea
		result.Band = BandFor(result.Pct)
	}
	return result
}

// OverhangLimit converts a threshold angle into the horizontal normal
// magnitude IsOverhanging compares against.
func OverhangLimit(thresholdDegrees float64) float64 {
	return math.Cos(thresholdDegrees * math.Pi / 180.0)
}

// IsOverhanging reports whether a surface with unit normal n faces down
// steeply enough to need support.
func IsOverhanging(n geometry.Vector3, limit float64) bool {
	return n.Z < 0 && math.Hypot(n.X, n.Y) < limit
}
