package analysis

import "github.com/fixmystl/fixmystl/pkg/geometry"

// Printable size range, in mm, of the largest bounding box dimension. Models
// outside this range were most likely exported in the wrong unit.
const (
	MinPlausibleSize = 5.0
	MaxPlausibleSize = 500.0

	// A suggested factor must land the model within this narrower range.
	minTargetSize = 10.0
	maxTargetSize = 300.0
)

// ScaleSuggestion is a candidate fix for a unit mix-up
type ScaleSuggestion struct {
	Factor float64
	Reason string
}

var unitCandidates = []ScaleSuggestion{
	{Factor: 25.4, Reason: "model looks like it was exported in inches"},
	{Factor: 10, Reason: "model looks like it was exported in centimeters"},
	{Factor: 1000, Reason: "model looks like it was exported in meters"},
	{Factor: 0.1, Reason: "model looks 10x too large"},
	{Factor: 1 / 25.4, Reason: "model looks like millimeters read as inches"},
	{Factor: 0.001, Reason: "model looks like it was exported in micrometers"},
}

// SuggestScale proposes scale factors for a model whose largest dimension is
// outside the plausible printable range. It returns nil when the size looks
// right.
func SuggestScale(bbox geometry.BoundingBox) []ScaleSuggestion {
	largest := bbox.Size.MaxComponent()
	if largest <= 0 || (largest >= MinPlausibleSize && largest <= MaxPlausibleSize) {
		return nil
	}

	var out []ScaleSuggestion
	for _, c := range unitCandidates {
		scaled := largest * c.Factor
		if scaled >= minTargetSize && scaled <= maxTargetSize {
			out = append(out, c)
		}
	}
	return out
}
