package estimate_test

import (
	"testing"

	"github.com/fixmystl/fixmystl/internal/testmesh"
	"github.com/fixmystl/fixmystl/pkg/estimate"
	"github.com/fixmystl/fixmystl/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestOverhangUpwardPlate(t *testing.T) {
	for _, threshold := range []float64{0, 10, 45, 60, 89, 90} {
		result := estimate.OverhangRisk(testmesh.Plate(true), threshold)
		assert.Equal(t, 0.0, result.Pct, "threshold %v", threshold)
		assert.Equal(t, estimate.BandLow, result.Band)
	}
}

func TestOverhangDownwardPlate(t *testing.T) {
	for _, threshold := range []float64{0, 10, 45, 60, 89} {
		result := estimate.OverhangRisk(testmesh.Plate(false), threshold)
		assert.InDelta(t, 100.0, result.Pct, 1e-9, "threshold %v", threshold)
		assert.Equal(t, estimate.BandHigh, result.Band)
		assert.Equal(t, 2, result.RiskTriangles)
	}
}

func TestOverhangUnitCube(t *testing.T) {
	result := estimate.OverhangRisk(testmesh.UnitCube(), estimate.DefaultOverhangThreshold)

	// Only the bottom face counts; vertical walls lean 0° from vertical.
	assert.InDelta(t, 6.0, result.TotalArea, 1e-9)
	assert.InDelta(t, 1.0, result.RiskArea, 1e-9)
	assert.InDelta(t, 100.0/6.0, result.Pct, 1e-9)
	assert.Equal(t, estimate.BandMedium, result.Band)
}

func TestOverhangRespectsThreshold(t *testing.T) {
	// A face tilted 30° from horizontal, facing down: it leans 60° from vertical.
	tilted := geometry.VertexBuffer{
		0, 0, 0,
		0, 1, 0,
		1, 0, 0.57735026,
	}
	normal := tilted.Triangle(0).Normal()
	assert.Less(t, normal.Z, 0.0)

	assert.Equal(t, 100.0, estimate.OverhangRisk(tilted, 45).Pct)
	assert.Equal(t, 0.0, estimate.OverhangRisk(tilted, 70).Pct)
}

func TestOverhangDegenerateInput(t *testing.T) {
	empty := estimate.OverhangRisk(nil, 45)
	assert.Equal(t, 0.0, empty.Pct)
	assert.Equal(t, estimate.BandLow, empty.Band)

	zeroArea := estimate.OverhangRisk(geometry.VertexBuffer{1, 1, 1, 1, 1, 1, 1, 1, 1}, 45)
	assert.Equal(t, 0.0, zeroArea.Pct)
	assert.Equal(t, estimate.BandLow, zeroArea.Band)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, estimate.BandLow, estimate.BandFor(0))
	assert.Equal(t, estimate.BandLow, estimate.BandFor(9.99))
	assert.Equal(t, estimate.BandMedium, estimate.BandFor(10))
	assert.Equal(t, estimate.BandMedium, estimate.BandFor(24.9))
	assert.Equal(t, estimate.BandHigh, estimate.BandFor(25))
	assert.Equal(t, "high", estimate.BandHigh.String())
}
