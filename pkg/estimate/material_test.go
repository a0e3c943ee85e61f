package estimate

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSettings() Settings {
	return Settings{
		Density:          1.25,
		Infill:           0.5,
		ShellMultiplier:  2,
		FilamentDiameter: 2,
		PricePerKg:       40,
		FlowRate:         10,
	}
}

func TestEffectiveVolume(t *testing.T) {
	// 0.5 infill * 2 shell = 1:1
	assert.InDelta(t, 1000.0, EffectiveVolume(1000, testSettings()), 1e-9)
}

func TestMassGrams(t *testing.T) {
	assert.InDelta(t, 12.4, MassGrams(10000, 1.24), 1e-9)
}

func TestFilamentLengthMM(t *testing.T) {
	// Cross-section of a 2 mm filament is π mm²
	assert.InDelta(t, 100.0, FilamentLengthMM(100*math.Pi, 2), 1e-9)
}

func TestCost(t *testing.T) {
	assert.InDelta(t, 5.0, Cost(250, 20), 1e-9)
}

func TestPrintSeconds(t *testing.T) {
	assert.InDelta(t, 120.0, PrintSeconds(960, 8), 1e-9)
}

func TestMaterial(t *testing.T) {
	est := Material(20000, testSettings())

	assert.InDelta(t, 20000.0, est.MeshVolume, 1e-9)
	assert.InDelta(t, 20000.0, est.EffectiveVolume, 1e-9)
	assert.InDelta(t, 25.0, est.MassGrams, 1e-9)
	assert.InDelta(t, 20000/math.Pi/1000, est.FilamentMeters, 1e-9)
	assert.InDelta(t, 1.0, est.Cost, 1e-9)
	assert.Equal(t, 2000*time.Second, est.PrintTime)
}

func TestMaterialZeroVolume(t *testing.T) {
	est := Material(0, DefaultSettings())
	assert.Zero(t, est.MassGrams)
	assert.Zero(t, est.PrintTime)
}
