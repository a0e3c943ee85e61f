package estimate

import (
	"math"
	"time"
)

// MaterialEstimate is the result of Material. Volumes are in mm³.
type MaterialEstimate struct {
	MeshVolume      float64
	EffectiveVolume float64
	MassGrams       float64
	FilamentMeters  float64
	Cost            float64
	PrintTime       time.Duration
}

// EffectiveVolume returns the printed volume: mesh volume scaled by infill and
// shell allowance.
func EffectiveVolume(meshVolumeMM3 float64, s Settings) float64 {
	return meshVolumeMM3 * s.Infill * s.ShellMultiplier
}

// MassGrams converts a printed volume in mm³ to grams
func MassGrams(effectiveVolumeMM3, density float64) float64 {
	return effectiveVolumeMM3 / 1000.0 * density
}

// FilamentLengthMM returns how much filament of the given diameter holds the
// printed volume.
func FilamentLengthMM(effectiveVolumeMM3, diameterMM float64) float64 {
	radius := diameterMM / 2
	return effectiveVolumeMM3 / (math.Pi * radius * radius)
}

// Cost prices a mass in grams at pricePerKg
func Cost(massGrams, pricePerKg float64) float64 {
	return massGrams / 1000.0 * pricePerKg
}

// PrintSeconds returns the time to extrude the volume at flowRate mm³/s
func PrintSeconds(effectiveVolumeMM3, flowRate float64) float64 {
	return effectiveVolumeMM3 / flowRate
}

// Material runs all conversions for a mesh volume in mm³. Settings are assumed
// valid; see Settings.Validate.
func Material(meshVolumeMM3 float64, s Settings) MaterialEstimate {
	effective := EffectiveVolume(meshVolumeMM3, s)
	mass := MassGrams(effective, s.Density)
	seconds := PrintSeconds(effective, s.FlowRate)

	return MaterialEstimate{
		MeshVolume:      meshVolumeMM3,
		EffectiveVolume: effective,
		MassGrams:       mass,
		FilamentMeters:  FilamentLengthMM(effective, s.FilamentDiameter) / 1000.0,
		Cost:            Cost(mass, s.PricePerKg),
		PrintTime:       time.Duration(seconds * float64(time.Second)).Round(time.Second),
	}
}
