// Package estimate turns mesh geometry into print-planning numbers: material
// usage, cost, print time and overhang risk.
package estimate

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Settings describes the material and printer assumptions behind an estimate.
type Settings struct {
	// Density of the filament in g/cm³.
	Density float64 `yaml:"density" toml:"density"`
	// Infill is the fraction of the interior that is printed, in (0, 1].
	Infill float64 `yaml:"infill" toml:"infill"`
	// ShellMultiplier approximates extra material spent on walls and
	// top/bottom layers; 1 means none.
	ShellMultiplier float64 `yaml:"shell_multiplier" toml:"shell_multiplier"`
	// FilamentDiameter in mm.
	FilamentDiameter float64 `yaml:"filament_diameter" toml:"filament_diameter"`
	// PricePerKg in the user's currency.
	PricePerKg float64 `yaml:"price_per_kg" toml:"price_per_kg"`
	// FlowRate is the volumetric throughput of the printer in mm³/s.
	FlowRate float64 `yaml:"flow_rate" toml:"flow_rate"`
}

// Material density presets in g/cm³
var materialDensities = map[string]float64{
	"PLA":   1.24,
	"PETG":  1.27,
	"ABS":   1.04,
	"ASA":   1.07,
	"TPU":   1.21,
	"NYLON": 1.14,
}

// DefaultSettings returns PLA on a 1.75 mm printer with 20% infill.
func DefaultSettings() Settings {
	return Settings{
		Density:          materialDensities["PLA"],
		Infill:           0.20,
		ShellMultiplier:  1.5,
		FilamentDiameter: 1.75,
		PricePerKg:       20,
		FlowRate:         8,
	}
}

// MaterialDensity returns the density preset for name, case-insensitively.
func MaterialDensity(name string) (float64, bool) {
	d, ok := materialDensities[strings.ToUpper(strings.TrimSpace(name))]
	return d, ok
}

// Materials returns the names of all density presets in sorted order
func Materials() []string {
	names := make([]string, 0, len(materialDensities))
	for name := range materialDensities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithMaterial returns a copy of s using the density preset for name.
func (s Settings) WithMaterial(name string) (Settings, error) {
	d, ok := MaterialDensity(name)
	if !ok {
		return s, fmt.Errorf("unknown material %q (known: %s)", name, strings.Join(Materials(), ", "))
	}
	s.Density = d
	return s, nil
}

// Validate checks every field and reports all problems at once.
func (s Settings) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a positive number, got %v", name, v))
		}
	}

	positive("density", s.Density)
	positive("filament diameter", s.FilamentDiameter)
	positive("flow rate", s.FlowRate)
	if !(s.Infill > 0 && s.Infill <= 1) {
		errs = append(errs, fmt.Errorf("infill must be in (0, 1], got %v", s.Infill))
	}
	if !(s.ShellMultiplier >= 1) || math.IsInf(s.ShellMultiplier, 0) {
		errs = append(errs, fmt.Errorf("shell multiplier must be at least 1, got %v", s.ShellMultiplier))
	}
	if !(s.PricePerKg >= 0) || math.IsInf(s.PricePerKg, 0) {
		errs = append(errs, fmt.Errorf("price per kg must not be negative, got %v", s.PricePerKg))
	}

	return errors.Join(errs...)
}
