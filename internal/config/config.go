// Package config handles fixmystl configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/fixmystl/fixmystl/pkg/estimate"
)

// Config holds all settings.
type Config struct {
	// Material selects a density preset when Estimate.Density is zero.
	Material string            `yaml:"material" toml:"material"`
	Estimate estimate.Settings `yaml:"estimate" toml:"estimate"`
	Overhang OverhangConfig    `yaml:"overhang" toml:"overhang"`
	Logging  LoggingConfig     `yaml:"logging" toml:"logging"`
}

// OverhangConfig holds overhang analysis settings.
type OverhangConfig struct {
	ThresholdDegrees float64 `yaml:"threshold_degrees" toml:"threshold_degrees"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	est := estimate.DefaultSettings()
	est.Density = 0

	return &Config{
		Material: "PLA",
		Estimate: est,
		Overhang: OverhangConfig{
			ThresholdDegrees: estimate.DefaultOverhangThreshold,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// EstimateSettings resolves the material preset and validates the result.
func (c *Config) EstimateSettings() (estimate.Settings, error) {
	s := c.Estimate
	if s.Density == 0 {
		var err error
		if s, err = s.WithMaterial(c.Material); err != nil {
			return s, err
		}
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid estimate settings: %w", err)
	}
	return s, nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.EstimateSettings(); err != nil {
		errs = append(errs, err)
	}
	if t := c.Overhang.ThresholdDegrees; !(t >= 0 && t < 90) {
		errs = append(errs, fmt.Errorf("overhang threshold must be in [0, 90) degrees, got %v", t))
	}
	return errors.Join(errs...)
}
