// Package config provides YAML-based configuration loading and pace
// presets for hexswap.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// HexSwapConfig contains all configuration for the hexswap board.
type HexSwapConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Animation   AnimationConfig   `yaml:"animation"`
	Audio       AudioConfig       `yaml:"audio"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// BoardConfig defines board dimensions and the initial fill.
type BoardConfig struct {
	Width    int    `yaml:"width"`     // half-hex columns, must be even
	Height   int    `yaml:"height"`    // rows
	BandRows int    `yaml:"band_rows"` // empty rows around the vertical centre
	Fill     string `yaml:"fill"`      // "sequential", "noise" or "empty"
}

// AnimationConfig defines swap animation timing and pixel metrics.
type AnimationConfig struct {
	RateDivisor int `yaml:"rate_divisor"` // per-axis rate is distance/divisor, at least 1
	CellWidth   int `yaml:"cell_width"`   // pixels per half-hex horizontally
	CellHeight  int `yaml:"cell_height"`  // pixels per half-hex vertically
}

// AudioConfig defines synthesized sound effect settings.
type AudioConfig struct {
	Enabled       bool               `yaml:"enabled"`
	MasterVolume  float64            `yaml:"master_volume"` // 0.0 to 1.0
	SampleRate    int                `yaml:"sample_rate"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes"` // keyed by effect name
}

// DiagnosticsConfig selects the diagnostics strategy.
type DiagnosticsConfig struct {
	InvariantChecks bool   `yaml:"invariant_checks"` // abort on invariant violations
	LogLevel        string `yaml:"log_level"`        // debug, info, warn, error
}

var validFills = []string{"sequential", "noise", "empty"}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every setting that the simulation cannot run with.
func (c HexSwapConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("config: board width %d is below 4", c.Board.Width))
	}
	if c.Board.Width%2 != 0 {
		errs = append(errs, fmt.Errorf("config: board width %d must be even", c.Board.Width))
	}
	if c.Board.Height < 6 {
		errs = append(errs, fmt.Errorf("config: board height %d is below 6", c.Board.Height))
	}
	if c.Board.BandRows < 0 || c.Board.BandRows > c.Board.Height {
		errs = append(errs, fmt.Errorf("config: band_rows %d out of range", c.Board.BandRows))
	}
	if !oneOf(c.Board.Fill, validFills) {
		errs = append(errs, fmt.Errorf("config: unknown fill %q", c.Board.Fill))
	}
	if c.Animation.RateDivisor < 1 {
		errs = append(errs, fmt.Errorf("config: rate_divisor %d must be at least 1", c.Animation.RateDivisor))
	}
	if c.Animation.CellWidth <= 0 || c.Animation.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: cell size %dx%d must be positive",
			c.Animation.CellWidth, c.Animation.CellHeight))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("config: master_volume %.2f out of range", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("config: sample_rate %d must be positive", c.Audio.SampleRate))
	}
	if c.Diagnostics.LogLevel != "" && !oneOf(c.Diagnostics.LogLevel, validLogLevels) {
		errs = append(errs, fmt.Errorf("config: unknown log_level %q", c.Diagnostics.LogLevel))
	}
	return errors.Join(errs...)
}

// EffectVolume returns the volume for a named effect, defaulting to 1.
func (c AudioConfig) EffectVolume(name string) float64 {
	if v, ok := c.EffectVolumes[name]; ok {
		return v
	}
	return 1.0
}

func oneOf(s string, options []string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
