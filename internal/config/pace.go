package config

import "fmt"

// PacePreset represents a named animation speed.
type PacePreset string

const (
	PaceRelaxed PacePreset = "relaxed"
	PaceNormal  PacePreset = "normal"
	PaceBrisk   PacePreset = "brisk"
)

// Presets lists the pace presets in menu order.
var Presets = []PacePreset{PaceRelaxed, PaceNormal, PaceBrisk}

// RateDivisorForPreset returns the rate_divisor for a pace preset.
func RateDivisorForPreset(preset PacePreset) int {
	switch preset {
	case PaceRelaxed:
		return 32
	case PaceBrisk:
		return 8
	default:
		return 16
	}
}

// ParsePace converts a flag value to a preset.
func ParsePace(s string) (PacePreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return PaceNormal, fmt.Errorf("config: unknown pace %q (valid: relaxed, normal, brisk)", s)
}

// ApplyPacePreset modifies the config based on a pace preset.
func ApplyPacePreset(cfg *HexSwapConfig, preset PacePreset) {
	cfg.Animation.RateDivisor = RateDivisorForPreset(preset)
}
