package config

import (
	_ "embed"
)

//go:embed defaults/hexswap.yaml
var defaultHexSwapYAML []byte

// DefaultHexSwapConfig returns the default hexswap configuration.
func DefaultHexSwapConfig() HexSwapConfig {
	return HexSwapConfig{
		Board: BoardConfig{
			Width:    40,
			Height:   60,
			BandRows: 6,
			Fill:     "sequential",
		},
		Animation: AnimationConfig{
			RateDivisor: 16,
			CellWidth:   4,
			CellHeight:  4,
		},
		Audio: AudioConfig{
			Enabled:      false,
			MasterVolume: 0.5,
			SampleRate:   44100,
			EffectVolumes: map[string]float64{
				"move": 0.8,
				"thud": 0.6,
			},
		},
		Diagnostics: DiagnosticsConfig{
			InvariantChecks: false,
			LogLevel:        "info",
		},
	}
}
