package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/hexswap/internal/config"
	"github.com/vovakirdan/hexswap/internal/diag"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
	"github.com/vovakirdan/hexswap/internal/registry"
)

// loadConfig loads the config named by --config and applies --pace.
func loadConfig() (config.HexSwapConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPace != "" {
		p, err := config.ParsePace(flagPace)
		if err != nil {
			return cfg, err
		}
		config.ApplyPacePreset(&cfg, p)
	}
	return cfg, nil
}

// checkVariant rejects unregistered variant IDs.
func checkVariant(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'hexswap list')", id)
	}
	return nil
}

// logWriter opens --log-file for appending, or discards when unset. The
// returned close func is always safe to call.
func logWriter() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// diagnosticsFor selects the diagnostics strategy from --checks and config.
func diagnosticsFor(cfg config.HexSwapConfig, w io.Writer) (sim.Diagnostics, error) {
	return diag.Select(flagChecks || cfg.Diagnostics.InvariantChecks, w, cfg.Diagnostics.LogLevel)
}

// newController builds a headless controller for the given variant,
// logging diagnostics to w.
func newController(variant string, seed int64, w io.Writer) (*sim.Controller, error) {
	if err := checkVariant(variant); err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	opts, err := hexswap.Options(cfg, hexswap.Variant(variant), seed)
	if err != nil {
		return nil, err
	}
	d, err := diagnosticsFor(cfg, w)
	if err != nil {
		return nil, err
	}
	return sim.New(opts, d), nil
}
