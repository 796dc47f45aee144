package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexswap/internal/audio"
	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/platform/tui"
	"github.com/vovakirdan/hexswap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start a local board. Without a variant a picker menu is shown.

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Enter/Space       - Select, then swap with the second selection
  P/Esc             - Pause
  Shift+D           - Check that no animation is in flight
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  hexswap play
  hexswap play hexswap_noise
  hexswap play --pace brisk --checks --log-file hexswap.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	variant := string(hexswap.VariantClassic)
	if len(args) == 1 {
		variant = args[0]
	} else {
		res, err := tui.RunMenu(rc)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		variant = res.GameID
		rc = res.Config
	}
	if err := checkVariant(variant); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, closeLog, err := logWriter()
	if err != nil {
		return err
	}
	defer closeLog()

	d, err := diagnosticsFor(cfg, w)
	if err != nil {
		return err
	}
	hexswap.SetConfigPath(flagConfig)
	hexswap.SetPacePreset(flagPace)
	hexswap.SetDiagnostics(d)

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		// Play on silently.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer player.Close()

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	if err := tui.Run(game, rc, player); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
