package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

var (
	flagDumpKeys    string
	flagDumpFrames  int
	flagDumpVariant string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Run a scripted session and print the board",
	Long: `Run frames headless and print the final board as text.

Each script character is one frame:
  u d l r   - Cursor up, down, left, right
  c         - Confirm (select / swap)
  D         - Assert no animation is in flight
  .         - Idle frame

Board legend:
  .  absent    ~  animating    @  cursor    0-f  inner colour

Examples:
  hexswap dump --frames 0
  hexswap dump --keys "c r c" --frames 120`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&flagDumpKeys, "keys", "", "Key script, one character per frame")
	dumpCmd.Flags().IntVar(&flagDumpFrames, "frames", 120, "Total frames to run (at least the script length)")
	dumpCmd.Flags().StringVar(&flagDumpVariant, "variant", string(hexswap.VariantClassic), "Board variant")
}

func runDump(cmd *cobra.Command, _ []string) error {
	script, err := parseScript(flagDumpKeys)
	if err != nil {
		return err
	}

	w, closeLog, err := logWriter()
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, err := newController(flagDumpVariant, flagSeed, w)
	if err != nil {
		return err
	}

	runScript(ctrl, script, flagDumpFrames)
	return writeDump(cmd.OutOrStdout(), ctrl)
}

func writeDump(out io.Writer, ctrl *sim.Controller) error {
	g := ctrl.Grid()
	_, err := fmt.Fprintf(out, "frame %d  pieces %d  animating %d\n%s",
		ctrl.Frames(), g.Count(sim.CellPresent), ctrl.AnimationCount(), sim.RenderASCII(ctrl))
	return err
}
