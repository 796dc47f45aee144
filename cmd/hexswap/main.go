// hexswap runs the hex-swap puzzle board in the terminal.
//
// Usage:
//
//	hexswap list              - List board variants
//	hexswap play [variant]    - Play a board (menu if no variant given)
//	hexswap serve             - Start SSH server for remote play
//	hexswap dump              - Run scripted frames and print the board
//	hexswap verify            - Soak the simulation with invariant checks
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--config <path>    - Custom config YAML
//	--pace <preset>    - Animation pace: relaxed, normal, brisk
//	--checks           - Abort on invariant violations
//	--log-file <path>  - Diagnostics log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/hexswap/internal/games/hexswap"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagPace    string
	flagChecks  bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexswap",
	Short: "Hexswap - swap half-hex pieces in your terminal",
	Long: `Hexswap is a puzzle board of half-hexagon pieces. Select two adjacent
pieces to swap them; matching pieces clear, and the rest fall toward the
centre of the board.

Available commands:
  list     - Show board variants
  play     - Play a board locally
  serve    - Start SSH server for remote play
  dump     - Run a scripted session and print the board as text
  verify   - Random-input soak with invariant checks every frame

Examples:
  hexswap play
  hexswap play hexswap_noise --seed 42
  hexswap serve --ssh :2222
  hexswap dump --keys "rrc.r" --frames 200
  hexswap verify --frames 50000 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Animation pace preset: relaxed, normal, brisk")
	rootCmd.PersistentFlags().BoolVar(&flagChecks, "checks", false, "Abort on invariant violations")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(verifyCmd)
}
