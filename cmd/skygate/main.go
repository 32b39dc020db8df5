// skygate is a terminal arcade game: steer a flyer through an endless
// stream of gates, scoring a point for each one you clear.
//
// Usage:
//
//	skygate play     - Play in the current terminal
//	skygate scores   - Show record runs
//	skygate serve    - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gate layouts
//	--db <path>     - Set database path (default: ~/.skygate/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skygate",
	Short: "Skygate - Fly through the gates in your terminal",
	Long: `Skygate is a terminal arcade game. Tap to climb, let go to fall,
and thread the flyer through the gap in each oncoming gate.

Available commands:
  play     - Play in the current terminal
  scores   - View record runs
  serve    - Start SSH server for remote play

Examples:
  skygate play
  skygate play --seed 42
  skygate scores --interactive
  skygate serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skygate/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
