// survivor is a top-down survival shooter played in the terminal.
//
// Usage:
//
//	survivor play             - Play a run
//	survivor menu             - Pick a difficulty, browse run history
//	survivor scores           - Show the best recorded runs
//	survivor list             - List the built-in sprites and upgrades
//	survivor serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.survivor/runs.db)
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the built-in sprites
	_ "github.com/vovakirdan/tui-survivor/internal/assets"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Survivor - hold out against endless waves in your terminal",
	Long: `Survivor is a top-down survival shooter for the terminal.

Move with WASD or the arrow keys, shoot the nearest enemy with space or aim
with the mouse. Collect coins to level up and pick an upgrade each level.
Every fifth level a boss appears.

Available commands:
  play     - Play a run directly
  menu     - Difficulty picker and run history
  scores   - Print the best runs
  list     - Show sprites and upgrades
  serve    - Start SSH server for remote play

Examples:
  survivor play
  survivor play --difficulty hard
  survivor menu
  survivor serve --ssh :2222
  survivor scores --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survivor/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
