// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                 - Pick a difficulty, then play
//	tetris play            - Play straight away
//	tetris gui             - Play in a desktop window
//	tetris pieces          - Show the piece catalog and randomizers
//	tetris config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible piece sequences
//	--config <path>      - Custom config YAML
//	--log-file <path>    - Write logs to a file (the terminal belongs to the game)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `A single-player falling-block puzzle game.

Run without a command to pick a difficulty from a menu.

Available commands:
  play     - Start a game directly
  gui      - Start a game in a desktop window
  pieces   - Show the piece catalog
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --randomizer bag --sound
  tetris gui --seed 42
  tetris config > ~/.tetris/tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}
