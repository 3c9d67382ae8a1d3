package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls (defaults, change them under keys: in the config):
  Left/H, Right/L  - Move
  Down/J           - Soft drop
  Up               - Hard drop
  Space/X/K        - Rotate
  P/Esc            - Pause
  R                - Restart
  ?                - More keys
  Ctrl+S           - Save a text screenshot to ~/.tetris/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - pieces start falling every 1000ms
  normal - pieces start falling every 800ms
  hard   - pieces start falling every 500ms

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --randomizer bag
  tetris play --seed 42 --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, &playFlags)
}

// addGameFlags registers the flags shared by play and gui.
func addGameFlags(cmd *cobra.Command, gf *gameFlags) {
	cmd.Flags().StringVar(&gf.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&gf.randomizer, "randomizer", "", "Piece randomizer (see 'tetris pieces')")
	cmd.Flags().BoolVar(&gf.sound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := settings(playFlags, cmd.Flags().Changed("sound"))
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	player := startAudio(cfg, logger)
	defer player.Close()

	rc := terminalConfig()
	engine, err := newEngine(cfg, rc, logger, player)
	if err != nil {
		return err
	}

	return tui.Run(engine, tui.Options{
		Config: rc,
		Keys:   cfg.Keys,
		Logger: logger,
	})
}

// terminalConfig reports the current terminal size, falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	cfg := runtimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
