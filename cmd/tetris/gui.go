package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var (
	guiFlags gameFlags
	guiScale int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. Keys are the same as in the terminal;
bindings with no window equivalent (such as ctrl+c) are ignored.

Examples:
  tetris gui
  tetris gui --difficulty easy --scale 2`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	addGameFlags(guiCmd, &guiFlags)
	guiCmd.Flags().IntVar(&guiScale, "scale", 1, "Window scale factor")
}

func runGUI(cmd *cobra.Command, _ []string) error {
	cfg, err := settings(guiFlags, cmd.Flags().Changed("sound"))
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

	engine, err := newEngine(cfg, runtimeConfig(), logger, player)
	if err != nil {
		return err
	}

	return gui.Run(engine, gui.Options{Keys: cfg.Keys, Logger: logger, Scale: guiScale})
}
