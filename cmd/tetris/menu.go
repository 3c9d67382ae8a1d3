package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

// runMenu shows the difficulty picker and plays until the player quits the menu.
// After a game ends the menu comes back.
func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	player := startAudio(base, logger)
	defer player.Close()

	rc := terminalConfig()
	last := config.DifficultyNormal

	for {
		res, err := tui.RunMenu(rc, last)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		rc, last = res.Config, res.Preset

		cfg := base
		config.ApplyPreset(&cfg, res.Preset)

		engine, err := newEngine(cfg, rc, logger, player)
		if err != nil {
			return err
		}
		if err := tui.Run(engine, tui.Options{Config: rc, Keys: cfg.Keys, Logger: logger}); err != nil {
			return err
		}
	}
}
