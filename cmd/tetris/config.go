package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configFlags gameFlags

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, as YAML.

The search order is --config, ~/.tetris/tetris.yaml, ./configs/tetris.yaml and
finally the built-in defaults. Difficulty and randomizer flags are applied on top.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config > ~/.tetris/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := settings(configFlags, cmd.Flags().Changed("sound"))
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	addGameFlags(configCmd, &configFlags)
}
