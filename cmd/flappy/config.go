package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cli-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.
The output can be saved to ~/.config/cli_flappy/flappy.yaml and edited.

Examples:
  flappy config > ~/.config/cli_flappy/flappy.yaml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
