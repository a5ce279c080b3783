// flappy is a side-scrolling obstacle game played in the terminal.
//
// Usage:
//
//	flappy                   - Start menu, then play
//	flappy --skip-menu       - Play immediately
//	flappy --highscore       - Print the best score and exit
//	flappy scores            - List recorded runs
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Custom game config YAML
//	--db <path>      - Run history database ("" disables it)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cli-flappy/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Steer a bird through an endless field of walls. Gravity pulls it
down, Space flaps it up. Every obstacle period you survive scores a point.

Controls:
  Space      - Flap
  W/S        - Menu navigation
  Q/Ctrl+C   - Quit

Examples:
  flappy
  flappy --spacing 30
  flappy --skip-menu --seed 42
  flappy --highscore
  flappy scores --limit 5`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runRoot,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().String("db", "", "Path to run history database (empty disables history)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().Uint8("spacing", 50, "Empty columns between obstacles (0-255)")
	rootCmd.Flags().Bool("highscore", false, "Print the highscore and exit")
	rootCmd.Flags().Bool("skip-menu", false, "Start playing without the menu")
	rootCmd.Flags().Int64("seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the flags the user set.
// Flags left at their defaults never override the file.
func loadConfig(cmd *cobra.Command) (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	overrides, err := flagOverrides(cmd)
	if err != nil {
		return cfg, err
	}
	if err := overrides.Apply(&cfg); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded",
		"spacing", cfg.Obstacles.Spacing,
		"width", cfg.Obstacles.Width,
		"gap", cfg.Obstacles.GapSize,
		"history", cfg.Storage.HistoryPath,
	)
	return cfg, nil
}

// flagOverrides collects the config overrides from cmd's changed flags.
func flagOverrides(cmd *cobra.Command) (config.Overrides, error) {
	var o config.Overrides
	flags := cmd.Flags()

	if f := flags.Lookup("spacing"); f != nil && f.Changed {
		spacing, err := flags.GetUint8("spacing")
		if err != nil {
			return o, fmt.Errorf("invalid --spacing: %w", err)
		}
		o.Spacing = &spacing
	}
	if f := flags.Lookup("db"); f != nil && f.Changed {
		db, err := flags.GetString("db")
		if err != nil {
			return o, fmt.Errorf("invalid --db: %w", err)
		}
		o.HistoryPath = &db
	}
	return o, nil
}
