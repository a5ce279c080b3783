package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			AscentRate:  0.9,
			GravityRate: 0.5,
		},
		Obstacles: Obstacles{
			Width:   5,
			Spacing: 50,
			GapSize: 10,
		},
		Player: Player{
			X: 20,
			Y: 20,
		},
		Loop: Loop{
			TickMS:     10,
			HoldMS:     50,
			HeaderRows: 2,
		},
		Storage: Storage{
			HistoryPath: "~/.cache/cli_flappy/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
