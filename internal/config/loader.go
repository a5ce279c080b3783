package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.config/cli_flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func Load(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultFlappyConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		candidate := DefaultFlappyConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Overrides holds command-line values applied on top of a loaded config.
// Nil fields are left untouched.
type Overrides struct {
	Spacing     *uint8
	HistoryPath *string
}

// Apply writes the overrides into cfg and re-validates it.
func (o Overrides) Apply(cfg *FlappyConfig) error {
	if o.Spacing != nil {
		cfg.Obstacles.Spacing = int(*o.Spacing)
	}
	if o.HistoryPath != nil {
		cfg.Storage.HistoryPath = *o.HistoryPath
	}
	return cfg.Validate()
}

// Marshal encodes cfg as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cli_flappy", filename)
}
