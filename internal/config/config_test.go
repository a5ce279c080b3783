package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n got  %+v\n want %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		errMsg string
	}{
		{"zero period", func(c *FlappyConfig) { c.Obstacles.Width, c.Obstacles.Spacing = 0, 0 }, "greater than zero"},
		{"negative width", func(c *FlappyConfig) { c.Obstacles.Width = -1 }, "negative"},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapSize = 0 }, "gap_size"},
		{"negative gravity", func(c *FlappyConfig) { c.Physics.GravityRate = -0.5 }, "physics"},
		{"negative player x", func(c *FlappyConfig) { c.Player.X = -2 }, "player.x"},
		{"zero tick", func(c *FlappyConfig) { c.Loop.TickMS = 0 }, "tick_ms"},
		{"negative header", func(c *FlappyConfig) { c.Loop.HeaderRows = -1 }, "header_rows"},
		{"negative hold", func(c *FlappyConfig) { c.Loop.HoldMS = -5 }, "hold_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error %q should mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "obstacles:\n  spacing: 30\nphysics:\n  gravity_rate: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Obstacles.Spacing != 30 {
		t.Errorf("Spacing = %d, expected 30", cfg.Obstacles.Spacing)
	}
	if cfg.Physics.GravityRate != 0.25 {
		t.Errorf("GravityRate = %g, expected 0.25", cfg.Physics.GravityRate)
	}
	// Untouched fields keep their defaults
	if cfg.Obstacles.Width != 5 {
		t.Errorf("Width = %d, expected default 5", cfg.Obstacles.Width)
	}
	if cfg.Physics.AscentRate != 0.9 {
		t.Errorf("AscentRate = %g, expected default 0.9", cfg.Physics.AscentRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  width: 0\n  spacing: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of a zero-period config = %v, expected ErrInvalid", err)
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := DefaultFlappyConfig()
	spacing := uint8(12)
	history := ""

	if err := (Overrides{Spacing: &spacing, HistoryPath: &history}).Apply(&cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if cfg.Obstacles.Spacing != 12 {
		t.Errorf("Spacing = %d, expected 12", cfg.Obstacles.Spacing)
	}
	if cfg.Storage.HistoryPath != "" {
		t.Errorf("HistoryPath = %q, expected empty", cfg.Storage.HistoryPath)
	}
}

func TestOverridesRejectZeroPeriod(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.Width = 0
	spacing := uint8(0)

	if err := (Overrides{Spacing: &spacing}).Apply(&cfg); !errors.Is(err, ErrInvalid) {
		t.Errorf("Apply() = %v, expected ErrInvalid for a zero period", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "gap_size: 10") {
		t.Errorf("Marshal() output missing gap_size:\n%s", data)
	}
}
