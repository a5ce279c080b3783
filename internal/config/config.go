// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Loop      Loop      `yaml:"loop"`
	Storage   Storage   `yaml:"storage"`
}

// Physics defines the vertical movement rates, in cells per tick.
type Physics struct {
	AscentRate  float64 `yaml:"ascent_rate"`  // Applied while flapping
	GravityRate float64 `yaml:"gravity_rate"` // Applied otherwise
}

// Obstacles defines the obstacle geometry.
type Obstacles struct {
	Width   int `yaml:"width"`    // Ticks a wall stays on the right edge
	Spacing int `yaml:"spacing"`  // Ticks of open space between walls
	GapSize int `yaml:"gap_size"` // Vertical thickness of the opening
}

// Period returns the obstacle period in ticks.
func (o Obstacles) Period() int {
	return o.Width + o.Spacing
}

// Player defines the player start position.
type Player struct {
	X int     `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Loop defines the simulation cadence and layout.
type Loop struct {
	TickMS     int `yaml:"tick_ms"`     // Fixed delay between ticks
	HoldMS     int `yaml:"hold_ms"`     // How long a key press stays active, bridging auto-repeat
	HeaderRows int `yaml:"header_rows"` // Terminal rows not used by the grid
}

// TickDelay returns the tick delay as a duration.
func (l Loop) TickDelay() time.Duration {
	return time.Duration(l.TickMS) * time.Millisecond
}

// KeyHold returns the key hold window as a duration.
func (l Loop) KeyHold() time.Duration {
	return time.Duration(l.HoldMS) * time.Millisecond
}

// Storage defines where scores are kept.
type Storage struct {
	Dir         string `yaml:"dir"`          // Highscore directory, "" = ~/.cache/cli_flappy
	HistoryPath string `yaml:"history_path"` // SQLite run history, "" = disabled
}

// Validate checks the configuration for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Obstacles.Width < 0 || c.Obstacles.Spacing < 0 {
		errs = append(errs, fmt.Errorf("obstacles.width and obstacles.spacing must not be negative"))
	}
	if c.Obstacles.Period() <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width + obstacles.spacing must be greater than zero"))
	}
	if c.Obstacles.GapSize < 1 {
		errs = append(errs, fmt.Errorf("obstacles.gap_size must be at least 1, got %d", c.Obstacles.GapSize))
	}
	if c.Physics.AscentRate < 0 || c.Physics.GravityRate < 0 {
		errs = append(errs, fmt.Errorf("physics rates must not be negative"))
	}
	if c.Player.X < 0 {
		errs = append(errs, fmt.Errorf("player.x must not be negative, got %d", c.Player.X))
	}
	if c.Player.Y < 0 {
		errs = append(errs, fmt.Errorf("player.y must not be negative, got %g", c.Player.Y))
	}
	if c.Loop.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_ms must be positive, got %d", c.Loop.TickMS))
	}
	if c.Loop.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("loop.hold_ms must not be negative, got %d", c.Loop.HoldMS))
	}
	if c.Loop.HeaderRows < 0 {
		errs = append(errs, fmt.Errorf("loop.header_rows must not be negative, got %d", c.Loop.HeaderRows))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
