package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for startup conditions the game cannot run under.
var (
	ErrNoTerminal       = errors.New("terminal size unavailable (0x0)")
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// Resolution is a snapshot of the terminal dimensions, in character cells.
// It is taken once at session start; resizing during play is not supported.
type Resolution struct {
	Width  int
	Height int
}

// IsZero reports whether the terminal size could not be determined.
func (r Resolution) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// RuntimeConfig contains settings passed to a game session at start.
type RuntimeConfig struct {
	Resolution Resolution // Terminal size at session start
	HeaderRows int        // Rows reserved for the header line and the cursor row
	Seed       int64      // RNG seed (0 = time based, resolved by the platform)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Resolution: Resolution{Width: 80, Height: 24},
		HeaderRows: 2,
	}
}

// GridSize returns the playfield dimensions: the terminal minus the header rows.
func (c RuntimeConfig) GridSize() (width, height int) {
	return max(c.Resolution.Width, 0), max(c.Resolution.Height-c.HeaderRows, 0)
}

// CheckFits returns an error when the terminal cannot host a grid of at least
// minW x minH cells.
func (c RuntimeConfig) CheckFits(minW, minH int) error {
	if c.Resolution.IsZero() {
		return ErrNoTerminal
	}
	w, h := c.GridSize()
	if w < minW || h < minH {
		return fmt.Errorf("%w: %s leaves a %dx%d playfield, need at least %dx%d",
			ErrTerminalTooSmall, c.Resolution, w, h, minW, minH)
	}
	return nil
}
