package flappy

import "github.com/vovakirdan/cli-flappy/internal/config"

// boundsMargin is the number of bottom grid rows the player may not enter.
const boundsMargin = 3

// Integrate moves the player one tick: up by AscentRate while flapping,
// down by GravityRate otherwise. The ceiling clamps Y at 0.
func Integrate(st GameState, flap bool, ph config.Physics) GameState {
	if !st.Player.Alive {
		return st
	}
	if flap {
		st.Player.Y -= ph.AscentRate
	} else {
		st.Player.Y += ph.GravityRate
	}
	if st.Player.Y < 0 {
		st.Player.Y = 0
	}
	return st
}

// OutOfBounds reports whether the player has dropped below the playable
// rows of a grid with the given height.
func OutOfBounds(p PlayerState, gridHeight int) bool {
	return int(p.Y) > gridHeight-boundsMargin
}

// CheckBounds kills the player when OutOfBounds holds.
// It must run before any grid lookup at the player position.
func CheckBounds(st GameState, gridHeight int) GameState {
	if st.Player.Alive && OutOfBounds(st.Player, gridHeight) {
		st.Player.Alive = false
	}
	return st
}
