// Package flappy implements the side-scrolling obstacle-avoidance game.
// The player flaps through gaps in walls that scroll in from the right edge
// of a fixed-size character grid, one column per tick.
package flappy

import "math"

// Status is the session state machine: Running until the player dies.
type Status int

const (
	StatusRunning Status = iota
	StatusDead
)

func (s Status) String() string {
	if s == StatusDead {
		return "Dead"
	}
	return "Running"
}

// Cause records why a session ended.
type Cause int

const (
	CauseNone      Cause = iota
	CauseBounds          // Fell out of the playfield
	CauseCollision       // Hit a wall
	CauseQuit            // Player aborted the session
)

func (c Cause) String() string {
	switch c {
	case CauseBounds:
		return "out of bounds"
	case CauseCollision:
		return "hit a wall"
	case CauseQuit:
		return "quit"
	default:
		return "none"
	}
}

// PlayerState is the player's position. X never changes after the session
// starts; Y has sub-cell precision and grows downwards.
type PlayerState struct {
	X     int
	Y     float64
	Alive bool
}

// Row returns the grid row the player occupies.
func (p PlayerState) Row() int {
	return int(math.Floor(p.Y))
}

// GameState is everything the simulation carries from one tick to the next.
type GameState struct {
	Player PlayerState

	Tick  int // Ticks simulated so far
	Score int // One point per obstacle period boundary

	GapHeight       int // Top row of the current opening, 0 during an open period
	ObstacleWidth   int
	ObstacleSpacing int
	GapSize         int // Rows in the opening
}

// Period returns the obstacle period in ticks. Configuration validation
// guarantees it is positive.
func (s GameState) Period() int {
	return s.ObstacleWidth + s.ObstacleSpacing
}

// Status reports whether the session is still running.
func (s GameState) Status() Status {
	if s.Player.Alive {
		return StatusRunning
	}
	return StatusDead
}
