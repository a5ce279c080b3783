package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cli-flappy/internal/config"
	"github.com/vovakirdan/cli-flappy/internal/core"
)

// Title is the display name of the game.
const Title = "Flappy Bird"

// MinGridHeight is the smallest playfield height the game accepts.
const MinGridHeight = 6

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	State GameState
	Cause Cause // Why the session ended, CauseNone while running
}

// Session is one game from start to death. It owns the game state and the
// frame buffer; nothing else holds them across ticks.
type Session struct {
	cfg       config.FlappyConfig
	state     GameState
	cause     Cause
	fb        *FrameBuffer
	obstacles *Obstacles
}

// NewSession creates a session for the given terminal. It fails when the
// terminal cannot host the playfield.
func NewSession(cfg config.FlappyConfig, rt core.RuntimeConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rt.HeaderRows = cfg.Loop.HeaderRows
	if err := rt.CheckFits(cfg.Player.X+1, MinGridHeight); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	w, h := rt.GridSize()
	s := &Session{
		cfg:       cfg,
		fb:        NewFrameBuffer(w, h),
		obstacles: NewObstacles(rt.Seed),
	}
	s.state = GameState{
		Player: PlayerState{
			X:     cfg.Player.X,
			Y:     startY(cfg.Player.Y, h),
			Alive: true,
		},
		ObstacleWidth:   cfg.Obstacles.Width,
		ObstacleSpacing: cfg.Obstacles.Spacing,
		GapSize:         cfg.Obstacles.GapSize,
	}
	return s, nil
}

// startY keeps the configured start row unless it would already be out of
// bounds, in which case the player starts mid-screen.
func startY(y float64, gridHeight int) float64 {
	if OutOfBounds(PlayerState{Y: y}, gridHeight) {
		return float64(gridHeight / 2)
	}
	return y
}

// Step runs one tick: sample input, integrate, bounds check, advance the
// tick counter, check the previous frame for a collision, scroll, update
// obstacles, check the new frame, stamp, draw, erase.
//
// Once the player is dead Step changes nothing.
func (s *Session) Step(in core.InputSource, out core.Surface) StepResult {
	if !s.state.Player.Alive {
		return s.result()
	}

	key := core.KeyNone
	if in != nil {
		key = in.Sample()
	}

	s.state = Integrate(s.state, key == core.KeyFlap, s.cfg.Physics)
	s.state = CheckBounds(s.state, s.fb.Height())
	s.state.Tick++
	if !s.state.Player.Alive {
		s.cause = CauseBounds
		return s.result()
	}

	// Previous frame: the cell the player moves into before this tick's scroll
	s.state = DetectCollision(s.state, s.fb.Grid())
	if !s.state.Player.Alive {
		s.cause = CauseCollision
		return s.result()
	}

	s.fb.Scroll()
	s.state = s.obstacles.Update(s.state, s.fb.Grid())

	// Fresh frame: a wall scrolled into the player's cell
	s.state = DetectCollision(s.state, s.fb.Grid())
	if !s.state.Player.Alive {
		s.cause = CauseCollision
	}

	s.fb.Stamp(s.state.Player)
	if out != nil {
		out.Draw(s.Header(), s.fb.Grid())
	}
	s.fb.Erase()

	return s.result()
}

// Abort ends the session as if the player died.
func (s *Session) Abort() {
	if !s.state.Player.Alive {
		return
	}
	s.state.Player.Alive = false
	s.cause = CauseQuit
}

// Header returns the status line for the current state.
func (s *Session) Header() core.Header {
	return core.Header{
		Score: s.state.Score,
		Tick:  s.state.Tick,
		X:     s.state.Player.X,
		Y:     s.state.Player.Y,
	}
}

// State returns a copy of the current game state.
func (s *Session) State() GameState {
	return s.state
}

// Cause returns why the session ended.
func (s *Session) Cause() Cause {
	return s.cause
}

// Grid returns the session grid. Callers must not keep it across ticks.
func (s *Session) Grid() *core.Grid {
	return s.fb.Grid()
}

// KeyHold returns how long a key press stays active.
func (s *Session) KeyHold() time.Duration {
	return s.cfg.Loop.KeyHold()
}

// TickDelay returns the configured delay between ticks.
func (s *Session) TickDelay() time.Duration {
	return s.cfg.Loop.TickDelay()
}

func (s *Session) result() StepResult {
	return StepResult{State: s.state, Cause: s.cause}
}
