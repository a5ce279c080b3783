package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cli-flappy/internal/core"
	"github.com/vovakirdan/cli-flappy/internal/games/flappy"
)

// GameModel is the Bubble Tea model that runs one game session.
// Key messages only latch the latest key; the session samples it once per tick.
type GameModel struct {
	session *flappy.Session
	latch   *core.Latch
	sink    *frameSink
	keys    KeyMap
	delay   time.Duration
	result  flappy.StepResult
	done    bool
}

// NewGameModel creates a model for the given session.
func NewGameModel(session *flappy.Session) GameModel {
	sink := &frameSink{}
	sink.Draw(session.Header(), session.Grid())

	return GameModel{
		session: session,
		latch:   core.NewLatch(session.KeyHold(), nil),
		sink:    sink,
		keys:    DefaultKeyMap(),
		delay:   session.TickDelay(),
		result:  flappy.StepResult{State: session.State()},
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	// Window size changes are ignored: the grid is fixed for the session.
	return m, nil
}

// handleKey latches game keys and handles quitting.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if key.Matches(msg, m.keys.Quit) {
		m.session.Abort()
		m.result = flappy.StepResult{State: m.session.State(), Cause: m.session.Cause()}
		m.done = true
		return m, tea.Quit
	}

	m.latch.Press(m.keys.Token(msg))
	return m, nil
}

// handleTick advances the session by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	m.result = m.session.Step(m.latch, m.sink)
	if m.result.State.Status() == flappy.StatusDead {
		m.done = true
		return m, tea.Quit
	}

	return m, tickCmd(m.delay)
}

// View renders the last drawn frame.
func (m GameModel) View() string {
	return m.sink.frame
}

// Result returns the final step result once the session is over.
func (m GameModel) Result() flappy.StepResult {
	return m.result
}

// RunGame runs the session until the player dies or quits and returns the
// final result.
func RunGame(session *flappy.Session) (flappy.StepResult, error) {
	model := NewGameModel(session)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return flappy.StepResult{State: session.State(), Cause: session.Cause()}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return flappy.StepResult{State: session.State(), Cause: session.Cause()}, nil
	}
	return m.Result(), nil
}
