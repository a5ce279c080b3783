// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and the menu screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// delay. The next tick is only armed once the current one has been handled,
// so the effective period is delay plus the work done in the tick.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
