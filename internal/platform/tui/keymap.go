package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cli-flappy/internal/core"
)

// KeyMap defines the key bindings shared by the game and the menu.
type KeyMap struct {
	Flap   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up", "k"),
			key.WithHelp("w/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down", "j"),
			key.WithHelp("s/down", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Up, k.Down},
		{k.Select, k.Back, k.Quit},
	}
}

// menuHelp is the binding set shown under the start menu.
type menuHelp KeyMap

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Token translates a key message to the game's key token.
// Keys outside W, A, S, D and Space (and their arrow aliases) map to KeyNone.
func (k KeyMap) Token(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Flap):
		return core.KeyFlap
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	}
	return core.KeyNone
}
