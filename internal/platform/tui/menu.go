package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cli-flappy/internal/games/flappy"
)

// MenuChoice is the option picked in the start menu.
type MenuChoice int

const (
	ChoiceStart MenuChoice = iota
	ChoiceScores
	ChoiceExit
)

func (c MenuChoice) String() string {
	switch c {
	case ChoiceStart:
		return "Start"
	case ChoiceScores:
		return "Scores"
	default:
		return "Exit"
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuChoice
	cursor    int
	highscore int
	width     int
	height    int
	keys      KeyMap
	help      help.Model
	selected  bool
	quitting  bool
}

// NewMenuModel creates a new menu model. The scores entry is only offered
// when a run history is available.
func NewMenuModel(highscore int, withScores bool, width, height int) MenuModel {
	items := []MenuChoice{ChoiceStart}
	if withScores {
		items = append(items, ChoiceScores)
	}
	items = append(items, ChoiceExit)

	return MenuModel{
		items:     items,
		highscore: highscore,
		width:     width,
		height:    height,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.selected = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(flappy.Title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Highscore: %d", m.highscore), m.width))
	b.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Bold(true)
	for i, item := range m.items {
		line := "  " + item.String()
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(menuHelp(m.keys))), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked option. Quitting counts as Exit.
func (m MenuModel) Choice() MenuChoice {
	if m.quitting || !m.selected {
		return ChoiceExit
	}
	return m.items[m.cursor]
}

// RunMenu runs the start menu and returns the picked option.
func RunMenu(highscore int, withScores bool, width, height int) (MenuChoice, error) {
	model := NewMenuModel(highscore, withScores, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ChoiceExit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return ChoiceExit, nil
	}
	return m.Choice(), nil
}
