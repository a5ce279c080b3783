package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cli-flappy/internal/storage"
)

// maxRuns is the number of runs loaded into the scoreboard.
const maxRuns = 100

// RunLister is the part of the run history the scoreboard reads.
type RunLister interface {
	TopRuns(limit int) ([]storage.Run, error)
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var runColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Score", Width: 8},
	{Title: "Ticks", Width: 8},
	{Title: "Ended", Width: 14},
	{Title: "Date", Width: 14},
}

// boardKeys is the binding set shown under the scoreboard.
type boardKeys KeyMap

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ScoreboardModel lists the best recorded runs.
type ScoreboardModel struct {
	runs    []storage.Run
	loadErr error
	table   table.Model
	help    help.Model
	keys    KeyMap
	width   int
	back    bool // esc/b: return to the menu
	quit    bool // q: leave the program
}

// NewScoreboardModel loads the runs from history. A nil history shows an
// empty board.
func NewScoreboardModel(history RunLister, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:  DefaultKeyMap(),
		help:  help.New(),
		width: width,
	}
	if history != nil {
		m.runs, m.loadErr = history.TopRuns(maxRuns)
	}
	m.table = newRunTable(m.runs, height)
	return m
}

// newRunTable builds the runs table sized for a terminal of the given height.
func newRunTable(runs []storage.Run, height int) table.Model {
	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			r.Cause,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	// Title, borders and help take 8 rows
	return table.New(
		table.WithColumns(runColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
		table.WithStyles(styles),
	)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles back/quit and passes the rest to the table for scrolling.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quit = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Back) {
			m.back = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = boardNoteStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		body = boardNoteStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}

	return centerText(boardTitleStyle.Render("HIGH SCORES"), m.width) + "\n\n" +
		boardFrameStyle.Render(body) + "\n" +
		boardHelpStyle.Render(m.help.View(boardKeys(m.keys)))
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// RunScoreboard shows the scoreboard until the player leaves it.
// goBack is false when the player quit instead of going back.
func RunScoreboard(history RunLister, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(history, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
