package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

const maxScores = 50

var (
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel shows the best sessions of one game at a time.
type ScoreboardModel struct {
	games    []registry.GameInfo
	current  int
	store    ScoreSource
	scores   []storage.ScoreEntry
	err      error
	table    table.Model
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel opens on the first game, or on gameID when it is known.
func NewScoreboardModel(store ScoreSource, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.current = i
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	h := m.height - 9
	if h < 5 {
		h = 5
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Session", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load reads the current game's scores into the table.
func (m *ScoreboardModel) load() {
	m.scores, m.err = nil, nil
	if m.store != nil && len(m.games) > 0 {
		m.scores, m.err = m.store.TopScores(m.games[m.current].ID, maxScores)
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		session := s.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			session,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			if n := len(m.games); n > 0 {
				m.current = (m.current + 1) % n
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			if n := len(m.games); n > 0 {
				m.current = (m.current + n - 1) % n
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = dimStyle.Render("Could not read scores: " + m.err.Error())
	case len(m.scores) == 0:
		body = dimStyle.Italic(true).Padding(1, 2).Render("No scores recorded yet.")
	default:
		body = m.table.View()
	}
	b.WriteString(boxStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(scoreboardHelp(m.keys))))
	return b.String()
}

// Current returns the game on screen.
func (m ScoreboardModel) Current() registry.GameInfo {
	return m.games[m.current]
}

// GoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) GoingBack() bool {
	return m.back
}

// RunScoreboard shows the table full screen. goBack is false when the user quit.
func RunScoreboard(store ScoreSource, gameID string) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, 80, 24), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.GoingBack(), nil
}
