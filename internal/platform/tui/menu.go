package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	HighScore(gameID string) (int, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	games      []registry.GameInfo
	best       []int
	cursor     int
	width      int
	keys       KeyMap
	help       help.Model
	quitting   bool
	selected   *registry.GameInfo
	scoreboard bool
}

// NewMenuModel lists every game with its best score. store may be nil.
func NewMenuModel(store ScoreSource) MenuModel {
	games := registry.List()
	best := make([]int, len(games))
	if store != nil {
		for i, g := range games {
			best[i], _ = store.HighScore(g.ID)
		}
	}
	return MenuModel{
		games: games,
		best:  best,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.games)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.games) > 0 {
				g := m.games[m.cursor]
				m.selected = &g
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scores):
			m.scoreboard = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L E D   A R C A D E"), m.width))
	b.WriteString("\n\n")

	for i, g := range m.games {
		line := fmt.Sprintf("  %-10s", g.Title)
		if m.best[i] > 0 {
			line += dimStyle.Render(fmt.Sprintf(" best %d", m.best[i]))
		}
		if i == m.cursor {
			line = cursorStyle.Render("> ") + strings.TrimPrefix(line, "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.games) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.games[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(menuHelp(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the user picked.
type MenuResult struct {
	Kind       registry.Kind
	Scoreboard bool
	Quit       bool
}

// Result converts the final model state.
func (m MenuModel) Result() MenuResult {
	switch {
	case m.scoreboard:
		return MenuResult{Scoreboard: true}
	case m.selected != nil:
		return MenuResult{Kind: m.selected.Kind}
	default:
		return MenuResult{Quit: true}
	}
}

// RunMenu shows the picker full screen until the user chooses.
func RunMenu(store ScoreSource) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}
