package tui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

type fakeScores map[string][]storage.ScoreEntry

func (f fakeScores) HighScore(gameID string) (int, error) {
	if s := f[gameID]; len(s) > 0 {
		return s[0].Score, nil
	}
	return 0, nil
}

func (f fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	s := f[gameID]
	if len(s) > limit {
		s = s[:limit]
	}
	return s, nil
}

type brokenScores struct{}

func (brokenScores) HighScore(string) (int, error) { return 0, errors.New("db locked") }
func (brokenScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("db locked")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m, cmd
}

func TestRenderFrameUndoesSerpentine(t *testing.T) {
	grid := core.NewGrid(2, 2)
	frame := make([]core.Color, 4)
	frame[grid.Index(0, 0)] = core.Red
	frame[grid.Index(1, 1)] = core.Green

	r := lipgloss.NewRenderer(&bytes.Buffer{})
	got := RenderFrame(r, grid, frame)

	want := litCell + offCell + "\n" + offCell + litCell
	if got != want {
		t.Errorf("RenderFrame() =\n%q\nexpected\n%q", got, want)
	}
}

func TestRenderFrameShortFrame(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	got := RenderFrame(r, core.NewGrid(3, 1), []core.Color{core.Blue})

	if got != litCell+offCell+offCell {
		t.Errorf("missing elements should render off, got %q", got)
	}
}

func TestPreviewFlush(t *testing.T) {
	var buf bytes.Buffer
	grid := core.NewGrid(2, 1)
	p := NewPreview(&buf, grid)

	if err := p.Flush([]core.Color{core.Red, core.Off}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), clearScreen+cursorHome) {
		t.Errorf("first frame should clear the screen, got %q", buf.String())
	}

	buf.Reset()
	if err := p.Flush([]core.Color{core.Off, core.Red}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), cursorHome+offCell+litCell+"\n"; got != want {
		t.Errorf("second frame = %q, expected %q", got, want)
	}
}

func TestCheckTerminalIgnoresFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := CheckTerminal(int(f.Fd()), core.NewGrid(500, 500)); err != nil {
		t.Errorf("non-terminal should pass, got %v", err)
	}
}

func TestMenuNavigation(t *testing.T) {
	var m tea.Model = NewMenuModel(nil)

	m, _ = press(m, "down", "down", "down", "up")
	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("selecting should quit the menu")
	}

	res := m.(MenuModel).Result()
	if res.Quit || res.Scoreboard {
		t.Fatalf("result = %+v", res)
	}
	if res.Kind != registry.List()[1].Kind {
		t.Errorf("selected %v, expected %v", res.Kind, registry.List()[1].Kind)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, _ := press(NewMenuModel(nil), "tab")
	if !m.(MenuModel).Result().Scoreboard {
		t.Error("tab should open the scoreboard")
	}

	m, _ = press(NewMenuModel(nil), "q")
	if !m.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := fakeScores{"pong": {{Score: 42}}}
	m := NewMenuModel(store)
	m.width = 80

	view := m.View()
	if !strings.Contains(view, "best 42") {
		t.Errorf("view should show the pong best:\n%s", view)
	}
	for _, g := range registry.List() {
		if !strings.Contains(view, g.Title) {
			t.Errorf("view is missing %s", g.Title)
		}
	}
}

func TestScoreboardSwitchesGames(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	store := fakeScores{
		"pong":     {{GameID: "pong", SessionID: "0123456789", Score: 9, CreatedAt: now}},
		"invaders": {{GameID: "invaders", Score: 120, CreatedAt: now}, {GameID: "invaders", Score: 80, CreatedAt: now}},
	}

	m := NewScoreboardModel(store, "pong", 80, 24)
	if m.Current().ID != "pong" || len(m.table.Rows()) != 1 {
		t.Fatalf("opened on %s with %d rows", m.Current().ID, len(m.table.Rows()))
	}
	if row := m.table.Rows()[0]; row[1] != "9" || row[2] != "01234567" || row[3] != "Jan 02 15:04" {
		t.Errorf("row = %v", row)
	}

	next, _ := press(m, "tab")
	sb := next.(ScoreboardModel)
	if sb.Current().ID != "invaders" || len(sb.table.Rows()) != 2 {
		t.Errorf("after tab: %s with %d rows", sb.Current().ID, len(sb.table.Rows()))
	}

	prev, _ := press(sb, "shift+tab")
	if prev.(ScoreboardModel).Current().ID != "pong" {
		t.Error("shift+tab should go back to pong")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(fakeScores{}, "slideshow", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty table should say so")
	}

	m = NewScoreboardModel(brokenScores{}, "", 80, 24)
	if !strings.Contains(m.View(), "db locked") {
		t.Error("store errors should be shown")
	}
}

func TestScoreboardBack(t *testing.T) {
	m, cmd := press(NewScoreboardModel(nil, "", 80, 24), "esc")
	if cmd == nil || !m.(ScoreboardModel).GoingBack() {
		t.Error("esc should return to the menu")
	}
}
