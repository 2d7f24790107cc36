package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by the menu and the scoreboard.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Scores   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev game"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// menuHelp is the help view for the game picker.
type menuHelp KeyMap

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// scoreboardHelp is the help view for the score table.
type scoreboardHelp KeyMap

func (k scoreboardHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

func (k scoreboardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}
