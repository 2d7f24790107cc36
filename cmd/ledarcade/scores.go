package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show or clear high scores",
	Long: `Show the top scores of a game, or a summary of every game.

Without a game and on a terminal the interactive scoreboard opens.

Examples:
  ledarcade scores
  ledarcade scores invaders
  ledarcade scores pong --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete recorded scores (all games when none is given)")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		g, err := registry.Lookup(args[0])
		if err != nil {
			return err
		}
		gameID = g.ID
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		if gameID == "" {
			fmt.Fprintln(out, "Cleared all scores.")
		} else {
			fmt.Fprintf(out, "Cleared scores for %s.\n", gameID)
		}
		return nil
	}

	if gameID != "" {
		return printTopScores(cmd, store, gameID)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		_, err := tui.RunScoreboard(store, "")
		return err
	}
	return printSummary(cmd, store)
}

func printTopScores(cmd *cobra.Command, store *storage.Store, gameID string) error {
	entries, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No scores recorded for %s yet.\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tSESSION\tDATE")
	for i, e := range entries {
		session := e.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Fprintf(w, "#%d\t%d\t%s\t%s\n", i+1, e.Score, session, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d\n", entries[0].Score)
	return nil
}

func printSummary(cmd *cobra.Command, store *storage.Store) error {
	games, err := store.Games()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tBEST")
	for _, id := range games {
		best, err := store.HighScore(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", id, best)
	}
	return w.Flush()
}
