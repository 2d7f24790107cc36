package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games interactively",
	Long: `Open a game picker. The chosen game runs on the configured driver;
when it ends you return to the picker.

Controls:
  Up/Down   - Navigate
  Enter     - Play
  Tab       - High scores
  Q/Esc     - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addDriverFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	var scores tui.ScoreSource
	if store != nil {
		defer store.Close()
		scores = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for ctx.Err() == nil {
		choice, err := tui.RunMenu(scores)
		if err != nil {
			return err
		}

		switch {
		case choice.Quit:
			return nil
		case choice.Scoreboard:
			back, err := tui.RunScoreboard(scores, "")
			if err != nil || !back {
				return err
			}
		default:
			if err := (session{kind: choice.Kind, cfg: cfg, store: store}).run(ctx); err != nil {
				return err
			}
			// Leave the final frame up for a moment before the menu redraws.
			select {
			case <-ctx.Done():
			case <-time.After(restartDelay):
			}
			cfg.Seed++
		}
	}
	return nil
}
