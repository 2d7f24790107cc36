package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/registry"
)

var (
	flagDriver string
	flagWSAddr string
	flagLoop   bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Run a game on the display",
	Long: `Run one of the built-in games until it ends or you press Ctrl+C.

Games play themselves; there is no input. Send SIGUSR1 to pause or resume.
On Ctrl+C the panel is blanked; on game over the final frame stays lit.

Drivers:
  terminal - draw the panel in this terminal (default)
  spi      - NeoPixel strip on an SPI port, falls back to screen
  screen   - one-line strip emulation on stdout
  none     - no output, useful with --ws

Examples:
  ledarcade play pong
  ledarcade play invaders --difficulty hard
  ledarcade play slideshow --driver spi --loop
  ledarcade play pong --driver none --ws :8080`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addDriverFlags(playCmd)
	playCmd.Flags().BoolVar(&flagLoop, "loop", false, "Restart the game after it ends")
}

func addDriverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDriver, "driver", "terminal", "Display driver: terminal, spi, screen, none")
	cmd.Flags().StringVar(&flagWSAddr, "ws", "", "Mirror frames over websocket on this address, e.g. :8080")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session{kind: game.Kind, cfg: cfg, store: store, loop: flagLoop}.run(ctx)
}
