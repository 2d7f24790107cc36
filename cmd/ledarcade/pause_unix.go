//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/led-arcade/internal/engine"
)

// watchPause toggles pause on SIGUSR1 until ctx is done.
func watchPause(ctx context.Context, e *engine.Engine) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGUSR1)
	defer signal.Stop(sig)

	paused := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			paused = !paused
			if paused {
				e.Pause()
			} else {
				e.Resume()
			}
			logger.Info("pause toggled", "paused", paused)
		}
	}
}
