//go:build !unix

package main

import (
	"context"

	"github.com/vovakirdan/led-arcade/internal/engine"
)

// watchPause is a no-op where SIGUSR1 does not exist.
func watchPause(ctx context.Context, _ *engine.Engine) {
	<-ctx.Done()
}
