package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/engine"
	"github.com/vovakirdan/led-arcade/internal/platform/ledstrip"
	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/platform/web"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

// restartDelay is how long the final frame stays up before --loop restarts.
const restartDelay = 3 * time.Second

// openSink builds the display sink for cfg.Driver. The returned close
// function blanks hardware and releases it.
func openSink(cfg config.Config) (engine.Sink, func(), error) {
	grid := cfg.Runtime().Grid
	noop := func() {}

	switch cfg.Driver.Kind {
	case config.DriverTerminal:
		if err := tui.CheckTerminal(int(os.Stdout.Fd()), grid); err != nil {
			return nil, noop, err
		}
		return tui.NewPreview(os.Stdout, grid), noop, nil

	case config.DriverSPI:
		strip, err := ledstrip.Open(cfg.Driver.SPIPort, grid.Len(), cfg.Channels, cfg.Driver.SPIFreqKHz)
		if err != nil {
			logger.Warn("no SPI port, printing at the console", "err", err)
			strip = ledstrip.NewScreen(grid.Len())
		}
		return strip, func() { strip.Close() }, nil

	case config.DriverScreen:
		strip := ledstrip.NewScreen(grid.Len())
		return strip, func() { strip.Close() }, nil

	default:
		return engine.SinkFunc(func([]core.Color) error { return nil }), noop, nil
	}
}

// session runs one game, or keeps restarting it with loop, until it ends or
// ctx is cancelled.
type session struct {
	kind  registry.Kind
	cfg   config.Config
	store *storage.Store
	loop  bool
}

func (s session) run(ctx context.Context) error {
	sink, closeSink, err := openSink(s.cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	var mirror *web.Mirror
	if s.cfg.Driver.WebsocketAddr != "" {
		mirror = web.NewMirror(s.cfg.Runtime().Grid, logger)
		sink = engine.MultiSink{sink, mirror}
	}

	sessionID := uuid.NewString()
	var scores engine.Scores = engine.MemoryScores{}
	if s.store != nil {
		scores = s.store.Counter(sessionID)
	}

	e, err := engine.New(sink, engine.Options{
		Grid:       s.cfg.Runtime().Grid,
		Tick:       s.cfg.Tick,
		Brightness: s.cfg.BrightnessLevel(),
		Seed:       s.cfg.Seed,
		Scores:     scores,
		Logger:     logger.With("session", sessionID[:8]),
		SessionID:  sessionID,
	})
	if err != nil {
		return err
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	if mirror != nil {
		srv := &http.Server{Addr: s.cfg.Driver.WebsocketAddr, Handler: mirror.Handler()}
		g.Go(func() error {
			logger.Info("websocket mirror listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			mirror.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		watchPause(gctx, e)
		return nil
	})

	g.Go(func() error {
		defer stop()
		return s.play(gctx, e)
	})

	return g.Wait()
}

func (s session) play(ctx context.Context, e *engine.Engine) error {
	for round := int64(0); ; round++ {
		e.Reseed(s.cfg.Seed + round)
		v, err := engine.NewVariant(s.kind, s.cfg)
		if err != nil {
			return err
		}
		if err := e.Start(v); err != nil {
			return err
		}

		res, err := e.Run(ctx)
		if err != nil {
			return err
		}
		logger.Info("session ended",
			"game", s.kind,
			"reason", res.Reason,
			"ticks", res.Ticks,
			"score", res.Score,
			"won", res.Won,
			"high_score", res.HighScore,
		)
		if res.Reason != engine.StopGameOver || !s.loop {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(restartDelay):
		}
	}
}

// openStore opens the score database. Failure is logged and play continues
// with an in-memory table.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}
