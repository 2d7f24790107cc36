// Package engine runs one game at a time on the LED grid with a fixed-step,
// single-threaded loop: update, render, flush, sleep.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

var (
	// ErrSinkFailure wraps any error returned by the display sink.
	ErrSinkFailure = errors.New("engine: display sink failed")
	// ErrNotStarted is returned by Run before a successful Start.
	ErrNotStarted = errors.New("engine: no game started")
	// ErrRunning is returned by Start while a game is in progress.
	ErrRunning = errors.New("engine: game already running")
)

// State is the engine lifecycle state.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StatePaused
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminal:
		return "terminal"
	}
	return "unknown"
}

// StopReason tells why Run returned.
type StopReason int

const (
	StopGameOver StopReason = iota
	StopInterrupted
	StopSinkFailure
)

func (r StopReason) String() string {
	switch r {
	case StopGameOver:
		return "game over"
	case StopInterrupted:
		return "interrupted"
	case StopSinkFailure:
		return "sink failure"
	}
	return "unknown"
}

// Result summarizes a finished session.
type Result struct {
	Reason    StopReason
	Ticks     int
	Score     int
	Won       bool
	HighScore bool // the score replaced the stored high score
}

// Options configures an engine.
type Options struct {
	Grid       core.Grid
	Tick       time.Duration
	Brightness uint8 // per-channel scale applied before flush, 255 = full
	Seed       int64
	Clock      Clock       // nil = SystemClock
	Scores     Scores      // nil = no high-score table
	Logger     *log.Logger // nil = log.Default()
	SessionID  string
}

// Engine owns the frame buffer and the active game.
type Engine struct {
	opts   Options
	sink   Sink
	clock  Clock
	logger *log.Logger

	fb  *core.FrameBuffer
	out []core.Color

	variant Variant
	state   State
	ticks   int

	pauseReq atomic.Int32 // 0 none, 1 pause, 2 resume
}

const (
	pauseNone int32 = iota
	pausePause
	pauseResume
)

// New creates an engine writing to sink. It fails fast on bad dimensions or tick.
func New(sink Sink, opts Options) (*Engine, error) {
	if opts.Grid.W <= 0 || opts.Grid.H <= 0 {
		return nil, fmt.Errorf("%w: grid must be positive, got %dx%d", config.ErrInvalidConfig, opts.Grid.W, opts.Grid.H)
	}
	if opts.Tick <= 0 {
		return nil, fmt.Errorf("%w: tick must be positive, got %s", config.ErrInvalidConfig, opts.Tick)
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: no display sink", config.ErrInvalidConfig)
	}

	e := &Engine{
		opts:   opts,
		sink:   sink,
		clock:  opts.Clock,
		logger: opts.Logger,
		fb:     core.NewFrameBuffer(opts.Grid),
		out:    make([]core.Color, opts.Grid.Len()),
		state:  StateInitializing,
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e, nil
}

// Start installs a fresh game. Legal before the first run and after a run has ended.
func (e *Engine) Start(v Variant) error {
	if e.state == StateRunning || e.state == StatePaused {
		return ErrRunning
	}
	if !v.valid() {
		return fmt.Errorf("engine: empty %s variant", v.Kind())
	}

	v.reset(core.RuntimeConfig{Grid: e.opts.Grid, Tick: e.opts.Tick, Seed: e.opts.Seed})
	e.variant = v
	e.ticks = 0
	e.pauseReq.Store(pauseNone)
	e.state = StateRunning
	e.logger.Info("game started", "game", v.Kind(), "session", e.opts.SessionID)
	return nil
}

// Reseed sets the seed the next Start hands to the game.
func (e *Engine) Reseed(seed int64) {
	e.opts.Seed = seed
}

// Pause asks the loop to stop updating at the next tick boundary.
// Safe to call from any goroutine.
func (e *Engine) Pause() {
	e.pauseReq.Store(pausePause)
}

// Resume undoes Pause at the next tick boundary.
func (e *Engine) Resume() {
	e.pauseReq.Store(pauseResume)
}

// State returns the lifecycle state. Only meaningful from the loop goroutine
// or after Run has returned.
func (e *Engine) State() State {
	return e.state
}

// FrameBuffer exposes the buffer the game renders into.
func (e *Engine) FrameBuffer() *core.FrameBuffer {
	return e.fb
}

// Run drives the started game until it ends, ctx is cancelled or the sink fails.
// Cancellation is observed once per tick. On interruption or sink failure the
// display is cleared with a single flush; on game over the final frame stays lit.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.state != StateRunning && e.state != StatePaused {
		return Result{}, ErrNotStarted
	}

	step := e.opts.Tick
	last := e.clock.Now().Add(-step)
	next := last.Add(step)

	for {
		if ctx.Err() != nil {
			e.logger.Info("interrupted", "game", e.variant.Kind(), "ticks", e.ticks)
			return e.shutdown(StopInterrupted), nil
		}
		e.applyPauseRequest()

		now := e.clock.Now()
		dt := now.Sub(last)
		if dt > step || dt < 0 {
			dt = step
		}
		last = now

		if e.state == StateRunning {
			e.variant.update(dt)
		}
		e.fb.Clear()
		e.variant.render(e.fb)

		if err := e.flush(); err != nil {
			e.logger.Error("display sink failed", "game", e.variant.Kind(), "ticks", e.ticks, "err", err)
			return e.shutdown(StopSinkFailure), fmt.Errorf("%w: %w", ErrSinkFailure, err)
		}
		e.ticks++

		if st := e.variant.state(); st.GameOver {
			return e.finish(st), nil
		}

		next = next.Add(step)
		if now.After(next) {
			// Fell behind; resynchronize instead of bursting to catch up.
			next = now
		}
		e.clock.SleepUntil(next)
	}
}

func (e *Engine) applyPauseRequest() {
	switch e.pauseReq.Swap(pauseNone) {
	case pausePause:
		if e.state == StateRunning {
			e.state = StatePaused
			e.logger.Info("paused", "game", e.variant.Kind())
		}
	case pauseResume:
		if e.state == StatePaused {
			e.state = StateRunning
			e.logger.Info("resumed", "game", e.variant.Kind())
		}
	}
}

func (e *Engine) flush() error {
	e.fb.CopyScaled(e.out, e.opts.Brightness)
	return e.sink.Flush(e.out)
}

// shutdown clears the display once and ends the session.
func (e *Engine) shutdown(reason StopReason) Result {
	e.state = StateTerminal
	e.fb.Clear()
	if err := e.flush(); err != nil {
		e.logger.Warn("shutdown flush failed", "err", err)
	}
	st := e.variant.state()
	return Result{Reason: reason, Ticks: e.ticks, Score: st.Score, Won: st.Won}
}

// finish records the score of a game that ended on its own.
func (e *Engine) finish(st core.GameState) Result {
	e.state = StateTerminal
	res := Result{Reason: StopGameOver, Ticks: e.ticks, Score: st.Score, Won: st.Won}
	res.HighScore = e.recordScore(st.Score)
	e.logger.Info("game over", "game", e.variant.Kind(), "score", st.Score, "won", st.Won, "ticks", e.ticks)
	return res
}

func (e *Engine) recordScore(score int) bool {
	if e.opts.Scores == nil || score <= 0 {
		return false
	}
	id := e.variant.Kind().String()
	best, err := e.opts.Scores.Get(id)
	if err != nil {
		e.logger.Warn("could not read high score", "game", id, "err", err)
		return false
	}
	if score <= best {
		return false
	}
	if err := e.opts.Scores.Set(id, score); err != nil {
		e.logger.Warn("could not save high score", "game", id, "err", err)
		return false
	}
	e.logger.Info("new high score", "game", id, "score", score, "previous", best)
	return true
}
