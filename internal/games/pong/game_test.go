package pong

import (
	"testing"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

const tick = 50 * time.Millisecond

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.Default().Pong)
	g.Reset(core.RuntimeConfig{Grid: core.NewGrid(16, 16), Tick: tick, Seed: seed})
	return g
}

func vec(x, y int) core.Vec[core.Fixed] {
	return core.Vec[core.Fixed]{X: core.ToFixed(x), Y: core.ToFixed(y)}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	if g.Phase() != PhaseServing {
		t.Errorf("phase = %v, expected serving", g.Phase())
	}
	if g.Score(SideLeft) != 0 || g.Score(SideRight) != 0 {
		t.Error("scores should start at zero")
	}
	if x, y := g.Ball().Cell(); x != 8 || y != 8 {
		t.Errorf("ball at (%d, %d), expected (8, 8)", x, y)
	}
	if g.Paddle(SideLeft).X != 0 || g.Paddle(SideRight).X != 15 {
		t.Errorf("paddle columns = %d, %d", g.Paddle(SideLeft).X, g.Paddle(SideRight).X)
	}
	if g.State().GameOver {
		t.Error("new game should not be over")
	}
}

func TestBallExitsRightWithoutPaddle(t *testing.T) {
	g := newTestGame(t, 1)
	g.phase = PhaseInPlay
	g.paddles[SideRight].Y = 0
	g.ball = Ball{Pos: vec(15, 8), Vel: vec(1, 0)}

	g.Update(tick)

	if g.Score(SideLeft) != 0 {
		t.Errorf("left score = %d, expected 0", g.Score(SideLeft))
	}
	if g.Score(SideRight) != 1 {
		t.Errorf("right score = %d, expected 1", g.Score(SideRight))
	}
	if x, y := g.Ball().Cell(); x != 8 || y != 8 {
		t.Errorf("ball at (%d, %d), expected center (8, 8)", x, y)
	}
	if g.Phase() != PhasePointScored {
		t.Errorf("phase = %v, expected point_scored", g.Phase())
	}
}

func TestPaddleHitReversesX(t *testing.T) {
	tests := []struct {
		name   string
		side   Side
		paddle int
		ball   core.Vec[core.Fixed]
		vel    core.Vec[core.Fixed]
	}{
		{"left straight", SideLeft, 6, vec(1, 7), vec(-1, 0)},
		{"left rising", SideLeft, 6, vec(1, 8), core.Vec[core.Fixed]{X: -1000, Y: -250}},
		{"right falling", SideRight, 5, vec(14, 6), core.Vec[core.Fixed]{X: 1000, Y: 500}},
		{"right slow", SideRight, 6, core.Vec[core.Fixed]{X: 14500, Y: 7000}, core.Vec[core.Fixed]{X: 600, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 7)
			g.phase = PhaseInPlay
			g.paddles[tc.side].Y = core.ToFixed(tc.paddle)
			g.ball = Ball{Pos: tc.ball, Vel: tc.vel}

			g.Update(tick)

			got := g.Ball().Vel.X
			if got != -tc.vel.X {
				t.Errorf("vx = %d, expected %d", got, -tc.vel.X)
			}
			if g.Score(SideLeft)+g.Score(SideRight) != 0 {
				t.Error("a paddle hit must not score")
			}
		})
	}
}

func TestPaddleHitSpin(t *testing.T) {
	g := newTestGame(t, 3)
	g.phase = PhaseInPlay
	g.paddles[SideLeft].Y = core.ToFixed(4) // rows 4..7, drifts to 4.5 this tick
	g.ball = Ball{Pos: vec(1, 7), Vel: vec(-1, 0)}

	g.Update(tick)

	// Struck one cell below the paddle center: 1.0 * spin 0.25.
	if vy := g.Ball().Vel.Y; vy != 250 {
		t.Errorf("vy = %d, expected 250", vy)
	}
}

func TestWallsReflectY(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec[core.Fixed]
		vel    core.Vec[core.Fixed]
		wantY  int
		wantVY core.Fixed
	}{
		{"top", vec(6, 1), vec(1, -1), 0, 1000},
		{"bottom", vec(6, 14), vec(1, 1), 15, -1000},
		{"top overshoot", core.Vec[core.Fixed]{X: 6000, Y: 300}, core.Vec[core.Fixed]{X: 1000, Y: -700}, 0, 700},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 5)
			g.phase = PhaseInPlay
			g.ball = Ball{Pos: tc.pos, Vel: tc.vel}

			g.Update(tick)

			b := g.Ball()
			if _, y := b.Cell(); y != tc.wantY {
				t.Errorf("ball row = %d, expected %d", y, tc.wantY)
			}
			if b.Vel.Y != tc.wantVY {
				t.Errorf("vy = %d, expected %d", b.Vel.Y, tc.wantVY)
			}
		})
	}
}

func TestServeAfterDelay(t *testing.T) {
	g := newTestGame(t, 9)
	delay := config.Default().Pong.ServeDelay
	ticks := int(delay / tick)

	for i := 0; i < ticks-1; i++ {
		g.Update(tick)
		if g.Phase() != PhaseServing {
			t.Fatalf("served early at tick %d", i+1)
		}
	}
	g.Update(tick)

	if g.Phase() != PhaseInPlay {
		t.Fatalf("phase = %v after %d ticks, expected in_play", g.Phase(), ticks)
	}
	v := g.Ball().Vel
	if v.X.Abs() != core.ToFixed(1) {
		t.Errorf("|vx| = %d, expected 1000", v.X.Abs())
	}
	if v.Y.Abs() > 500 {
		t.Errorf("|vy| = %d, expected at most half the vertical cap", v.Y.Abs())
	}
}

func TestWinningScoreEndsGame(t *testing.T) {
	g := newTestGame(t, 11)
	g.phase = PhaseInPlay
	g.score[SideLeft] = config.Default().Pong.WinScore - 1
	g.paddles[SideLeft].Y = core.ToFixed(12)
	g.ball = Ball{Pos: vec(0, 2), Vel: vec(-1, 0)}

	g.Update(tick)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected game_over", g.Phase())
	}
	if g.Winner() != SideLeft {
		t.Errorf("winner = %v, expected left", g.Winner())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}

	before := g.Snapshot()
	g.Update(tick)
	if g.Snapshot() != before {
		t.Error("game over state changed on update")
	}
}

func TestPaddleSpeedIsCapped(t *testing.T) {
	g := newTestGame(t, 13)
	g.phase = PhaseInPlay
	g.paddles[SideLeft].Y = 0
	g.ball = Ball{Pos: vec(8, 15), Vel: vec(-1, 0)}

	prev := g.Paddle(SideLeft).Y
	for i := 0; i < 5; i++ {
		g.Update(tick)
		y := g.Paddle(SideLeft).Y
		if d := (y - prev).Abs(); d > core.FixedFromFloat(config.Default().Pong.PaddleSpeed) {
			t.Fatalf("paddle moved %d in one tick", d)
		}
		if y == prev {
			t.Fatalf("paddle did not track the ball on tick %d", i+1)
		}
		prev = y
	}
}

func TestRenderStaysOnGrid(t *testing.T) {
	g := newTestGame(t, 17)
	fb := core.NewFrameBuffer(core.NewGrid(16, 16))

	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Update(tick)
		fb.Clear()
		g.Render(fb)

		for _, side := range []Side{SideLeft, SideRight} {
			r := g.Paddle(side).Rect()
			if r.Y < 0 || r.Bottom() > 16 {
				t.Fatalf("paddle %v left the grid: %+v", side, r)
			}
		}
	}

	lit := 0
	for _, c := range fb.Pixels() {
		if !c.IsOff() {
			lit++
		}
	}
	if lit < 2*config.Default().Pong.PaddleHeight {
		t.Errorf("only %d pixels lit, paddles missing", lit)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := 0; i < 600; i++ {
			g.Update(tick)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
}
