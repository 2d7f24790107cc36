// Package pong implements an autonomous Pong match for the LED grid.
// Both paddles are driven by a tracking policy with a capped speed.
// All positions and velocities are fixed-point; nothing here uses floats
// after configuration has been converted.
package pong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

// Phase is the match phase.
type Phase int

const (
	PhaseServing Phase = iota
	PhaseInPlay
	PhasePointScored
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhaseInPlay:
		return "in_play"
	case PhasePointScored:
		return "point_scored"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Side identifies a paddle and the goal behind it.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Colors
var (
	leftColor  = core.RGB(0, 100, 255)
	rightColor = core.RGB(255, 50, 50)
	ballColor  = core.White
	trailColor = core.RGB(100, 100, 50)
	netColor   = core.Gray
	pipColor   = core.RGB(255, 200, 0)
)

// Paddle is a one-column bat at a fixed x.
type Paddle struct {
	X      int
	Y      core.Fixed // top edge
	Height int
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y.Cell(), 1, p.Height)
}

// Center returns the paddle's vertical midpoint.
func (p Paddle) Center() core.Fixed {
	return p.Y + core.ToFixed(p.Height).Div(2)
}

// Ball is a single pixel. Pos is the top-left of the cell it occupies.
type Ball struct {
	Pos core.Vec[core.Fixed]
	Vel core.Vec[core.Fixed]
}

// Cell returns the grid cell the ball is drawn in.
func (b Ball) Cell() (int, int) {
	return b.Pos.X.Cell(), b.Pos.Y.Cell()
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	x, y := b.Cell()
	return core.NewRect(x, y, 1, 1)
}

// Game implements the Pong game logic.
type Game struct {
	cfg  config.PongConfig
	grid core.Grid
	rng  *rand.Rand

	paddleSpeed core.Fixed
	ballSpeed   core.Fixed
	spin        core.Fixed
	maxVY       core.Fixed

	paddles [2]Paddle
	ball    Ball
	score   [2]int
	winner  Side

	phase      Phase
	serveTimer time.Duration

	rally        int // paddle hits since the last serve
	longestRally int
	ticks        int
}

// New creates a Pong game. Call Reset before the first Update.
func New(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset starts a new match.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.grid = rt.Grid
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.paddleSpeed = core.FixedFromFloat(g.cfg.PaddleSpeed)
	g.ballSpeed = core.FixedFromFloat(g.cfg.BallSpeed)
	g.spin = core.FixedFromFloat(g.cfg.Spin)
	g.maxVY = core.FixedFromFloat(g.cfg.MaxVerticalSpeed)

	h := core.Min(g.cfg.PaddleHeight, g.grid.H)
	top := core.ToFixed((g.grid.H - h) / 2)
	g.paddles[SideLeft] = Paddle{X: 0, Y: top, Height: h}
	g.paddles[SideRight] = Paddle{X: g.grid.W - 1, Y: top, Height: h}

	g.score = [2]int{}
	g.winner = SideLeft
	g.rally = 0
	g.longestRally = 0
	g.ticks = 0

	g.centerBall()
	g.phase = PhaseServing
	g.serveTimer = g.cfg.ServeDelay
}

// Update advances the match by one tick. dt drives the serve delay.
func (g *Game) Update(dt time.Duration) {
	if g.phase == PhaseGameOver {
		return
	}
	g.ticks++
	g.trackPaddles()

	switch g.phase {
	case PhaseServing, PhasePointScored:
		g.serveTimer -= dt
		if g.serveTimer <= 0 {
			g.serve()
		}
	case PhaseInPlay:
		g.stepBall()
	}
}

// centerBall parks the ball in the middle of the grid.
func (g *Game) centerBall() {
	cx, cy := g.grid.Center()
	g.ball = Ball{Pos: core.Vec[core.Fixed]{X: core.ToFixed(cx), Y: core.ToFixed(cy)}}
}

// serve launches the ball from the center in a pseudo-random direction.
func (g *Game) serve() {
	g.centerBall()
	vx := g.ballSpeed
	if g.rng.Intn(2) == 0 {
		vx = -vx
	}
	half := g.maxVY / 2
	vy := core.Fixed(g.rng.Int63n(int64(2*half)+1)) - half
	g.ball.Vel = core.Vec[core.Fixed]{X: vx, Y: vy}
	g.rally = 0
	g.phase = PhaseInPlay
}

// trackPaddles moves each paddle toward its target at the capped speed.
// A paddle follows the ball while it approaches and drifts back to the
// middle otherwise.
func (g *Game) trackPaddles() {
	ballMid := g.ball.Pos.Y + core.FixedScale/2
	for side := range g.paddles {
		p := &g.paddles[side]
		half := core.ToFixed(p.Height).Div(2)

		target := core.ToFixed(g.grid.H).Div(2) - half
		if g.phase == PhaseInPlay && g.approaching(Side(side)) {
			target = ballMid - half
		}

		step := core.ClampFixed(target-p.Y, -g.paddleSpeed, g.paddleSpeed)
		p.Y = core.ClampFixed(p.Y+step, 0, core.ToFixed(g.grid.H-p.Height))
	}
}

func (g *Game) approaching(side Side) bool {
	if side == SideLeft {
		return g.ball.Vel.X < 0
	}
	return g.ball.Vel.X > 0
}

// stepBall moves the ball and resolves walls, paddles and goals.
func (g *Game) stepBall() {
	b := &g.ball
	b.Pos = b.Pos.Add(b.Vel)

	// Top and bottom walls.
	bottom := core.ToFixed(g.grid.H - 1)
	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		if b.Vel.Y < 0 {
			b.Vel = core.Reflect(b.Vel, core.AxisY)
		}
	} else if b.Pos.Y >= bottom {
		b.Pos.Y = bottom
		if b.Vel.Y > 0 {
			b.Vel = core.Reflect(b.Vel, core.AxisY)
		}
	}

	for side := range g.paddles {
		p := g.paddles[side]
		if !g.approaching(Side(side)) || !core.Overlap(b.Rect(), p.Rect()) {
			continue
		}
		b.Vel = core.Reflect(b.Vel, core.AxisX)
		if Side(side) == SideLeft {
			b.Pos.X = core.ToFixed(p.X + 1)
		} else {
			b.Pos.X = core.ToFixed(p.X - 1)
		}

		// Strikes away from the paddle center bend the ball.
		offset := b.Pos.Y + core.FixedScale/2 - p.Center()
		b.Vel.Y = core.ClampFixed(b.Vel.Y+offset.MulFixed(g.spin), -g.maxVY, g.maxVY)

		g.rally++
		g.longestRally = core.Max(g.longestRally, g.rally)
		break
	}

	switch {
	case b.Pos.X < 0:
		g.pointScored(SideLeft)
	case b.Pos.X >= core.ToFixed(g.grid.W):
		g.pointScored(SideRight)
	}
}

// pointScored credits the tally of the goal the ball crossed.
func (g *Game) pointScored(goal Side) {
	g.score[goal]++
	g.centerBall()

	if g.score[goal] >= g.cfg.WinScore {
		g.winner = goal
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhasePointScored
	g.serveTimer = g.cfg.ServeDelay
}

// Render draws the current game state into the frame buffer.
func (g *Game) Render(fb *core.FrameBuffer) {
	w, h := g.grid.W, g.grid.H

	if g.phase == PhaseGameOver {
		half := core.NewRect(0, 0, w/2, h)
		c := leftColor
		if g.winner == SideRight {
			half.X = w - w/2
			c = rightColor
		}
		fb.FillRect(half, c.Scale(64))
	} else {
		for y := 0; y < h; y += 2 {
			fb.Set(w/2, y, netColor)
		}
	}

	fb.FillRect(g.paddles[SideLeft].Rect(), leftColor)
	fb.FillRect(g.paddles[SideRight].Rect(), rightColor)

	bx, by := g.ball.Cell()
	switch g.phase {
	case PhaseInPlay:
		fb.Set(bx-g.ball.Vel.X.Sign(), by, trailColor)
		fb.Set(bx, by, ballColor)
	case PhaseServing, PhasePointScored:
		if (g.ticks/4)%2 == 0 {
			fb.Set(bx, by, ballColor)
		}
	}

	// Score pips along the top row, growing inward from each side.
	for i := 0; i < g.score[SideLeft]; i++ {
		fb.Set(1+i, 0, pipColor)
	}
	for i := 0; i < g.score[SideRight]; i++ {
		fb.Set(w-2-i, 0, pipColor)
	}
}

// State reports the longest rally as the session score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.longestRally,
		GameOver: g.phase == PhaseGameOver,
		Phase:    g.phase.String(),
	}
}

// Phase returns the current match phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the tally for one goal.
func (g *Game) Score(side Side) int {
	return g.score[side]
}

// Winner returns the side that reached the winning score. Only meaningful in PhaseGameOver.
func (g *Game) Winner() Side {
	return g.winner
}

// Ball returns the ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns one paddle.
func (g *Game) Paddle(side Side) Paddle {
	return g.paddles[side]
}
