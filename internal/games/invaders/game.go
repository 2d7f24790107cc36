// Package invaders implements a descending-formation shooter for the LED grid.
// The player ship is flown by an autopilot; invaders, player shots and enemy
// shots live in fixed-capacity arenas so memory never grows during play.
package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

// Phase is the game phase.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

var rowColors = []core.Color{
	core.Red,
	core.Orange,
	core.Yellow,
	core.Green,
	core.Cyan,
	core.Magenta,
}

var (
	shipColor       = core.RGB(0, 255, 0)
	playerShotColor = core.RGB(255, 255, 100)
	enemyShotColor  = core.RGB(255, 80, 80)
	lifeColor       = core.RGB(0, 80, 0)
)

// Invader is one member of the formation.
type Invader struct {
	Pos core.Vec[int]
	Row int // formation row, selects the color
}

// Rect returns the invader's bounding box.
func (i Invader) Rect() core.Rect {
	return core.NewRect(i.Pos.X, i.Pos.Y, 1, 1)
}

// Shot is a projectile moving one cell per tick.
type Shot struct {
	Pos core.Vec[int]
	Vel core.Vec[int]
}

// Rect returns the shot's bounding box.
func (s Shot) Rect() core.Rect {
	return core.NewRect(s.Pos.X, s.Pos.Y, 1, 1)
}

// Game implements the Invaders game logic.
type Game struct {
	cfg  config.InvadersConfig
	grid core.Grid
	rng  *rand.Rand

	invaders    *core.Arena[Invader]
	playerShots *core.Arena[Shot]
	enemyShots  *core.Arena[Shot]
	bottom      []int // per column: slot of the lowest invader, -1 if none

	playerX int // turret column
	pilot   bool
	dir     int // formation sweep direction, +1 or -1
	total   int // formation size at reset

	moveTimer      time.Duration
	fireTimer      time.Duration
	enemyFireTimer time.Duration

	score int
	lives int
	phase Phase
	won   bool
	ticks int
}

// New creates an Invaders game. Call Reset before the first Update.
func New(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset spawns a fresh formation and ship.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.grid = rt.Grid
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.invaders = core.NewArena[Invader](g.cfg.Rows * g.cfg.Cols)
	g.playerShots = core.NewArena[Shot](g.cfg.MaxPlayerShots)
	g.enemyShots = core.NewArena[Shot](g.cfg.MaxEnemyShots)
	g.bottom = make([]int, g.grid.W)

	span := (g.cfg.Cols-1)*g.cfg.Spacing + 1
	startX := (g.grid.W - span) / 2
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			g.invaders.Spawn(Invader{
				Pos: core.Vec[int]{X: startX + c*g.cfg.Spacing, Y: g.cfg.StartY + r*g.cfg.Spacing},
				Row: r,
			})
		}
	}
	g.total = g.invaders.Len()

	g.playerX = g.grid.W / 2
	g.pilot = true
	g.dir = 1
	g.moveTimer = g.cfg.MoveEvery
	g.fireTimer = 0
	g.enemyFireTimer = g.cfg.EnemyFireEvery

	g.score = 0
	g.lives = g.cfg.Lives
	g.phase = PhasePlaying
	g.won = false
	g.ticks = 0
}

// Update advances the game by one tick. Timers count down by dt; entities
// move one cell per step.
func (g *Game) Update(dt time.Duration) {
	if g.phase == PhaseGameOver {
		return
	}
	g.ticks++

	if g.pilot {
		g.autopilot(dt)
	}

	g.advanceFormation(dt)
	if g.phase == PhaseGameOver {
		return
	}
	g.resolveHits()

	g.moveShots()
	g.resolveHits()

	g.enemyFire(dt)

	if g.phase == PhasePlaying && g.invaders.Len() == 0 {
		g.end(true)
	}
}

func (g *Game) end(won bool) {
	g.phase = PhaseGameOver
	g.won = won
}

// playerRow is the row the formation must not reach.
func (g *Game) playerRow() int {
	return g.grid.H - 2
}

// shipRects returns the base and turret of the ship.
func (g *Game) shipRects() (base, turret core.Rect) {
	return core.NewRect(g.playerX-1, g.grid.H-1, 3, 1), core.NewRect(g.playerX, g.grid.H-2, 1, 1)
}

func (g *Game) playerHit(r core.Rect) bool {
	base, turret := g.shipRects()
	return core.Overlap(r, base) || core.Overlap(r, turret)
}

// moveEvery shortens the formation cadence as invaders die.
func (g *Game) moveEvery() time.Duration {
	if g.total == 0 {
		return g.cfg.MoveEvery
	}
	spread := g.cfg.MoveEvery - g.cfg.MinMoveEvery
	return g.cfg.MinMoveEvery + spread*time.Duration(g.invaders.Len())/time.Duration(g.total)
}

// advanceFormation steps the whole formation sideways, or down one row and
// reverses when any invader would leave the grid.
func (g *Game) advanceFormation(dt time.Duration) {
	g.moveTimer -= dt
	if g.moveTimer > 0 {
		return
	}
	g.moveTimer += g.moveEvery()
	if g.moveTimer <= 0 {
		g.moveTimer = g.moveEvery()
	}

	edge := false
	for _, inv := range g.invaders.All() {
		if nx := inv.Pos.X + g.dir; nx < 0 || nx >= g.grid.W {
			edge = true
			break
		}
	}

	for _, inv := range g.invaders.All() {
		if edge {
			inv.Pos.Y++
		} else {
			inv.Pos.X += g.dir
		}
		if inv.Pos.Y >= g.playerRow() {
			g.end(false)
		}
	}
	if edge {
		g.dir = -g.dir
	}
}

// moveShots advances every projectile and drops those that left the grid.
func (g *Game) moveShots() {
	for _, arena := range []*core.Arena[Shot]{g.playerShots, g.enemyShots} {
		for slot, s := range arena.All() {
			s.Pos = s.Pos.Add(s.Vel)
			if !g.grid.InBounds(s.Pos.X, s.Pos.Y) {
				arena.Despawn(slot)
			}
		}
	}
}

// resolveHits removes struck invaders with the shots that hit them and
// charges the player for enemy hits.
func (g *Game) resolveHits() {
	for ps, s := range g.playerShots.All() {
		for is, inv := range g.invaders.All() {
			if core.Overlap(s.Rect(), inv.Rect()) {
				g.invaders.Despawn(is)
				g.playerShots.Despawn(ps)
				g.score += g.cfg.PointsPerKill
				break
			}
		}
	}

	for es, s := range g.enemyShots.All() {
		if !g.playerHit(s.Rect()) {
			continue
		}
		g.enemyShots.Despawn(es)
		g.lives--
		if g.lives <= 0 {
			g.end(false)
			return
		}
	}
}

// firePlayerShot launches a shot from the turret. Refused when the cap is reached.
func (g *Game) firePlayerShot() bool {
	_, ok := g.playerShots.Spawn(Shot{
		Pos: core.Vec[int]{X: g.playerX, Y: g.grid.H - 3},
		Vel: core.Vec[int]{X: 0, Y: -1},
	})
	return ok
}

// enemyFire lets a random bottom-row invader shoot on a fixed interval.
func (g *Game) enemyFire(dt time.Duration) {
	g.enemyFireTimer -= dt
	if g.enemyFireTimer > 0 {
		return
	}
	g.enemyFireTimer = g.cfg.EnemyFireEvery

	for i := range g.bottom {
		g.bottom[i] = -1
	}
	columns := 0
	for slot, inv := range g.invaders.All() {
		x := inv.Pos.X
		if x < 0 || x >= len(g.bottom) {
			continue
		}
		if g.bottom[x] == -1 {
			columns++
			g.bottom[x] = slot
		} else if cur, _ := g.invaders.Get(g.bottom[x]); inv.Pos.Y > cur.Pos.Y {
			g.bottom[x] = slot
		}
	}
	if columns == 0 {
		return
	}

	pick := g.rng.Intn(columns)
	for _, slot := range g.bottom {
		if slot == -1 {
			continue
		}
		if pick > 0 {
			pick--
			continue
		}
		inv, _ := g.invaders.Get(slot)
		g.enemyShots.Spawn(Shot{
			Pos: core.Vec[int]{X: inv.Pos.X, Y: inv.Pos.Y + 1},
			Vel: core.Vec[int]{X: 0, Y: 1},
		})
		return
	}
}

// autopilot steers toward the nearest invader column, sidesteps shots about
// to land on the ship and fires when lined up.
func (g *Game) autopilot(dt time.Duration) {
	g.fireTimer -= dt

	target := g.playerX
	best := -1
	for _, inv := range g.invaders.All() {
		d := core.Abs(inv.Pos.X-g.playerX) + (g.grid.H - inv.Pos.Y)
		if best == -1 || d < best {
			best = d
			target = inv.Pos.X
		}
	}

	for _, s := range g.enemyShots.All() {
		if s.Pos.Y < g.grid.H-5 || core.Abs(s.Pos.X-g.playerX) > 1 {
			continue
		}
		if s.Pos.X >= g.playerX {
			target = g.playerX - 2
		} else {
			target = g.playerX + 2
		}
		break
	}

	g.playerX += core.Sign(target - g.playerX)
	pos := core.ClampToGrid(core.Vec[int]{X: g.playerX - 1, Y: g.grid.H - 1}, core.Vec[int]{X: 3, Y: 1}, g.grid)
	g.playerX = core.Clamp(pos.X+1, 0, g.grid.W-1)

	if g.fireTimer > 0 {
		return
	}
	for _, inv := range g.invaders.All() {
		if inv.Pos.X == g.playerX {
			if g.firePlayerShot() {
				g.fireTimer = g.cfg.FireCooldown
			}
			return
		}
	}
}

// Render draws the current game state into the frame buffer.
func (g *Game) Render(fb *core.FrameBuffer) {
	w, h := g.grid.W, g.grid.H

	if g.phase == PhaseGameOver {
		if g.won {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					fb.Set(x, y, core.Wheel(uint8((x+y)*255/core.Max(1, w+h-2))).Scale(128))
				}
			}
			return
		}
		for i := 0; i < core.Min(w, h); i++ {
			fb.Set(i, i, core.Red)
			fb.Set(w-1-i, i, core.Red)
		}
		return
	}

	for _, inv := range g.invaders.All() {
		fb.Set(inv.Pos.X, inv.Pos.Y, rowColors[inv.Row%len(rowColors)])
	}
	for _, s := range g.playerShots.All() {
		fb.Set(s.Pos.X, s.Pos.Y, playerShotColor)
	}
	for _, s := range g.enemyShots.All() {
		fb.Set(s.Pos.X, s.Pos.Y, enemyShotColor)
	}

	base, turret := g.shipRects()
	fb.FillRect(base, shipColor)
	fb.FillRect(turret, shipColor)

	for i := 0; i < g.lives; i++ {
		fb.Set(w-1-i, 0, lifeColor)
	}
}

// State reports score and end-of-game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Won:      g.won,
		Phase:    g.phase.String(),
	}
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Invaders returns how many invaders are alive.
func (g *Game) Invaders() int {
	return g.invaders.Len()
}

// PlayerShots returns how many player shots are in flight.
func (g *Game) PlayerShots() int {
	return g.playerShots.Len()
}

// EnemyShots returns how many enemy shots are in flight.
func (g *Game) EnemyShots() int {
	return g.enemyShots.Len()
}

// PlayerX returns the ship's turret column.
func (g *Game) PlayerX() int {
	return g.playerX
}
