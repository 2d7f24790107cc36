package pong

import (
	"hash/fnv"
	"strconv"
)

// Snapshot is the complete observable state of a match in plain integers.
type Snapshot struct {
	Tick     int
	BallX    int // fixed-point
	BallY    int
	BallVX   int
	BallVY   int
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	Phase    Phase
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		BallX:    int(g.ball.Pos.X),
		BallY:    int(g.ball.Pos.Y),
		BallVX:   int(g.ball.Vel.X),
		BallVY:   int(g.ball.Vel.Y),
		Paddle1Y: int(g.paddles[SideLeft].Y),
		Paddle2Y: int(g.paddles[SideRight].Y),
		Score1:   g.score[SideLeft],
		Score2:   g.score[SideRight],
		Phase:    g.phase,
	}
}

// Hash returns a stable FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range []int{s.Tick, s.BallX, s.BallY, s.BallVX, s.BallVY, s.Paddle1Y, s.Paddle2Y, s.Score1, s.Score2, int(s.Phase)} {
		h.Write([]byte(strconv.Itoa(v)))
		h.Write([]byte{','})
	}
	return h.Sum64()
}
