package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Grid Grid          // Matrix dimensions, fixed for the process
	Tick time.Duration // Fixed simulation step
	Seed int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig for a 16x16 panel at 20 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid: NewGrid(16, 16),
		Tick: 50 * time.Millisecond,
		Seed: 0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the engine after each update.
type GameState struct {
	Score    int    // Score submitted to the high-score table at game over
	GameOver bool   // Whether the game has ended
	Won      bool   // Set with GameOver when the game ended in a win
	Phase    string // Human-readable phase tag, for logs
}
