package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset rescales the game tuning in place. Normal leaves cfg untouched.
// Easy slows the paddles and the formation; hard speeds them up.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	var pct int
	switch preset {
	case DifficultyNormal, "":
		return nil
	case DifficultyEasy:
		pct = 60
	case DifficultyHard:
		pct = 150
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, preset)
	}

	cfg.Pong.PaddleSpeed = min(cfg.Pong.PaddleSpeed*float64(pct)/100, 1)

	// Intervals shrink as difficulty grows.
	scale := func(d time.Duration) time.Duration {
		return d * 100 / time.Duration(pct)
	}
	inv := &cfg.Invaders
	inv.MoveEvery = scale(inv.MoveEvery)
	inv.MinMoveEvery = min(scale(inv.MinMoveEvery), inv.MoveEvery)
	inv.EnemyFireEvery = scale(inv.EnemyFireEvery)
	return nil
}
