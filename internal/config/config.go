// Package config provides YAML-based configuration for the LED arcade:
// grid geometry, tick rate, brightness, output driver and per-game tuning.
// Configuration is read once at startup and never reloaded.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ErrInvalidConfig marks every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Driver kinds understood by the play command.
const (
	DriverTerminal = "terminal" // lipgloss preview in the controlling terminal
	DriverSPI      = "spi"      // WS281x strip on an SPI bus
	DriverScreen   = "screen"   // single-line ANSI strip on stdout
	DriverNone     = "none"     // render without output (benchmarks, websocket only)
)

// Slideshow transitions. TransitionCycle rotates through all the others.
const (
	TransitionNone      = "none"
	TransitionFade      = "fade"
	TransitionWipeRight = "wipe_right"
	TransitionWipeDown  = "wipe_down"
	TransitionDissolve  = "dissolve"
	TransitionCycle     = "cycle"
)

// Config is the complete startup configuration.
type Config struct {
	Grid       GridConfig      `yaml:"grid"`
	Tick       time.Duration   `yaml:"tick"`
	Brightness float64         `yaml:"brightness"` // 0..1, applied to every channel before flush
	Channels   int             `yaml:"channels"`   // 3 for RGB strips, 4 for RGBW
	Seed       int64           `yaml:"seed"`       // 0 = seed from the clock
	Driver     DriverConfig    `yaml:"driver"`
	Pong       PongConfig      `yaml:"pong"`
	Invaders   InvadersConfig  `yaml:"invaders"`
	Slideshow  SlideshowConfig `yaml:"slideshow"`
	Storage    StorageConfig   `yaml:"storage"`
}

// GridConfig is the physical panel size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DriverConfig selects and tunes the display sink.
type DriverConfig struct {
	Kind          string `yaml:"kind"`
	SPIPort       string `yaml:"spi_port"` // empty = first port found
	SPIFreqKHz    int    `yaml:"spi_freq_khz"`
	WebsocketAddr string `yaml:"websocket_addr"` // empty = no mirror
}

// PongConfig tunes the autonomous Pong match. Speeds are cells per tick.
type PongConfig struct {
	PaddleHeight     int           `yaml:"paddle_height"`
	PaddleSpeed      float64       `yaml:"paddle_speed"`
	BallSpeed        float64       `yaml:"ball_speed"`
	ServeDelay       time.Duration `yaml:"serve_delay"`
	WinScore         int           `yaml:"win_score"`
	Spin             float64       `yaml:"spin"` // vertical speed added per cell of strike offset
	MaxVerticalSpeed float64       `yaml:"max_vertical_speed"`
}

// InvadersConfig tunes the formation, the autopilot and the projectile caps.
type InvadersConfig struct {
	Rows           int           `yaml:"rows"`
	Cols           int           `yaml:"cols"`
	Spacing        int           `yaml:"spacing"`
	StartY         int           `yaml:"start_y"`
	MoveEvery      time.Duration `yaml:"move_every"`
	MinMoveEvery   time.Duration `yaml:"min_move_every"`
	EnemyFireEvery time.Duration `yaml:"enemy_fire_every"`
	FireCooldown   time.Duration `yaml:"fire_cooldown"`
	MaxPlayerShots int           `yaml:"max_player_shots"`
	MaxEnemyShots  int           `yaml:"max_enemy_shots"`
	PointsPerKill  int           `yaml:"points_per_kill"`
	Lives          int           `yaml:"lives"`
}

// SlideshowConfig tunes the pixel-art sequencer.
type SlideshowConfig struct {
	Hold       time.Duration `yaml:"hold"`
	Transition string        `yaml:"transition"`
	Steps      int           `yaml:"steps"` // ticks per transition
	Shuffle    bool          `yaml:"shuffle"`
	Loops      int           `yaml:"loops"` // full passes before stopping, 0 = forever
	SpritesDir string        `yaml:"sprites_dir"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration for a 16x16 panel.
func Default() Config {
	return Config{
		Grid:       GridConfig{Width: 16, Height: 16},
		Tick:       50 * time.Millisecond,
		Brightness: 0.3,
		Channels:   3,
		Driver: DriverConfig{
			Kind:       DriverTerminal,
			SPIFreqKHz: 2500,
		},
		Pong: PongConfig{
			PaddleHeight:     4,
			PaddleSpeed:      0.5,
			BallSpeed:        1,
			ServeDelay:       time.Second,
			WinScore:         5,
			Spin:             0.25,
			MaxVerticalSpeed: 1,
		},
		Invaders: InvadersConfig{
			Rows:           3,
			Cols:           6,
			Spacing:        2,
			StartY:         1,
			MoveEvery:      400 * time.Millisecond,
			MinMoveEvery:   150 * time.Millisecond,
			EnemyFireEvery: 1500 * time.Millisecond,
			FireCooldown:   150 * time.Millisecond,
			MaxPlayerShots: 3,
			MaxEnemyShots:  5,
			PointsPerKill:  10,
			Lives:          3,
		},
		Slideshow: SlideshowConfig{
			Hold:       5 * time.Second,
			Transition: TransitionCycle,
			Steps:      10,
		},
		Storage: StorageConfig{Path: "~/.ledarcade/scores.db"},
	}
}

// Runtime extracts the values every game receives.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid: core.NewGrid(c.Grid.Width, c.Grid.Height),
		Tick: c.Tick,
		Seed: c.Seed,
	}
}

// BrightnessLevel returns the integer scale applied before each flush.
func (c Config) BrightnessLevel() uint8 {
	return core.BrightnessLevel(c.Brightness)
}

// Validate checks the configuration before any loop starts.
// Every problem found is reported; each wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	w, h := c.Grid.Width, c.Grid.Height
	if w <= 0 || h <= 0 {
		bad("grid must be positive, got %dx%d", w, h)
	}
	if c.Tick <= 0 {
		bad("tick must be positive, got %s", c.Tick)
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		bad("brightness must be within [0, 1], got %v", c.Brightness)
	}
	if c.Channels != 3 && c.Channels != 4 {
		bad("channels must be 3 or 4, got %d", c.Channels)
	}
	switch c.Driver.Kind {
	case DriverTerminal, DriverSPI, DriverScreen, DriverNone:
	default:
		bad("unknown driver %q", c.Driver.Kind)
	}
	if c.Driver.Kind == DriverSPI && c.Driver.SPIFreqKHz <= 0 {
		bad("spi_freq_khz must be positive, got %d", c.Driver.SPIFreqKHz)
	}

	p := c.Pong
	if p.PaddleHeight <= 0 || (h > 0 && p.PaddleHeight > h) {
		bad("pong paddle_height must be within [1, %d], got %d", h, p.PaddleHeight)
	}
	if p.PaddleSpeed <= 0 || p.PaddleSpeed > 1 {
		bad("pong paddle_speed must be within (0, 1], got %v", p.PaddleSpeed)
	}
	if p.BallSpeed <= 0 || p.BallSpeed > 1 {
		bad("pong ball_speed must be within (0, 1], got %v", p.BallSpeed)
	}
	if p.MaxVerticalSpeed < 0 || p.MaxVerticalSpeed > 1 {
		bad("pong max_vertical_speed must be within [0, 1], got %v", p.MaxVerticalSpeed)
	}
	if p.Spin < 0 {
		bad("pong spin must not be negative, got %v", p.Spin)
	}
	if p.ServeDelay < 0 {
		bad("pong serve_delay must not be negative, got %s", p.ServeDelay)
	}
	if p.WinScore <= 0 {
		bad("pong win_score must be positive, got %d", p.WinScore)
	}

	inv := c.Invaders
	if inv.Rows <= 0 || inv.Cols <= 0 || inv.Spacing <= 0 {
		bad("invaders rows, cols and spacing must be positive, got %d, %d, %d", inv.Rows, inv.Cols, inv.Spacing)
	} else {
		if span := (inv.Cols-1)*inv.Spacing + 1; w > 0 && span > w {
			bad("invaders formation is %d wide, grid is %d", span, w)
		}
		if bottom := inv.StartY + (inv.Rows-1)*inv.Spacing; h > 0 && (inv.StartY < 0 || bottom >= h-2) {
			bad("invaders formation rows %d..%d must stay above row %d", inv.StartY, bottom, h-2)
		}
	}
	if inv.MoveEvery <= 0 || inv.MinMoveEvery <= 0 || inv.MinMoveEvery > inv.MoveEvery {
		bad("invaders need 0 < min_move_every <= move_every, got %s and %s", inv.MinMoveEvery, inv.MoveEvery)
	}
	if inv.EnemyFireEvery <= 0 || inv.FireCooldown <= 0 {
		bad("invaders fire intervals must be positive")
	}
	if inv.MaxPlayerShots <= 0 || inv.MaxEnemyShots <= 0 {
		bad("invaders shot caps must be positive, got %d and %d", inv.MaxPlayerShots, inv.MaxEnemyShots)
	}
	if inv.PointsPerKill < 0 {
		bad("invaders points_per_kill must not be negative, got %d", inv.PointsPerKill)
	}
	if inv.Lives <= 0 {
		bad("invaders lives must be positive, got %d", inv.Lives)
	}

	s := c.Slideshow
	if s.Hold <= 0 {
		bad("slideshow hold must be positive, got %s", s.Hold)
	}
	if s.Steps <= 0 {
		bad("slideshow steps must be positive, got %d", s.Steps)
	}
	if s.Loops < 0 {
		bad("slideshow loops must not be negative, got %d", s.Loops)
	}
	switch s.Transition {
	case TransitionNone, TransitionFade, TransitionWipeRight, TransitionWipeDown, TransitionDissolve, TransitionCycle:
	default:
		bad("unknown slideshow transition %q", s.Transition)
	}

	return errors.Join(errs...)
}
