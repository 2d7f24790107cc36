// ledarcade runs autonomous games on a serpentine LED panel.
//
// Usage:
//
//	ledarcade list              - List available games
//	ledarcade play <game>       - Run a game on the configured display
//	ledarcade menu              - Pick games interactively
//	ledarcade scores [game]     - Show high scores
//	ledarcade sprites [name]    - List or preview slideshow sprites
//	ledarcade config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Configuration file (default: search path)
//	--tick <duration>     - Simulation step, e.g. 50ms
//	--brightness <0..1>   - Output brightness
//	--seed <value>        - RNG seed for reproducible runs
//	--difficulty <preset> - easy, normal or hard
//	--db <path>           - Score database
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write rotated JSON logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/led-arcade/internal/config"
)

var (
	flagConfig     string
	flagTick       time.Duration
	flagBrightness float64
	flagSeed       int64
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

// logger is set up by the root command before any subcommand runs.
var (
	logger    = log.Default()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledarcade",
	Short: "LED Arcade - self-playing games for a NeoPixel matrix",
	Long: `LED Arcade drives a serpentine-wired RGB LED matrix with self-playing
games: Pong, Invaders and a pixel-art slideshow.

Frames go to an SPI-attached strip, a terminal preview or both, and can be
mirrored to browsers over a websocket.

Examples:
  ledarcade list
  ledarcade play pong
  ledarcade play invaders --driver spi --ws :8080
  ledarcade play slideshow --loop
  ledarcade scores invaders`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	pf.DurationVar(&flagTick, "tick", 50*time.Millisecond, "Simulation step")
	pf.Float64Var(&flagBrightness, "brightness", 0.3, "Output brightness, 0..1")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagDBPath, "db", "~/.ledarcade/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Rotated log file (default: stderr)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, flagLogLevel)
	}

	var w io.Writer = os.Stderr
	if flagLogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   config.ExpandHome(flagLogFile),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w, logCloser = lj, lj
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledarcade",
		Level:           lvl,
	})
	if flagLogFile != "" {
		logger.SetFormatter(log.JSONFormatter)
	}
	log.SetDefault(logger)
	return nil
}

// loadConfig reads the configuration file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Tick = flagTick
	}
	if flags.Changed("brightness") {
		cfg.Brightness = flagBrightness
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("driver") {
		cfg.Driver.Kind = flagDriver
	}
	if flags.Changed("ws") {
		cfg.Driver.WebsocketAddr = flagWSAddr
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
