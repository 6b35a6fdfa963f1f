// tile2048 plays the 2048 sliding-tile puzzle in the terminal, in a desktop
// window or over SSH.
//
// Usage:
//
//	tile2048 play        - Play in the terminal
//	tile2048 window      - Play in a desktop window
//	tile2048 serve       - Start SSH server for remote play
//	tile2048 simulate    - Run random moves headless and print the result
//	tile2048 config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search order, then embedded)
//	--fps <rate>        - Override the frame rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "2048 with sliding tiles",
	Long: `tile2048 is the 2048 sliding-tile puzzle. Tiles glide across the board
a few pixels per frame, equal tiles merge, and a new tile appears after
every move.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run random moves headless
  config    - Print the effective configuration

Examples:
  tile2048 play
  tile2048 window --fps 30
  tile2048 serve --ssh :2222
  tile2048 simulate --moves 500 --seed 42
  tile2048 config --config ./my-2048.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config named by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig builds the frame clock and seed settings for a session.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width > 0 && height > 0 {
		rc.ScreenW, rc.ScreenH = width, height
	}
	rc.TickRate = cfg.Animation.FPS
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	return rc
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tile2048",
		Level:           level,
	})
	return logger, closeFn, nil
}
