package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal",
	Long: `Start a game of 2048 in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move tiles
  P/Esc             - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is given, so they never draw over
the board.

Examples:
  tile2048 play
  tile2048 play --seed 42
  tile2048 play --log-file 2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	var width, height int // 0 falls back to 80x24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := t2048.New(cfg, t2048.WithLogger(logger))
	return tui.Run(game, runtimeConfig(cfg, width, height))
}
