package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play 2048 in a desktop window",
	Long: `Open a desktop window sized to the board (columns x cell width by
rows x cell height pixels) and play there.

Controls are the same as in the terminal; closing the window quits.

Examples:
  tile2048 window
  tile2048 window --fps 30`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game := t2048.New(cfg, t2048.WithLogger(logger))
	return window.Run(game, runtimeConfig(cfg, 0, 0), logger)
}
