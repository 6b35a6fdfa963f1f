// Package window runs 2048 in a desktop window with ebiten, drawing tiles at
// their exact pixel positions.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

// Window adapts a Game to ebiten.Game.
type Window struct {
	game   *t2048.Game
	geo    t2048.Geometry
	config core.RuntimeConfig
	faces  faces
	logger *log.Logger
	input  core.InputFrame
}

// New creates a window for game and starts a new round.
func New(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	geo := game.Geometry()
	f, err := loadFaces(geo.CellHeight)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	// The pixel board never needs the terminal layout, so the game sees a
	// screen large enough for any board.
	cfg.ScreenW, cfg.ScreenH = 1<<16, 1<<16
	game.Reset(cfg)

	return &Window{
		game:   game,
		geo:    geo,
		config: cfg,
		faces:  f,
		logger: logger,
		input:  core.NewInputFrame(),
	}, nil
}

// Update advances the game by one frame.
func (w *Window) Update() error {
	readInput(&w.input)
	defer w.input.Clear()

	if w.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if w.input.Has(core.ActionRestart) && !w.game.Resolving() {
		w.config.Seed = time.Now().UnixNano()
		w.game.Reset(w.config)
		w.logger.Debug("restart", "seed", w.config.Seed)
		return nil
	}

	w.game.Step(w.input)
	return nil
}

// Draw paints the background, tiles, grid lines and any overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.RGBBackdrop))
	drawTiles(screen, w.game.Tiles(), w.geo, w.faces)
	drawGrid(screen, w.geo)

	state := w.game.State()
	switch {
	case state.GameOver:
		drawOverlay(screen, w.geo, w.faces, "Game Over", fmt.Sprintf("max %d - press R", state.MaxTile))
	case state.Paused:
		drawOverlay(screen, w.geo, w.faces, "Paused", "press P")
	}
}

// Layout keeps the logical screen at the board's pixel size.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.geo.Width()), int(w.geo.Height())
}

// Run opens the window and blocks until it is closed.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	w, err := New(game, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(w.geo.Width()), int(w.geo.Height()))
	ebiten.SetWindowResizable(true)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
