// Package config provides YAML-based configuration loading for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// Config contains everything fixed at startup: board geometry, animation
// speed, spawn policy and rule switches.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Rules     RulesConfig     `yaml:"rules"`
}

// BoardConfig defines the grid and its pixel geometry.
type BoardConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// AnimationConfig defines the per-pass movement and the frame clock.
type AnimationConfig struct {
	StepVelocity int `yaml:"step_velocity"`
	FPS          int `yaml:"fps"`
}

// SpawnConfig defines which tiles appear and where the game starts.
type SpawnConfig struct {
	Values       []int `yaml:"values"`
	InitialTiles int   `yaml:"initial_tiles"`
	InitialValue int   `yaml:"initial_value"`
}

// RulesConfig holds behavior switches.
type RulesConfig struct {
	// SpawnOnBlockedMove spawns a tile even when a move changed nothing.
	SpawnOnBlockedMove bool `yaml:"spawn_on_blocked_move"`
	// StopOnLoss ends the game when a move settles on a full board.
	// When false the loss is only recorded.
	StopOnLoss bool `yaml:"stop_on_loss"`
}

// Width returns the board width in pixels.
func (b BoardConfig) Width() int {
	return b.Cols * b.CellWidth
}

// Height returns the board height in pixels.
func (b BoardConfig) Height() int {
	return b.Rows * b.CellHeight
}

// Validate reports every setting that would break the game.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Rows < 2 || c.Board.Cols < 2 {
		errs = append(errs, fmt.Errorf("board must be at least 2x2, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Board.CellWidth <= 0 || c.Board.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.Board.CellWidth, c.Board.CellHeight))
	}

	v := c.Animation.StepVelocity
	switch {
	case v <= 0:
		errs = append(errs, fmt.Errorf("step_velocity must be positive, got %d", v))
	case c.Board.CellWidth > 0 && c.Board.CellWidth%v != 0,
		c.Board.CellHeight > 0 && c.Board.CellHeight%v != 0:
		errs = append(errs, fmt.Errorf("step_velocity %d must divide cell size %dx%d", v, c.Board.CellWidth, c.Board.CellHeight))
	}
	if c.Animation.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Animation.FPS))
	}

	if len(c.Spawn.Values) == 0 {
		errs = append(errs, errors.New("spawn.values must not be empty"))
	}
	for _, val := range c.Spawn.Values {
		if !IsTileValue(val) {
			errs = append(errs, fmt.Errorf("spawn value %d is not a power of two >= 2", val))
		}
	}
	if !IsTileValue(c.Spawn.InitialValue) {
		errs = append(errs, fmt.Errorf("initial_value %d is not a power of two >= 2", c.Spawn.InitialValue))
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Rows*c.Board.Cols {
		errs = append(errs, fmt.Errorf("initial_tiles %d does not fit a %dx%d board", c.Spawn.InitialTiles, c.Board.Rows, c.Board.Cols))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// IsTileValue reports whether v is a power of two of at least 2.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
