package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second shared by idle frames and move passes
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform after every frame.
type GameState struct {
	Moves     int  // Settled moves so far
	MaxTile   int  // Highest tile value on the board
	Resolving bool // A move is animating; directional input is dropped
	GameOver  bool // The board filled up after a move
	Paused    bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
