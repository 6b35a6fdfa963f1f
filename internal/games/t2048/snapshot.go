package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Moves   int
	Merges  int
	Board   [][]int
	Sum     int
	MaxTile int
	Status  string // status of the last settled move
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.Resolving():
		state = StateResolving
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Moves:   g.moves,
		Merges:  g.merges,
		Board:   g.grid.Values(),
		Sum:     g.grid.Sum(),
		MaxTile: g.grid.MaxValue(),
		Status:  g.lastStatus.String(),
		State:   state,
	}
}
