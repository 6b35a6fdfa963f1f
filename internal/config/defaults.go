package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/t2048.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:       4,
			Cols:       4,
			CellWidth:  200,
			CellHeight: 150,
		},
		Animation: AnimationConfig{
			StepVelocity: 25,
			FPS:          60,
		},
		Spawn: SpawnConfig{
			Values:       []int{2, 4},
			InitialTiles: 2,
			InitialValue: 2,
		},
		Rules: RulesConfig{
			SpawnOnBlockedMove: true,
			StopOnLoss:         true,
		},
	}
}
