package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tile2048/internal/config"
)

// Status is the game status after a settled move.
type Status int

const (
	StatusContinue Status = iota
	StatusLost
)

// String returns "continue" or "lost".
func (s Status) String() string {
	if s == StatusLost {
		return "lost"
	}
	return "continue"
}

// Spawner adds new tiles at random empty cells.
type Spawner struct {
	rng            *rand.Rand
	values         []int
	spawnOnBlocked bool
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, spawn config.SpawnConfig, rules config.RulesConfig) *Spawner {
	values := spawn.Values
	if len(values) == 0 {
		values = []int{2, 4}
	}
	return &Spawner{
		rng:            rng,
		values:         values,
		spawnOnBlocked: rules.SpawnOnBlockedMove,
	}
}

// AfterMove spawns one tile after a settled move.
// A full board is lost and gets no tile. Otherwise the tile value is picked
// uniformly from the configured values.
func (s *Spawner) AfterMove(g *Grid) (Status, *Tile) {
	if g.Full() {
		return StatusLost, nil
	}
	value := s.values[s.rng.Intn(len(s.values))]
	return StatusContinue, s.place(g, value)
}

// Settle finishes a move. A move that changed nothing only spawns when
// configured to; otherwise the board is lost only if no move can change it.
func (s *Spawner) Settle(g *Grid, moved bool) (Status, *TileView) {
	if !moved && !s.spawnOnBlocked {
		if g.Stuck() {
			return StatusLost, nil
		}
		return StatusContinue, nil
	}

	status, t := s.AfterMove(g)
	if t == nil {
		return status, nil
	}
	v := t.View()
	return status, &v
}

// Seed places n tiles of the given value on empty cells.
func (s *Spawner) Seed(g *Grid, n, value int) {
	for range n {
		if g.Full() {
			return
		}
		s.place(g, value)
	}
}

// place puts a new tile on a random empty cell by drawing random cells until
// one is free. The grid must not be full.
func (s *Spawner) place(g *Grid, value int) *Tile {
	geo := g.Geometry()
	for {
		row := s.rng.Intn(geo.Rows)
		col := s.rng.Intn(geo.Cols)
		if _, taken := g.Get(row, col); taken {
			continue
		}
		t := NewTile(value, row, col, geo)
		g.put(t)
		return t
	}
}
