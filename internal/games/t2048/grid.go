package t2048

import (
	"slices"
)

// Grid maps occupied cells to their tiles. It holds at most one tile per
// cell and every tile is keyed by its own (Row, Col).
type Grid struct {
	geo   Geometry
	tiles map[Pos]*Tile
}

// NewGrid creates an empty grid.
func NewGrid(geo Geometry) *Grid {
	return &Grid{
		geo:   geo,
		tiles: make(map[Pos]*Tile, geo.Rows*geo.Cols),
	}
}

// GridFromRows builds a grid from a row-major matrix of values; 0 is empty.
func GridFromRows(geo Geometry, rows [][]int) *Grid {
	g := NewGrid(geo)
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				g.put(NewTile(v, r, c, geo))
			}
		}
	}
	return g
}

// Geometry returns the board layout.
func (g *Grid) Geometry() Geometry {
	return g.geo
}

// Get returns the tile at (row, col).
func (g *Grid) Get(row, col int) (*Tile, bool) {
	t, ok := g.tiles[Pos{Row: row, Col: col}]
	return t, ok
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Capacity returns the number of cells on the board.
func (g *Grid) Capacity() int {
	return g.geo.Rows * g.geo.Cols
}

// Full reports whether every cell is occupied.
func (g *Grid) Full() bool {
	return g.Len() >= g.Capacity()
}

// InBounds reports whether (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.geo.Rows && col >= 0 && col < g.geo.Cols
}

// Rebuild replaces the whole mapping, keying each tile by its current cell.
func (g *Grid) Rebuild(tiles []*Tile) {
	clear(g.tiles)
	for _, t := range tiles {
		g.tiles[t.Pos()] = t
	}
}

// Tiles returns the tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *Tile) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// Views returns read-only copies of the tiles in row-major order.
func (g *Grid) Views() []TileView {
	tiles := g.Tiles()
	views := make([]TileView, len(tiles))
	for i, t := range tiles {
		views[i] = t.View()
	}
	return views
}

// Values returns the board as a row-major matrix with 0 for empty cells.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.geo.Rows)
	for r := range out {
		out[r] = make([]int, g.geo.Cols)
	}
	for p, t := range g.tiles {
		if g.InBounds(p.Row, p.Col) {
			out[p.Row][p.Col] = t.Value
		}
	}
	return out
}

// Sum returns the total of all tile values.
func (g *Grid) Sum() int {
	sum := 0
	for _, t := range g.tiles {
		sum += t.Value
	}
	return sum
}

// MaxValue returns the highest tile value, or 0 on an empty board.
func (g *Grid) MaxValue() int {
	best := 0
	for _, t := range g.tiles {
		best = max(best, t.Value)
	}
	return best
}

// CanMerge reports whether any two orthogonally adjacent tiles are equal.
func (g *Grid) CanMerge() bool {
	for p, t := range g.tiles {
		if right, ok := g.Get(p.Row, p.Col+1); ok && right.Value == t.Value {
			return true
		}
		if below, ok := g.Get(p.Row+1, p.Col); ok && below.Value == t.Value {
			return true
		}
	}
	return false
}

// Stuck reports whether no move can change the board: every cell is taken
// and no two neighbors are equal.
func (g *Grid) Stuck() bool {
	return g.Full() && !g.CanMerge()
}

func (g *Grid) put(t *Tile) {
	g.tiles[t.Pos()] = t
}

// remove drops t from the cell it is keyed under.
func (g *Grid) remove(t *Tile) {
	if g.tiles[t.Pos()] == t {
		delete(g.tiles, t.Pos())
	}
}
