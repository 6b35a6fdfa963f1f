package t2048

import (
	"math"

	"github.com/vovakirdan/tile2048/internal/config"
)

// Geometry is the board layout in cells and pixels.
type Geometry struct {
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
	Step       float64 // pixels a sliding tile travels per pass
}

// GeometryFrom derives the board geometry from the configuration.
func GeometryFrom(cfg config.Config) Geometry {
	return Geometry{
		Rows:       cfg.Board.Rows,
		Cols:       cfg.Board.Cols,
		CellWidth:  float64(cfg.Board.CellWidth),
		CellHeight: float64(cfg.Board.CellHeight),
		Step:       float64(cfg.Animation.StepVelocity),
	}
}

// Width returns the board width in pixels.
func (g Geometry) Width() float64 {
	return float64(g.Cols) * g.CellWidth
}

// Height returns the board height in pixels.
func (g Geometry) Height() float64 {
	return float64(g.Rows) * g.CellHeight
}

// Pos addresses a grid cell.
type Pos struct {
	Row, Col int
}

// Tile is a numbered piece on the board.
// X and Y are its pixel position. Outside an active move they are exactly
// Col*CellWidth and Row*CellHeight.
type Tile struct {
	Value int
	Row   int
	Col   int
	X     float64
	Y     float64
}

// NewTile creates a tile resting at (row, col).
func NewTile(value, row, col int, geo Geometry) *Tile {
	t := &Tile{Value: value, Row: row, Col: col}
	t.snap(geo)
	return t
}

// Pos returns the tile's grid cell.
func (t *Tile) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// AtRest reports whether the pixel position matches the grid cell.
func (t *Tile) AtRest(geo Geometry) bool {
	return t.X == float64(t.Col)*geo.CellWidth && t.Y == float64(t.Row)*geo.CellHeight
}

// View returns a read-only copy for renderers.
func (t *Tile) View() TileView {
	return TileView{Value: t.Value, Row: t.Row, Col: t.Col, X: t.X, Y: t.Y}
}

func (t *Tile) move(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// locate re-derives the grid cell from the pixel position, rounding up or
// down so a straddling tile belongs to the cell it is heading into.
func (t *Tile) locate(geo Geometry, ceil bool) {
	round := math.Floor
	if ceil {
		round = math.Ceil
	}
	t.Row = int(round(t.Y / geo.CellHeight))
	t.Col = int(round(t.X / geo.CellWidth))
}

func (t *Tile) snap(geo Geometry) {
	t.X = float64(t.Col) * geo.CellWidth
	t.Y = float64(t.Row) * geo.CellHeight
}

// TileView is an immutable snapshot of a tile handed to frame drawers.
type TileView struct {
	Value int
	Row   int
	Col   int
	X     float64
	Y     float64
}

// FrameDrawer draws one frame of the board.
type FrameDrawer interface {
	DrawFrame(tiles []TileView)
}

// FrameDrawerFunc adapts a function to FrameDrawer.
type FrameDrawerFunc func(tiles []TileView)

// DrawFrame calls f(tiles).
func (f FrameDrawerFunc) DrawFrame(tiles []TileView) {
	f(tiles)
}
