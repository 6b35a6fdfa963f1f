package t2048

import (
	"cmp"
	"strings"

	"github.com/vovakirdan/tile2048/internal/core"
)

// Direction is the way tiles travel during a move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return 0, false
}

// DirectionFromAction maps a directional action to a Direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	default:
		return 0, false
	}
}

// directionSpec holds everything a move needs to know about its direction.
// dRow/dCol point one cell further along the direction of travel.
type directionSpec struct {
	vertical   bool // sort by row and measure along Y
	descending bool // tiles farthest along the travel direction come first
	dRow, dCol int
	ceil       bool // round pixel position up when re-deriving the cell
}

var directionSpecs = [...]directionSpec{
	DirLeft:  {vertical: false, descending: false, dRow: 0, dCol: -1, ceil: true},
	DirRight: {vertical: false, descending: true, dRow: 0, dCol: 1, ceil: false},
	DirUp:    {vertical: true, descending: false, dRow: -1, dCol: 0, ceil: true},
	DirDown:  {vertical: true, descending: true, dRow: 1, dCol: 0, ceil: false},
}

func specFor(d Direction) directionSpec {
	return directionSpecs[d]
}

// compare orders tiles for processing. Ties on the sort key are broken by
// the cross axis so a pass is deterministic.
func (s directionSpec) compare(a, b *Tile) int {
	ka, kb := a.Col, b.Col
	xa, xb := a.Row, b.Row
	if s.vertical {
		ka, kb = a.Row, b.Row
		xa, xb = a.Col, b.Col
	}
	if s.descending {
		ka, kb = kb, ka
	}
	return cmp.Or(cmp.Compare(ka, kb), cmp.Compare(xa, xb))
}

// delta returns the per-pass pixel movement.
func (s directionSpec) delta(geo Geometry) (dx, dy float64) {
	return float64(s.dCol) * geo.Step, float64(s.dRow) * geo.Step
}

// atBoundary reports whether t already sits on the edge it is moving toward.
func (s directionSpec) atBoundary(t *Tile, geo Geometry) bool {
	switch {
	case s.dCol < 0:
		return t.Col == 0
	case s.dCol > 0:
		return t.Col == geo.Cols-1
	case s.dRow < 0:
		return t.Row == 0
	default:
		return t.Row == geo.Rows-1
	}
}

// neighbor returns the tile keyed one cell further along the travel direction.
func (s directionSpec) neighbor(g *Grid, t *Tile) (*Tile, bool) {
	return g.Get(t.Row+s.dRow, t.Col+s.dCol)
}

// gap is the pixel distance from t to next along the travel direction.
func (s directionSpec) gap(t, next *Tile) float64 {
	if s.vertical {
		return float64(s.dRow) * (next.Y - t.Y)
	}
	return float64(s.dCol) * (next.X - t.X)
}

// cellSpan is the size of one cell along the travel axis.
func (s directionSpec) cellSpan(geo Geometry) float64 {
	if s.vertical {
		return geo.CellHeight
	}
	return geo.CellWidth
}

// shouldApproachMerge reports whether t is still more than one step away from
// overlapping its equal neighbor.
func (s directionSpec) shouldApproachMerge(t, next *Tile, geo Geometry) bool {
	return s.gap(t, next) > geo.Step
}

// shouldApproach reports whether t can slide toward a neighbor it cannot
// merge with: it must stay more than one cell plus one step behind it.
func (s directionSpec) shouldApproach(t, next *Tile, geo Geometry) bool {
	return s.gap(t, next) > s.cellSpan(geo)+geo.Step
}
