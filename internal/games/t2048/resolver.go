package t2048

import (
	"slices"
)

// Merge records one merge produced during a move.
type Merge struct {
	Pos   Pos // cell of the surviving tile when the merge happened
	Value int // value after the merge
}

// Outcome summarizes a resolved move.
type Outcome struct {
	Direction Direction
	Passes    int     // resolution passes, including the final still one
	Moved     bool    // at least one tile slid or merged
	Merges    []Merge // in the order they happened
	Truncated bool    // the pass limit was hit before the board settled
	Status    Status
	Spawned   *TileView // tile added after the move, if any
}

// Resolver slides and merges tiles one pass at a time.
//
// Each pass moves every eligible tile by one step of Geometry.Step pixels.
// Neighbor lookups see the grid as it stood at the start of the pass, except
// that a tile which merged away is gone immediately. A move is settled once a
// pass changes nothing.
//
// Tiles travel in lockstep, so a trailing tile normally keeps a full cell
// behind the tile ahead. When the leader stalls for a pass the follower can
// close in on it; the follower then waits rather than round into the
// leader's cell.
type Resolver struct {
	grid   *Grid
	dir    Direction
	spec   directionSpec
	live   []*Tile
	merged map[*Tile]bool
	active bool
	moved  bool
	passes int
	limit  int
	merges []Merge
	cut    bool
}

// NewResolver creates a resolver bound to grid.
func NewResolver(grid *Grid) *Resolver {
	return &Resolver{
		grid:   grid,
		merged: make(map[*Tile]bool),
	}
}

// Begin starts resolving a move in direction dir.
// The merged markers from any previous move are discarded.
func (r *Resolver) Begin(dir Direction) {
	r.dir = dir
	r.spec = specFor(dir)
	r.live = r.grid.Tiles()
	clear(r.merged)
	r.active = true
	r.moved = false
	r.passes = 0
	r.merges = nil
	r.cut = false
	r.limit = passLimit(r.grid.Geometry())
}

// passLimit bounds a move: every tile can at worst cross the board one step
// per pass while waiting one pass behind each tile ahead of it.
func passLimit(geo Geometry) int {
	steps := max(geo.Width()/geo.Step, geo.Height()/geo.Step)
	return (int(steps) + 2) * (geo.Rows*geo.Cols + 1)
}

// Active reports whether a move is still being resolved.
func (r *Resolver) Active() bool {
	return r.active
}

// Pass runs one resolution pass and reports whether anything moved.
// When nothing moved the move is settled and Active turns false.
func (r *Resolver) Pass() bool {
	if !r.active {
		return false
	}
	r.passes++

	geo := r.grid.Geometry()
	spec := r.spec
	dx, dy := spec.delta(geo)

	slices.SortStableFunc(r.live, spec.compare)

	occupied := make(map[Pos]*Tile, len(r.live))
	for _, t := range r.live {
		occupied[t.Pos()] = t
	}

	changed := false
	survivors := r.live[:0:0]
	for _, t := range r.live {
		if spec.atBoundary(t, geo) {
			survivors = append(survivors, t)
			continue
		}

		next, ok := spec.neighbor(r.grid, t)
		switch {
		case !ok:
			changed = step(t, dx, dy, geo, spec.ceil, occupied) || changed
		case next.Value == t.Value && !r.merged[t] && !r.merged[next]:
			if spec.shouldApproachMerge(t, next, geo) {
				changed = step(t, dx, dy, geo, spec.ceil, occupied) || changed
				break
			}
			next.Value += t.Value
			r.merged[next] = true
			r.grid.remove(t)
			if occupied[t.Pos()] == t {
				delete(occupied, t.Pos())
			}
			r.merges = append(r.merges, Merge{Pos: next.Pos(), Value: next.Value})
			changed = true
			continue
		case spec.shouldApproach(t, next, geo):
			changed = step(t, dx, dy, geo, spec.ceil, occupied) || changed
		}

		survivors = append(survivors, t)
	}
	r.live = survivors
	r.grid.Rebuild(r.live)

	if changed {
		r.moved = true
	}
	if !changed || r.passes >= r.limit {
		r.cut = changed
		r.finish()
	}
	return changed
}

// step moves t by one delta and re-derives its cell. A tile whose new cell
// is held by another tile waits instead, so no two tiles ever share a cell.
func step(t *Tile, dx, dy float64, geo Geometry, ceil bool, occupied map[Pos]*Tile) bool {
	from := *t
	t.move(dx, dy)
	t.locate(geo, ceil)

	if other, ok := occupied[t.Pos()]; ok && other != t {
		*t = from
		return false
	}
	if occupied[from.Pos()] == t {
		delete(occupied, from.Pos())
	}
	occupied[t.Pos()] = t
	return true
}

func (r *Resolver) finish() {
	geo := r.grid.Geometry()
	for _, t := range r.live {
		t.snap(geo)
	}
	r.grid.Rebuild(r.live)
	r.active = false
}

// Outcome returns what the current or last move did so far.
// Status and Spawned are filled in by the Spawner.
func (r *Resolver) Outcome() Outcome {
	return Outcome{
		Direction: r.dir,
		Passes:    r.passes,
		Moved:     r.moved,
		Merges:    slices.Clone(r.merges),
		Truncated: r.cut,
	}
}

// ResolveMove runs a whole move synchronously: every pass is drawn once, then
// the spawner settles the board. drawer may be nil.
func ResolveMove(grid *Grid, dir Direction, sp *Spawner, drawer FrameDrawer) Outcome {
	r := NewResolver(grid)
	r.Begin(dir)
	for r.Active() {
		r.Pass()
		if drawer != nil {
			drawer.DrawFrame(grid.Views())
		}
	}

	out := r.Outcome()
	out.Status, out.Spawned = sp.Settle(grid, out.Moved)
	return out
}
