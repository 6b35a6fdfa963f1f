// Package t2048 implements the 2048 sliding-tile puzzle with pixel-stepped
// tile movement: a move slides tiles a fixed number of pixels per frame until
// the board settles, then a new tile spawns.
package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
)

// Game is one 2048 session. It owns the grid; frontends feed it one input
// frame per tick and draw the tiles it exposes.
type Game struct {
	cfg      config.Config
	geo      Geometry
	rng      *rand.Rand
	logger   *log.Logger
	drawer   FrameDrawer
	tick     uint64
	grid     *Grid
	resolver *Resolver
	spawner  *Spawner

	moves      int
	merges     int
	lastStatus Status
	last       Outcome

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and spawn events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFrameDrawer registers a drawer called once for every resolution pass.
func WithFrameDrawer(d FrameDrawer) Option {
	return func(g *Game) {
		g.drawer = d
	}
}

// New creates a game for the given configuration. Call Reset before use.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		geo:    GeometryFrom(cfg),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game: empty board plus the initial tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.merges = 0
	g.lastStatus = StatusContinue
	g.last = Outcome{}
	g.gameOver = false
	g.paused = false

	g.grid = NewGrid(g.geo)
	g.resolver = NewResolver(g.grid)
	g.spawner = NewSpawner(g.rng, g.cfg.Spawn, g.cfg.Rules)
	g.spawner.Seed(g.grid, g.cfg.Spawn.InitialTiles, g.cfg.Spawn.InitialValue)

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Debug("game reset", "seed", cfg.Seed, "rows", g.geo.Rows, "cols", g.geo.Cols)
}

// Resize updates the terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = pickLayout(g.geo, w, h) == nil
}

// Step advances the game by one frame.
//
// While a move is resolving, each frame runs exactly one pass and every
// directional input is dropped.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.resolver.Active() {
		g.pass()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := DirectionFromAction(in.Direction()); ok {
		g.Move(dir)
	}

	return core.StepResult{State: g.State()}
}

// Move starts resolving a move and runs its first pass.
// It is ignored while another move is resolving or the game is over.
func (g *Game) Move(dir Direction) bool {
	if g.resolver.Active() || g.gameOver {
		return false
	}
	g.logger.Debug("move", "direction", dir, "tiles", g.grid.Len())
	g.resolver.Begin(dir)
	g.pass()
	return true
}

func (g *Game) pass() {
	g.resolver.Pass()
	if g.drawer != nil {
		g.drawer.DrawFrame(g.grid.Views())
	}
	if !g.resolver.Active() {
		g.settle()
	}
}

func (g *Game) settle() {
	out := g.resolver.Outcome()
	out.Status, out.Spawned = g.spawner.Settle(g.grid, out.Moved)

	g.moves++
	g.merges += len(out.Merges)
	g.lastStatus = out.Status
	g.last = out

	for _, m := range out.Merges {
		g.logger.Debug("merge", "row", m.Pos.Row, "col", m.Pos.Col, "value", m.Value)
	}
	if out.Truncated {
		g.logger.Warn("move hit the pass limit", "direction", out.Direction, "passes", out.Passes)
	}
	if out.Spawned != nil {
		g.logger.Debug("spawn", "row", out.Spawned.Row, "col", out.Spawned.Col, "value", out.Spawned.Value)
	}

	// A full board that still has an equal pair is lost for this move only;
	// the game ends once no move can change it.
	if out.Status == StatusLost {
		stuck := g.grid.Stuck()
		g.logger.Info("board full", "moves", g.moves, "max", g.grid.MaxValue(), "stuck", stuck)
		if stuck && g.cfg.Rules.StopOnLoss {
			g.gameOver = true
		}
	}
}

// Resolving reports whether a move is animating.
func (g *Game) Resolving() bool {
	return g.resolver != nil && g.resolver.Active()
}

// Status returns the status of the last settled move.
func (g *Game) Status() Status {
	return g.lastStatus
}

// LastOutcome returns the result of the last settled move.
func (g *Game) LastOutcome() Outcome {
	return g.last
}

// Tiles returns the tiles to draw for the current frame.
func (g *Game) Tiles() []TileView {
	return g.grid.Views()
}

// Geometry returns the board layout.
func (g *Game) Geometry() Geometry {
	return g.geo
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:     g.moves,
		MaxTile:   g.grid.MaxValue(),
		Resolving: g.Resolving(),
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
	}
}
