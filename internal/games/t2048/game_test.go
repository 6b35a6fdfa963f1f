package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
)

func newTestGame(t *testing.T, cfg config.Config, opts ...Option) *Game {
	t.Helper()
	g := New(cfg, opts...)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

// setBoard replaces the board of g with rows.
func setBoard(g *Game, rows [][]int) {
	g.grid = GridFromRows(g.geo, rows)
	g.resolver = NewResolver(g.grid)
}

func frame(actions ...core.Action) core.InputFrame {
	var in core.InputFrame
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepUntilIdle steps with empty input until the current move settles.
func stepUntilIdle(t *testing.T, g *Game) int {
	t.Helper()
	steps := 0
	for g.Resolving() {
		g.Step(core.InputFrame{})
		steps++
		if steps > 10000 {
			t.Fatal("move never settled")
		}
	}
	return steps
}

func TestResetInitialTiles(t *testing.T) {
	g := newTestGame(t, config.Default())

	tiles := g.Tiles()
	if len(tiles) != 2 {
		t.Fatalf("initial tiles = %d, want 2", len(tiles))
	}
	for _, tile := range tiles {
		if tile.Value != 2 {
			t.Errorf("initial tile value = %d, want 2", tile.Value)
		}
	}
	if tiles[0].Row == tiles[1].Row && tiles[0].Col == tiles[1].Col {
		t.Error("initial tiles share a cell")
	}
	if g.Status() != StatusContinue {
		t.Errorf("Status() = %v, want continue", g.Status())
	}
}

func TestDeterministicReset(t *testing.T) {
	g1 := newTestGame(t, config.Default())
	g2 := newTestGame(t, config.Default())

	if !reflect.DeepEqual(g1.Snapshot().Board, g2.Snapshot().Board) {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v",
			g1.Snapshot().Board, g2.Snapshot().Board)
	}

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		g1.Step(frame(a))
		g2.Step(frame(a))
		stepUntilIdle(t, g1)
		stepUntilIdle(t, g2)
	}
	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("Same seed and input should give same snapshot:\n%+v\nvs\n%+v", s1, s2)
	}
}

func TestStepRunsOnePassPerFrame(t *testing.T) {
	drawer := &frameCounter{}
	g := newTestGame(t, config.Default(), WithFrameDrawer(drawer))
	setBoard(g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft))
	if !g.Resolving() {
		t.Fatal("move should still be resolving after the first frame")
	}
	if drawer.frames != 1 {
		t.Errorf("frames after first step = %d, want 1", drawer.frames)
	}

	steps := stepUntilIdle(t, g)
	if steps != 8 {
		t.Errorf("frames to settle = %d, want 8", steps)
	}
	if drawer.frames != 9 {
		t.Errorf("frames drawn = %d, want 9", drawer.frames)
	}

	out := g.LastOutcome()
	if out.Passes != 9 || len(out.Merges) != 1 {
		t.Errorf("outcome = %+v, want 9 passes and one merge", out)
	}
	if tile, ok := g.grid.Get(0, 0); !ok || tile.Value != 4 {
		t.Errorf("(0,0) = %v, want a 4", tile)
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.State().Moves)
	}
}

func TestInputDroppedWhileResolving(t *testing.T) {
	g := newTestGame(t, config.Default())
	setBoard(g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})

	g.Step(frame(core.ActionLeft))
	for g.Resolving() {
		g.Step(frame(core.ActionRight, core.ActionUp))
	}

	if tile, ok := g.grid.Get(3, 0); !ok || tile.Value != 2 {
		t.Errorf("tile should have slid to (3,0), board %v", g.grid.Values())
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.State().Moves)
	}
}

func TestGameOver(t *testing.T) {
	full := [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	t.Run("stop on loss", func(t *testing.T) {
		g := newTestGame(t, config.Default())
		setBoard(g, full)

		g.Step(frame(core.ActionLeft))
		stepUntilIdle(t, g)

		if g.Status() != StatusLost {
			t.Errorf("Status() = %v, want lost", g.Status())
		}
		if !g.State().GameOver {
			t.Error("game should be over")
		}
		if g.Snapshot().State != StateGameOver {
			t.Errorf("Snapshot state = %s, want game_over", g.Snapshot().State)
		}

		if g.Move(DirRight) {
			t.Error("Move should be refused after game over")
		}
		g.Step(frame(core.ActionUp))
		if g.State().Moves != 1 {
			t.Errorf("Moves = %d, want 1", g.State().Moves)
		}
	})

	t.Run("blocked move with a merge left", func(t *testing.T) {
		g := newTestGame(t, config.Default())
		setBoard(g, [][]int{
			{2, 2, 4, 8},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 128},
		})

		g.Step(frame(core.ActionUp))
		stepUntilIdle(t, g)

		if g.Status() != StatusLost {
			t.Errorf("Status() = %v, want lost for the blocked move", g.Status())
		}
		if g.State().GameOver {
			t.Fatal("game should go on while a merge is possible")
		}

		if !g.Move(DirLeft) {
			t.Fatal("Move(DirLeft) should be accepted")
		}
		stepUntilIdle(t, g)
		if len(g.LastOutcome().Merges) == 0 {
			t.Error("moving left should merge the pair of 2s")
		}
		if g.State().GameOver {
			t.Error("game should not be over after a merge")
		}
	})

	t.Run("keep playing", func(t *testing.T) {
		cfg := config.Default()
		cfg.Rules.StopOnLoss = false
		g := newTestGame(t, cfg)
		setBoard(g, full)

		g.Step(frame(core.ActionLeft))
		stepUntilIdle(t, g)

		if g.Status() != StatusLost {
			t.Errorf("Status() = %v, want lost", g.Status())
		}
		if g.State().GameOver {
			t.Error("game should not stop when stop_on_loss is off")
		}
		if !g.Move(DirDown) {
			t.Error("Move should be accepted")
		}
	})
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, config.Default())
	before := g.Snapshot().Board

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	g.Step(frame(core.ActionLeft))
	if g.Resolving() || g.State().Moves != 0 {
		t.Error("moves should be ignored while paused")
	}
	if !reflect.DeepEqual(g.Snapshot().Board, before) {
		t.Error("board changed while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.Resize(10, 5)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot state = %s, want paused_small_window", g.Snapshot().State)
	}
	g.Step(frame(core.ActionLeft))
	if g.Resolving() {
		t.Error("moves should be ignored while the screen is too small")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("Snapshot state = %s, want playing", g.Snapshot().State)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, config.Default())
	setBoard(g, [][]int{
		{2, 2, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft))
	if got := g.Snapshot().State; got != StateResolving {
		t.Errorf("Snapshot state = %s, want resolving", got)
	}
	stepUntilIdle(t, g)

	snap := g.Snapshot()
	if snap.Moves != 1 || snap.Merges != 1 {
		t.Errorf("Moves, Merges = %d, %d, want 1, 1", snap.Moves, snap.Merges)
	}
	if snap.MaxTile != 8 {
		t.Errorf("MaxTile = %d, want 8", snap.MaxTile)
	}
	spawned := g.LastOutcome().Spawned
	if spawned == nil {
		t.Fatal("expected a spawned tile")
	}
	if snap.Sum != 12+spawned.Value {
		t.Errorf("Sum = %d, want %d", snap.Sum, 12+spawned.Value)
	}
	if snap.Status != "continue" {
		t.Errorf("Status = %s, want continue", snap.Status)
	}
	if snap.Tick == 0 {
		t.Error("Tick should advance")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, config.Default())
	setBoard(g, [][]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Moves: 0", "Max: 128", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, " 128") {
		t.Errorf("render missing tile label 128:\n%s", out)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, config.Default())
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause overlay")
	}

	g.Resize(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("tiny screen should show the resize hint")
	}
}

func TestPickLayout(t *testing.T) {
	geo := testGeometry()
	tests := []struct {
		name  string
		w, h  int
		want  *layout
		pitch int
	}{
		{"large", 80, 24, &layouts[0], 8},
		{"compact", 40, 13, &layouts[1], 6},
		{"too small", 20, 8, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickLayout(geo, tt.w, tt.h)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("pickLayout(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
			if got != nil && got.pitchX != tt.pitch {
				t.Errorf("pitchX = %d, want %d", got.pitchX, tt.pitch)
			}
		})
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  core.Color
	}{
		{2, core.TileColors[0]},
		{4, core.TileColors[1]},
		{256, core.TileColors[7]},
		{1 << 16, core.TileColors[len(core.TileColors)-1]},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
