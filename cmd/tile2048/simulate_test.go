package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()
	a := simulate(cfg, 99, 150, t2048.Directions)
	b := simulate(cfg, 99, 150, t2048.Directions)

	if formatBoard(a.grid) != formatBoard(b.grid) {
		t.Errorf("same seed gave different boards:\n%s\nvs\n%s", formatBoard(a.grid), formatBoard(b.grid))
	}
	if a.moves != b.moves || a.frames != b.frames {
		t.Errorf("moves/frames = %d/%d vs %d/%d", a.moves, a.frames, b.moves, b.frames)
	}
}

func TestSimulateCounts(t *testing.T) {
	sim := simulate(config.Default(), 3, 100, t2048.Directions)

	if sim.moves < 1 || sim.moves > 100 {
		t.Fatalf("moves = %d, want 1..100", sim.moves)
	}
	if !sim.grid.Stuck() && sim.moves != 100 {
		t.Errorf("run stopped at %d moves with moves left", sim.moves)
	}
	if sim.grid.Stuck() && sim.status != t2048.StatusLost {
		t.Errorf("status = %v on a stuck board, want lost", sim.status)
	}

	total, passes := 0, 0
	for _, st := range sim.stats {
		total += st.moves
		passes += st.passes
	}
	if total != sim.moves {
		t.Errorf("per-direction moves = %d, want %d", total, sim.moves)
	}
	if passes != sim.frames {
		t.Errorf("passes = %d, frames drawn = %d, want equal", passes, sim.frames)
	}
	if sim.grid.Len() < 2 {
		t.Errorf("board has %d tiles, want at least 2", sim.grid.Len())
	}
}

func TestFormatBoard(t *testing.T) {
	cfg := config.Default()
	g := t2048.GridFromRows(t2048.GeometryFrom(cfg), [][]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	})

	want := "  2   .   .   .\n" +
		"  . 128   .   .\n" +
		"  .   .   .   .\n" +
		"  .   .   .   4\n"
	if got := formatBoard(g); got != want {
		t.Errorf("formatBoard() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintSimulation(t *testing.T) {
	var buf bytes.Buffer
	printSimulation(&buf, 5, simulate(config.Default(), 5, 20, t2048.Directions))

	out := buf.String()
	for _, want := range []string{"Seed:     5", "Moves:", "Status:", "Direction", "left", "down"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseDirections(t *testing.T) {
	dirs, err := parseDirections([]string{"left", " Down "})
	if err != nil {
		t.Fatalf("parseDirections() error = %v", err)
	}
	if len(dirs) != 2 || dirs[0] != t2048.DirLeft || dirs[1] != t2048.DirDown {
		t.Errorf("parseDirections() = %v, want [left down]", dirs)
	}

	if _, err := parseDirections([]string{"sideways"}); err == nil {
		t.Error("parseDirections should reject unknown names")
	}
	if _, err := parseDirections(nil); err == nil {
		t.Error("parseDirections should reject an empty list")
	}
}

func TestSimulateSingleDirection(t *testing.T) {
	sim := simulate(config.Default(), 8, 30, []t2048.Direction{t2048.DirUp})

	if sim.stats[t2048.DirUp].moves != sim.moves {
		t.Errorf("up moves = %d, want all %d", sim.stats[t2048.DirUp].moves, sim.moves)
	}
	if sim.stats[t2048.DirLeft].moves != 0 {
		t.Errorf("left moves = %d, want 0", sim.stats[t2048.DirLeft].moves)
	}
}
