package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

var (
	flagMoves      int
	flagDirections []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random moves without a screen",
	Long: `Play random moves headless, resolving every move pass by pass exactly
as the interactive frontends do, and print a summary with the final board.

The run stops early once no move can change the board.

Examples:
  tile2048 simulate
  tile2048 simulate --moves 1000 --seed 7
  tile2048 simulate --directions left,down
  tile2048 simulate --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 200, "Maximum number of moves to play")
	simulateCmd.Flags().StringSliceVar(&flagDirections, "directions", []string{"left", "right", "up", "down"},
		"Directions to pick moves from")
}

// dirStats accumulates per-direction results.
type dirStats struct {
	moves   int
	blocked int
	passes  int
	merges  int
}

// simulation is the result of a headless run.
type simulation struct {
	moves  int
	frames int
	status t2048.Status
	stats  map[t2048.Direction]*dirStats
	grid   *t2048.Grid
}

// parseDirections converts direction names, rejecting unknown ones.
func parseDirections(names []string) ([]t2048.Direction, error) {
	if len(names) == 0 {
		return nil, errors.New("--directions needs at least one direction")
	}
	dirs := make([]t2048.Direction, 0, len(names))
	for _, name := range names {
		d, ok := t2048.ParseDirection(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", name)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

func simulate(cfg config.Config, seed int64, moves int, dirs []t2048.Direction) simulation {
	rng := rand.New(rand.NewSource(seed))
	grid := t2048.NewGrid(t2048.GeometryFrom(cfg))
	spawner := t2048.NewSpawner(rng, cfg.Spawn, cfg.Rules)
	spawner.Seed(grid, cfg.Spawn.InitialTiles, cfg.Spawn.InitialValue)

	frames := 0
	counter := t2048.FrameDrawerFunc(func([]t2048.TileView) { frames++ })
	sim := simulation{
		status: t2048.StatusContinue,
		stats:  make(map[t2048.Direction]*dirStats),
		grid:   grid,
	}
	for _, d := range t2048.Directions {
		sim.stats[d] = &dirStats{}
	}

	for sim.moves < moves && !grid.Stuck() {
		dir := dirs[rng.Intn(len(dirs))]
		out := t2048.ResolveMove(grid, dir, spawner, counter)

		st := sim.stats[dir]
		st.moves++
		st.passes += out.Passes
		st.merges += len(out.Merges)
		if !out.Moved {
			st.blocked++
		}
		sim.moves++
	}
	sim.frames = frames
	if grid.Stuck() {
		sim.status = t2048.StatusLost
	}
	return sim
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMoves < 1 {
		return fmt.Errorf("--moves must be positive, got %d", flagMoves)
	}
	dirs, err := parseDirections(flagDirections)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	sim := simulate(cfg, seed, flagMoves, dirs)
	logger.Debug("simulation finished", "seed", seed, "moves", sim.moves, "elapsed", time.Since(start))

	printSimulation(cmd.OutOrStdout(), seed, sim)
	return nil
}

func printSimulation(w io.Writer, seed int64, sim simulation) {
	fmt.Fprintf(w, "Seed:     %d\n", seed)
	fmt.Fprintf(w, "Moves:    %d\n", sim.moves)
	fmt.Fprintf(w, "Frames:   %d\n", sim.frames)
	fmt.Fprintf(w, "Max tile: %d\n", sim.grid.MaxValue())
	fmt.Fprintf(w, "Sum:      %d\n", sim.grid.Sum())
	fmt.Fprintf(w, "Status:   %s\n", sim.status)
	fmt.Fprintln(w)

	fmt.Fprintln(w, statsTable(sim.stats))
	fmt.Fprintln(w)
	fmt.Fprint(w, formatBoard(sim.grid))
}

// statsTable renders the per-direction statistics.
func statsTable(stats map[t2048.Direction]*dirStats) string {
	columns := []table.Column{
		{Title: "Direction", Width: 9},
		{Title: "Moves", Width: 6},
		{Title: "Blocked", Width: 7},
		{Title: "Passes", Width: 7},
		{Title: "Merges", Width: 6},
	}

	rows := make([]table.Row, 0, len(t2048.Directions))
	for _, d := range t2048.Directions {
		st := stats[d]
		rows = append(rows, table.Row{
			d.String(),
			strconv.Itoa(st.moves),
			strconv.Itoa(st.blocked),
			strconv.Itoa(st.passes),
			strconv.Itoa(st.merges),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	return t.View()
}

// formatBoard prints the grid with right-aligned values and dots for empty cells.
func formatBoard(g *t2048.Grid) string {
	width := len(strconv.Itoa(max(g.MaxValue(), 2)))

	var sb strings.Builder
	for _, row := range g.Values() {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
