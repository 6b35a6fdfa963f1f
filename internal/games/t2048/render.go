package t2048

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tile2048/internal/core"
)

// layout is a character-cell rendering scale. pitchX/pitchY are the
// characters per board cell including one grid line.
type layout struct {
	pitchX int
	pitchY int
}

// Layouts in order of preference; the first that fits the screen wins.
var layouts = []layout{
	{pitchX: 8, pitchY: 4},
	{pitchX: 6, pitchY: 2},
}

const hudHeight = 3

func (l layout) boardSize(geo Geometry) (w, h int) {
	return geo.Cols*l.pitchX + 1, geo.Rows*l.pitchY + 1
}

// pickLayout returns the largest layout that fits a w×h screen, or nil.
func pickLayout(geo Geometry, w, h int) *layout {
	for i := range layouts {
		bw, bh := layouts[i].boardSize(geo)
		if bw <= w && bh+hudHeight+1 <= h {
			return &layouts[i]
		}
	}
	return nil
}

// TileColor returns the terminal shade for a tile value.
// Values past the palette reuse its last shade.
func TileColor(value int) core.Color {
	idx := bits.Len(uint(value)) - 2 // log2(value) - 1
	return core.TileColors[core.Clamp(idx, 0, len(core.TileColors)-1)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	lay := pickLayout(g.geo, g.screenW, g.screenH)
	if lay == nil {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := lay.boardSize(g.geo)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, *lay, boardX, boardY)
	g.renderTiles(dst, *lay, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move counter and highest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorYellow, core.ColorDefault)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.grid.MaxValue())
	dst.DrawText(max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)
}

// renderBoard draws the empty cells and grid lines.
func (g *Game) renderBoard(dst *core.Screen, lay layout, boardX, boardY int) {
	rows, cols := g.geo.Rows, g.geo.Cols
	line := func(x, y int, r rune) {
		dst.SetCell(x, y, core.Cell{Rune: r, Fg: core.ColorBoard})
	}

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*lay.pitchX
			py := boardY + y*lay.pitchY

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			line(px, py, corner)

			if x < cols {
				for i := 1; i < lay.pitchX; i++ {
					line(px+i, py, '─')
				}
			}
			if y < rows {
				for i := 1; i < lay.pitchY; i++ {
					line(px, py+i, '│')
				}
			}
			if x < cols && y < rows {
				dst.FillRect(core.NewRect(px+1, py+1, lay.pitchX-1, lay.pitchY-1),
					core.Cell{Rune: ' ', Bg: core.ColorBackdrop})
			}
		}
	}
}

// renderTiles draws every tile at its pixel position scaled to characters,
// so sliding tiles move smoothly across the grid lines.
func (g *Game) renderTiles(dst *core.Screen, lay layout, boardX, boardY int) {
	w, h := lay.pitchX-1, lay.pitchY-1
	for _, t := range g.grid.Views() {
		cx := boardX + 1 + int(math.Round(t.X/g.geo.CellWidth*float64(lay.pitchX)))
		cy := boardY + 1 + int(math.Round(t.Y/g.geo.CellHeight*float64(lay.pitchY)))

		bg := TileColor(t.Value)
		dst.FillRect(core.NewRect(cx, cy, w, h), core.Cell{Rune: ' ', Fg: core.ColorInk, Bg: bg})

		label := strconv.Itoa(t.Value)
		dst.DrawTextColor(cx+max(0, (w-len(label))/2), cy+(h-1)/2, label, core.ColorInk, bg)
	}
}

// renderOverlays draws pause and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	switch {
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.grid.MaxValue())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
