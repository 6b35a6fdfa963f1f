package window

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

// outlineThickness is the width of the grid lines in pixels.
const outlineThickness = 10

var overlayShade = color.RGBA{0, 0, 0, 160}

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// faces holds the fonts used by the window.
type faces struct {
	tile    *text.GoTextFace
	overlay *text.GoTextFace
	small   *text.GoTextFace
}

func loadFaces(cellHeight float64) (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load tile font: %w", err)
	}
	size := max(12, cellHeight*0.4)
	return faces{
		tile:    &text.GoTextFace{Source: src, Size: size},
		overlay: &text.GoTextFace{Source: src, Size: size * 1.2},
		small:   &text.GoTextFace{Source: src, Size: size * 0.5},
	}, nil
}

// tileFace shrinks the label font for long numbers so they stay inside the tile.
func (f faces) tileFace(label string, cellWidth float64) *text.GoTextFace {
	w, _ := text.Measure(label, f.tile, 0)
	limit := cellWidth * 0.85
	if w <= limit {
		return f.tile
	}
	return &text.GoTextFace{Source: f.tile.Source, Size: f.tile.Size * limit / w}
}

func drawCentered(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawTiles paints every tile at its exact pixel position with its label.
func drawTiles(dst *ebiten.Image, tiles []t2048.TileView, geo t2048.Geometry, f faces) {
	w, h := float32(geo.CellWidth), float32(geo.CellHeight)
	ink := rgba(core.RGBInk)

	for _, t := range tiles {
		fill, _ := t2048.TileColor(t.Value).RGB()
		vector.DrawFilledRect(dst, float32(t.X), float32(t.Y), w, h, rgba(fill), false)

		label := strconv.Itoa(t.Value)
		drawCentered(dst, label, f.tileFace(label, geo.CellWidth),
			t.X+geo.CellWidth/2, t.Y+geo.CellHeight/2, ink)
	}
}

// drawGrid draws the cell separators and the board border.
func drawGrid(dst *ebiten.Image, geo t2048.Geometry) {
	outline := rgba(core.RGBOutline)
	width, height := float32(geo.Width()), float32(geo.Height())

	for r := 1; r < geo.Rows; r++ {
		y := float32(float64(r) * geo.CellHeight)
		vector.StrokeLine(dst, 0, y, width, y, outlineThickness, outline, false)
	}
	for c := 1; c < geo.Cols; c++ {
		x := float32(float64(c) * geo.CellWidth)
		vector.StrokeLine(dst, x, 0, x, height, outlineThickness, outline, false)
	}
	vector.StrokeRect(dst, 0, 0, width, height, outlineThickness, outline, false)
}

// drawOverlay shades the board and prints a title with a hint below it.
func drawOverlay(dst *ebiten.Image, geo t2048.Geometry, f faces, title, hint string) {
	width, height := geo.Width(), geo.Height()
	vector.DrawFilledRect(dst, 0, 0, float32(width), float32(height), overlayShade, false)
	drawCentered(dst, title, f.overlay, width/2, height/2-f.overlay.Size/2, color.White)
	drawCentered(dst, hint, f.small, width/2, height/2+f.overlay.Size/2, color.White)
}
