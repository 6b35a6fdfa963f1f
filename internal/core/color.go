package core

// Color identifies a terminal color for a screen cell.
// The platform layer maps each value to a concrete lipgloss color.
type Color uint8

// Base colors for text and chrome.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorGray
	ColorBoard    // grid outline
	ColorBackdrop // empty cell fill
	ColorInk      // tile label
)

// Tile shades, lightest first. A tile of value 2^(n+1) uses TileColors[n].
const (
	ColorTile2 Color = iota + 32
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
)

// TileColors lists the tile shades in value order.
var TileColors = []Color{
	ColorTile2, ColorTile4, ColorTile8, ColorTile16,
	ColorTile32, ColorTile64, ColorTile128, ColorTile256,
}
