package core

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Board palette shared by the terminal and window frontends.
var (
	RGBOutline  = RGB{187, 173, 160}
	RGBBackdrop = RGB{205, 192, 180}
	RGBInk      = RGB{119, 110, 101}
)

var tileRGB = map[Color]RGB{
	ColorTile2:   {237, 229, 218},
	ColorTile4:   {238, 225, 201},
	ColorTile8:   {243, 178, 122},
	ColorTile16:  {246, 150, 101},
	ColorTile32:  {247, 95, 59},
	ColorTile64:  {237, 208, 115},
	ColorTile128: {237, 204, 99},
	ColorTile256: {236, 202, 80},
}

// RGB returns the true color for palette colors. Plain terminal colors
// such as ColorRed have none and report false.
func (c Color) RGB() (RGB, bool) {
	switch c {
	case ColorBoard:
		return RGBOutline, true
	case ColorBackdrop:
		return RGBBackdrop, true
	case ColorInk:
		return RGBInk, true
	}
	rgb, ok := tileRGB[c]
	return rgb, ok
}
