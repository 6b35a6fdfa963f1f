package core

import "testing"

func TestColorRGB(t *testing.T) {
	tests := []struct {
		color Color
		hex   string
		ok    bool
	}{
		{ColorTile2, "#ede5da", true},
		{ColorTile256, "#ecca50", true},
		{ColorBoard, "#bbada0", true},
		{ColorInk, "#776e65", true},
		{ColorRed, "", false},
	}

	for _, tt := range tests {
		rgb, ok := tt.color.RGB()
		if ok != tt.ok {
			t.Errorf("Color(%d).RGB() ok = %v, want %v", tt.color, ok, tt.ok)
			continue
		}
		if ok && rgb.Hex() != tt.hex {
			t.Errorf("Color(%d).RGB().Hex() = %s, want %s", tt.color, rgb.Hex(), tt.hex)
		}
	}
}

func TestTileColorsHavePalette(t *testing.T) {
	for i, c := range TileColors {
		if _, ok := c.RGB(); !ok {
			t.Errorf("TileColors[%d] has no RGB", i)
		}
	}
}
