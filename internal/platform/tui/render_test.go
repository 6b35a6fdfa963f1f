package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tile2048/internal/core"
)

func plainPalette() *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPalette(r)
}

func TestRenderKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Moves: 3")
	s.DrawTextColor(0, 1, "2048", core.ColorInk, core.ColorTile2)

	got := plainPalette().Render(s)
	want := "Moves: 3    \n2048        "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPaletteCachesStyles(t *testing.T) {
	p := plainPalette()
	p.style(core.ColorInk, core.ColorTile4)
	p.style(core.ColorInk, core.ColorTile4)
	p.style(core.ColorRed, core.ColorDefault)

	if len(p.styles) != 2 {
		t.Errorf("cached styles = %d, want 2", len(p.styles))
	}
}

func TestTerminalColor(t *testing.T) {
	if c, ok := terminalColor(core.ColorTile8); !ok || c != lipgloss.Color("#f3b27a") {
		t.Errorf("terminalColor(ColorTile8) = %v, %v", c, ok)
	}
	if c, ok := terminalColor(core.ColorRed); !ok || c != lipgloss.Color("1") {
		t.Errorf("terminalColor(ColorRed) = %v, %v", c, ok)
	}
	if _, ok := terminalColor(core.ColorDefault); ok {
		t.Error("ColorDefault should leave the terminal color alone")
	}
}

func TestRenderScreenLines(t *testing.T) {
	s := core.NewScreen(5, 3)
	if got := strings.Count(RenderScreen(s), "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
}
