package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/core"
)

// ansiColors maps plain core colors to terminal palette indexes.
var ansiColors = map[core.Color]string{
	core.ColorRed:    "1",
	core.ColorYellow: "3",
	core.ColorWhite:  "7",
	core.ColorGray:   "245",
}

type colorPair struct {
	fg, bg core.Color
}

// Palette turns a Screen into styled terminal output.
// Styles are built once per color pair and cached.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPalette creates a palette for r. A nil renderer uses the process-wide
// default, SSH sessions pass their own so color detection follows the client.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func terminalColor(c core.Color) (lipgloss.TerminalColor, bool) {
	if rgb, ok := c.RGB(); ok {
		return lipgloss.Color(rgb.Hex()), true
	}
	if idx, ok := ansiColors[c]; ok {
		return lipgloss.Color(idx), true
	}
	return nil, false
}

func (p *Palette) style(fg, bg core.Color) lipgloss.Style {
	pair := colorPair{fg, bg}
	if s, ok := p.styles[pair]; ok {
		return s
	}

	s := p.renderer.NewStyle()
	if c, ok := terminalColor(fg); ok {
		s = s.Foreground(c)
	}
	if c, ok := terminalColor(bg); ok {
		s = s.Background(c)
	}
	p.styles[pair] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != first.Fg || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(first.Fg, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default palette.
func RenderScreen(s *core.Screen) string {
	return NewPalette(nil).Render(s)
}
