package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skydive/internal/core"
)

// Palette maps the four palette slots to terminal colors.
type Palette [core.PaletteSize]lipgloss.Color

// NewPalette builds a palette from four #rrggbb strings, lightest first.
// Missing entries fall back to the default greens.
func NewPalette(hex []string) Palette {
	p := Palette{"#e0f8cf", "#86c06c", "#306850", "#071821"}
	for i := 0; i < len(hex) && i < core.PaletteSize; i++ {
		if hex[i] != "" {
			p[i] = lipgloss.Color(hex[i])
		}
	}
	return p
}

// color returns the terminal color of a palette slot.
func (p Palette) color(c core.Color) lipgloss.Color {
	if !c.Valid() {
		return p[0]
	}
	return p[c-core.Color1]
}

// style returns the style for a cell with the given colors.
func (p Palette) style(fg, bg core.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.color(fg)).Background(p.color(bg))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	type key struct{ fg, bg core.Color }
	styles := make(map[key]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*8 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			k := key{start.FG, start.BG}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[k]
			if !ok {
				style = p.style(k.fg, k.bg)
				styles[k] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
