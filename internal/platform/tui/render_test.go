package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skydive/internal/core"
)

func TestNewPalette(t *testing.T) {
	p := NewPalette([]string{"#ffffff", "", "#000000"})
	want := Palette{"#ffffff", "#86c06c", "#000000", "#071821"}
	if p != want {
		t.Errorf("NewPalette() = %v, want %v", p, want)
	}
	if p.color(core.ColorNone) != p[0] {
		t.Error("transparent slot should fall back to the lightest color")
	}
	if p.color(core.Color4) != lipgloss.Color("#071821") {
		t.Errorf("Color4 = %v", p.color(core.Color4))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "SKY")
	s.SetCell(5, 1, core.Cell{Rune: '#', FG: core.Color4, BG: core.Color1})

	out := RenderScreen(s, NewPalette(nil))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "SKY") {
		t.Errorf("row 0 lost its text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "#") {
		t.Errorf("row 1 lost its cell: %q", lines[1])
	}
}
