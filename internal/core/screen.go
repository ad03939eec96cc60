package core

import "strings"

// Cell is one terminal character. Half-block cells carry the upper pixel in
// FG and the lower pixel in BG.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is the cell grid a framebuffer is reduced into. Frontends turn it
// into styled output; tests read it as text.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank screen of width x height cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height, cells: make([]Cell, width*height)}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Clear resets every cell to a blank space.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// SetCell ignores coordinates off the grid.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = c
	}
}

// GetCell returns a blank cell for coordinates off the grid.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText overwrites runes from (x, y) rightwards, keeping cell colors.
// Text past the right edge is dropped.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		if s.inside(x, y) {
			s.cells[y*s.width+x].Rune = r
		}
		x++
	}
}

// Row returns row y as plain text; rows off the grid read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String joins every row with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
