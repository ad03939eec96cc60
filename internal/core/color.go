package core

// Color is a palette slot. Zero is transparent, 1..4 index the four-entry
// palette from lightest (1) to darkest (4).
type Color uint8

// Palette slots.
const (
	ColorNone Color = iota
	Color1
	Color2
	Color3
	Color4
)

// PaletteSize is the number of drawable palette entries.
const PaletteSize = 4

// Valid reports whether c names a drawable palette entry.
func (c Color) Valid() bool {
	return c >= Color1 && c <= Color4
}

// DrawColors is the draw color register consumed by every Surface primitive.
// Each nibble holds a palette slot: nibble 1 is the fill / text foreground /
// sprite bit-0 color, nibble 2 the outline / text background / sprite bit-1
// color. A nibble of 0 (or anything above 4) draws nothing.
type DrawColors uint16

// Slot returns the palette slot stored in nibble n (1-based).
func (d DrawColors) Slot(n int) Color {
	if n < 1 || n > 4 {
		return ColorNone
	}
	c := Color((d >> (4 * uint(n-1))) & 0xF)
	if !c.Valid() {
		return ColorNone
	}
	return c
}

// Primary returns nibble 1.
func (d DrawColors) Primary() Color {
	return d.Slot(1)
}

// Secondary returns nibble 2.
func (d DrawColors) Secondary() Color {
	return d.Slot(2)
}
