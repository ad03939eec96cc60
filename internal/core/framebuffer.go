package core

// Logical display geometry. The game draws into a 160x160 pixel framebuffer;
// each terminal cell shows a 2x4 pixel block as two stacked half blocks.
const (
	FramebufferWidth  = 160
	FramebufferHeight = 160
	CellPixelsX       = 2
	CellPixelsY       = 4
	ScreenCols        = FramebufferWidth / CellPixelsX
	ScreenRows        = FramebufferHeight / CellPixelsY

	// FontSize is the pixel size of one glyph. Text positions are given in
	// pixels as if every glyph were FontSize wide.
	FontSize = 8
)

// halfBlock is drawn with FG as the upper and BG as the lower half.
const halfBlock = '▀'

type textRun struct {
	x, y   int
	text   string
	fg, bg Color
}

// Framebuffer is a palette-indexed pixel Surface.
type Framebuffer struct {
	pixels []Color
	colors DrawColors
	texts  []textRun
	bounds Rect
}

// NewFramebuffer creates a cleared framebuffer.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{
		pixels: make([]Color, FramebufferWidth*FramebufferHeight),
		colors: 0x1234,
		bounds: NewRect(0, 0, FramebufferWidth, FramebufferHeight),
	}
	fb.Clear()
	return fb
}

// Clear fills every pixel with Color1 and drops queued text.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = Color1
	}
	fb.texts = fb.texts[:0]
}

// Pixel returns the palette slot at (x, y), or ColorNone out of bounds.
func (fb *Framebuffer) Pixel(x, y int) Color {
	if !fb.bounds.Contains(x, y) {
		return ColorNone
	}
	return fb.pixels[y*FramebufferWidth+x]
}

func (fb *Framebuffer) set(x, y int, c Color) {
	if c == ColorNone || !fb.bounds.Contains(x, y) {
		return
	}
	fb.pixels[y*FramebufferWidth+x] = c
}

func (fb *Framebuffer) hline(x, y, w int, c Color) {
	for i := 0; i < w; i++ {
		fb.set(x+i, y, c)
	}
}

func (fb *Framebuffer) vline(x, y, h int, c Color) {
	for i := 0; i < h; i++ {
		fb.set(x, y+i, c)
	}
}

// SetColors implements Surface.
func (fb *Framebuffer) SetColors(c DrawColors) {
	fb.colors = c
}

// Rect implements Surface: fill with the primary color, outline with the secondary.
func (fb *Framebuffer) Rect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	fill, stroke := fb.colors.Primary(), fb.colors.Secondary()

	if fill != ColorNone {
		area := NewRect(x, y, w, h).Intersect(fb.bounds)
		for py := area.Y; py < area.Bottom(); py++ {
			for px := area.X; px < area.Right(); px++ {
				fb.pixels[py*FramebufferWidth+px] = fill
			}
		}
	}
	if stroke != ColorNone {
		fb.hline(x, y, w, stroke)
		fb.hline(x, y+h-1, w, stroke)
		fb.vline(x, y, h, stroke)
		fb.vline(x+w-1, y, h, stroke)
	}
}

// Oval implements Surface: an ellipse inscribed in the given box, filled with
// the primary color and outlined with the secondary.
func (fb *Framebuffer) Oval(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	fill, stroke := fb.colors.Primary(), fb.colors.Secondary()
	rx, ry := float64(w)/2, float64(h)/2

	inside := func(px, py int) bool {
		if px < 0 || px >= w || py < 0 || py >= h {
			return false
		}
		dx := (float64(px) + 0.5 - rx) / rx
		dy := (float64(py) + 0.5 - ry) / ry
		return dx*dx+dy*dy <= 1.0
	}

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if !inside(px, py) {
				continue
			}
			edge := !inside(px-1, py) || !inside(px+1, py) || !inside(px, py-1) || !inside(px, py+1)
			if edge {
				fb.set(x+px, y+py, stroke)
			} else {
				fb.set(x+px, y+py, fill)
			}
		}
	}
}

// Blit implements Surface for 1bpp sprites.
// Clear bits take the primary color, set bits the secondary.
func (fb *Framebuffer) Blit(sprite []byte, x, y, w, h int, flags BlitFlags) {
	off, on := fb.colors.Primary(), fb.colors.Secondary()
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			bit := sy*w + sx
			if bit>>3 >= len(sprite) {
				return
			}
			c := off
			if sprite[bit>>3]&(0x80>>uint(bit&7)) != 0 {
				c = on
			}
			dx, dy := sx, sy
			if flags&BlitFlipX != 0 {
				dx = w - 1 - sx
			}
			if flags&BlitFlipY != 0 {
				dy = h - 1 - sy
			}
			fb.set(x+dx, y+dy, c)
		}
	}
}

// Text implements Surface. Glyphs are not rasterized; text is laid over the
// cell grid when the framebuffer is converted to a Screen.
func (fb *Framebuffer) Text(s string, x, y int) {
	fb.texts = append(fb.texts, textRun{
		x:    x,
		y:    y,
		text: s,
		fg:   fb.colors.Primary(),
		bg:   fb.colors.Secondary(),
	})
}

// darkest returns the highest palette slot in a 2x2 pixel block, so that
// one-pixel outlines survive the reduction.
func (fb *Framebuffer) darkest(px, py int) Color {
	c := ColorNone
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if p := fb.Pixel(px+dx, py+dy); p > c {
				c = p
			}
		}
	}
	if c == ColorNone {
		return Color1
	}
	return c
}

// ToScreen reduces the framebuffer into dst, which should be ScreenCols x
// ScreenRows cells; larger screens keep their extra cells untouched.
func (fb *Framebuffer) ToScreen(dst *Screen) {
	for cy := 0; cy < ScreenRows; cy++ {
		for cx := 0; cx < ScreenCols; cx++ {
			px, py := cx*CellPixelsX, cy*CellPixelsY
			dst.SetCell(cx, cy, Cell{
				Rune: halfBlock,
				FG:   fb.darkest(px, py),
				BG:   fb.darkest(px, py+2),
			})
		}
	}

	for _, t := range fb.texts {
		runes := []rune(t.text)
		n := len(runes)
		centerPx := t.x + n*FontSize/2
		col := centerPx/CellPixelsX - n/2
		row := (t.y + FontSize/2) / CellPixelsY
		for i, r := range runes {
			under := dst.GetCell(col+i, row)
			bg := t.bg
			if bg == ColorNone {
				bg = under.FG
			}
			fg := t.fg
			if fg == ColorNone {
				fg = Color1
			}
			dst.SetCell(col+i, row, Cell{Rune: r, FG: fg, BG: bg})
		}
	}
}
