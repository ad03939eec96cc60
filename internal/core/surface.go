package core

// BlitFlags modify how Blit reads and places a sprite.
type BlitFlags uint8

const (
	Blit1BPP  BlitFlags = 0      // One bit per pixel, MSB first, rows packed back to back
	BlitFlipX BlitFlags = 1 << 1 // Mirror horizontally
	BlitFlipY BlitFlags = 1 << 2 // Mirror vertically
)

// Surface is the drawing contract the game renders into.
// Every primitive uses the colors most recently passed to SetColors.
// The game never reads pixels back.
type Surface interface {
	SetColors(c DrawColors)
	Rect(x, y, w, h int)
	Oval(x, y, w, h int)
	Blit(sprite []byte, x, y, w, h int, flags BlitFlags)
	Text(s string, x, y int)
}

// Op names a recorded Surface call.
type Op string

const (
	OpRect Op = "rect"
	OpOval Op = "oval"
	OpBlit Op = "blit"
	OpText Op = "text"
)

// Call is one recorded draw call.
type Call struct {
	Op     Op
	Colors DrawColors
	X, Y   int
	W, H   int
	Text   string
	Sprite []byte
	Flags  BlitFlags
}

// Recorder is a Surface that captures draw calls instead of drawing them.
type Recorder struct {
	colors DrawColors
	Calls  []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetColors implements Surface.
func (r *Recorder) SetColors(c DrawColors) {
	r.colors = c
}

// Rect implements Surface.
func (r *Recorder) Rect(x, y, w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Colors: r.colors, X: x, Y: y, W: w, H: h})
}

// Oval implements Surface.
func (r *Recorder) Oval(x, y, w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpOval, Colors: r.colors, X: x, Y: y, W: w, H: h})
}

// Blit implements Surface.
func (r *Recorder) Blit(sprite []byte, x, y, w, h int, flags BlitFlags) {
	r.Calls = append(r.Calls, Call{Op: OpBlit, Colors: r.colors, X: x, Y: y, W: w, H: h, Sprite: sprite, Flags: flags})
}

// Text implements Surface.
func (r *Recorder) Text(s string, x, y int) {
	r.Calls = append(r.Calls, Call{Op: OpText, Colors: r.colors, X: x, Y: y, Text: s})
}

// Texts returns the strings drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// HasText reports whether s was drawn.
func (r *Recorder) HasText(s string) bool {
	for _, c := range r.Calls {
		if c.Op == OpText && c.Text == s {
			return true
		}
	}
	return false
}

// Count returns how many calls of the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
