package core

// Buttons is a bitmask of gamepad buttons sampled once per tick.
// The layout follows the classic fantasy-console gamepad.
type Buttons uint8

const (
	Button1     Buttons = 1 << 0 // X key
	Button2     Buttons = 1 << 1 // Z key
	ButtonLeft  Buttons = 1 << 4
	ButtonRight Buttons = 1 << 5
	ButtonUp    Buttons = 1 << 6
	ButtonDown  Buttons = 1 << 7
)

// ButtonPrimary is either action button.
const ButtonPrimary = Button1 | Button2

// String returns a compact human-readable list of held buttons.
func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	names := []struct {
		bit  Buttons
		name string
	}{
		{Button1, "1"},
		{Button2, "2"},
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonUp, "up"},
		{ButtonDown, "down"},
	}
	out := ""
	for _, n := range names {
		if b&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += n.name
	}
	return out
}

// InputFrame is the raw host input for a single simulation tick.
type InputFrame struct {
	Buttons  Buttons
	PointerX uint16 // Pointer position in framebuffer pixels
	PointerY uint16
}

// HoldTracker turns discrete key presses into held buttons.
// Terminals report presses but not releases, so each press keeps its button
// down for a fixed number of ticks; repeated presses (key auto-repeat) extend it.
type HoldTracker struct {
	hold      int
	remaining [8]int
}

// NewHoldTracker creates a tracker that holds each press for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{hold: holdTicks}
}

// Press marks the given buttons as held for the full hold window.
func (h *HoldTracker) Press(b Buttons) {
	for i := range h.remaining {
		if b&(1<<uint(i)) != 0 {
			h.remaining[i] = h.hold
		}
	}
}

// Tick returns the buttons held this tick and ages every hold by one tick.
func (h *HoldTracker) Tick() Buttons {
	var held Buttons
	for i := range h.remaining {
		if h.remaining[i] > 0 {
			held |= 1 << uint(i)
			h.remaining[i]--
		}
	}
	return held
}
