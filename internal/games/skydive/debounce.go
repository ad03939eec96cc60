package skydive

import "github.com/vovakirdan/tui-skydive/internal/core"

// DebounceWindow is the number of consecutive samples a button must be held
// for before it reads as pressed (about 83ms at 60 ticks per second).
const DebounceWindow = 5

// Debouncer filters contact bounce out of raw button samples.
type Debouncer struct {
	history [DebounceWindow]core.Buttons
	next    int
	state   core.Buttons
	prev    core.Buttons
}

// Sample records one raw sample and recomputes the debounced state as the
// AND of the whole window.
func (d *Debouncer) Sample(raw core.Buttons) {
	d.history[d.next] = raw
	d.next = (d.next + 1) % DebounceWindow

	d.prev = d.state
	d.state = d.history[0]
	for _, h := range d.history[1:] {
		d.state &= h
	}
}

// Pressed reports whether any button in mask is steadily held.
func (d *Debouncer) Pressed(mask core.Buttons) bool {
	return d.state&mask != 0
}

// JustPressed reports whether any button in mask became steadily held on
// the latest sample.
func (d *Debouncer) JustPressed(mask core.Buttons) bool {
	return (d.state&^d.prev)&mask != 0
}

// State returns the debounced button mask.
func (d *Debouncer) State() core.Buttons {
	return d.state
}

// Reset empties the history.
func (d *Debouncer) Reset() {
	*d = Debouncer{}
}
