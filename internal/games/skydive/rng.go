package skydive

// RNG is George Marsaglia's multiply-with-carry generator: two 16-bit MWC
// lanes whose outputs are concatenated into one 32-bit value.
// Neither lane may be zero; a zero lane collapses to a fixed point.
type RNG struct {
	z, w uint32
}

// NewRNG creates a generator seeded from a pointer reading.
func NewRNG(pointerX, pointerY uint16) *RNG {
	r := &RNG{}
	r.Seed(pointerX, pointerY)
	return r
}

// Seed sets w from the pointer x and z from the pointer y.
// A zero reading seeds its lane with 1.
func (r *RNG) Seed(pointerX, pointerY uint16) {
	r.w = nonZero(uint32(pointerX))
	r.z = nonZero(uint32(pointerY))
}

func nonZero(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return v
}

// Lanes returns the current (z, w) state.
func (r *RNG) Lanes() (z, w uint32) {
	return r.z, r.w
}

// setLanes restores a state captured with Lanes. Zero lanes become 1.
func (r *RNG) setLanes(z, w uint32) {
	r.z = nonZero(z)
	r.w = nonZero(w)
}

// Next advances both lanes and returns the combined 32-bit value.
func (r *RNG) Next() uint32 {
	r.z = 36969*(r.z&0xFFFF) + (r.z >> 16)
	r.w = 18000*(r.w&0xFFFF) + (r.w >> 16)
	return (r.z << 16) + r.w
}

// Bounded returns a value in [0, n), scaling the next 32-bit draw as a
// fraction of 2^32. Bounded(0) returns 0 and still advances the lanes.
func (r *RNG) Bounded(n uint32) uint32 {
	x := r.Next()
	if n == 0 {
		return 0
	}
	return uint32((uint64(x) * uint64(n)) >> 32)
}

// FoldButtons mixes raw button bits into z, shifted by z's low three bits.
// A fold that would zero the lane is dropped.
func (r *RNG) FoldButtons(raw uint8) {
	if raw == 0 {
		return
	}
	if tmp := r.z ^ (uint32(raw) << (r.z % 8)); tmp != 0 {
		r.z = tmp
	}
}

// FoldPointerX mixes a changed pointer x coordinate into w.
func (r *RNG) FoldPointerX(x uint16, ticks uint64) {
	r.w = foldCoordinate(r.w, x, ticks)
}

// FoldPointerY mixes a changed pointer y coordinate into z.
func (r *RNG) FoldPointerY(y uint16, ticks uint64) {
	r.z = foldCoordinate(r.z, y, ticks)
}

func foldCoordinate(lane uint32, coord uint16, ticks uint64) uint32 {
	rot := (uint64(coord) ^ ticks) % 12
	if tmp := (lane << rot) | uint32(coord); tmp != 0 {
		return tmp
	}
	return lane
}
