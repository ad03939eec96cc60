package skydive

import "testing"

func TestRNGKnownFirstDraw(t *testing.T) {
	r := NewRNG(1, 1)
	// z = 36969, w = 18000
	if got, want := r.Next(), uint32(36969<<16+18000); got != want {
		t.Errorf("Next() = %d, want %d", got, want)
	}
	z, w := r.Lanes()
	if z != 36969 || w != 18000 {
		t.Errorf("lanes = (%d, %d), want (36969, 18000)", z, w)
	}
}

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(123, 456)
	b := NewRNG(123, 456)

	prev := uint32(0)
	for i := range 1000 {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("draw %d: %d != %d", i, va, vb)
		}
		if i > 0 && va == prev {
			t.Fatalf("draw %d repeated previous value %d", i, va)
		}
		prev = va
	}
}

func TestRNGSeedZeroBecomesOne(t *testing.T) {
	r := NewRNG(0, 0)
	z, w := r.Lanes()
	if z != 1 || w != 1 {
		t.Errorf("lanes = (%d, %d), want (1, 1)", z, w)
	}

	r.setLanes(0, 7)
	if z, _ := r.Lanes(); z != 1 {
		t.Errorf("setLanes(0, _) left z = %d, want 1", z)
	}
}

func TestRNGBoundedRange(t *testing.T) {
	tests := []uint32{1, 2, 10, 100, 1 << 31, ^uint32(0)}

	for _, n := range tests {
		r := NewRNG(77, 99)
		for range 5000 {
			if v := r.Bounded(n); v >= n {
				t.Fatalf("Bounded(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestRNGBoundedCoversRange(t *testing.T) {
	r := NewRNG(31337, 4242)
	seen := make(map[uint32]bool)
	for range 2000 {
		seen[r.Bounded(10)] = true
	}
	if len(seen) != 10 {
		t.Errorf("Bounded(10) produced %d distinct values, want 10", len(seen))
	}
}

func TestRNGBoundedZero(t *testing.T) {
	r := NewRNG(5, 6)
	before, _ := r.Lanes()
	if v := r.Bounded(0); v != 0 {
		t.Errorf("Bounded(0) = %d, want 0", v)
	}
	if after, _ := r.Lanes(); after == before {
		t.Error("Bounded(0) should still advance the lanes")
	}
}

func TestFoldButtons(t *testing.T) {
	tests := []struct {
		name  string
		z     uint32
		raw   uint8
		wantZ uint32
	}{
		{"no buttons", 1, 0, 1},
		{"shift by z mod 8", 1, 1, 1 ^ (1 << 1)},
		{"zero result rejected", 8, 8, 8},
		{"high shift", 7, 0x10, 7 ^ (0x10 << 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RNG{}
			r.setLanes(tt.z, 1)
			r.FoldButtons(tt.raw)
			if z, _ := r.Lanes(); z != tt.wantZ {
				t.Errorf("z = %d, want %d", z, tt.wantZ)
			}
		})
	}
}

func TestFoldButtonsSelfInverse(t *testing.T) {
	// 0x1235 % 8 = 5: the folded bit is 1<<5, which leaves the low three
	// bits alone, so a second identical fold restores the lane.
	r := &RNG{}
	r.setLanes(0x1235, 1)

	r.FoldButtons(1)
	if z, _ := r.Lanes(); z != 0x1215 {
		t.Fatalf("first fold z = %#x, want 0x1215", z)
	}
	r.FoldButtons(1)
	if z, _ := r.Lanes(); z != 0x1235 {
		t.Errorf("second fold z = %#x, want 0x1235", z)
	}
}

func TestFoldPointer(t *testing.T) {
	r := &RNG{}
	r.setLanes(1, 1)

	// rot = (5 ^ 0) % 12 = 5
	r.FoldPointerX(5, 0)
	if _, w := r.Lanes(); w != 1<<5|5 {
		t.Errorf("w = %d, want %d", w, 1<<5|5)
	}

	// rot = (3 ^ 1) % 12 = 2
	r.FoldPointerY(3, 1)
	if z, _ := r.Lanes(); z != 1<<2|3 {
		t.Errorf("z = %d, want %d", z, 1<<2|3)
	}
}

func TestFoldPointerRejectsZero(t *testing.T) {
	r := &RNG{}
	r.setLanes(1, 1<<31)

	// rot = (0 ^ 1) % 12 = 1 shifts the only set bit out
	r.FoldPointerX(0, 1)
	if _, w := r.Lanes(); w != 1<<31 {
		t.Errorf("w = %#x, want lane kept at %#x", w, uint32(1<<31))
	}
}
