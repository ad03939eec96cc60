package skydive

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPerTickConstants(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"plane", planeDX, 0.5},
		{"dy max", diverDYMax, 0.5},
		{"chute min", chuteMinDY, 0.25},
		{"too fast", tooFastDY, 0.25},
		{"accel", diverAccel, 10.0 / 60},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > eps {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestPlanePass(t *testing.T) {
	if got := PassTicks(); got != 360 {
		t.Errorf("PassTicks() = %d, want 360", got)
	}

	p := NewPlane()
	for range 359 {
		p.Advance()
	}
	if p.Done() {
		t.Fatal("plane done one tick early")
	}
	p.Advance()
	if !p.Done() {
		t.Errorf("plane not done at x=%v", p.X)
	}
}

func TestDiverFreeFallClamp(t *testing.T) {
	d := NewDiver(NewPlane())
	for range 100 {
		d.Fall()
		if d.DY > diverDYMax+eps {
			t.Fatalf("dy = %v exceeds max %v", d.DY, diverDYMax)
		}
	}
	if math.Abs(d.DY-diverDYMax) > eps {
		t.Errorf("dy = %v, want terminal %v", d.DY, diverDYMax)
	}
}

func TestDiverChute(t *testing.T) {
	d := Diver{Y: 80.7, DY: diverDYMax}
	if !d.OpenChute() {
		t.Fatal("OpenChute on a closed chute returned false")
	}
	if d.OpenAt != 80 {
		t.Errorf("OpenAt = %v, want 80", d.OpenAt)
	}
	if want := diverDYMax - chuteKick; math.Abs(d.DY-want) > eps {
		t.Errorf("dy after kick = %v, want %v", d.DY, want)
	}
	if d.OpenChute() {
		t.Error("second OpenChute should be a no-op")
	}

	for range 100 {
		d.Fall()
		if d.DY < chuteMinDY-eps {
			t.Fatalf("dy = %v below chute floor %v", d.DY, chuteMinDY)
		}
	}
	if math.Abs(d.DY-chuteMinDY) > eps {
		t.Errorf("dy = %v, want floor %v", d.DY, chuteMinDY)
	}
}

func TestDiverSpawn(t *testing.T) {
	p := Plane{X: 42, DX: planeDX, End: PlaneEnd}
	d := NewDiver(p)
	if d.X != 52 || d.Y != DiverStartY || d.DX != planeDX || d.Open {
		t.Errorf("unexpected diver %+v", d)
	}
	if math.Abs(d.DY-5.0/60) > eps {
		t.Errorf("dy = %v, want 5/60", d.DY)
	}
}

func TestDiverSteerAndDrift(t *testing.T) {
	d := Diver{X: 50, DX: 0.5}
	d.SteerLeft()
	if d.X != 49.5 {
		t.Errorf("after left x = %v", d.X)
	}
	d.SteerRight()
	d.SteerRight()
	if d.X != 50.5 {
		t.Errorf("after right x = %v", d.X)
	}

	w := Wind{DX: 0.05}
	d = Diver{X: 50}
	d.Drift(w)
	if math.Abs(d.X-50.05) > eps {
		t.Errorf("closed drift x = %v, want 50.05", d.X)
	}
	d = Diver{X: 50, Open: true}
	d.Drift(w)
	if math.Abs(d.X-50.5) > eps {
		t.Errorf("open drift x = %v, want 50.5", d.X)
	}
}

func TestDiverGroundAndSpeed(t *testing.T) {
	tests := []struct {
		d        Diver
		grounded bool
		tooFast  bool
	}{
		{Diver{Y: 140, DY: 0.1}, false, false},
		{Diver{Y: 140.01, DY: 0.25}, true, false},
		{Diver{Y: 141, DY: 0.26}, true, true},
		{Diver{Y: 20, DY: 0.5}, false, true},
	}
	for _, tt := range tests {
		if got := tt.d.Grounded(); got != tt.grounded {
			t.Errorf("%+v Grounded() = %v", tt.d, got)
		}
		if got := tt.d.TooFast(); got != tt.tooFast {
			t.Errorf("%+v TooFast() = %v", tt.d, got)
		}
	}
}

func TestTargetAndWindDraws(t *testing.T) {
	r := NewRNG(2024, 7)
	for range 1000 {
		tg := NewTarget(r)
		if tg.Left < 0 || tg.Left >= TargetRange || tg.Right-tg.Left != TargetWidth {
			t.Fatalf("bad target %+v", tg)
		}
		if tg.Left != math.Trunc(tg.Left) {
			t.Fatalf("target left %v not whole", tg.Left)
		}

		w := NewWind(r)
		perSecond := math.Round(w.DX * TicksPerSecond)
		if perSecond < -WindMax/2 || perSecond >= WindMax/2 {
			t.Fatalf("wind %v px/s out of range", perSecond)
		}
		if math.Abs(w.DX*TicksPerSecond-perSecond) > eps {
			t.Fatalf("wind %v not a whole px/s", w.DX)
		}
	}
}

func TestTargetContains(t *testing.T) {
	tg := Target{Left: 10, Right: 42}
	for x, want := range map[float64]bool{9.9: false, 10: true, 26: true, 42: true, 42.1: false} {
		if got := tg.Contains(x); got != want {
			t.Errorf("Contains(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestWindStrength(t *testing.T) {
	tests := []struct {
		perSecond float64
		want      int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{-4, 1},
		{6, 2},
		{8, 3},
		{-8, 3},
	}
	for _, tt := range tests {
		w := Wind{DX: tt.perSecond / TicksPerSecond}
		if got := w.Strength(); got != tt.want {
			t.Errorf("Strength(%v px/s) = %d, want %d", tt.perSecond, got, tt.want)
		}
	}
}
