package skydive

import "github.com/vovakirdan/tui-skydive/internal/core"

// Rates below are in pixels per second (or per second squared) and are
// converted to per-tick values once, in the var block that follows.
const (
	TicksPerSecond = core.TickRate

	PlaneSpeed   = 30.0
	PlaneEnd     = 180.0
	PlaneY       = 10
	DiverStartY  = 18.0
	DiverStartDY = 5.0
	DiverAccel   = 10.0
	DiverDYMax   = 30.0
	ChuteKick    = 2.0
	ChuteMinDY   = 15.0
	ChuteDecel   = 2.0
	ChuteWind    = 10.0 // Wind multiplier while the chute is open
	WindMax      = 10
	DiverExitDX  = 10.0 // Diver spawns this far ahead of the plane's x

	GroundY      = 140.0 // Landing is evaluated once the diver passes this line
	TargetRange  = 100   // Target left edge is drawn from [0, TargetRange)
	TargetWidth  = 32
	WinJumps     = 10
	MaxTries     = 3
	StartDelay   = 240 // Countdown length in ticks
	MessageDelay = 120 // NO JUMP / crash message length in ticks
)

var (
	planeDX      = perTick(PlaneSpeed)
	diverStartDY = perTick(DiverStartDY)
	diverAccel   = perTick(DiverAccel)
	diverDYMax   = perTick(DiverDYMax)
	chuteKick    = perTick(ChuteKick)
	chuteMinDY   = perTick(ChuteMinDY)
	chuteDecel   = perTick(ChuteDecel)
	windMaxDX    = perTick(WindMax)

	// Touching down faster than this is fatal whatever else happened.
	tooFastDY = diverDYMax * 0.5
)

func perTick(v float64) float64 {
	return v / TicksPerSecond
}

// Plane crosses the top of the screen once per round.
type Plane struct {
	X, DX, End float64
}

// NewPlane returns a plane at the left edge starting its pass.
func NewPlane() Plane {
	return Plane{X: 0, DX: planeDX, End: PlaneEnd}
}

// Advance moves the plane one tick forward.
func (p *Plane) Advance() {
	p.X += p.DX
}

// Done reports whether the pass is over.
func (p Plane) Done() bool {
	return p.X >= p.End
}

// PassTicks returns how many advances a fresh plane needs to finish its pass.
func PassTicks() int {
	p := NewPlane()
	n := 0
	for !p.Done() {
		p.Advance()
		n++
	}
	return n
}

// Target is the landing zone on the ground line.
type Target struct {
	Left, Right float64
}

// NewTarget draws a fresh zone from rng.
func NewTarget(rng *RNG) Target {
	left := float64(rng.Bounded(TargetRange))
	return Target{Left: left, Right: left + TargetWidth}
}

// Contains reports whether x lies inside the zone, edges included.
func (t Target) Contains(x float64) bool {
	return x >= t.Left && x <= t.Right
}

// Wind pushes the diver sideways every tick of the fall.
type Wind struct {
	DX float64
}

// NewWind draws a wind speed in [-WindMax/2, WindMax/2) whole pixels per second.
func NewWind(rng *RNG) Wind {
	v := int(rng.Bounded(WindMax)) - WindMax/2
	return Wind{DX: perTick(float64(v))}
}

// Strength buckets the wind magnitude into 0..3 for the flag sprite.
func (w Wind) Strength() int {
	dx := w.DX
	if dx < 0 {
		dx = -dx
	}
	switch {
	case dx > windMaxDX*0.75:
		return 3
	case dx > windMaxDX*0.5:
		return 2
	case dx > windMaxDX*0.25:
		return 1
	default:
		return 0
	}
}

// Diver is the falling parachutist.
type Diver struct {
	X, Y   float64
	DX, DY float64
	Open   bool
	OpenAt float64
}

// NewDiver spawns a diver leaving p with a closed chute.
func NewDiver(p Plane) Diver {
	return Diver{
		X:  p.X + DiverExitDX,
		Y:  DiverStartY,
		DX: p.DX,
		DY: diverStartDY,
	}
}

// Grounded reports whether the diver has reached the landing line.
func (d Diver) Grounded() bool {
	return d.Y > GroundY
}

// TooFast reports whether the current descent rate is fatal on touchdown.
func (d Diver) TooFast() bool {
	return d.DY > tooFastDY
}

// SteerLeft moves the diver by its inherited horizontal speed.
func (d *Diver) SteerLeft() {
	d.X -= d.DX
}

// SteerRight moves the diver by its inherited horizontal speed.
func (d *Diver) SteerRight() {
	d.X += d.DX
}

// OpenChute deploys the chute and applies the opening kick.
// It returns false if the chute was already open.
func (d *Diver) OpenChute() bool {
	if d.Open {
		return false
	}
	d.OpenAt = float64(int(d.Y))
	d.Open = true
	d.DY -= chuteKick
	return true
}

// Drift applies one tick of wind.
func (d *Diver) Drift(w Wind) {
	if d.Open {
		d.X += w.DX * ChuteWind
		return
	}
	d.X += w.DX
}

// Fall updates the descent rate toward its clamp and moves the diver down.
func (d *Diver) Fall() {
	if d.Open {
		d.DY -= chuteDecel
		if d.DY < chuteMinDY {
			d.DY = chuteMinDY
		}
	} else {
		d.DY += diverAccel
		if d.DY > diverDYMax {
			d.DY = diverDYMax
		}
	}
	d.Y += d.DY
}
