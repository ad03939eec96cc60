package skydive

import "fmt"

// Snapshot contains the complete game state for logging and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	EnteredAt uint64
	State     string
	Tries     int
	Score     int

	WindDX float64

	// Zero unless the active phase carries them
	PlaneX, PlaneDX, PlaneEnd float64
	TargetLeft, TargetRight   float64
	DiverX, DiverY            float64
	DiverDX, DiverDY          float64
	DiverOpen                 bool
	DiverOpenAt               float64

	RNGZ, RNGW uint32
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.ticks,
		EnteredAt: g.enteredAt,
		State:     g.phase.State().String(),
		Tries:     g.tries,
		Score:     g.score,
		WindDX:    g.wind.DX,
	}
	snap.RNGZ, snap.RNGW = g.rng.Lanes()

	switch p := g.phase.(type) {
	case *readyPhase:
		snap.setPlane(p.plane)
		snap.setTarget(p.target)
	case *fallingPhase:
		snap.setPlane(p.plane)
		snap.setTarget(p.target)
		snap.setDiver(p.diver)
	case crashedPhase:
		snap.setDiver(p.diver)
	}
	return snap
}

func (s *Snapshot) setPlane(p Plane) {
	s.PlaneX, s.PlaneDX, s.PlaneEnd = p.X, p.DX, p.End
}

func (s *Snapshot) setTarget(t Target) {
	s.TargetLeft, s.TargetRight = t.Left, t.Right
}

func (s *Snapshot) setDiver(d Diver) {
	s.DiverX, s.DiverY = d.X, d.Y
	s.DiverDX, s.DiverDY = d.DX, d.DY
	s.DiverOpen = d.Open
	s.DiverOpenAt = d.OpenAt
}

// LogFields flattens the snapshot into key/value pairs for a structured
// logger. Plane and diver fields only appear while a phase carries them.
func (s Snapshot) LogFields() []any {
	fields := []any{
		"state", s.State,
		"entered_at", s.EnteredAt,
		"tries", s.Tries,
		"score", s.Score,
		"wind", s.WindDX,
		"rng", fmt.Sprintf("%08x/%08x", s.RNGZ, s.RNGW),
	}
	if s.PlaneEnd != 0 {
		fields = append(fields,
			"plane_x", s.PlaneX,
			"target", fmt.Sprintf("%.0f..%.0f", s.TargetLeft, s.TargetRight),
		)
	}
	if s.DiverY != 0 {
		fields = append(fields,
			"diver_x", s.DiverX,
			"diver_y", s.DiverY,
			"diver_dy", s.DiverDY,
			"chute", s.DiverOpen,
		)
	}
	return fields
}

// DebugFields returns the current snapshot as log fields.
func (g *Game) DebugFields() []any {
	return g.Snapshot().LogFields()
}
