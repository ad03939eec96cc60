// Package skydive implements the skydiving arcade game: a plane crosses the
// sky, the player times a jump, opens the chute and steers onto a target
// zone that the wind keeps pushing around.
//
// The package is pure simulation. Frontends feed one core.InputFrame per
// tick at core.TickRate and draw through core.Surface.
package skydive

import (
	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/registry"
)

func init() {
	registry.Register("skydive", func() registry.Game { return New() })
}

// Game is one skydiving session.
type Game struct {
	// Session counters, shared by every phase
	tries        int
	score        int
	ticks        uint64
	enteredAt    uint64
	sessionStart uint64

	input Debouncer
	rng   *RNG

	seeded       bool
	lastX, lastY uint16

	wind  Wind
	phase phase

	events []core.Event
}

// New creates a game waiting on the title screen. Its generator is seeded
// on the first Reset.
func New() *Game {
	g := &Game{rng: NewRNG(0, 0)}
	g.newSession()
	g.phase = titlePhase{}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skydive"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skydive"
}

// Reset returns to the title screen with a fresh session.
// The first call seeds the generator from the pointer reading derived from
// cfg.Seed; later calls keep the generator running.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.seeded {
		x, y := core.SeedPointer(cfg.Seed)
		g.Start(x, y)
	}
	g.input.Reset()
	g.newSession()
	g.wind = Wind{}
	g.events = g.events[:0]
	g.transition(titlePhase{})
}

// Start seeds the generator from an initial pointer reading.
func (g *Game) Start(pointerX, pointerY uint16) {
	g.rng.Seed(pointerX, pointerY)
	g.seeded = true
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	g.ticks++
	g.input.Sample(in.Buttons)
	g.foldEntropy(in)

	if g.score >= WinJumps && g.phase.State() != StateYouWin {
		g.transition(winPhase{})
	}

	if next := g.phase.step(g); next != nil {
		g.transition(next)
	}

	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.phase.State()
	return core.GameState{
		Phase:    s.String(),
		Score:    g.score,
		Tries:    g.tries,
		GameOver: s == StateYouWin || s == StateGameOver,
	}
}

// Phase returns the active state.
func (g *Game) Phase() State {
	return g.phase.State()
}

// Tries returns the remaining attempts.
func (g *Game) Tries() int {
	return g.tries
}

// Score returns the successful landings this session.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of ticks simulated so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// EnteredAt returns the tick on which the active state was entered.
func (g *Game) EnteredAt() uint64 {
	return g.enteredAt
}

// SessionTicks returns how long the current session has been running.
func (g *Game) SessionTicks() uint64 {
	return g.ticks - g.sessionStart
}

func (g *Game) foldEntropy(in core.InputFrame) {
	g.rng.FoldButtons(uint8(in.Buttons))
	if in.PointerX != g.lastX {
		g.rng.FoldPointerX(in.PointerX, g.ticks)
	}
	if in.PointerY != g.lastY {
		g.rng.FoldPointerY(in.PointerY, g.ticks)
	}
	g.lastX, g.lastY = in.PointerX, in.PointerY
}

// waited reports whether more than n ticks have passed since the state was
// entered.
func (g *Game) waited(n uint64) bool {
	return g.enteredAt+n < g.ticks
}

func (g *Game) transition(next phase) {
	from := "none"
	if g.phase != nil {
		from = g.phase.State().String()
	}
	g.phase = next
	g.enteredAt = g.ticks
	g.emit(core.Event{Kind: core.EventTransition, From: from, To: next.State().String()})

	switch next.State() {
	case StateYouWin:
		g.emit(core.Event{Kind: core.EventWin})
	case StateGameOver:
		g.emit(core.Event{Kind: core.EventGameOver})
	}
}

func (g *Game) emit(e core.Event) {
	e.Tick = g.ticks
	e.Score = g.score
	e.Tries = g.tries
	g.events = append(g.events, e)
}

func (g *Game) newSession() {
	g.tries = MaxTries
	g.score = 0
	g.sessionStart = g.ticks
}

func (g *Game) loseTry() {
	if g.tries > 0 {
		g.tries--
	}
}

// land scores a touchdown. The checks run in priority order: a fatal
// descent rate beats everything, then a chute-open landing in the zone.
func (g *Game) land(d Diver, t Target) phase {
	report := &core.JumpReport{
		LandingX:    d.X,
		TargetLeft:  t.Left,
		TargetRight: t.Right,
		TouchdownDY: d.DY,
		ChuteOpen:   d.Open,
		OpenAt:      d.OpenAt,
		WindDX:      g.wind.DX,
	}

	var kind core.EventKind
	var next phase
	switch {
	case d.TooFast():
		g.loseTry()
		kind, next = core.EventTooFast, crashedPhase{diver: d, tooFast: true}
	case d.Open && t.Contains(d.X):
		g.score++
		kind, next = core.EventLanded, startingPhase{}
	case !d.Open:
		g.loseTry()
		kind, next = core.EventCrashed, crashedPhase{diver: d}
	case g.tries > 0:
		g.tries--
		kind, next = core.EventMissedZone, startingPhase{}
	default:
		kind, next = core.EventMissedZone, gameOverPhase{}
	}

	report.Outcome = kind.String()
	g.emit(core.Event{Kind: kind, Jump: report})
	return next
}
