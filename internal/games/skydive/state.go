package skydive

import "github.com/vovakirdan/tui-skydive/internal/core"

// State names a phase of the game.
type State int

const (
	StateTitle State = iota
	StateStarting
	StateReadyJump
	StateNoJump
	StateFalling
	StateCrashed
	StateTooFast
	StateYouWin
	StateGameOver
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateStarting:
		return "starting"
	case StateReadyJump:
		return "ready_jump"
	case StateNoJump:
		return "no_jump"
	case StateFalling:
		return "falling"
	case StateCrashed:
		return "crashed"
	case StateTooFast:
		return "too_fast"
	case StateYouWin:
		return "you_win"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// phase is the active state together with the data only it needs.
// step returns the next phase, or nil to stay.
type phase interface {
	State() State
	step(g *Game) phase
	draw(g *Game, dst core.Surface)
}

// titlePhase waits for a fresh primary press. The title, win and game-over
// screens all leave on the rising edge, so a press still held from the
// previous screen does not skip straight through.
type titlePhase struct{}

func (titlePhase) State() State { return StateTitle }

func (titlePhase) step(g *Game) phase {
	if g.input.JustPressed(core.ButtonPrimary) {
		return startingPhase{}
	}
	return nil
}

type startingPhase struct{}

func (startingPhase) State() State { return StateStarting }

func (startingPhase) step(g *Game) phase {
	if !g.waited(StartDelay) {
		return nil
	}
	target := NewTarget(g.rng)
	g.wind = NewWind(g.rng)
	return &readyPhase{plane: NewPlane(), target: target}
}

type readyPhase struct {
	plane  Plane
	target Target
}

func (*readyPhase) State() State { return StateReadyJump }

func (p *readyPhase) step(g *Game) phase {
	if p.plane.Done() {
		g.emit(core.Event{Kind: core.EventNoJump})
		return noJumpPhase{}
	}
	if g.input.Pressed(core.ButtonPrimary) {
		diver := NewDiver(p.plane)
		p.plane.Advance()
		g.emit(core.Event{Kind: core.EventJump})
		return &fallingPhase{plane: p.plane, diver: diver, target: p.target}
	}
	p.plane.Advance()
	return nil
}

type noJumpPhase struct{}

func (noJumpPhase) State() State { return StateNoJump }

func (noJumpPhase) step(g *Game) phase {
	if g.waited(MessageDelay) {
		return startingPhase{}
	}
	return nil
}

type fallingPhase struct {
	plane  Plane
	diver  Diver
	target Target
}

func (*fallingPhase) State() State { return StateFalling }

func (p *fallingPhase) step(g *Game) phase {
	if p.diver.Grounded() {
		return g.land(p.diver, p.target)
	}

	switch {
	case g.input.Pressed(core.ButtonLeft):
		p.diver.SteerLeft()
	case g.input.Pressed(core.ButtonRight):
		p.diver.SteerRight()
	case g.input.Pressed(core.ButtonUp):
		if p.diver.OpenChute() {
			g.emit(core.Event{Kind: core.EventChuteOpen})
		}
	}

	p.diver.Drift(g.wind)
	p.diver.Fall()
	p.plane.Advance()
	return nil
}

// crashedPhase covers both CRASHED and TOO_FAST.
type crashedPhase struct {
	diver   Diver
	tooFast bool
}

func (p crashedPhase) State() State {
	if p.tooFast {
		return StateTooFast
	}
	return StateCrashed
}

func (crashedPhase) step(g *Game) phase {
	if !g.waited(MessageDelay) {
		return nil
	}
	if g.tries > 0 {
		return startingPhase{}
	}
	return gameOverPhase{}
}

// winPhase leaves on a primary press and starts a new session. Whether a win
// should zero tries and score is an open question; zeroing them is required
// here, because the score >= 10 check at the top of every tick would
// otherwise send the game straight back to this phase.
type winPhase struct{}

func (winPhase) State() State { return StateYouWin }

func (winPhase) step(g *Game) phase {
	if g.input.JustPressed(core.ButtonPrimary) {
		g.newSession()
		return startingPhase{}
	}
	return nil
}

// gameOverPhase leaves for the title with a fresh session. The generator
// lanes are kept.
type gameOverPhase struct{}

func (gameOverPhase) State() State { return StateGameOver }

func (gameOverPhase) step(g *Game) phase {
	if g.input.JustPressed(core.ButtonPrimary) {
		g.newSession()
		return titlePhase{}
	}
	return nil
}
