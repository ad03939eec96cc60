package core

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Name of the active state machine phase
	Score    int    // Successful landings this session
	Tries    int    // Remaining attempts
	GameOver bool   // Whether the session has ended (win or loss)
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventTransition EventKind = iota // Phase changed
	EventJump                        // Diver left the plane
	EventChuteOpen                   // Chute deployed
	EventLanded                      // Chute open, inside the target zone
	EventMissedZone                  // Chute open, outside the target zone
	EventCrashed                     // Chute never opened
	EventTooFast                     // Touched down above the safe descent rate
	EventNoJump                      // Plane finished its pass without a jump
	EventWin                         // Session won
	EventGameOver                    // Session lost
)

// String returns a short lowercase name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTransition:
		return "transition"
	case EventJump:
		return "jump"
	case EventChuteOpen:
		return "chute_open"
	case EventLanded:
		return "landed"
	case EventMissedZone:
		return "missed_zone"
	case EventCrashed:
		return "crashed"
	case EventTooFast:
		return "too_fast"
	case EventNoJump:
		return "no_jump"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// IsLanding reports whether the event ends a jump on the ground.
func (k EventKind) IsLanding() bool {
	switch k {
	case EventLanded, EventMissedZone, EventCrashed, EventTooFast:
		return true
	}
	return false
}

// JumpReport describes a finished jump. Heights are in framebuffer pixels,
// speeds in pixels per tick.
type JumpReport struct {
	Outcome     string
	LandingX    float64
	TargetLeft  float64
	TargetRight float64
	TouchdownDY float64
	ChuteOpen   bool
	OpenAt      float64 // Height at which the chute opened; 0 if it never did
	WindDX      float64
}

// Offset returns the signed distance from the landing point to the zone center.
func (r JumpReport) Offset() float64 {
	return r.LandingX - (r.TargetLeft+r.TargetRight)/2
}

// Event is emitted by Step. Jump is set for landing events only.
type Event struct {
	Kind  EventKind
	Tick  uint64
	From  string // Phase names, set for EventTransition
	To    string
	Score int
	Tries int
	Jump  *JumpReport
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
