// Package platform holds the frontend-independent half of a play session:
// turning terminal input into per-tick input frames, stepping the game and
// routing its events to storage, audio and the log. The tui and tcellui
// packages wrap a Runner with their own terminal loop.
package platform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skydive/internal/audio"
	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/registry"
	"github.com/vovakirdan/tui-skydive/internal/storage"
)

// DefaultHoldTicks is used when Options.HoldTicks is unset.
const DefaultHoldTicks = 12

// Options wires a Runner to its collaborators. Every field is optional.
type Options struct {
	Store     *storage.Store
	Audio     audio.Player
	Logger    *log.Logger
	Player    string
	HoldTicks int
}

// sessionClock is implemented by games that know how long the running
// session has lasted.
type sessionClock interface {
	SessionTicks() uint64
}

// debugFields is implemented by games that can describe their full state
// for debug logging.
type debugFields interface {
	DebugFields() []any
}

// Runner drives one game for one player.
type Runner struct {
	game   registry.Game
	hold   *core.HoldTracker
	fb     *core.Framebuffer
	store  *storage.Store
	audio  audio.Player
	logger *log.Logger
	player string

	pointerX, pointerY uint16
	sessionID          string
	state              core.GameState
	saved              int // sessions written to storage
}

// NewRunner creates a runner. Call Reset before the first Tick.
func NewRunner(game registry.Game, opts Options) *Runner {
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	return &Runner{
		game:      game,
		hold:      core.NewHoldTracker(opts.HoldTicks),
		fb:        core.NewFramebuffer(),
		store:     opts.Store,
		audio:     opts.Audio,
		logger:    opts.Logger,
		player:    opts.Player,
		sessionID: storage.NewSessionID(),
	}
}

// Reset puts the game on its title screen. The pointer starts at the
// reading derived from cfg.Seed, the same reading the game seeds from.
func (r *Runner) Reset(cfg core.RuntimeConfig) {
	r.game.Reset(cfg)
	r.pointerX, r.pointerY = core.SeedPointer(cfg.Seed)
	r.state = r.game.State()
	r.logger.Debug("game reset", "game", r.game.ID(), "seed", cfg.Seed, "session", r.sessionID)
}

// Press holds b for the configured number of ticks.
func (r *Runner) Press(b core.Buttons) {
	r.hold.Press(b)
}

// Point moves the pointer to the framebuffer pixel under terminal cell
// (col, row).
func (r *Runner) Point(col, row int) {
	x := core.Clamp(col*core.CellPixelsX, 0, core.FramebufferWidth-1)
	y := core.Clamp(row*core.CellPixelsY, 0, core.FramebufferHeight-1)
	r.pointerX, r.pointerY = uint16(x), uint16(y)
}

// Pointer returns the pointer position in framebuffer pixels.
func (r *Runner) Pointer() (x, y uint16) {
	return r.pointerX, r.pointerY
}

// Tick samples the held buttons, steps the game once and handles the
// resulting events.
func (r *Runner) Tick() core.StepResult {
	frame := core.InputFrame{
		Buttons:  r.hold.Tick(),
		PointerX: r.pointerX,
		PointerY: r.pointerY,
	}
	result := r.game.Step(frame)
	r.state = result.State
	for _, e := range result.Events {
		r.handle(e)
	}
	return result
}

// Draw renders the current frame into dst.
func (r *Runner) Draw(dst *core.Screen) {
	r.fb.Clear()
	r.game.Render(r.fb)
	r.fb.ToScreen(dst)
}

// State returns the state after the last tick.
func (r *Runner) State() core.GameState {
	return r.state
}

// SessionID returns the id under which the running session is stored.
func (r *Runner) SessionID() string {
	return r.sessionID
}

// SavedSessions returns how many finished sessions were written.
func (r *Runner) SavedSessions() int {
	return r.saved
}

// Game returns the driven game.
func (r *Runner) Game() registry.Game {
	return r.game
}

func (r *Runner) handle(e core.Event) {
	switch e.Kind {
	case core.EventTransition:
		fields := []any{"from", e.From, "to", e.To, "tick", e.Tick}
		if d, ok := r.game.(debugFields); ok && r.logger.GetLevel() <= log.DebugLevel {
			fields = append(fields, d.DebugFields()...)
		}
		r.logger.Debug("transition", fields...)
	case core.EventWin:
		r.finishSession(e, storage.OutcomeWin)
	case core.EventGameOver:
		r.finishSession(e, storage.OutcomeGameOver)
	default:
		r.logger.Debug(e.Kind.String(), "tick", e.Tick, "score", e.Score, "tries", e.Tries)
	}

	if e.Kind.IsLanding() && e.Jump != nil {
		r.saveJump(*e.Jump)
	}
	r.audio.Play(e.Kind)
}

func (r *Runner) saveJump(report core.JumpReport) {
	r.logger.Debug("jump",
		"outcome", report.Outcome,
		"x", report.LandingX,
		"offset", report.Offset(),
		"chute", report.ChuteOpen,
		"open_at", report.OpenAt,
	)
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveJump(storage.JumpFromReport(r.sessionID, r.player, report)); err != nil {
		r.logger.Warn("could not save jump", "error", err)
	}
}

// finishSession stores the session that just ended and starts a new id
// for the next one.
func (r *Runner) finishSession(e core.Event, outcome string) {
	var ticks uint64
	if c, ok := r.game.(sessionClock); ok {
		ticks = c.SessionTicks()
	}
	r.logger.Info("session finished",
		"player", r.player,
		"outcome", outcome,
		"score", e.Score,
		"tries", e.Tries,
	)

	if r.store != nil {
		_, err := r.store.SaveSession(storage.Session{
			ID:        r.sessionID,
			Player:    r.player,
			Score:     e.Score,
			TriesLeft: e.Tries,
			Outcome:   outcome,
			Ticks:     ticks,
		})
		if err != nil {
			r.logger.Warn("could not save session", "error", err)
		} else {
			r.saved++
		}
	}
	r.sessionID = storage.NewSessionID()
}
