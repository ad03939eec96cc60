// Package registry maps game ids to factories so frontends and commands can
// build a game without importing its package directly. Game packages
// register themselves from init.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-skydive/internal/core"
)

// Game is the contract between a simulation and its frontends.
// Implementations hold no terminal, storage or logging state.
type Game interface {
	ID() string
	Title() string

	// Reset returns to the title screen with a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of core.TickRate.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. The surface is not cleared first;
	// games paint their own background.
	Render(dst core.Surface)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
