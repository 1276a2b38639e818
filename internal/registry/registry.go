// Package registry keeps the factories of the scenes the platform can host.
// Scenes register themselves in init(), so the CLI and the SSH server only
// need a blank import to discover them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/number-quest/internal/core"
)

// Game is what the platform drives every tick.
// Implementations hold pure logic and never import Bubble Tea; the platform
// owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID is the stable identifier used by the CLI and the round journal.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset starts a fresh session for the given screen and launch parameters.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// StepResult.Finished is set on the tick a round ends.
	Step(in core.InputFrame) core.StepResult

	// Render clears dst and draws the current frame into it.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered scene.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new scene instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered scenes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the scene registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
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
