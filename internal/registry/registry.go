// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/snakebird/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input sampling, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "snakebird", "classic").
	// Used for CLI commands and the runs ledger.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary shown in the menu.
	Description() string

	// Reset returns the game to its initial, not yet started state.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of length dt.
	// The first frame with movement starts the run; before that, and while
	// paused or over, Step does not advance anything.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Command applies a presenter command (pause, reset, dismiss...).
	Command(c core.Command) core.GameState

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current session summary.
	State() core.GameState

	// TickInterval returns the period until the next tick should run.
	TickInterval() time.Duration
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	order     []string
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	order = append(order, id)

	// Get title by creating a temporary instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns information about all registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, infos[id])
	}

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
