// Package registry holds the board variants a host can start. Variants
// register a descriptor from init(), so the CLI and the SSH menu list and
// build boards without importing each variant by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/hexswap/internal/core"
)

// Game is a playable board. It holds no terminal state; the host owns input
// mapping, timing, audio and drawing to the terminal.
type Game interface {
	// ID returns the variant identifier used on the command line.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset seeds a fresh board for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame and returns the state plus the sound
	// effects requested during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Variant describes one registered board.
type Variant struct {
	ID    string
	Title string
	Fill  string // how a fresh board is seeded, shown in listings
	New   func() Game
}

var (
	mu       sync.RWMutex
	variants = make(map[string]Variant)
)

// Register adds a variant. It panics on an empty ID, a missing constructor
// or a duplicate ID, all of which are programming errors in an init().
func Register(v Variant) {
	if v.ID == "" || v.New == nil {
		panic(fmt.Sprintf("registry: incomplete variant %+v", v))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Title == "" {
		v.Title = v.ID
	}
	variants[v.ID] = v
}

// List returns every registered variant sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Variant, 0, len(variants))
	for _, v := range variants {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b Variant) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new board of the given variant.
func Create(id string) (Game, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v.New(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
