// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions so the CLI can select one
// by name at runtime without importing every implementation.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/axion/internal/core"
)

// Frontend presents frames and collects input. It never sees engine state,
// only the screen the platform drew from a snapshot.
type Frontend interface {
	// ID returns the name used with --renderer (e.g. "tui", "ascii").
	ID() string

	// Init prepares the output device. Called once before the first frame.
	Init(cfg core.RuntimeConfig) error

	// Render presents one finished frame.
	Render(frame *core.Screen) error

	// PollInput returns the actions received since the previous call without
	// blocking.
	PollInput() ([]core.Action, error)

	// Close releases the output device.
	Close() error
}

// Options are passed to a Factory.
type Options struct {
	Out           io.Writer     // Destination for text frontends
	Script        []core.Action // Scripted input for headless runs, one entry per poll
	LastFrameOnly bool          // Text frontends write only the final frame
}

// Info describes a registered frontend.
type Info struct {
	ID          string
	Description string
}

// Factory creates a frontend.
type Factory func(opts Options) Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory. Panics if the ID is taken.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}
	factories[id] = f
	descriptions[id] = description
}

// List returns all registered frontends sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Description: descriptions[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a frontend by ID.
func Create(id string, opts Options) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	return f(opts), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
