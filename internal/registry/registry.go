// Package registry provides a global registry of piece randomizers.
// Randomizers register themselves in init() functions, allowing the CLI and
// config to select one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// Randomizer decides which catalog entry spawns next.
// Implementations are owned by a single engine and need not be goroutine-safe.
type Randomizer interface {
	// Next returns an index in [0, n) where n is the catalog size given to the factory.
	Next() int
}

// Factory creates a randomizer drawing from rng over n catalog entries.
type Factory func(rng *rand.Rand, n int) Randomizer

// Info contains metadata about a registered randomizer.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a randomizer factory to the registry.
// Typically called from an init() function.
// Panics if a randomizer with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: randomizer %q already registered", name))
	}

	entries[name] = entry{factory: f, description: description}
}

// List returns information about all registered randomizers, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for name, e := range entries {
		result = append(result, Info{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a randomizer by its name.
// Returns an error if the name is not registered.
func Create(name string, rng *rand.Rand, n int) (Randomizer, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown randomizer %q", name)
	}

	return e.factory(rng, n), nil
}

// Exists checks if a randomizer with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
