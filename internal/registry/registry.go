// Package registry provides a global registry for terminal backend factories.
// Backends register themselves in init() functions, so the command line can
// pick one by name without importing every implementation directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory creates a backend bound to the given runtime configuration.
// The backend is not initialized; the session calls Init.
type Factory func(cfg core.RuntimeConfig) core.Backend

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	entries[name] = entry{factory: f, description: description}
}

// List returns all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(entries))
	for name, e := range entries {
		result = append(result, BackendInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a backend by name.
func Create(name string, cfg core.RuntimeConfig) (core.Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	return e.factory(cfg), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
