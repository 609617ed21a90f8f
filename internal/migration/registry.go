// Package migration provides planner registration and management.
package migration

import (
	"fmt"
	"sync"
)

// Registry manages migration planners for different plan kinds.
type Registry struct {
	planners map[string]Planner
	mu       sync.RWMutex
}

// NewRegistry creates a new planner registry.
func NewRegistry() *Registry {
	return &Registry{
		planners: make(map[string]Planner),
	}
}

// Register registers a planner under its kind.
func (r *Registry) Register(planner Planner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := planner.Kind()
	if _, exists := r.planners[kind]; exists {
		return fmt.Errorf("migration planner for %s already registered", kind)
	}

	r.planners[kind] = planner
	return nil
}

// Get retrieves the planner for the given plan kind.
func (r *Registry) Get(kind string) (Planner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	planner, exists := r.planners[kind]
	if !exists {
		return nil, fmt.Errorf("no migration planner registered for %s", kind)
	}

	return planner, nil
}

// List returns all registered planners.
func (r *Registry) List() []Planner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	planners := make([]Planner, 0, len(r.planners))
	for _, planner := range r.planners {
		planners = append(planners, planner)
	}
	return planners
}

// DefaultRegistry is the global planner registry.
var DefaultRegistry = NewRegistry()
