package puzzle

import (
	"fmt"
	"strings"
	"sync"
)

// Registry stores solvers by exercise name and remembers registration order.
type Registry struct {
	repo  map[string]Solver
	order []string
	mu    sync.RWMutex
}

// NewRegistry initializes an empty solver registry.
func NewRegistry() *Registry {
	return &Registry{
		repo: make(map[string]Solver),
	}
}

// Register adds a solver by name. Re-registering a name replaces the solver
// but keeps its original position.
func (r *Registry) Register(s Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := s.Name()
	if _, exists := r.repo[name]; !exists {
		r.order = append(r.order, name)
	}
	r.repo[name] = s
}

// All returns a snapshot of all registered solvers.
func (r *Registry) All() map[string]Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Solver, len(r.repo))
	for name, s := range r.repo {
		out[name] = s
	}
	return out
}

// Get returns a solver by name.
func (r *Registry) Get(name string) (Solver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.repo[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Lookup is Get with an ErrUnknownExercise error on miss.
func (r *Registry) Lookup(name string) (Solver, error) {
	s, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}
	return s, nil
}

// Names returns exercise names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
