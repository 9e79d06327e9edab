package registry

import "sync"

// Registry resolves injectors by label. A widget's registry handler holds a
// base Registry and re-resolves its active subscriptions when the base is
// replaced.
type Registry interface {
	// Injector returns the injector registered under label, if any.
	Injector(label string) (*Injector, bool)
}

// Static is a Registry backed by an in-memory table. Injectors are defined
// explicitly, typically during application setup.
type Static struct {
	mu        sync.RWMutex
	injectors map[string]*Injector
}

// NewStatic creates an empty static registry.
func NewStatic() *Static {
	return &Static{injectors: make(map[string]*Injector)}
}

// Define registers an injector under label, replacing any previous binding.
func (r *Static) Define(label string, injector *Injector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.injectors[label] = injector
}

// Injector returns the injector registered under label.
func (r *Static) Injector(label string) (*Injector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	injector, ok := r.injectors[label]
	return injector, ok
}

// Has reports whether an injector is registered under label.
func (r *Static) Has(label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.injectors[label]
	return ok
}
