// Package registry provides dependency-injection bindings for widgets: a
// base registry resolving injectors by label, and a per-widget handler that
// owns disposable resources and tracks active injector subscriptions.
package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Injector supplies a value to widgets under a label and notifies
// subscribers when the supplied value becomes stale.
type Injector struct {
	mu        sync.Mutex
	get       func() any
	listeners map[string]func()
}

// NewInjector creates an injector backed by the given supplier.
func NewInjector(get func() any) *Injector {
	return &Injector{get: get}
}

// Get returns the injected value.
func (i *Injector) Get() any {
	if i.get == nil {
		return nil
	}
	return i.get()
}

// Subscribe registers a listener invoked on Invalidate. It returns an
// unsubscribe function; unsubscribing twice is a no-op.
func (i *Injector) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.listeners == nil {
		i.listeners = make(map[string]func())
	}
	token := uuid.Must(uuid.NewV7()).String()
	i.listeners[token] = fn

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		delete(i.listeners, token)
	}
}

// Invalidate notifies every subscriber that the injected value changed.
func (i *Injector) Invalidate() {
	i.mu.Lock()
	listeners := make([]func(), 0, len(i.listeners))
	for _, fn := range i.listeners {
		listeners = append(listeners, fn)
	}
	i.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
