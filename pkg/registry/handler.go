package registry

import (
	"sync"

	"github.com/go-weft/weft/pkg/errors"
)

// Ownable is a resource whose lifetime is bound to one widget instance.
type Ownable interface {
	Destroy()
}

// Handler manages dependency-injection bindings and disposal ownership for a
// single widget instance. It is exclusively owned by that instance and torn
// down by the instance's Destroy. Using Own after Destroy fails with an
// error matching errors.ErrDestroyed.
type Handler struct {
	mu         sync.Mutex
	base       Registry
	owned      []Ownable
	subs       map[string]func() // active label -> injector unsubscribe
	invalidate func()
	destroyed  bool
}

// NewHandler creates a handler with no base registry.
func NewHandler() *Handler {
	return &Handler{subs: make(map[string]func())}
}

// SetInvalidate wires the callback subscribed to active injectors. Called by
// the owning widget during construction.
func (h *Handler) SetInvalidate(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.invalidate = fn
}

// Own registers a resource destroyed together with the handler. Resources
// are destroyed in reverse ownership order.
func (h *Handler) Own(resource Ownable) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.destroyed {
		err := errors.NewDestroyed("registry.Handler.Own")
		errors.Report(err)
		return err
	}
	if resource != nil {
		h.owned = append(h.owned, resource)
	}
	return nil
}

// Base returns the current base registry.
func (h *Handler) Base() Registry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.base
}

// SetBase replaces the base registry. Setting the same registry again is a
// no-op and returns false. A different registry re-resolves every active
// injector subscription against the new base and returns true so the owning
// widget can invalidate.
func (h *Handler) SetBase(base Registry) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.base == base {
		return false
	}
	h.base = base

	for label, unsub := range h.subs {
		if unsub != nil {
			unsub()
		}
		h.subs[label] = h.subscribeLocked(label)
	}
	return true
}

// Injector resolves an injector from the base registry. The first
// resolution of a label subscribes the handler's invalidate callback to the
// injector; the subscription stays active until Destroy or a base swap.
func (h *Handler) Injector(label string) (*Injector, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.base == nil {
		return nil, false
	}
	injector, ok := h.base.Injector(label)
	if !ok {
		return nil, false
	}
	if _, active := h.subs[label]; !active {
		h.subs[label] = h.subscribeLocked(label)
	}
	return injector, true
}

// subscribeLocked subscribes the invalidate callback to the injector
// currently bound to label. Returns nil when the label does not resolve
// against the current base; the label stays tracked for future base swaps.
func (h *Handler) subscribeLocked(label string) func() {
	if h.base == nil {
		return nil
	}
	injector, ok := h.base.Injector(label)
	if !ok {
		return nil
	}
	fn := h.invalidate
	if fn == nil {
		return nil
	}
	return injector.Subscribe(fn)
}

// Destroy releases every subscription and destroys owned resources in
// reverse ownership order. The handler must not be destroyed twice.
func (h *Handler) Destroy() {
	h.mu.Lock()
	owned := h.owned
	subs := h.subs
	h.owned = nil
	h.subs = make(map[string]func())
	h.destroyed = true
	h.mu.Unlock()

	for _, unsub := range subs {
		if unsub != nil {
			unsub()
		}
	}
	for i := len(owned) - 1; i >= 0; i-- {
		owned[i].Destroy()
	}
}
