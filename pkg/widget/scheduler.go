package widget

import (
	"sync"

	"github.com/go-weft/weft/pkg/vdom"
)

// Renderable is the scheduler's view of a widget.
type Renderable interface {
	RenderLifecycle() vdom.Node
}

// schedulable is satisfied by widget types embedding Base.
type schedulable interface {
	Renderable
	SetInvalidate(func())
}

// Scheduler coalesces widget invalidations and drives render passes. The
// widget core forwards every Invalidate call without de-duplication; the
// scheduler is the renderer-side half that dedups and batches.
type Scheduler struct {
	mu       sync.Mutex
	dirty    []Renderable
	dirtySet map[Renderable]bool

	// OnNeedsRender is called when a widget is newly scheduled, signalling
	// the platform that a render pass should run.
	OnNeedsRender func()

	// Sink receives each widget's render result during Flush.
	Sink func(w Renderable, result vdom.Node)
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{dirtySet: make(map[Renderable]bool)}
}

// Register wires w's invalidation callback into the scheduler.
func (s *Scheduler) Register(w schedulable) {
	w.SetInvalidate(func() {
		s.Schedule(w)
	})
}

// Schedule marks a widget as needing a render pass. Repeated scheduling of
// an already-dirty widget is a no-op.
func (s *Scheduler) Schedule(w Renderable) {
	added := func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.dirtySet[w] {
			return false
		}
		if s.dirtySet == nil {
			s.dirtySet = make(map[Renderable]bool)
		}
		s.dirtySet[w] = true
		s.dirty = append(s.dirty, w)
		return true
	}()

	if added && s.OnNeedsRender != nil {
		s.OnNeedsRender()
	}
}

// NeedsWork reports whether any widget awaits a render pass.
func (s *Scheduler) NeedsWork() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty) > 0
}

// Flush renders every dirty widget in scheduling order, delivering results
// to the Sink, and repeats until no widget is dirty (a render pass may
// invalidate further widgets).
func (s *Scheduler) Flush() {
	for {
		s.mu.Lock()
		if len(s.dirty) == 0 {
			s.mu.Unlock()
			return
		}
		dirty := s.dirty
		s.dirty = nil
		clear(s.dirtySet)
		s.mu.Unlock()

		for _, w := range dirty {
			result := w.RenderLifecycle()
			if s.Sink != nil {
				s.Sink(w, result)
			}
		}
	}
}
