package widget

import (
	"reflect"

	"github.com/go-weft/weft/pkg/registry"
)

// Meta is implemented by meta providers: auxiliary objects scoped to one
// widget instance that expose queries over its rendered nodes. Providers
// embed MetaBase and add their own query methods on top.
type Meta interface {
	// AfterRender runs after a render pass in which the provider was
	// touched.
	AfterRender()
	// Destroy releases the provider's resources. Called exactly once, when
	// the owning widget is destroyed.
	Destroy()
}

// metaEmbedder is satisfied by any provider that embeds MetaBase.
type metaEmbedder interface {
	metaBase() *MetaBase
}

// MetaBase carries the capability bundle handed to a meta provider at
// construction: the owning widget's node handler, registry handler, and
// invalidate callback. Embed it in provider types:
//
//	type Dimensions struct {
//	    widget.MetaBase
//	}
//
//	func (d *Dimensions) Width(key string) int { ... }
type MetaBase struct {
	nodes      *NodeHandler
	registry   *registry.Handler
	invalidate func()
}

func (m *MetaBase) metaBase() *MetaBase { return m }

// Invalidate signals the owning widget that its rendered output is stale.
func (m *MetaBase) Invalidate() {
	if m.invalidate != nil {
		m.invalidate()
	}
}

// Node returns the rendered node registered under key. When the key has not
// been rendered yet, the widget is invalidated so a later pass can supply
// it, and ok is false.
func (m *MetaBase) Node(key string) (node any, ok bool) {
	if m.nodes == nil {
		return nil, false
	}
	node, ok = m.nodes.Get(key)
	if !ok {
		m.Invalidate()
		return nil, false
	}
	return node, true
}

// Has reports whether a node is registered under key.
func (m *MetaBase) Has(key string) bool {
	return m.nodes != nil && m.nodes.Has(key)
}

// Registry returns the owning widget's registry handler.
func (m *MetaBase) Registry() *registry.Handler { return m.registry }

// AfterRender is a no-op default implementation.
func (m *MetaBase) AfterRender() {}

// Destroy is a no-op default implementation.
func (m *MetaBase) Destroy() {}

// MetaOf returns w's singleton meta provider of type M, constructing it via
// create on first access. Repeated calls with the same type return the
// identical cached instance; distinct types yield distinct instances. Every
// access, hit or miss, marks the provider as touched for the current render
// pass so its AfterRender hook fires when the pass completes.
func MetaOf[M Meta](w widgetEmbedder, create func() M) M {
	b := w.base()
	b.ensure()

	key := reflect.TypeOf((*M)(nil)).Elem()
	if existing, ok := b.meta[key]; ok {
		b.touchMeta(existing)
		return existing.(M)
	}

	m := create()
	if embedder, ok := any(m).(metaEmbedder); ok {
		mb := embedder.metaBase()
		mb.nodes = b.nodes
		mb.registry = b.registry
		mb.invalidate = b.Invalidate
	}
	b.meta[key] = m
	b.metaOrder = append(b.metaOrder, m)
	b.touchMeta(m)
	return m
}
