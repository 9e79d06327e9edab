package widget

import "sync"

// Reserved decorator names understood by the widget core.
const (
	// DiffProperty registers per-key property diff strategies; payloads are
	// PropertyDiff values.
	DiffProperty = "diffProperty"
	// AfterRender registers hooks run over the render result; payloads are
	// AfterRenderFunc values.
	AfterRender = "afterRender"
)

// Kind identifies a widget constructor in the decorator system. Kinds form
// a parent chain mirroring the widget type hierarchy; decorators attach to
// a kind and are visible to that kind and its descendants, never to its
// ancestors.
//
// Define one kind per widget type, typically as a package-level variable:
//
//	var counterKind = widget.DefineKind("Counter", widget.BaseKind)
//
//	func (c *Counter) Kind() *widget.Kind { return counterKind }
type Kind struct {
	name   string
	parent *Kind

	mu         sync.Mutex
	decorators map[string][]any
	resolved   map[string][]any
}

// BaseKind is the root of every kind chain and the kind reported by Base
// when a widget type does not declare its own.
var BaseKind = DefineKind("WidgetBase", nil)

// DefineKind creates a kind with the given parent. A nil parent roots a new
// chain; widget kinds normally descend from BaseKind.
func DefineKind(name string, parent *Kind) *Kind {
	return &Kind{name: name, parent: parent}
}

// Name returns the kind's name.
func (k *Kind) Name() string { return k.name }

// Parent returns the kind's parent, or nil for a chain root.
func (k *Kind) Parent() *Kind { return k.parent }

// AddDecorator appends payloads to the named decorator list on this kind's
// own store. Payloads added after the flattened cache for name has been
// built are not reflected in resolutions.
func (k *Kind) AddDecorator(name string, payloads ...any) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.decorators == nil {
		k.decorators = make(map[string][]any)
	}
	k.decorators[name] = append(k.decorators[name], payloads...)
}

// Decorators returns the flattened decorator list for name: every
// ancestor's payloads in ancestor-to-descendant order, followed by this
// kind's own, in declaration order. The flattened list is cached per name
// on first resolution. Unregistered names yield an empty list.
func (k *Kind) Decorators(name string) []any {
	k.mu.Lock()
	if cached, ok := k.resolved[name]; ok {
		k.mu.Unlock()
		return cached
	}
	own := k.decorators[name]
	k.mu.Unlock()

	var flattened []any
	if k.parent != nil {
		inherited := k.parent.Decorators(name)
		flattened = append(flattened, inherited...)
	}
	flattened = append(flattened, own...)

	k.mu.Lock()
	if k.resolved == nil {
		k.resolved = make(map[string][]any)
	}
	k.resolved[name] = flattened
	k.mu.Unlock()
	return flattened
}
