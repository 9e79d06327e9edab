package widget

import (
	"reflect"
	"sort"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/registry"
	"github.com/go-weft/weft/pkg/vdom"
)

// Widget is a renderable UI component instance.
type Widget interface {
	// Kind identifies the widget's constructor in the decorator system.
	Kind() *Kind
	// Render produces the widget's virtual-node output, or nil.
	Render() vdom.Node
}

// widgetEmbedder is satisfied by any widget type that embeds Base.
type widgetEmbedder interface {
	base() *Base
}

// AfterRenderFunc is the AfterRender decorator payload. Hooks receive the
// render result and return the (possibly transformed) result; they run in
// resolution order, inherited hooks before own.
type AfterRenderFunc func(vdom.Node) vdom.Node

// CoreProperties are set by the parent renderer rather than the widget's
// own property bag.
type CoreProperties struct {
	// Bind is the receiver assigned to callback-valued properties. Defaults
	// to the widget itself.
	Bind any
	// BaseRegistry backs the widget's registry handler.
	BaseRegistry registry.Registry
}

// Base provides the widget instance lifecycle. Embed it in widget types:
//
//	type Counter struct {
//	    widget.Base
//	    count int
//	}
//
//	func (c *Counter) Kind() *widget.Kind { return counterKind }
//
//	func (c *Counter) Render() vdom.Node {
//	    return vdom.H("span", nil, vdom.Text(strconv.Itoa(c.count)))
//	}
//
// Instances are wired with New, which installs the self reference used for
// virtual dispatch along with fresh node and registry handlers.
type Base struct {
	self       Widget
	properties vdom.Props
	children   []vdom.Node
	changed    []string
	bind       any
	invalidate func()

	nodes    *NodeHandler
	registry *registry.Handler

	meta       map[reflect.Type]Meta
	metaOrder  []Meta
	touched    []Meta
	touchedSet map[Meta]bool

	initialized bool
}

func (b *Base) base() *Base { return b }

// New wires a widget instance: the self reference, a fresh node handler, a
// fresh registry handler, and the handler's invalidation callback.
//
//	counter := widget.New(&Counter{})
func New[W interface {
	Widget
	widgetEmbedder
}](w W) W {
	b := w.base()
	b.ensure()
	b.self = w
	return w
}

// ensure lazily initializes owned state so a zero-value Base is usable.
func (b *Base) ensure() {
	if b.initialized {
		return
	}
	b.initialized = true
	b.properties = vdom.Props{}
	b.meta = make(map[reflect.Type]Meta)
	b.nodes = NewNodeHandler()
	b.registry = registry.NewHandler()
	b.registry.SetInvalidate(b.Invalidate)
}

// Kind returns BaseKind. Widget types declare their own kind by overriding.
func (b *Base) Kind() *Kind { return BaseKind }

// kindOf resolves the outermost Kind.
func (b *Base) kindOf() *Kind {
	if b.self != nil {
		return b.self.Kind()
	}
	return BaseKind
}

// GetDecorator returns the flattened decorator list for name on the
// widget's kind: ancestor payloads first, own payloads last. Unregistered
// names yield an empty list.
func (b *Base) GetDecorator(name string) []any {
	return b.kindOf().Decorators(name)
}

// Properties returns the stored property snapshot.
func (b *Base) Properties() vdom.Props {
	b.ensure()
	return b.properties
}

// Children returns the stored children snapshot.
func (b *Base) Children() []vdom.Node { return b.children }

// ChangedProperties returns the keys reported changed by the last
// SetProperties call, in evaluation order.
func (b *Base) ChangedProperties() []string { return b.changed }

// Nodes returns the widget's node handler.
func (b *Base) Nodes() *NodeHandler {
	b.ensure()
	return b.nodes
}

// Registry returns the widget's registry handler.
func (b *Base) Registry() *registry.Handler {
	b.ensure()
	return b.registry
}

// SetInvalidate wires the callback signalled by Invalidate. Called by the
// renderer when the widget enters the tree.
func (b *Base) SetInvalidate(fn func()) {
	b.ensure()
	b.invalidate = fn
}

// Invalidate signals that the widget's rendered output may be stale. Every
// call forwards to the instance callback; coalescing is the renderer's
// concern, never this layer's.
func (b *Base) Invalidate() {
	if b.invalidate != nil {
		b.invalidate()
	}
}

// SetProperties diffs the incoming bag against the stored one and replaces
// the stored snapshot with the per-key strategy results. Keys with a
// registered DiffProperty strategy are evaluated first, each exactly once
// per call, in registration order; remaining incoming keys use the default
// strategy, then keys removed since the previous bag. Callback values are
// bound to the configured bind target before diffing. Invalidates exactly
// once when any key changed.
func (b *Base) SetProperties(next vdom.Props) {
	b.ensure()
	if next == nil {
		next = vdom.Props{}
	}

	strategies, order := b.diffStrategies()
	previous := b.properties
	result := make(vdom.Props, len(next))
	seen := make(map[string]bool, len(next))
	var changed []string

	for _, key := range order {
		seen[key] = true
		nextValue, present := next[key]
		if present {
			nextValue = b.bindValue(nextValue)
		}
		r := strategies[key](previous[key], nextValue)
		if r.Changed {
			changed = append(changed, key)
		}
		if r.Value != nil {
			result[key] = r.Value
		}
	}

	keys := make([]string, 0, len(next))
	for key := range next {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		seen[key] = true
		value := b.bindValue(next[key])
		r := autoDiff(previous[key], value)
		if r.Changed {
			changed = append(changed, key)
		}
		result[key] = r.Value
	}

	removed := make([]string, 0)
	for key := range previous {
		if !seen[key] {
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	for _, key := range removed {
		if autoDiff(previous[key], nil).Changed {
			changed = append(changed, key)
		}
	}

	b.properties = result
	b.changed = changed
	if len(changed) > 0 {
		b.Invalidate()
	}
}

// diffStrategies resolves the DiffProperty decorators into a per-key
// strategy table. When ancestors and descendants register a strategy for
// the same key, the most derived registration wins and fires once.
func (b *Base) diffStrategies() (map[string]DiffFunc, []string) {
	decorators := b.GetDecorator(DiffProperty)
	if len(decorators) == 0 {
		return nil, nil
	}
	strategies := make(map[string]DiffFunc, len(decorators))
	order := make([]string, 0, len(decorators))
	for _, decorator := range decorators {
		pd, ok := decorator.(PropertyDiff)
		if !ok || pd.Diff == nil {
			continue
		}
		if _, exists := strategies[pd.Property]; !exists {
			order = append(order, pd.Property)
		}
		strategies[pd.Property] = pd.Diff
	}
	return strategies, order
}

// bindValue binds callback-valued properties to the bind target. NoBind
// callbacks keep their receiver; Constructor values carry the widget
// constructor type tag and pass through untouched.
func (b *Base) bindValue(value any) any {
	switch typed := value.(type) {
	case *Callback:
		typed.bind(b.bindTarget())
		return typed
	case Constructor:
		return typed
	default:
		return value
	}
}

func (b *Base) bindTarget() any {
	if b.bind != nil {
		return b.bind
	}
	return b.self
}

// SetChildren replaces the stored children. Invalidates if and only if the
// new sequence differs from the previous one in length or per-index
// identity; equal sequences, including repeated empty ones, never
// invalidate.
func (b *Base) SetChildren(children []vdom.Node) {
	b.ensure()
	same := vdom.SameChildren(b.children, children)
	b.children = children
	if !same {
		b.Invalidate()
	}
}

// SetCoreProperties updates the bind target and the registry handler's
// base registry. Switching to a different base re-resolves active injector
// subscriptions and invalidates; setting the same base again is a no-op.
func (b *Base) SetCoreProperties(props CoreProperties) {
	b.ensure()
	b.bind = props.Bind
	if b.registry.SetBase(props.BaseRegistry) {
		b.Invalidate()
	}
}

// Render is the default render: a generic container wrapping the current
// children unchanged, with empty properties. Widget types override.
func (b *Base) Render() vdom.Node {
	return &vdom.VNode{Tag: "div", Properties: vdom.Props{}, Children: b.children}
}

// RenderLifecycle is the render entry point invoked by the external
// renderer. It calls the outermost Render, threads the result through the
// AfterRender decorators (inherited hooks before own, in declaration
// order), then fires AfterRender on every meta provider touched during the
// pass, and clears the touched set.
func (b *Base) RenderLifecycle() vdom.Node {
	b.ensure()
	result := b.safeRender()
	for _, decorator := range b.GetDecorator(AfterRender) {
		if fn, ok := decorator.(AfterRenderFunc); ok {
			result = fn(result)
		}
	}
	for _, m := range b.takeTouched() {
		m.AfterRender()
	}
	return result
}

// safeRender executes the outermost Render with panic recovery. A panic is
// reported through the global error handler and yields a nil result.
func (b *Base) safeRender() (result vdom.Node) {
	defer errors.RecoverWithCallback("widget.Render", func(any) {
		result = nil
	})
	if b.self != nil {
		return b.self.Render()
	}
	return b.Render()
}

func (b *Base) touchMeta(m Meta) {
	if b.touchedSet == nil {
		b.touchedSet = make(map[Meta]bool)
	}
	if b.touchedSet[m] {
		return
	}
	b.touchedSet[m] = true
	b.touched = append(b.touched, m)
}

func (b *Base) takeTouched() []Meta {
	touched := b.touched
	b.touched = nil
	b.touchedSet = nil
	return touched
}

// Destroy releases the widget's owned resources: the node handler, the
// registry handler (after which Own fails with a destroyed error), and
// every cached meta provider exactly once, in cache-insertion order.
// Destroying twice is not supported.
func (b *Base) Destroy() {
	b.ensure()
	b.nodes.Destroy()
	b.registry.Destroy()
	for _, m := range b.metaOrder {
		m.Destroy()
	}
	b.metaOrder = nil
	b.meta = make(map[reflect.Type]Meta)
	b.touched = nil
	b.touchedSet = nil
}
