// Package widget provides the widget instance lifecycle for the Weft
// virtual-DOM framework.
//
// This package defines the foundational types for reactive widgets: Base,
// Kind, Meta, and the render Scheduler. A widget describes its output as
// virtual nodes; the framework diffs incoming properties and children,
// signals invalidation when output may be stale, and tears down owned
// resources on destroy.
//
// # Widgets
//
// Widget types embed Base and override Render (and usually Kind):
//
//	var counterKind = widget.DefineKind("Counter", widget.BaseKind)
//
//	type Counter struct {
//	    widget.Base
//	}
//
//	func (c *Counter) Kind() *widget.Kind { return counterKind }
//
//	func (c *Counter) Render() vdom.Node {
//	    count, _ := c.Properties()["count"].(int)
//	    return vdom.H("span", nil, vdom.Text(strconv.Itoa(count)))
//	}
//
//	counter := widget.New(&Counter{})
//
// # Decorators
//
// Cross-cutting behavior attaches to a widget's Kind under a decorator
// name and is inherited along the kind chain, ancestors first. Two names
// are reserved: DiffProperty for per-key diff strategies and AfterRender
// for render-result hooks.
//
//	counterKind.AddDecorator(widget.DiffProperty, widget.PropertyDiff{
//	    Property: "count",
//	    Diff: func(previous, next any) widget.DiffResult {
//	        return widget.DiffResult{Changed: previous != next, Value: next}
//	    },
//	})
//
// # Meta providers
//
// Meta providers are per-widget singletons querying rendered nodes. Embed
// MetaBase and access providers through MetaOf:
//
//	dimensions := widget.MetaOf(w, func() *Dimensions { return &Dimensions{} })
//
// # Scheduling
//
// Invalidate is never coalesced by the widget; register widgets with a
// Scheduler to dedup invalidations and drive render passes.
package widget
