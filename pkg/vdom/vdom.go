// Package vdom defines the virtual node model produced by widget renders.
//
// A render returns either nil or a Node: a VNode describing an element with
// a tag, a property bag, and ordered children, or a Text leaf. The external
// renderer consumes these values and never mutates them in place.
package vdom

import "reflect"

// Props is the property bag attached to a virtual node.
type Props map[string]any

// Node is a value that can appear in a widget's render output.
type Node interface {
	node()
}

// Text is a text leaf node.
type Text string

func (Text) node() {}

// VNode describes an element: a tag, its properties, and ordered children.
type VNode struct {
	Tag        string
	Properties Props
	Children   []Node
}

func (*VNode) node() {}

// H builds a VNode. Nil props are normalized to an empty bag so render
// output always carries a (possibly empty) property mapping.
func H(tag string, props Props, children ...Node) *VNode {
	if props == nil {
		props = Props{}
	}
	return &VNode{Tag: tag, Properties: props, Children: children}
}

// Same reports whether two nodes count as the same child across diffs:
// both nil, the identical reference, or equal comparable values (text
// nodes). Nodes with non-comparable dynamic types are never the same unless
// they are the identical interface value, which the comparability guard
// cannot observe, so they report false.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// SameChildren reports whether two child sequences are equal in length,
// order, and per-index identity.
func SameChildren(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}

// isComparable reports whether a value can be compared with == without
// panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
