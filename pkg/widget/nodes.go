package widget

import (
	"sync"

	"github.com/google/uuid"
)

// NodeHandler tracks rendered platform nodes for one widget instance, keyed
// by node key. The renderer registers nodes as it attaches them and signals
// root attachment; meta providers query them back. The handler is
// exclusively owned by its widget and torn down by the widget's Destroy.
type NodeHandler struct {
	mu            sync.Mutex
	nodes         map[string]any
	rootListeners map[string]func()
}

// NewNodeHandler creates an empty node handler.
func NewNodeHandler() *NodeHandler {
	return &NodeHandler{nodes: make(map[string]any)}
}

// Add registers a rendered node under key, replacing any previous node.
func (n *NodeHandler) Add(node any, key string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.nodes == nil {
		n.nodes = make(map[string]any)
	}
	n.nodes[key] = node
}

// AddRoot signals that the widget's root node has been attached.
func (n *NodeHandler) AddRoot() {
	n.mu.Lock()
	listeners := make([]func(), 0, len(n.rootListeners))
	for _, fn := range n.rootListeners {
		listeners = append(listeners, fn)
	}
	n.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Get returns the node registered under key.
func (n *NodeHandler) Get(key string) (any, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	node, ok := n.nodes[key]
	return node, ok
}

// Has reports whether a node is registered under key.
func (n *NodeHandler) Has(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.nodes[key]
	return ok
}

// OnRootAttached subscribes to root attachment events and returns an
// unsubscribe function.
func (n *NodeHandler) OnRootAttached(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.rootListeners == nil {
		n.rootListeners = make(map[string]func())
	}
	token := uuid.Must(uuid.NewV7()).String()
	n.rootListeners[token] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.rootListeners, token)
	}
}

// Destroy drops every tracked node and listener.
func (n *NodeHandler) Destroy() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nodes = nil
	n.rootListeners = nil
}
