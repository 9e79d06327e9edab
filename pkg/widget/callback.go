package widget

// Callback wraps a function-valued property together with its binding
// metadata. During property diffing the widget core assigns its bind target
// as the callback's receiver, so later invocations through the stored
// property execute against that receiver. Binding mutates the callback in
// place; a copy would change the property's identity and read as changed on
// every diff.
type Callback struct {
	fn       func(receiver any, args ...any) any
	receiver any
	noBind   bool
}

// NewCallback creates a callback property value. The receiver argument is
// nil until the callback is bound.
func NewCallback(fn func(receiver any, args ...any) any) *Callback {
	return &Callback{fn: fn}
}

// NoBind marks the callback as exempt from automatic binding and returns
// it, so the marker can be applied at construction:
//
//	props["onClose"] = widget.NewCallback(fn).NoBind()
func (c *Callback) NoBind() *Callback {
	c.noBind = true
	return c
}

// Receiver returns the currently bound receiver, nil if unbound.
func (c *Callback) Receiver() any { return c.receiver }

// Call invokes the callback with the bound receiver.
func (c *Callback) Call(args ...any) any {
	if c.fn == nil {
		return nil
	}
	return c.fn(c.receiver, args...)
}

func (c *Callback) bind(target any) {
	if c.noBind {
		return
	}
	c.receiver = target
}

// Constructor is a widget factory carried as a property value. The differ
// recognizes the type tag and stores such values unchanged, never binding
// them.
type Constructor func() Widget
