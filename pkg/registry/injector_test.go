package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjector_Get(t *testing.T) {
	injector := NewInjector(func() any { return "payload" })
	assert.Equal(t, "payload", injector.Get())
}

func TestInjector_Get_NilSupplier(t *testing.T) {
	injector := NewInjector(nil)
	assert.Nil(t, injector.Get())
}

func TestInjector_SubscribeInvalidate(t *testing.T) {
	injector := NewInjector(func() any { return 1 })

	calls := 0
	unsub := injector.Subscribe(func() { calls++ })

	injector.Invalidate()
	injector.Invalidate()
	assert.Equal(t, 2, calls)

	unsub()
	injector.Invalidate()
	assert.Equal(t, 2, calls, "unsubscribed listener must not fire")

	// Unsubscribing twice is a no-op.
	unsub()
}

func TestInjector_MultipleSubscribers(t *testing.T) {
	injector := NewInjector(func() any { return 1 })

	first, second := 0, 0
	injector.Subscribe(func() { first++ })
	injector.Subscribe(func() { second++ })

	injector.Invalidate()

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestStatic_DefineAndResolve(t *testing.T) {
	reg := NewStatic()
	injector := NewInjector(func() any { return "state" })

	reg.Define("app-state", injector)

	got, ok := reg.Injector("app-state")
	require.True(t, ok)
	assert.Same(t, injector, got)
	assert.True(t, reg.Has("app-state"))
}

func TestStatic_UnknownLabel(t *testing.T) {
	reg := NewStatic()

	_, ok := reg.Injector("missing")
	assert.False(t, ok)
	assert.False(t, reg.Has("missing"))
}
