package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/vdom"
)

func TestAutoDiff(t *testing.T) {
	shared := []string{"a", "b"}
	sharedMap := map[string]int{"a": 1}

	tests := []struct {
		name     string
		previous any
		next     any
		changed  bool
	}{
		{"both nil", nil, nil, false},
		{"nil to value", nil, 1, true},
		{"value to nil", 1, nil, true},
		{"equal ints", 3, 3, false},
		{"different ints", 3, 4, true},
		{"equal strings", "x", "x", false},
		{"different types", 1, "1", true},
		{"identical slice reference", shared, shared, false},
		{"structurally equal slices", []string{"a"}, []string{"a"}, false},
		{"structurally different slices", []string{"a"}, []string{"b"}, true},
		{"identical map reference", sharedMap, sharedMap, false},
		{"structurally different maps", map[string]int{"a": 1}, map[string]int{"a": 2}, true},
		{"comparable structs", struct{ X int }{1}, struct{ X int }{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := autoDiff(tt.previous, tt.next)
			assert.Equal(t, tt.changed, r.Changed)
			assert.Equal(t, tt.next, r.Value, "auto strategy stores the incoming value as-is")
		})
	}
}

func TestAutoDiff_SameFunctionUnchanged(t *testing.T) {
	var ctor Constructor = func() Widget { return nil }

	assert.False(t, autoDiff(ctor, ctor).Changed)
}

func TestCustomStrategy_InvokedOncePerCall(t *testing.T) {
	kind := DefineKind("strategyCount", nil)

	fooCalls, barCalls := 0, 0
	kind.AddDecorator(DiffProperty,
		PropertyDiff{Property: "foo", Diff: func(previous, next any) DiffResult {
			fooCalls++
			return autoDiff(previous, next)
		}},
		PropertyDiff{Property: "bar", Diff: func(previous, next any) DiffResult {
			barCalls++
			return autoDiff(previous, next)
		}},
	)

	w := New(&testWidget{kind: kind})

	// Three calls with varying unrelated keys: each strategy fires exactly
	// once per call, N strategies x M calls invocations in total.
	w.SetProperties(vdom.Props{"foo": 1, "bar": 2, "other": "a"})
	w.SetProperties(vdom.Props{"foo": 1, "extra": true})
	w.SetProperties(vdom.Props{"unrelated": 9})

	assert.Equal(t, 3, fooCalls)
	assert.Equal(t, 3, barCalls)
}

func TestCustomStrategy_DerivedValueStored(t *testing.T) {
	kind := DefineKind("uppercase", nil)
	kind.AddDecorator(DiffProperty, PropertyDiff{
		Property: "label",
		Diff: func(previous, next any) DiffResult {
			if next == nil {
				return DiffResult{Changed: previous != nil}
			}
			derived := "!" + next.(string)
			return DiffResult{Changed: previous != derived, Value: derived}
		},
	})

	w := New(&testWidget{kind: kind})
	w.SetProperties(vdom.Props{"label": "go"})

	assert.Equal(t, "!go", w.Properties()["label"], "the derived value, not the raw input, is stored")
}

func TestCustomStrategy_AccumulatorEndToEnd(t *testing.T) {
	kind := DefineKind("accumulator", nil)
	kind.AddDecorator(DiffProperty, PropertyDiff{
		Property: "foobar",
		Diff: func(previous, next any) DiffResult {
			if next == nil {
				return DiffResult{Changed: previous != nil}
			}
			sum := next.(int)
			if p, ok := previous.(int); ok {
				sum += p
			}
			return DiffResult{Changed: true, Value: sum}
		},
	})

	w := New(&testWidget{kind: kind})
	invalidations := trackInvalidations(w)

	w.SetProperties(vdom.Props{"foobar": 2})
	assert.Equal(t, 2, w.Properties()["foobar"])

	w.SetProperties(vdom.Props{"foobar": 4})
	assert.Equal(t, 6, w.Properties()["foobar"])

	w.SetProperties(vdom.Props{})
	_, present := w.Properties()["foobar"]
	assert.False(t, present, "absent key removes the accumulated value")

	assert.Equal(t, 3, *invalidations)
}

func TestCustomStrategy_MostDerivedWins(t *testing.T) {
	parent := DefineKind("diffParent", nil)
	child := DefineKind("diffChild", parent)

	parentCalls, childCalls := 0, 0
	parent.AddDecorator(DiffProperty, PropertyDiff{Property: "value", Diff: func(previous, next any) DiffResult {
		parentCalls++
		return autoDiff(previous, next)
	}})
	child.AddDecorator(DiffProperty, PropertyDiff{Property: "value", Diff: func(previous, next any) DiffResult {
		childCalls++
		return autoDiff(previous, next)
	}})

	w := New(&testWidget{kind: child})
	w.SetProperties(vdom.Props{"value": 1})

	assert.Equal(t, 0, parentCalls)
	assert.Equal(t, 1, childCalls, "one strategy per key fires per call")
}

func TestCustomStrategy_UnchangedResultDoesNotInvalidate(t *testing.T) {
	kind := DefineKind("stableDiff", nil)
	kind.AddDecorator(DiffProperty, PropertyDiff{
		Property: "pinned",
		Diff: func(previous, next any) DiffResult {
			return DiffResult{Changed: false, Value: next}
		},
	})

	w := New(&testWidget{kind: kind})
	invalidations := trackInvalidations(w)

	w.SetProperties(vdom.Props{"pinned": 1})

	assert.Equal(t, 0, *invalidations)
	require.Equal(t, 1, w.Properties()["pinned"], "the strategy value is stored even when unchanged")
	assert.Empty(t, w.ChangedProperties())
}
