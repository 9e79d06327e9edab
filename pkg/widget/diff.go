package widget

import "reflect"

// DiffResult reports whether a property changed and the value stored for it.
type DiffResult struct {
	Changed bool
	Value   any
}

// DiffFunc computes a DiffResult from the previously stored value and the
// incoming value. A nil incoming value means the key is absent from the new
// bag; a nil result value removes the stored property.
type DiffFunc func(previous, next any) DiffResult

// PropertyDiff is the DiffProperty decorator payload: a diff strategy for a
// single property key. A strategy registered for a key runs exactly once
// per SetProperties call, even when the key is absent from both bags.
type PropertyDiff struct {
	Property string
	Diff     DiffFunc
}

// autoDiff is the default strategy: value equality for comparable values,
// structural equality otherwise. The incoming value is stored as-is.
func autoDiff(previous, next any) DiffResult {
	return DiffResult{Changed: !equalValues(previous, next), Value: next}
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isComparable(a) && isComparable(b) {
		return a == b
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Func || bv.Kind() == reflect.Func {
		// DeepEqual never matches non-nil funcs; identity by code pointer
		// keeps a re-passed function property from reading as changed.
		return av.Kind() == bv.Kind() && av.Pointer() == bv.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// isComparable reports whether a value can be compared with == without
// panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
