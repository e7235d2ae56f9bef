// Package flatten recursively flattens heterogeneous nested sequences
// into a single flat []any, preserving element order.
//
// Slices and arrays of any element type expand recursively; every other
// value, strings included, is kept as a single element. Nil elements
// survive flattening.
package flatten

import "reflect"

// Flatten returns a flat copy of nested with every slice or array element
// expanded in place, depth-first. Strings stay atomic even though they
// are index-able; []byte, like any other slice, expands into its bytes.
// The input is never mutated.
//
// Complexity: O(n) time and memory over the total leaf count.
func Flatten(nested []any) []any {
	result := make([]any, 0, len(nested))
	for _, item := range nested {
		result = appendFlat(result, item)
	}

	return result
}

// appendFlat appends item to dst, recursing when item is a slice or an
// array. reflect is the only way in: elements arrive as any, so their
// concrete sequence-ness is a runtime property.
func appendFlat(dst []any, item any) []any {
	if item == nil {
		return append(dst, item)
	}

	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			dst = appendFlat(dst, v.Index(i).Interface())
		}
		return dst
	default:
		return append(dst, item)
	}
}
