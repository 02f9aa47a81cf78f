// SPDX-License-Identifier: MIT
// Package: map2d
//
// Purpose:
//   - Single place for key validation shared by every inserting operation.
//   - Return the ErrInvalidKey sentinel tagged with the calling operation.
//   - Guard read paths against unhashable dynamic keys so lookups never panic.
//
// Note:
//   - Keys of value types (strings, numbers, structs, arrays) can never be nil,
//     so validation only does work for pointer-like and interface key types.

package map2d

import (
	"fmt"
	"reflect"
)

// Nilable is implemented by key types that know whether they should be treated as nil
// even when stored in a non-nil interface.
type Nilable interface {
	IsNil() bool
}

// opErrorf tags err with the operation name, matching the tagging used for key errors.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// keyErrorf tags err with the operation name so callers see where validation failed.
func keyErrorf(tag, which string, err error) error {
	return fmt.Errorf("%s: %s key: %w", tag, which, err)
}

// isNilKey reports whether k is a nil key.
//
// A key is nil when it is a nil interface, a nil pointer, channel, slice, map
// or func, a nil unsafe.Pointer, or a Nilable reporting true. Slices, maps and
// funcs only reach here through interface-typed keys.
// Complexity: O(1).
func isNilKey(k any) bool {
	if k == nil {
		return true
	}
	if n, ok := k.(Nilable); ok {
		return n.IsNil()
	}

	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer,
		reflect.Slice, reflect.Map, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// isHashableKey reports whether k can be used as a Go map key at run time.
//
// A statically comparable key can still hold an unhashable dynamic value when
// it is, or contains, an interface: a slice, map or func stored in an any key
// makes the runtime panic on map access. The nil interface is hashable.
func isHashableKey(k any) bool {
	if k == nil {
		return true
	}

	return reflect.ValueOf(k).Comparable()
}

// canLookup reports whether both keys can be used for a map lookup.
// Lookups with unhashable keys are answered as "not found".
func canLookup[R comparable, C comparable](r R, c C) bool {
	return isHashableKey(r) && isHashableKey(c)
}

// validateKeys checks both halves of a cell key, row first.
// A key is invalid when it is nil or unhashable.
// Returns nil, or ErrInvalidKey wrapped with tag.
func validateKeys[R comparable, C comparable](tag string, r R, c C) error {
	if isNilKey(r) || !isHashableKey(r) {
		return keyErrorf(tag, "row", ErrInvalidKey)
	}
	if isNilKey(c) || !isHashableKey(c) {
		return keyErrorf(tag, "column", ErrInvalidKey)
	}

	return nil
}
