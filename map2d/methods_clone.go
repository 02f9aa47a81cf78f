// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Clearing, cloning, and structure-preserving conversion of maps.
// Determinism:
//   - CopyWithConversion with non-injective functions keeps the last write,
//     and "last" follows Go map iteration order, which is unspecified.
// Concurrency:
//   - Read lock on the source for the whole copy; results are fresh maps.
//   - Conversion functions run under that read lock and must not mutate the source.

package map2d

import "maps"

// Clear resets the map to the empty state while preserving its configuration.
// Complexity: O(1) for map reallocation.
func (m *Map[R, C, V]) Clear() {
	m.mu.Lock()
	m.data = make(map[R]map[C]V, m.cfg.rowCapacity)
	m.size = 0
	m.mu.Unlock()
}

// Clone returns a deep copy of m with the same configuration.
// Complexity: O(cells).
func (m *Map[R, C, V]) Clone() *Map[R, C, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := newWithConfig[R, C, V](m.cfg)
	var (
		r   R
		row map[C]V
	)
	for r, row = range m.data {
		clone.data[r] = maps.Clone(row)
	}
	clone.size = m.size

	return clone
}

// CopyWithConversion builds a new Map where every cell (r, c, v) of m becomes
// (rowFn(r), colFn(c), valFn(v)), inserted with Put semantics.
//
// Behavior highlights:
//   - m is never mutated.
//   - If rowFn or colFn are not injective, several source cells may land on the
//     same destination pair; the last one written wins, and write order is the
//     unspecified iteration order of m.
//   - rowFn is evaluated once per row, colFn and valFn once per cell.
//   - The result inherits m's configuration.
//
// Errors:
//   - ErrNilMap: m is nil.
//   - ErrNilConversion: any of the three functions is nil.
//   - ErrInvalidKey: a conversion produced a nil or unhashable key. No partial result is returned.
//
// All errors are tagged with "CopyWithConversion"; match them with errors.Is.
//
// Complexity: O(cells) conversion calls.
func CopyWithConversion[R comparable, C comparable, V any, R2 comparable, C2 comparable, V2 any](
	m *Map[R, C, V],
	rowFn func(R) R2,
	colFn func(C) C2,
	valFn func(V) V2,
) (*Map[R2, C2, V2], error) {
	if m == nil {
		return nil, opErrorf("CopyWithConversion", ErrNilMap)
	}
	if rowFn == nil || colFn == nil || valFn == nil {
		return nil, opErrorf("CopyWithConversion", ErrNilConversion)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := newWithConfig[R2, C2, V2](m.cfg)
	var (
		r   R
		c   C
		v   V
		nr  R2
		nc  C2
		row map[C]V
		err error
	)
	for r, row = range m.data {
		nr = rowFn(r)
		for c, v = range row {
			nc = colFn(c)
			if err = validateKeys("CopyWithConversion", nr, nc); err != nil {
				return nil, err
			}
			out.putLocked(nr, nc, valFn(v))
		}
	}

	return out, nil
}

// Transpose returns a new Map with row and column keys swapped:
// every (r, c, v) of m becomes (c, r, v). The result inherits m's configuration.
// A nil m yields an empty Map with default configuration.
// Complexity: O(cells).
func Transpose[R comparable, C comparable, V any](m *Map[R, C, V]) *Map[C, R, V] {
	if m == nil {
		return New[C, R, V]()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := newWithConfig[C, R, V](m.cfg)
	var (
		r   R
		c   C
		v   V
		row map[C]V
	)
	for r, row = range m.data {
		for c, v = range row {
			out.putLocked(c, r, v)
		}
	}

	return out
}
