// SPDX-License-Identifier: MIT
// File: methods_bulk.go
// Role: Bulk copy-out (Fill*), bulk merge (PutAll*), and bulk removal (RemoveRow/RemoveColumn/Filter).
// Concurrency:
//   - Merges snapshot their source before taking the write lock on m, so
//     m.PutAll(m) and cross-merges between two maps cannot deadlock.
// Failure semantics:
//   - PutAllToRow/PutAllToColumn stop at the first invalid key. Entries merged
//     before it stay merged: merges are not transactional.

package map2d

// FillMapFromRow copies every column → value pair of row r into target,
// overwriting keys target already holds. A missing row, an unhashable key or a
// nil target is a no-op.
// Returns m for chaining.
// Complexity: O(cols(r)).
func (m *Map[R, C, V]) FillMapFromRow(target map[C]V, r R) *Map[R, C, V] {
	if target == nil || !isHashableKey(r) {
		return m
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for c, v := range m.data[r] {
		target[c] = v
	}

	return m
}

// FillMapFromColumn copies every row → value pair of column c into target,
// overwriting keys target already holds. Scans all rows: O(rows).
// A nil target or an unhashable key is a no-op. Returns m for chaining.
func (m *Map[R, C, V]) FillMapFromColumn(target map[R]V, c C) *Map[R, C, V] {
	if target == nil || !isHashableKey(c) {
		return m
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	m.columnLocked(c, target)

	return m
}

// PutAll merges every cell of src into m with Put semantics (src wins on conflict).
// src is not mutated; a nil src is a no-op. Each pair of src is visited exactly once.
//
// Never fails: src only holds keys that already passed validation.
// Complexity: O(cells(src)).
func (m *Map[R, C, V]) PutAll(src *Map[R, C, V]) *Map[R, C, V] {
	if src == nil {
		return m
	}
	snapshot := src.RowMapView()

	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		r   R
		c   C
		v   V
		row map[C]V
	)
	for r, row = range snapshot {
		for c, v = range row {
			m.putLocked(r, c, v)
		}
	}

	return m
}

// PutAllToRow puts every column → value pair of src into row r.
//
// Errors:
//   - ErrInvalidKey: r or one of the columns is nil or unhashable. Pairs merged before
//     the failure remain in m.
//
// Complexity: O(len(src)).
func (m *Map[R, C, V]) PutAllToRow(src map[C]V, r R) (*Map[R, C, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for c, v := range src {
		if err := validateKeys("PutAllToRow", r, c); err != nil {
			return m, err
		}
		m.putLocked(r, c, v)
	}

	return m, nil
}

// PutAllToColumn puts every row → value pair of src into column c.
// Same failure semantics as PutAllToRow.
// Complexity: O(len(src)).
func (m *Map[R, C, V]) PutAllToColumn(src map[R]V, c C) (*Map[R, C, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for r, v := range src {
		if err := validateKeys("PutAllToColumn", r, c); err != nil {
			return m, err
		}
		m.putLocked(r, c, v)
	}

	return m, nil
}

// RemoveRow deletes row r and returns how many cells it held. O(1).
func (m *Map[R, C, V]) RemoveRow(r R) int {
	if !isHashableKey(r) {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.data[r]
	if !ok {
		return 0
	}
	n := len(row)
	delete(m.data, r)
	m.size -= n

	return n
}

// RemoveColumn deletes column c from every row, pruning rows left empty,
// and returns how many cells were removed. O(rows).
func (m *Map[R, C, V]) RemoveColumn(c C) int {
	if !isHashableKey(c) {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	var (
		r   R
		row map[C]V
	)
	for r, row = range m.data {
		if _, ok := row[c]; !ok {
			continue
		}
		delete(row, c)
		removed++
		if len(row) == 0 {
			delete(m.data, r)
		}
	}
	m.size -= removed

	return removed
}

// Filter removes every cell for which keep returns false, pruning rows left
// empty, and returns how many cells were removed. A nil keep removes nothing.
//
// keep runs under the write lock and must not call back into m.
// Complexity: O(cells).
func (m *Map[R, C, V]) Filter(keep func(Cell[R, C, V]) bool) int {
	if keep == nil {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	var (
		r   R
		c   C
		v   V
		row map[C]V
	)
	for r, row = range m.data {
		for c, v = range row {
			if keep(Cell[R, C, V]{Row: r, Column: c, Value: v}) {
				continue
			}
			delete(row, c)
			removed++
		}
		if len(row) == 0 {
			delete(m.data, r)
		}
	}
	m.size -= removed

	return removed
}
