// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating snapshots of the map (rows, columns, full nested maps, cells).
// Determinism:
//   - Returned maps and slices carry no ordering guarantee; slices follow Go map iteration.
// Concurrency:
//   - Each snapshot is built entirely under the read lock, so no partially written cell is observed.
// Ownership:
//   - Every result is freshly allocated and owned by the caller. Mutating it never
//     reaches the Map, and later Map mutations never show up in it.
//   - Results are never nil; a missing row or column, or an unhashable key, yields an empty map.

package map2d

import "maps"

// RowView returns a copy of row r as column → value.
// Complexity: O(cols(r)).
func (m *Map[R, C, V]) RowView(r R) map[C]V {
	if !isHashableKey(r) {
		return map[C]V{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.data[r]
	if !ok {
		return map[C]V{}
	}

	return maps.Clone(row)
}

// ColumnView returns a copy of column c as row → value.
// Every row is scanned: O(rows).
func (m *Map[R, C, V]) ColumnView(c C) map[R]V {
	out := make(map[R]V)
	if !isHashableKey(c) {
		return out
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	m.columnLocked(c, out)

	return out
}

// columnLocked writes (row → value) for column c into dst. Caller holds m.mu.
func (m *Map[R, C, V]) columnLocked(c C, dst map[R]V) {
	var (
		r   R
		row map[C]V
	)
	for r, row = range m.data {
		if v, ok := row[c]; ok {
			dst[r] = v
		}
	}
}

// RowMapView returns a deep copy of the whole map as row → column → value.
// Each inner map is copied independently of the live rows.
// Complexity: O(cells).
func (m *Map[R, C, V]) RowMapView() map[R]map[C]V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rowMapLocked()
}

// rowMapLocked deep-copies data. Caller holds m.mu.
func (m *Map[R, C, V]) rowMapLocked() map[R]map[C]V {
	out := make(map[R]map[C]V, len(m.data))
	var (
		r   R
		row map[C]V
	)
	for r, row = range m.data {
		out[r] = maps.Clone(row)
	}

	return out
}

// ColumnMapView returns the transposed deep copy column → row → value,
// built by visiting every cell once and grouping by column.
// For every stored (r, c): RowMapView()[r][c] == ColumnMapView()[c][r].
// Complexity: O(cells).
func (m *Map[R, C, V]) ColumnMapView() map[C]map[R]V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[C]map[R]V)
	var (
		r   R
		c   C
		v   V
		row map[C]V
	)
	for r, row = range m.data {
		for c, v = range row {
			col, ok := out[c]
			if !ok {
				col = make(map[R]V)
				out[c] = col
			}
			col[r] = v
		}
	}

	return out
}

// Cells returns every stored triple. The slice has length Size().
// Complexity: O(cells).
func (m *Map[R, C, V]) Cells() []Cell[R, C, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Cell[R, C, V], 0, m.size)
	var (
		r   R
		c   C
		v   V
		row map[C]V
	)
	for r, row = range m.data {
		for c, v = range row {
			out = append(out, Cell[R, C, V]{Row: r, Column: c, Value: v})
		}
	}

	return out
}

// RowKeys returns the keys of all non-empty rows, without duplicates. O(rows).
func (m *Map[R, C, V]) RowKeys() []R {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]R, 0, len(m.data))
	for r := range m.data {
		out = append(out, r)
	}

	return out
}

// ColumnKeys returns every column key used by at least one row, without duplicates.
// Complexity: O(cells).
func (m *Map[R, C, V]) ColumnKeys() []C {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[C]struct{})
	out := make([]C, 0)
	var row map[C]V
	for _, row = range m.data {
		for c := range row {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}
