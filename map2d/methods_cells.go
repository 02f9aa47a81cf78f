// SPDX-License-Identifier: MIT
// File: methods_cells.go
// Role: Point operations on single cells and O(1) size queries.
// Concurrency:
//   - Queries take the read lock; Put/Remove take the write lock.
// Invariants:
//   - size changes only when a pair is created or deleted, never on overwrite.
//   - A row whose last column is removed is deleted from data.

package map2d

// Put stores v at (r, c) and returns the value it replaced.
//
// Behavior highlights:
//   - Overwriting an existing pair keeps Size unchanged.
//   - Creates the row entry on first use.
//   - Nil values are stored as-is; only nil or unhashable keys are rejected.
//
// Returns:
//   - prev, true: the value previously stored at (r, c).
//   - zero, false: the pair did not exist.
//
// Errors:
//   - ErrInvalidKey: r or c is nil, or holds an unhashable dynamic value
//     (a slice, map or func behind an interface key). The map is left untouched.
//
// Complexity: O(1) amortized.
func (m *Map[R, C, V]) Put(r R, c C, v V) (prev V, existed bool, err error) {
	if err = validateKeys("Put", r, c); err != nil {
		return prev, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, existed = m.putLocked(r, c, v)

	return prev, existed, nil
}

// putLocked inserts without validation. Caller holds m.mu for writing.
func (m *Map[R, C, V]) putLocked(r R, c C, v V) (prev V, existed bool) {
	row, ok := m.data[r]
	if !ok {
		row = make(map[C]V)
		m.data[r] = row
	}
	prev, existed = row[c]
	if !existed {
		m.size++
	}
	row[c] = v

	return prev, existed
}

// Get returns the value at (r, c) and whether the pair exists.
// Nil and unhashable keys are not an error; they simply are not found.
// Complexity: O(1).
func (m *Map[R, C, V]) Get(r R, c C) (V, bool) {
	if !canLookup(r, c) {
		var zero V
		return zero, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[r][c]

	return v, ok
}

// GetOrDefault returns the value at (r, c), or def when the pair is missing.
// A stored zero value is returned as-is, not replaced by def.
// Complexity: O(1).
func (m *Map[R, C, V]) GetOrDefault(r R, c C, def V) V {
	if v, ok := m.Get(r, c); ok {
		return v
	}

	return def
}

// Remove deletes the pair (r, c) and returns the removed value.
// The row entry is deleted when its last column goes.
// Missing pairs and unhashable keys yield (zero, false) and leave the map unchanged.
// Complexity: O(1).
func (m *Map[R, C, V]) Remove(r R, c C) (V, bool) {
	if !canLookup(r, c) {
		var zero V
		return zero, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.removeLocked(r, c)
}

// removeLocked deletes one pair and prunes its row. Caller holds m.mu for writing.
func (m *Map[R, C, V]) removeLocked(r R, c C) (V, bool) {
	var zero V
	row, ok := m.data[r]
	if !ok {
		return zero, false
	}
	v, ok := row[c]
	if !ok {
		return zero, false
	}
	delete(row, c)
	m.size--
	if len(row) == 0 {
		delete(m.data, r)
	}

	return v, true
}

// Size returns the number of stored (row, column) pairs. O(1).
func (m *Map[R, C, V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.size
}

// IsEmpty reports whether the map holds no cells. O(1).
func (m *Map[R, C, V]) IsEmpty() bool { return m.Size() == 0 }

// NonEmpty reports whether the map holds at least one cell. O(1).
func (m *Map[R, C, V]) NonEmpty() bool { return m.Size() > 0 }

// RowCount returns the number of rows holding at least one cell. O(1).
func (m *Map[R, C, V]) RowCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

// ContainsKey reports whether the pair (r, c) is stored. O(1).
func (m *Map[R, C, V]) ContainsKey(r R, c C) bool {
	_, ok := m.Get(r, c)

	return ok
}

// ContainsRow reports whether any cell is stored under row r. O(1).
func (m *Map[R, C, V]) ContainsRow(r R) bool {
	if !isHashableKey(r) {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.data[r]

	return ok
}

// ContainsColumn reports whether any row holds column c.
//
// There is no column index, so this scans every row: O(rows), unlike
// ContainsRow which is O(1).
func (m *Map[R, C, V]) ContainsColumn(c C) bool {
	if !isHashableKey(c) {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var row map[C]V
	for _, row = range m.data {
		if _, ok := row[c]; ok {
			return true
		}
	}

	return false
}

// ContainsValue reports whether any cell holds a value equal to v,
// using the equality configured by WithValueEqual (reflect.DeepEqual by default).
// Complexity: O(cells) worst case.
func (m *Map[R, C, V]) ContainsValue(v V) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		row map[C]V
		x   V
	)
	for _, row = range m.data {
		for _, x = range row {
			if m.cfg.valueEqual(x, v) {
				return true
			}
		}
	}

	return false
}
