// SPDX-License-Identifier: MIT

// Package map2d provides Map, a thread-safe in-memory container keyed by an
// ordered (row, column) pair, with row-wise and column-wise bulk access.
//
// Conceptually a Map is a set of cells (row, column, value) in which every
// (row, column) pair is unique; putting an existing pair replaces its value.
//
// Representation:
//
//   - Row-major nested maps: data[row][column] = value.
//   - A row exists only while it holds at least one column; removing the last
//     column removes the row, so ContainsRow stays exact.
//   - Size is a counter maintained on every mutation, never recomputed.
//   - No column index is kept. Row lookups (ContainsRow, RowView) are O(1);
//     column lookups (ContainsColumn, ColumnView, FillMapFromColumn,
//     RemoveColumn) scan every row and are O(rows).
//   - One sync.RWMutex guards the whole structure.
//
// Keys and values:
//
//   - R and C are any comparable types; V is any type.
//   - Inserting operations reject nil keys (nil interface, pointer, channel,
//     slice, map, func, unsafe.Pointer, or a Nilable reporting true) with
//     ErrInvalidKey. Keys of value types can never be nil.
//   - Interface-typed keys holding an unhashable value (a slice, map or func)
//     are rejected the same way on insertion and are "not found" on lookup.
//   - Nil values are allowed.
//   - Lookups never fail or panic: a missing, nil or unhashable key is simply "not found".
//
// Core Methods:
//
//	// Cells
//	Put(r, c, v) (prev V, existed bool, err error) // O(1)
//	Get(r, c) (V, bool)                            // O(1)
//	GetOrDefault(r, c, def) V                      // O(1)
//	Remove(r, c) (V, bool)                         // O(1), prunes empty rows
//
//	// Queries
//	Size() int, IsEmpty() bool, NonEmpty() bool, RowCount() int // O(1)
//	ContainsKey(r, c), ContainsRow(r)                           // O(1)
//	ContainsColumn(c)                                           // O(rows)
//	ContainsValue(v)                                            // O(cells)
//
//	// Snapshots (caller-owned copies, never nil)
//	RowView(r) map[C]V
//	ColumnView(c) map[R]V
//	RowMapView() map[R]map[C]V
//	ColumnMapView() map[C]map[R]V
//	Cells() []Cell, RowKeys() []R, ColumnKeys() []C
//
//	// Bulk
//	FillMapFromRow(target, r), FillMapFromColumn(target, c) *Map
//	PutAll(src) *Map
//	PutAllToRow(src, r), PutAllToColumn(src, c) (*Map, error)
//	RemoveRow(r), RemoveColumn(c), Filter(keep) int
//
//	// Whole-map
//	Clear(), Clone() *Map
//	CopyWithConversion(m, rowFn, colFn, valFn) (*Map[R2, C2, V2], error)
//	Transpose(m) *Map[C, R, V]
//
// Views are copies because Go maps cannot be made read-only: writing to a
// returned map never changes the Map, and later changes to the Map never show
// up in a map returned earlier.
//
// Bulk merges with a map source (PutAllToRow, PutAllToColumn) are not
// transactional: on ErrInvalidKey the entries merged so far stay merged.
//
// Errors:
//
//	ErrInvalidKey    – nil or unhashable row or column key on insertion
//	ErrNilConversion – nil function passed to CopyWithConversion
//	ErrNilMap        – nil source map passed to CopyWithConversion
package map2d
