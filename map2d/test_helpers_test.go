// SPDX-License-Identifier: MIT
// Package map2d_test holds shared fixtures and invariant checks for map2d tests.

package map2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tablemap/map2d"
)

// Short stable keys keep failure output compact.
const (
	RowA = "a"
	RowB = "b"
	RowC = "c"
	ColX = "x"
	ColY = "y"
	ColZ = "z"
)

// newStringMap returns an empty string/string/int map.
func newStringMap() *map2d.Map[string, string, int] {
	return map2d.New[string, string, int]()
}

// mustPut stores v at (r, c) and fails the test on error.
func mustPut[R comparable, C comparable, V any](t testing.TB, m *map2d.Map[R, C, V], r R, c C, v V) {
	t.Helper()
	_, _, err := m.Put(r, c, v)
	require.NoError(t, err, "Put(%v, %v)", r, c)
}

// requireInvariants checks that Size matches the stored cells and that no empty row survives.
func requireInvariants[R comparable, C comparable, V any](t testing.TB, m *map2d.Map[R, C, V]) {
	t.Helper()
	rows := m.RowMapView()
	total := 0
	for r, row := range rows {
		require.NotEmpty(t, row, "row %v must not be empty", r)
		total += len(row)
	}
	require.Equal(t, total, m.Size(), "Size must equal stored cells")
	require.Len(t, m.Cells(), total, "Cells length must equal stored cells")
	require.Equal(t, len(rows), m.RowCount(), "RowCount must equal number of rows")
	require.Equal(t, total == 0, m.IsEmpty())
	require.Equal(t, total > 0, m.NonEmpty())
}

// sampleMap returns {(a,x,1), (a,y,2), (b,x,3), (c,z,4)}.
func sampleMap(t testing.TB) *map2d.Map[string, string, int] {
	t.Helper()
	m := newStringMap()
	mustPut(t, m, RowA, ColX, 1)
	mustPut(t, m, RowA, ColY, 2)
	mustPut(t, m, RowB, ColX, 3)
	mustPut(t, m, RowC, ColZ, 4)

	return m
}
