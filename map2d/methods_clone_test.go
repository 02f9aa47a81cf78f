// SPDX-License-Identifier: MIT
// Package map2d_test verifies Clone, CopyWithConversion and Transpose.

package map2d_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tablemap/map2d"
)

func identity[T any](v T) T { return v }

// Scenario: scaling values by 10 leaves the source untouched.
func TestCopyWithConversion_Values(t *testing.T) {
	m := newStringMap()
	mustPut(t, m, RowA, ColX, 1)

	out, err := map2d.CopyWithConversion(m, identity[string], identity[string],
		func(v int) int { return v * 10 })
	require.NoError(t, err)

	v, ok := out.Get(RowA, ColX)
	require.True(t, ok)
	assert.Equal(t, 10, v)
	orig, _ := m.Get(RowA, ColX)
	assert.Equal(t, 1, orig, "source must not change")
	assert.Equal(t, 1, out.Size())
}

func TestCopyWithConversion_ChangesTypes(t *testing.T) {
	m := sampleMap(t)

	out, err := map2d.CopyWithConversion(m,
		strings.ToUpper,
		func(c string) rune { return rune(c[0]) },
		strconv.Itoa,
	)
	require.NoError(t, err)

	want := map[string]map[rune]string{
		"A": {'x': "1", 'y': "2"},
		"B": {'x': "3"},
		"C": {'z': "4"},
	}
	if diff := cmp.Diff(want, out.RowMapView()); diff != "" {
		t.Fatalf("converted map mismatch (-want +got):\n%s", diff)
	}
	requireInvariants(t, out)
}

func TestCopyWithConversion_Collisions(t *testing.T) {
	m := sampleMap(t)

	// Every row collapses onto one, every column onto one: a single cell survives.
	out, err := map2d.CopyWithConversion(m,
		func(string) string { return "all" },
		func(string) string { return "one" },
		identity[int],
	)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Size())

	v, ok := out.Get("all", "one")
	require.True(t, ok)
	assert.Contains(t, []int{1, 2, 3, 4}, v, "some source value wins")
}

func TestCopyWithConversion_Errors(t *testing.T) {
	m := sampleMap(t)

	_, err := map2d.CopyWithConversion[string, string, int, string, string, int](m, nil, identity[string], identity[int])
	require.ErrorIs(t, err, map2d.ErrNilConversion)
	assert.Equal(t, "CopyWithConversion: map2d: conversion function is nil", err.Error())

	var none *map2d.Map[string, string, int]
	nilOut, err := map2d.CopyWithConversion(none, identity[string], identity[string], identity[int])
	require.ErrorIs(t, err, map2d.ErrNilMap)
	assert.Contains(t, err.Error(), "CopyWithConversion: ")
	assert.Nil(t, nilOut)

	out, err := map2d.CopyWithConversion(m,
		func(string) *string { return nil },
		identity[string],
		identity[int],
	)
	require.ErrorIs(t, err, map2d.ErrInvalidKey)
	assert.Nil(t, out, "no partial result")
	assert.Equal(t, 4, m.Size())
}

func TestCopyWithConversion_InheritsConfig(t *testing.T) {
	fold := func(a, b any) bool { return strings.EqualFold(a.(string), b.(string)) }
	m := map2d.New[string, string, string](map2d.WithValueEqual(fold))
	mustPut(t, m, RowA, ColX, "v")

	out, err := map2d.CopyWithConversion(m, identity[string], identity[string], strings.ToUpper)
	require.NoError(t, err)
	assert.True(t, out.ContainsValue("v"))
}

func TestTranspose(t *testing.T) {
	m := sampleMap(t)
	tr := map2d.Transpose(m)

	if diff := cmp.Diff(m.ColumnMapView(), tr.RowMapView()); diff != "" {
		t.Fatalf("Transpose mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, m.Size(), tr.Size())
	assert.Equal(t, m.RowMapView(), map2d.Transpose(tr).RowMapView(), "double transpose is identity")
	requireInvariants(t, tr)
}

func TestTranspose_NilSource(t *testing.T) {
	var none *map2d.Map[string, int, bool]
	tr := map2d.Transpose(none)

	require.NotNil(t, tr)
	assert.True(t, tr.IsEmpty())
	mustPut(t, tr, 1, RowA, true)
	assert.Equal(t, 1, tr.Size(), "result is usable")
}

func TestClone_Independent(t *testing.T) {
	m := sampleMap(t)
	clone := m.Clone()

	assert.Equal(t, m.RowMapView(), clone.RowMapView())
	assert.Equal(t, m.Size(), clone.Size())

	mustPut(t, clone, RowA, ColZ, 9)
	clone.Remove(RowB, ColX)
	assert.False(t, m.ContainsKey(RowA, ColZ))
	assert.True(t, m.ContainsKey(RowB, ColX))
	assert.Equal(t, 4, m.Size())
	requireInvariants(t, clone)
}
