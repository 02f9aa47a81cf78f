// SPDX-License-Identifier: MIT

// Package map2d defines the Map container, its Cell and Option types,
// sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrInvalidKey    - row or column key is nil or unhashable on insertion.
//	ErrNilConversion - a conversion function passed to CopyWithConversion is nil.
//	ErrNilMap        - the source map passed to CopyWithConversion is nil.
package map2d

import (
	"errors"
	"reflect"
	"sync"
)

// Sentinel errors for map2d operations.
var (
	// ErrInvalidKey indicates a nil or unhashable row or column key was passed to an inserting operation.
	ErrInvalidKey = errors.New("map2d: row and column keys must be non-nil and hashable")

	// ErrNilConversion indicates CopyWithConversion received a nil conversion function.
	ErrNilConversion = errors.New("map2d: conversion function is nil")

	// ErrNilMap indicates a conversion was asked to copy from a nil *Map.
	ErrNilMap = errors.New("map2d: source map is nil")
)

// Cell is a single (row, column, value) triple.
type Cell[R comparable, C comparable, V any] struct {
	Row    R
	Column C
	Value  V
}

// config holds construction-time settings shared by every Map instantiation.
// It is not generic so options can be reused across maps of different types
// and carried over by CopyWithConversion.
type config struct {
	rowCapacity int                 // initial size hint for the row table
	valueEqual  func(a, b any) bool // equality used by ContainsValue
}

// Option configures a Map before creation.
type Option func(cfg *config)

// WithRowCapacity pre-sizes the row table for n rows. Negative values are treated as 0.
func WithRowCapacity(n int) Option {
	return func(cfg *config) {
		if n < 0 {
			n = 0
		}
		cfg.rowCapacity = n
	}
}

// WithValueEqual replaces the value equality used by ContainsValue.
// The default is reflect.DeepEqual. A nil eq is ignored.
func WithValueEqual(eq func(a, b any) bool) Option {
	return func(cfg *config) {
		if eq != nil {
			cfg.valueEqual = eq
		}
	}
}

// Map is an in-memory container keyed by an ordered (row, column) pair.
//
// Cells are stored row-major: data[row][column] = value. A row entry exists
// only while it holds at least one column. size counts stored cells and is
// updated on every mutation, never recomputed.
//
// Row lookups are O(1); column lookups scan every row because no column index
// is kept.
//
// A single sync.RWMutex guards data and size: readers share it, mutators hold
// it exclusively. The zero value is not usable; create maps with New.
type Map[R comparable, C comparable, V any] struct {
	mu sync.RWMutex // guards data and size

	cfg config

	size int           // number of stored (row, column) pairs
	data map[R]map[C]V // row → column → value
}

// New creates an empty Map with the given options.
// Complexity: O(1) (plus the requested capacity).
func New[R comparable, C comparable, V any](opts ...Option) *Map[R, C, V] {
	cfg := config{valueEqual: reflect.DeepEqual}
	for _, opt := range opts {
		opt(&cfg)
	}

	return newWithConfig[R, C, V](cfg)
}

// newWithConfig builds an empty Map from an already-resolved configuration.
func newWithConfig[R comparable, C comparable, V any](cfg config) *Map[R, C, V] {
	return &Map[R, C, V]{
		cfg:  cfg,
		data: make(map[R]map[C]V, cfg.rowCapacity),
	}
}
