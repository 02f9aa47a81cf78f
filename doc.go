// Package tablemap is an in-memory toolkit for data keyed by two
// independent dimensions: a row key and a column key.
//
// What is inside?
//
//	A small, thread-safe, generic library built around one container:
//		• map2d.Map[R, C, V] – (row, column) → value with O(1) row access
//		• Snapshot views – per row, per column, whole map row-major or column-major
//		• Bulk merges – from another Map, or from a flat map into one row/column
//		• Conversions – CopyWithConversion and Transpose build new maps cell by cell
//
// Layout:
//
//	map2d/    — the Map container, its views, bulk operations and conversions
//	examples/ — a runnable gradebook walkthrough
//
// Quick ASCII example:
//
//	         math  physics
//	alice     5      4
//	bob       3      ·
//
// is a Map with rows {alice, bob}, columns {math, physics} and three cells.
//
//	go get github.com/katalvlaran/tablemap/map2d
package tablemap
