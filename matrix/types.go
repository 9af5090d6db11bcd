// SPDX-License-Identifier: MIT

// Package matrix: domain types — the primitive storage contract, the
// minimal vector contract, slice/axis types and element function types.
// Errors live in errors.go, options in options.go.

package matrix

// Storage is the primitive contract every concrete matrix backend
// implements. The whole algebra engine is written against this interface
// and never against a concrete layout, so a backend only has to supply
// these operations to inherit every derived operation.
//
// Quick accessors assume pre-validated indices: passing an out-of-range
// index is a programmer error with undefined behavior (typically a slice
// panic). Bounds checking belongs to the Matrix accessor layer.
type Storage interface {
	// Rows returns the row count; fixed for the value's lifetime.
	Rows() int

	// Cols returns the column count; fixed for the value's lifetime.
	Cols() int

	// AtQuick is the unchecked element read.
	AtQuick(row, col int) float64

	// SetQuick is the unchecked element write.
	SetQuick(row, col int, v float64)

	// Like returns an empty storage of the same concrete family with the
	// given shape. Used by derived operations (Times, Transpose) to keep
	// results in the receiver's family.
	Like(rows, cols int) Storage

	// RowQuick returns the backend's vector for the given row, or nil when
	// the row has never been allocated (sparse families). Whether the
	// returned vector aliases or copies backend cells is family policy;
	// reference backends document theirs.
	RowQuick(row int) Vector

	// ColQuick returns the backend's vector for the given column, or nil
	// when unavailable. Row-organized families expose a live per-element
	// proxy rather than a copy, so writes through it reach the matrix.
	ColQuick(col int) Vector

	// AssignRowQuick installs v as row `row`. The transpose view uses this
	// to materialize absent rows before writing through them.
	AssignRowQuick(row int, v Vector)

	// CloneStorage duplicates the cells under the family's own policy and
	// returns an independent storage of the same family.
	CloneStorage() Storage
}

// Vector is the minimal contract views and backend row/column vectors
// expose: length, quick access, checked access and a same-family factory.
// Anything richer (dot products, folds) is a package-level helper built on
// these primitives.
type Vector interface {
	// Len returns the number of elements.
	Len() int

	// AtQuick is the unchecked element read.
	AtQuick(i int) float64

	// SetQuick is the unchecked element write.
	SetQuick(i int, v float64)

	// At is the checked read; returns ErrIndexOutOfRange on violation.
	At(i int) (float64, error)

	// Set is the checked write; returns ErrIndexOutOfRange on violation.
	Set(i int, v float64) error

	// Like returns a fresh zero vector of length n.
	Like(n int) Vector
}

// Slice pairs one row (or column) of a matrix, exposed as a live view
// vector, with its index. Produced by the iteration protocol; mutating the
// view mutates the parent matrix.
type Slice struct {
	Vec   Vector
	Index int
}

// Axis selects which dimension the iteration protocol slices over.
type Axis uint8

const (
	// RowAxis yields one slice per row (the default).
	RowAxis Axis = iota

	// ColumnAxis yields one slice per column.
	ColumnAxis
)

// UnaryFunc maps one element value to another.
type UnaryFunc func(v float64) float64

// BinaryFunc combines two element values into one.
type BinaryFunc func(a, b float64) float64

// VectorFunc reduces a whole vector to a scalar.
type VectorFunc func(v Vector) float64

// PlusFn is the addition combiner, the usual companion of Aggregate.
func PlusFn(a, b float64) float64 { return a + b }

// MultFn is the multiplication combiner.
func MultFn(a, b float64) float64 { return a * b }

// IdentityFn is the identity mapper. Aggregate uses it for its second,
// reduce-of-reduces pass.
func IdentityFn(v float64) float64 { return v }
