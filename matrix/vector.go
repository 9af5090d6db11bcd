// SPDX-License-Identifier: MIT

// Package matrix: dense vector and the vector-level helpers the algebra
// engine builds on (dot product, left-to-right fold).

package matrix

import (
	"fmt"
	"strings"
)

// DenseVector is a contiguous float64 vector. It backs dense matrix rows
// (as aliasing sub-slices), aggregation results and lazily materialized
// sparse rows.
type DenseVector struct {
	data []float64
}

// Compile-time interface conformance.
var (
	_ Vector       = (*DenseVector)(nil)
	_ fmt.Stringer = (*DenseVector)(nil)
)

// NewDenseVector returns a zero vector of length n.
// Returns ErrInvalidShape when n is negative; n == 0 is legal.
func NewDenseVector(n int) (*DenseVector, error) {
	if n < 0 {
		return nil, opErrorf("NewDenseVector", ErrInvalidShape)
	}

	return newDenseVector(n), nil
}

// newDenseVector is the internal zero-vector constructor; assumes n >= 0.
func newDenseVector(n int) *DenseVector {
	return &DenseVector{data: make([]float64, n)}
}

// NewDenseVectorFrom returns a vector holding a copy of values.
func NewDenseVectorFrom(values []float64) *DenseVector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return &DenseVector{data: cp}
}

// wrapDenseVector aliases data without copying. Internal: used by
// DenseStorage to expose rows as live sub-slices.
func wrapDenseVector(data []float64) *DenseVector {
	return &DenseVector{data: data}
}

// Len returns the element count. Complexity: O(1).
func (v *DenseVector) Len() int { return len(v.data) }

// AtQuick is the unchecked read. Complexity: O(1).
func (v *DenseVector) AtQuick(i int) float64 { return v.data[i] }

// SetQuick is the unchecked write. Complexity: O(1).
func (v *DenseVector) SetQuick(i int, val float64) { v.data[i] = val }

// At is the checked read; ErrIndexOutOfRange on violation. Complexity: O(1).
func (v *DenseVector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf(i, len(v.data))
	}

	return v.data[i], nil
}

// Set is the checked write; ErrIndexOutOfRange on violation. Complexity: O(1).
func (v *DenseVector) Set(i int, val float64) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf(i, len(v.data))
	}
	v.data[i] = val

	return nil
}

// Like returns a fresh zero DenseVector of length n.
func (v *DenseVector) Like(n int) Vector { return newDenseVector(n) }

// Values returns an independent copy of the element slice.
func (v *DenseVector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// String renders the vector as "[v0, v1, ...]" for diagnostics.
func (v *DenseVector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}

// Dot computes the inner product of a and b.
//
// Implementation:
//   - Stage 1: validate a non-nil and len(b) == len(a).
//   - Stage 2: single fixed-order pass accumulating a[i]*b[i].
//
// Errors: ErrNilMatrix, ErrCardinality.
// Complexity: Time O(n), Space O(1).
func Dot(a, b Vector) (float64, error) {
	if a == nil {
		return 0, opErrorf("Dot", ErrNilMatrix)
	}
	if err := ValidateVecLen(b, a.Len()); err != nil {
		return 0, opErrorf("Dot", err)
	}

	var acc float64
	n := a.Len()
	for i := 0; i < n; i++ {
		acc += a.AtQuick(i) * b.AtQuick(i)
	}

	return acc, nil
}

// AggregateVector folds v into a scalar: starting from 0, each element is
// mapped and combined left to right, result = combiner(result, mapper(v[i]))
// for i = 0..n-1. The fixed seed and order are part of the contract — the
// matrix-level two-pass Aggregate relies on them, and non-associative
// combiners observe exactly this sequence.
//
// Complexity: Time O(n), Space O(1).
func AggregateVector(v Vector, combiner BinaryFunc, mapper UnaryFunc) float64 {
	var result float64
	n := v.Len()
	for i := 0; i < n; i++ {
		result = combiner(result, mapper(v.AtQuick(i)))
	}

	return result
}
