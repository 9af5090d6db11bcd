// SPDX-License-Identifier: MIT
// Package matrix — public constructors and facades.
//
// Purpose:
//   - Provide thin, well-documented entry points that compose the
//     reference backends with the Matrix accessor layer.
//   - Keep names explicit and intention-revealing; each facade delegates
//     to the canonical implementation without duplicating logic.

package matrix

// NewDense returns a rows×cols zero matrix on the row-major dense backend.
//
// Errors: ErrInvalidShape when rows <= 0 or cols <= 0.
// Complexity: O(rows*cols) zero-init.
func NewDense(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf("NewDense", ErrInvalidShape)
	}

	return New(newDenseStorage(rows, cols), opts...)
}

// NewSparseRows returns a rows×cols matrix on the sparse-by-row backend:
// every row is absent (reads as zeros) until first written.
//
// Errors: ErrInvalidShape when rows <= 0 or cols <= 0.
// Complexity: O(1).
func NewSparseRows(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf("NewSparseRows", ErrInvalidShape)
	}

	return New(newSparseRowStorage(rows, cols), opts...)
}

// NewDenseFromData builds a dense matrix shaped by values and fills it
// cell-by-cell. Every row of values must have the same length.
//
// Errors: ErrInvalidShape (empty input), ErrCardinality (ragged rows).
// Complexity: O(rows*cols).
func NewDenseFromData(values [][]float64, opts ...Option) (*Matrix, error) {
	rows := len(values)
	if rows == 0 || len(values[0]) == 0 {
		return nil, opErrorf("NewDenseFromData", ErrInvalidShape)
	}
	cols := len(values[0])
	for i := 1; i < rows; i++ {
		if len(values[i]) != cols {
			return nil, opErrorf("NewDenseFromData", cardinalityErrorf(cols, len(values[i])))
		}
	}

	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.AssignData(values); err != nil {
		return nil, err
	}

	return m, nil
}

// NewIdentity returns the n×n dense identity matrix.
//
// Errors: ErrInvalidShape when n <= 0.
// Complexity: O(n²) zero-init + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, opErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.SetQuick(i, i, 1)
	}

	return m, nil
}
