// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for nil/shape/index checks.
//   - Keep kernels minimal by delegating their guard logic here.
//   - Return wrapped sentinels so call sites can add an operation tag and
//     callers still match via errors.Is.
//
// All checks are pure, deterministic and allocation-free.

package matrix

// ValidateNotNil ensures m is a usable matrix (non-nil with storage).
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil || m.storage == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have identical shape, rows first then
// columns, mirroring the order bulk operations report mismatches in.
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() {
		return cardinalityErrorf(a.Rows(), b.Rows())
	}
	if a.Cols() != b.Cols() {
		return cardinalityErrorf(a.Cols(), b.Cols())
	}

	return nil
}

// ValidateSquare ensures m is square. Returns a cardinality violation with
// (rows, cols) otherwise. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.Rows() != m.Cols() {
		return cardinalityErrorf(m.Rows(), m.Cols())
	}

	return nil
}

// ValidateRowIndex ensures 0 <= row < m.Rows(). Complexity: O(1).
func ValidateRowIndex(m *Matrix, row int) error {
	if row < 0 || row >= m.Rows() {
		return indexErrorf(row, m.Rows())
	}

	return nil
}

// ValidateColIndex ensures 0 <= col < m.Cols(). Complexity: O(1).
func ValidateColIndex(m *Matrix, col int) error {
	if col < 0 || col >= m.Cols() {
		return indexErrorf(col, m.Cols())
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(v Vector, n int) error {
	if v == nil {
		return ErrNilMatrix
	}
	if v.Len() != n {
		return cardinalityErrorf(n, v.Len())
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for a matrix product.
// Assumes both are non-nil. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.Cols() != b.Rows() {
		return cardinalityErrorf(a.Cols(), b.Rows())
	}

	return nil
}
