// SPDX-License-Identifier: MIT

// Package matrix: recursive determinant by cofactor expansion. This is a
// correctness-first kernel: the O(n!) recursion and its per-call scratch
// minors define the reference numerical behavior on singular and
// ill-conditioned inputs, so it is deliberately NOT replaced with an
// LU/decomposition determinant.

package matrix

// opDeterminant tags determinant errors.
const opDeterminant = "Determinant"

// Determinant computes det(m) by cofactor expansion along row 0.
//
// Implementation:
//   - Stage 1: validate square shape.
//   - Stage 2: base cases — 1×1 returns the single cell, 2×2 returns
//     a·d − b·c exactly.
//   - Stage 3: for each column i, build the (n−1)×(n−1) minor (row 0 and
//     column i deleted) into a fresh dense scratch matrix, recurse, and
//     accumulate m[0,i] · sign · det(minor) with the sign alternating
//     from +1.
//
// Behavior highlights:
//   - Scratch minors are always dense regardless of the receiver's family.
//   - Fixed expansion order makes results reproducible bit-for-bit.
//
// Errors: ErrCardinality when the matrix is not square.
// Complexity: Time O(n!), Space O(n²) per recursion level.
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, opErrorf(opDeterminant, err)
	}

	return m.determinant(), nil
}

// determinant is the unchecked recursion body; assumes a square receiver.
func (m *Matrix) determinant() float64 {
	n := m.Rows()
	if n == 1 {
		return m.storage.AtQuick(0, 0)
	}
	if n == 2 {
		return m.storage.AtQuick(0, 0)*m.storage.AtQuick(1, 1) -
			m.storage.AtQuick(0, 1)*m.storage.AtQuick(1, 0)
	}

	sign := 1.0
	var ret float64
	for i := 0; i < n; i++ {
		// Fresh dense scratch minor: row 0 and column i deleted.
		minor := &Matrix{storage: newDenseStorage(n-1, n-1), sliceAxis: m.sliceAxis}
		for j := 1; j < n; j++ {
			skipped := false // column offset flag, set once k passes i
			for k := 0; k < n; k++ {
				if k == i {
					skipped = true
					continue
				}
				dst := k
				if skipped {
					dst = k - 1
				}
				minor.storage.SetQuick(j-1, dst, m.storage.AtQuick(j, k))
			}
		}
		ret += m.storage.AtQuick(0, i) * sign * minor.determinant()
		sign = -sign
	}

	return ret
}
