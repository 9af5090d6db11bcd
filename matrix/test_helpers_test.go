// SPDX-License-Identifier: MIT
// Package matrix_test: shared fixtures.
//
// Purpose:
//   - Small, deterministic helpers to build matrices and read cells
//     without error-handling boilerplate in every test.
//   - hideStorage masks the concrete backend type so kernels take their
//     generic (interface) path instead of the dense fast path.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numat/matrix"
)

// floatTol is the tolerance for floating comparisons in property tests.
const floatTol = 1e-9

// hideStorage wraps any Storage to defeat *DenseStorage type assertions,
// forcing kernels onto the generic path. Wrap only the operand whose path
// you want to de-optimize.
type hideStorage struct{ matrix.Storage }

// MustDense allocates an r×c dense matrix or aborts the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSparse allocates an r×c sparse-by-row matrix or aborts the test.
func MustSparse(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewSparseRows(r, c, opts...)
	if err != nil {
		t.Fatalf("NewSparseRows(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromData builds a dense matrix from values or aborts the test.
func MustFromData(t *testing.T, values [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDenseFromData(values, opts...)
	if err != nil {
		t.Fatalf("NewDenseFromData: %v", err)
	}

	return m
}

// MustIdentity builds the n×n identity or aborts the test.
func MustIdentity(t *testing.T, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads a checked cell or aborts the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.Get(i, j)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", i, j, err)
	}

	return v
}

// MustHidden wraps m's storage in hideStorage and rebuilds the matrix, so
// every kernel sees an opaque backend.
func MustHidden(t *testing.T, m *matrix.Matrix) *matrix.Matrix {
	t.Helper()
	h, err := matrix.New(hideStorage{m.Storage()})
	if err != nil {
		t.Fatalf("New(hidden): %v", err)
	}

	return h
}

// RequireEqualCells fails unless a and b agree elementwise within tol.
func RequireEqualCells(t *testing.T, a, b *matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			diff := av - bv
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				t.Fatalf("cell (%d,%d): %v vs %v", i, j, av, bv)
			}
		}
	}
}
