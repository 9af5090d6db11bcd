// SPDX-License-Identifier: MIT
// Bulk assignment and elementwise mapping.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numat/matrix"
)

func TestAssignScalar(t *testing.T) {
	m := MustDense(t, 2, 3)
	out := m.AssignScalar(2.5)
	require.Same(t, m, out)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, 2.5, MustAt(t, m, i, j))
		}
	}

	// Generic path must agree with the dense fast path.
	h := MustHidden(t, MustDense(t, 2, 3))
	h.AssignScalar(2.5)
	RequireEqualCells(t, m, h, 0)
}

func TestAssignData(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.AssignData([][]float64{{1, 2}, {3, 4}}))
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))
}

func TestAssignData_RejectsRaggedBeforeWriting(t *testing.T) {
	m := MustDense(t, 2, 2)
	m.AssignScalar(7)

	// Second row too short: the whole write is rejected, the first row
	// must not have been applied.
	err := m.AssignData([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrCardinality)
	require.Equal(t, 7.0, MustAt(t, m, 0, 0))

	err = m.AssignData([][]float64{{1, 2}})
	require.ErrorIs(t, err, matrix.ErrCardinality)

	err = m.AssignData([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.ErrorIs(t, err, matrix.ErrCardinality)
}

func TestAssign_CopiesCells(t *testing.T) {
	src := MustFromData(t, [][]float64{{1, 2}, {3, 4}})
	dst := MustDense(t, 2, 2)

	require.NoError(t, dst.Assign(src))
	RequireEqualCells(t, src, dst, 0)

	// Assign copies values, it does not alias.
	require.NoError(t, src.Set(0, 0, 99))
	require.Equal(t, 1.0, MustAt(t, dst, 0, 0))

	err := dst.Assign(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrCardinality)
	err = dst.Assign(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAssignWith(t *testing.T) {
	a := MustFromData(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromData(t, [][]float64{{10, 20}, {30, 40}})

	require.NoError(t, a.AssignWith(b, matrix.PlusFn))
	require.Equal(t, 11.0, MustAt(t, a, 0, 0))
	require.Equal(t, 44.0, MustAt(t, a, 1, 1))
	// The right operand is untouched.
	require.Equal(t, 10.0, MustAt(t, b, 0, 0))

	err := a.AssignWith(MustDense(t, 3, 2), matrix.PlusFn)
	require.ErrorIs(t, err, matrix.ErrCardinality)
}

func TestApply(t *testing.T) {
	m := MustFromData(t, [][]float64{{1, -2}, {-3, 4}})
	out := m.Apply(func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	})
	require.Same(t, m, out)
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))
}
