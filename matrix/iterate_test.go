// SPDX-License-Identifier: MIT
// Iteration protocol: lazy single-pass slice traversal.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numat/matrix"
)

func TestIterateAll_RowAxisDefault(t *testing.T) {
	m := MustFromData(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, 3, m.NumSlices())

	it := m.IterateAll()
	var indices []int
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		indices = append(indices, s.Index)
		require.Equal(t, 2, s.Vec.Len())
		require.Equal(t, MustAt(t, m, s.Index, 0), s.Vec.AtQuick(0))
	}
	require.Equal(t, []int{0, 1, 2}, indices)

	// Exhausted stays exhausted.
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.Next()
	require.False(t, ok)
}

func TestIterateAll_ColumnAxis(t *testing.T) {
	m := MustFromData(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.WithColumnSlices())
	require.Equal(t, 3, m.NumSlices())

	it := m.IterateAll()
	s, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 0, s.Index)
	require.Equal(t, 2, s.Vec.Len())
	require.Equal(t, 1.0, s.Vec.AtQuick(0))
	require.Equal(t, 4.0, s.Vec.AtQuick(1))

	count := 1
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	require.Equal(t, 3, count)
}

func TestIterateAll_SlicesAliasParent(t *testing.T) {
	m := MustFromData(t, [][]float64{{1, 2}, {3, 4}})

	it := m.IterateAll()
	s, ok := it.Next()
	require.True(t, ok)
	s.Vec.SetQuick(1, 20)
	require.Equal(t, 20.0, MustAt(t, m, 0, 1))

	// Mutations made after a slice was yielded are still visible through it.
	require.NoError(t, m.Set(0, 0, 10))
	require.Equal(t, 10.0, s.Vec.AtQuick(0))
}

func TestIterateAll_FreshIteratorsAreIndependent(t *testing.T) {
	m := MustDense(t, 2, 2)

	first := m.IterateAll()
	_, ok := first.Next()
	require.True(t, ok)

	second := m.IterateAll()
	s, ok := second.Next()
	require.True(t, ok)
	require.Equal(t, 0, s.Index)
}

func TestIterateAll_ColumnSlicesMaterializeSparseRowsOnWrite(t *testing.T) {
	m := MustSparse(t, 3, 2, matrix.WithColumnSlices())
	s, ok := m.Storage().(*matrix.SparseRowStorage)
	require.True(t, ok)

	it := m.IterateAll()
	sl, okNext := it.Next()
	require.True(t, okNext)
	require.Equal(t, 0, s.NumAllocatedRows())

	require.NoError(t, sl.Vec.Set(1, 5))
	require.Equal(t, 1, s.NumAllocatedRows())
	require.Equal(t, 5.0, MustAt(t, m, 1, 0))
}
