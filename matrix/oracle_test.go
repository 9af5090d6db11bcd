// SPDX-License-Identifier: MIT
// Cross-checks against gonum's mat64 as an independent reference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numat/matrix"
)

// oracleTol absorbs the rounding gap between cofactor expansion and
// mat64's LU-based determinant on random inputs.
const oracleTol = 1e-8

// randomPair builds the same random r×c matrix in both worlds.
func randomPair(t *testing.T, rng *rand.Rand, r, c int) (*matrix.Matrix, *mat64.Dense) {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*4 - 2
	}
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.SetQuick(i, j, data[i*c+j])
		}
	}

	return m, mat64.NewDense(r, c, data)
}

func TestTimes_AgainstMat64(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	a, ra := randomPair(t, rng, 4, 3)
	b, rb := randomPair(t, rng, 3, 5)

	got, err := a.Times(b)
	require.NoError(t, err)

	var want mat64.Dense
	want.Mul(ra, rb)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), oracleTol)
		}
	}
}

func TestTranspose_AgainstMat64(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	a, ra := randomPair(t, rng, 3, 5)
	got := a.Transpose()
	want := mat64.DenseCopyOf(ra.T())

	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, want.At(i, j), MustAt(t, got, i, j))
		}
	}
}

func TestDeterminant_AgainstMat64(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))

	for _, n := range []int{2, 3, 4, 5} {
		a, ra := randomPair(t, rng, n, n)
		got, err := a.Determinant()
		require.NoError(t, err)
		require.InDelta(t, mat64.Det(ra), got, oracleTol, "n=%d", n)
	}
}

func TestTimesVec_AgainstMat64(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	a, ra := randomPair(t, rng, 4, 3)
	vals := []float64{0.5, -1.25, 2}
	v := matrix.NewDenseVectorFrom(vals)

	got, err := a.TimesVec(v)
	require.NoError(t, err)

	var want mat64.Dense
	want.Mul(ra, mat64.NewDense(3, 1, vals))
	for i := 0; i < 4; i++ {
		require.InDelta(t, want.At(i, 0), got.AtQuick(i), oracleTol)
	}
}
