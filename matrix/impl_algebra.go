// SPDX-License-Identifier: MIT

// Package matrix: the generic algebra engine — arithmetic, aggregation and
// transpose, implemented once against the primitive contract so every
// backend inherits identical semantics. Operands are never mutated: the
// scalar/elementwise operations clone the receiver and mutate the clone,
// the product operations materialize fresh results via the left operand's
// same-family factory.

package matrix

// Operation tags for error wrapping.
const (
	opPlus         = "Plus"
	opMinus        = "Minus"
	opTimes        = "Times"
	opTimesVec     = "TimesVec"
	opTimesSquared = "TimesSquared"
)

// Plus returns a fresh matrix holding the elementwise sum m + other.
// The result is a clone of the receiver (same family, copied label maps)
// with other folded in; neither operand is mutated.
//
// Errors: ErrNilMatrix, ErrCardinality (shape mismatch).
// Determinism: fixed row-major order.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) Plus(other *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(other); err != nil {
		return nil, opErrorf(opPlus, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return nil, opErrorf(opPlus, err)
	}

	result := m.Clone()
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.storage.SetQuick(i, j, result.storage.AtQuick(i, j)+other.storage.AtQuick(i, j))
		}
	}

	return result, nil
}

// PlusScalar returns a fresh matrix holding m + x in every cell.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) PlusScalar(x float64) *Matrix {
	result := m.Clone()
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.storage.SetQuick(i, j, result.storage.AtQuick(i, j)+x)
		}
	}

	return result
}

// Minus returns a fresh matrix holding the elementwise difference
// m - other; neither operand is mutated.
//
// Errors: ErrNilMatrix, ErrCardinality (shape mismatch).
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) Minus(other *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(other); err != nil {
		return nil, opErrorf(opMinus, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return nil, opErrorf(opMinus, err)
	}

	result := m.Clone()
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.storage.SetQuick(i, j, result.storage.AtQuick(i, j)-other.storage.AtQuick(i, j))
		}
	}

	return result, nil
}

// TimesScalar returns a fresh matrix holding m * x in every cell.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) TimesScalar(x float64) *Matrix {
	result := m.Clone()
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.storage.SetQuick(i, j, result.storage.AtQuick(i, j)*x)
		}
	}

	return result
}

// Divide returns a fresh matrix holding m / x in every cell. Division by
// zero follows float64 semantics (±Inf, NaN); no policy is enforced here.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) Divide(x float64) *Matrix {
	result := m.Clone()
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.storage.SetQuick(i, j, result.storage.AtQuick(i, j)/x)
		}
	}

	return result
}

// Times computes the matrix product m × other with the naive triple loop.
// Requires m.Cols() == other.Rows(); the result has shape
// (m.Rows(), other.Cols()) and lives in the receiver's storage family.
//
// Implementation:
//   - Stage 1: validate operand and inner dimensions.
//   - Stage 2: fixed i→j→k loops accumulating into a fresh result; a flat
//     fast path runs when both operands and the result are dense.
//
// Errors: ErrNilMatrix, ErrCardinality (inner mismatch).
// Complexity: Time O(rows*inner*cols), Space O(rows*cols).
func (m *Matrix) Times(other *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(other); err != nil {
		return nil, opErrorf(opTimes, err)
	}
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, opErrorf(opTimes, err)
	}

	rows, inner, cols := m.Rows(), m.Cols(), other.Cols()
	result := &Matrix{storage: m.storage.Like(rows, cols), sliceAxis: m.sliceAxis}

	// Fast path: all three dense — accumulate on flat buffers.
	if da, okA := m.storage.(*DenseStorage); okA {
		if db, okB := other.storage.(*DenseStorage); okB {
			if dr, okR := result.storage.(*DenseStorage); okR {
				// No zero-skip here: 0 * Inf and 0 * NaN must contribute
				// NaN exactly as they do on the generic path.
				var av float64
				for i := 0; i < rows; i++ {
					baseA := i * inner
					baseR := i * cols
					for k := 0; k < inner; k++ {
						av = da.data[baseA+k]
						baseB := k * cols
						for j := 0; j < cols; j++ {
							dr.data[baseR+j] += av * db.data[baseB+j]
						}
					}
				}

				return result, nil
			}
		}
	}

	// Generic path through the primitive contract.
	var sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum = 0
			for k := 0; k < inner; k++ {
				sum += m.storage.AtQuick(i, k) * other.storage.AtQuick(k, j)
			}
			result.storage.SetQuick(i, j, sum)
		}
	}

	return result, nil
}

// TimesVec computes the matrix-vector product m · v as one dot product per
// row. Requires m.Cols() == v.Len(); the result is a dense vector of
// length m.Rows().
//
// Errors: ErrNilMatrix, ErrCardinality.
// Complexity: Time O(rows*cols), Space O(rows).
func (m *Matrix) TimesVec(v Vector) (Vector, error) {
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, opErrorf(opTimesVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	w := newDenseVector(rows)
	var acc float64
	for i := 0; i < rows; i++ {
		acc = 0
		for j := 0; j < cols; j++ {
			acc += m.storage.AtQuick(i, j) * v.AtQuick(j)
		}
		w.SetQuick(i, acc)
	}

	return w, nil
}

// TimesSquared computes transpose(m) · m · v without materializing
// transpose(m) · m: for each row r_i it accumulates r_i * dot(r_i, v)
// into the result, skipping rows whose dot product is exactly zero. The
// zero-skip matters for sparse inputs in normal-equation workloads.
// Requires m.Cols() == v.Len(); the result is a dense vector of length
// m.Cols().
//
// Errors: ErrNilMatrix, ErrCardinality.
// Complexity: Time O(rows*cols), Space O(cols).
func (m *Matrix) TimesSquared(v Vector) (Vector, error) {
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, opErrorf(opTimesSquared, err)
	}

	rows, cols := m.Rows(), m.Cols()
	w := newDenseVector(cols)
	var d float64
	for i := 0; i < rows; i++ {
		// dot(r_i, v) through the primitive contract.
		d = 0
		for j := 0; j < cols; j++ {
			d += m.storage.AtQuick(i, j) * v.AtQuick(j)
		}
		if d == 0 {
			continue // a zero projection adds nothing
		}
		for j := 0; j < cols; j++ {
			w.data[j] += m.storage.AtQuick(i, j) * d
		}
	}

	return w, nil
}

// Transpose returns a fresh matrix of swapped shape with
// result[c][r] = m[r][c] for every cell, in the receiver's storage family.
// The original is never mutated; label bindings are not carried over.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.Rows(), m.Cols()
	result := &Matrix{storage: m.storage.Like(cols, rows), sliceAxis: m.sliceAxis}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.storage.SetQuick(j, i, m.storage.AtQuick(i, j))
		}
	}

	return result
}

// ZSum returns the sum over all cells.
//
// Determinism: fixed row-major accumulation order.
// Complexity: Time O(rows*cols), Space O(1).
func (m *Matrix) ZSum() float64 {
	var sum float64

	// Fast path: flat walk over the dense buffer.
	if ds, ok := m.storage.(*DenseStorage); ok {
		for _, x := range ds.data {
			sum += x
		}

		return sum
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum += m.storage.AtQuick(i, j)
		}
	}

	return sum
}

// AggregateRows applies f to each row view and collects the results into
// a dense vector of length m.Rows().
//
// Complexity: Time O(rows * cost(f)), Space O(rows).
func (m *Matrix) AggregateRows(f VectorFunc) Vector {
	rows := m.Rows()
	r := newDenseVector(rows)
	for i := 0; i < rows; i++ {
		r.SetQuick(i, f(&RowView{s: m.storage, row: i}))
	}

	return r
}

// AggregateColumns applies f to each column view and collects the results
// into a dense vector of length m.Cols().
//
// Complexity: Time O(cols * cost(f)), Space O(cols).
func (m *Matrix) AggregateColumns(f VectorFunc) Vector {
	cols := m.Cols()
	r := newDenseVector(cols)
	for j := 0; j < cols; j++ {
		r.SetQuick(j, f(&ColumnView{s: m.storage, col: j}))
	}

	return r
}

// Aggregate reduces the whole matrix to a scalar in two passes: first each
// row is folded to a scalar with (combiner, mapper), producing a dense
// vector of length m.Rows(); then that vector is folded with combiner and
// the identity mapper. The two-pass order is a contract, not an
// implementation detail — non-associative combiners observe exactly this
// sequence, which differs from a single flat fold over all cells.
//
// Complexity: Time O(rows*cols), Space O(rows).
func (m *Matrix) Aggregate(combiner BinaryFunc, mapper UnaryFunc) float64 {
	perRow := m.AggregateRows(func(v Vector) float64 {
		return AggregateVector(v, combiner, mapper)
	})

	return AggregateVector(perRow, combiner, IdentityFn)
}
