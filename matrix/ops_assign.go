// SPDX-License-Identifier: MIT

// Package matrix: the in-place assignment family. Every operation here
// mutates the receiver through the primitive contract only, with all shape
// validation done before the first write (validate-then-loop), so a
// rejected call leaves no partial state.

package matrix

// Operation tags for error wrapping.
const (
	opAssign     = "Assign"
	opAssignData = "AssignData"
	opAssignWith = "AssignWith"
)

// AssignScalar overwrites every cell with v and returns the receiver for
// chaining.
//
// Determinism: fixed row-major order.
// Complexity: Time O(rows*cols), Space O(1).
func (m *Matrix) AssignScalar(v float64) *Matrix {
	rows, cols := m.Rows(), m.Cols()

	// Fast path: flat overwrite on the dense buffer.
	if ds, ok := m.storage.(*DenseStorage); ok {
		for idx := range ds.data {
			ds.data[idx] = v
		}

		return m
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.storage.SetQuick(i, j, v)
		}
	}

	return m
}

// AssignData overwrites the matrix cell-by-cell from a 2-D array. The
// outer length must equal the row count exactly, and every row's length
// must equal the column count exactly; all lengths are checked before any
// write.
//
// Errors: ErrCardinality wrapped with (expected, actual).
// Complexity: Time O(rows*cols), Space O(1).
func (m *Matrix) AssignData(values [][]float64) error {
	rows, cols := m.Rows(), m.Cols()
	if len(values) != rows {
		return opErrorf(opAssignData, cardinalityErrorf(rows, len(values)))
	}
	for i := 0; i < rows; i++ {
		if len(values[i]) != cols {
			return opErrorf(opAssignData, cardinalityErrorf(cols, len(values[i])))
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.storage.SetQuick(i, j, values[i][j])
		}
	}

	return nil
}

// Assign overwrites the receiver elementwise from other. Shapes must be
// identical.
//
// Errors: ErrNilMatrix, ErrCardinality.
// Complexity: Time O(rows*cols), Space O(1).
func (m *Matrix) Assign(other *Matrix) error {
	if err := ValidateNotNil(other); err != nil {
		return opErrorf(opAssign, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return opErrorf(opAssign, err)
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.storage.SetQuick(i, j, other.storage.AtQuick(i, j))
		}
	}

	return nil
}

// AssignWith combines the receiver elementwise with other through fn:
// m[i,j] = fn(m[i,j], other[i,j]). Shapes must be identical; other is
// never mutated.
//
// Errors: ErrNilMatrix, ErrCardinality.
// Complexity: Time O(rows*cols), Space O(1).
func (m *Matrix) AssignWith(other *Matrix, fn BinaryFunc) error {
	if err := ValidateNotNil(other); err != nil {
		return opErrorf(opAssignWith, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return opErrorf(opAssignWith, err)
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.storage.SetQuick(i, j, fn(m.storage.AtQuick(i, j), other.storage.AtQuick(i, j)))
		}
	}

	return nil
}

// Apply transforms every cell in place: m[i,j] = fn(m[i,j]). Returns the
// receiver for chaining.
//
// Determinism: fixed row-major order.
// Complexity: Time O(rows*cols), Space O(1).
func (m *Matrix) Apply(fn UnaryFunc) *Matrix {
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.storage.SetQuick(i, j, fn(m.storage.AtQuick(i, j)))
		}
	}

	return m
}
