// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major flat buffer).
//
// Purpose:
//   - Provide a cache-friendly row-major backend with the explicit index
//     formula row*cols + col.
//   - Expose rows as aliasing sub-slices, so RowQuick is a live window
//     into the buffer; columns are not contiguous and are assembled as
//     copies.
//
// Complexity quicksheet:
//   - newDenseStorage: O(r*c) zero-init; AtQuick/SetQuick: O(1);
//     RowQuick: O(1) no copy; ColQuick: O(r) copy; CloneStorage: O(r*c).

package matrix

// DenseStorage is the row-major reference backend: a flat float64 buffer
// of length rows*cols with offset row*cols + col.
type DenseStorage struct {
	r, c int
	data []float64
}

var _ Storage = (*DenseStorage)(nil)

// newDenseStorage allocates a zeroed dense backend; assumes a validated
// positive shape (facade constructors validate).
func newDenseStorage(rows, cols int) *DenseStorage {
	return &DenseStorage{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. Complexity: O(1).
func (s *DenseStorage) Rows() int { return s.r }

// Cols returns the column count. Complexity: O(1).
func (s *DenseStorage) Cols() int { return s.c }

// AtQuick reads the flat buffer at row*cols + col. No bounds check.
func (s *DenseStorage) AtQuick(row, col int) float64 { return s.data[row*s.c+col] }

// SetQuick writes the flat buffer at row*cols + col. No bounds check.
func (s *DenseStorage) SetQuick(row, col int, v float64) { s.data[row*s.c+col] = v }

// Like returns a fresh zeroed DenseStorage of the given shape.
func (s *DenseStorage) Like(rows, cols int) Storage { return newDenseStorage(rows, cols) }

// RowQuick exposes row `row` as a live sub-slice of the buffer: writes
// through the returned vector land in the matrix.
func (s *DenseStorage) RowQuick(row int) Vector {
	return wrapDenseVector(s.data[row*s.c : (row+1)*s.c])
}

// ColQuick exposes column `col` as a live strided proxy: writes through
// the returned vector land in the matrix. Dense columns are not
// contiguous, so the proxy goes through SetQuick/AtQuick per element.
func (s *DenseStorage) ColQuick(col int) Vector {
	return &ColumnView{s: s, col: col}
}

// AssignRowQuick copies v elementwise into row `row`. The vector itself is
// not retained; dense rows are always buffer-backed.
func (s *DenseStorage) AssignRowQuick(row int, v Vector) {
	base := row * s.c
	for j := 0; j < s.c; j++ {
		s.data[base+j] = v.AtQuick(j)
	}
}

// CloneStorage returns an independent deep copy of the buffer.
func (s *DenseStorage) CloneStorage() Storage {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &DenseStorage{r: s.r, c: s.c, data: cp}
}
