// SPDX-License-Identifier: MIT

// Package matrix - sparse-by-row storage.
//
// Purpose:
//   - Back matrices whose rows are mostly absent: a row costs nothing
//     until its first write, and an unwritten row reads as zeros.
//   - Report absent rows as nil from RowQuick, which is what drives the
//     transpose view's lazy materialization path.
//
// Complexity quicksheet:
//   - AtQuick: O(1) map lookup; SetQuick: O(1) amortized (allocates the
//     row on first write, O(cols)); RowQuick: O(1); ColQuick: O(rows)
//     copy; CloneStorage: O(allocated cells).

package matrix

// SparseRowStorage allocates rows on demand. The zero state of every row
// is "absent": reads see zeros, RowQuick returns nil, and installing a
// vector via AssignRowQuick adopts it as the live row.
type SparseRowStorage struct {
	r, c int
	rows map[int]Vector // allocated rows only; absent keys read as zeros
}

var _ Storage = (*SparseRowStorage)(nil)

// newSparseRowStorage allocates an all-absent sparse backend; assumes a
// validated positive shape.
func newSparseRowStorage(rows, cols int) *SparseRowStorage {
	return &SparseRowStorage{r: rows, c: cols, rows: make(map[int]Vector)}
}

// Rows returns the row count. Complexity: O(1).
func (s *SparseRowStorage) Rows() int { return s.r }

// Cols returns the column count. Complexity: O(1).
func (s *SparseRowStorage) Cols() int { return s.c }

// AtQuick reads (row, col); an absent row reads as 0.
func (s *SparseRowStorage) AtQuick(row, col int) float64 {
	v, ok := s.rows[row]
	if !ok {
		return 0
	}

	return v.AtQuick(col)
}

// SetQuick writes (row, col), materializing the row on first write.
// Reads never allocate; only writes do.
func (s *SparseRowStorage) SetQuick(row, col int, val float64) {
	v, ok := s.rows[row]
	if !ok {
		v = newDenseVector(s.c)
		s.rows[row] = v
	}
	v.SetQuick(col, val)
}

// Like returns a fresh all-absent SparseRowStorage of the given shape.
func (s *SparseRowStorage) Like(rows, cols int) Storage { return newSparseRowStorage(rows, cols) }

// RowQuick returns the live row vector, or nil while the row is
// unallocated. Writes through a returned vector land in the matrix.
func (s *SparseRowStorage) RowQuick(row int) Vector { return s.rows[row] }

// ColQuick exposes column `col` as a live proxy. Reads over absent rows
// yield 0; writes go through SetQuick and materialize the touched row.
func (s *SparseRowStorage) ColQuick(col int) Vector {
	return &ColumnView{s: s, col: col}
}

// AssignRowQuick adopts v as the live row `row`. This is the lazy
// materialization hook: the installed vector is aliased, so later writes
// through it are visible in the matrix.
func (s *SparseRowStorage) AssignRowQuick(row int, v Vector) { s.rows[row] = v }

// NumAllocatedRows reports how many rows have been materialized; useful
// to assert that reads stayed allocation-free.
func (s *SparseRowStorage) NumAllocatedRows() int { return len(s.rows) }

// CloneStorage deep-copies every allocated row; absent rows stay absent
// in the clone.
func (s *SparseRowStorage) CloneStorage() Storage {
	cp := newSparseRowStorage(s.r, s.c)
	for i, v := range s.rows {
		nv := newDenseVector(s.c)
		for j := 0; j < s.c; j++ {
			nv.data[j] = v.AtQuick(j)
		}
		cp.rows[i] = nv
	}

	return cp
}
