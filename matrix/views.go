// SPDX-License-Identifier: MIT

// Package matrix: the view layer. Views are vectors (or a sub-matrix
// window) that alias a parent matrix's cells instead of owning storage:
// each view holds a storage handle plus a small descriptor (axis, offset),
// and every read/write goes back through the primitive contract, so
// mutations are visible on both sides immediately.

package matrix

// Error context tags for view constructors.
const (
	ctxViewRow    = "ViewRow"
	ctxViewColumn = "ViewColumn"
	ctxViewPart   = "ViewPart"
)

// RowView aliases one row of a parent matrix. Element access proxies
// straight to the parent's quick accessors at the fixed row; the checked
// At/Set validate only the view-local index.
type RowView struct {
	s   Storage
	row int
}

var _ Vector = (*RowView)(nil)

// ViewRow returns a live view of row `row`. Writes through the view mutate
// the parent. Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *Matrix) ViewRow(row int) (*RowView, error) {
	if err := ValidateRowIndex(m, row); err != nil {
		return nil, opErrorf(ctxViewRow, err)
	}

	return &RowView{s: m.storage, row: row}, nil
}

// Len returns the parent's column count.
func (v *RowView) Len() int { return v.s.Cols() }

// AtQuick reads parent cell (row, i) unchecked.
func (v *RowView) AtQuick(i int) float64 { return v.s.AtQuick(v.row, i) }

// SetQuick writes parent cell (row, i) unchecked.
func (v *RowView) SetQuick(i int, val float64) { v.s.SetQuick(v.row, i, val) }

// At is the checked read over the view's own length.
func (v *RowView) At(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, indexErrorf(i, v.Len())
	}

	return v.s.AtQuick(v.row, i), nil
}

// Set is the checked write over the view's own length.
func (v *RowView) Set(i int, val float64) error {
	if i < 0 || i >= v.Len() {
		return indexErrorf(i, v.Len())
	}
	v.s.SetQuick(v.row, i, val)

	return nil
}

// Like returns a fresh dense zero vector; a view never owns storage, so
// its "same family" is the dense vector.
func (v *RowView) Like(n int) Vector { return newDenseVector(n) }

// ColumnView aliases one column of a parent matrix; the direct-stride
// counterpart of RowView.
type ColumnView struct {
	s   Storage
	col int
}

var _ Vector = (*ColumnView)(nil)

// ViewColumn returns a live view of column `col`. Writes through the view
// mutate the parent. Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *Matrix) ViewColumn(col int) (*ColumnView, error) {
	if err := ValidateColIndex(m, col); err != nil {
		return nil, opErrorf(ctxViewColumn, err)
	}

	return &ColumnView{s: m.storage, col: col}, nil
}

// Len returns the parent's row count.
func (v *ColumnView) Len() int { return v.s.Rows() }

// AtQuick reads parent cell (i, col) unchecked.
func (v *ColumnView) AtQuick(i int) float64 { return v.s.AtQuick(i, v.col) }

// SetQuick writes parent cell (i, col) unchecked.
func (v *ColumnView) SetQuick(i int, val float64) { v.s.SetQuick(i, v.col, val) }

// At is the checked read over the view's own length.
func (v *ColumnView) At(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, indexErrorf(i, v.Len())
	}

	return v.s.AtQuick(i, v.col), nil
}

// Set is the checked write over the view's own length.
func (v *ColumnView) Set(i int, val float64) error {
	if i < 0 || i >= v.Len() {
		return indexErrorf(i, v.Len())
	}
	v.s.SetQuick(i, v.col, val)

	return nil
}

// Like returns a fresh dense zero vector.
func (v *ColumnView) Like(n int) Vector { return newDenseVector(n) }

// TransposeView crosses the parent's slice axis: with rowToColumn set its
// i-th element lives in the parent's i-th ROW at the fixed offset (so the
// view as a whole reads like a column), and vice versa. Element reads
// fetch the parent's whole row/column vector and extract the offset; an
// absent vector (sparse backends) reads as 0. Writes into an absent slot
// materialize a fresh dense vector of the right width and install it via
// the primitive row assignment before writing through it.
//
// Traversal is strictly element-by-element; there is no bulk skip over
// empty regions.
type TransposeView struct {
	s           Storage
	offset      int  // fixed index inside each fetched vector
	rowToColumn bool // true: iterate parent rows; false: iterate parent columns
	length      int  // view length (parent rows or cols)
	width       int  // length of lazily created vectors (the other axis)
}

var _ Vector = (*TransposeView)(nil)

// NewTransposeView builds a transpose view over m. With rowToColumn true
// the view has length m.Rows() and offset addresses a column; otherwise
// length m.Cols() and offset addresses a row.
//
// Errors: ErrNilMatrix, ErrIndexOutOfRange (offset outside the crossed
// axis). Complexity: O(1).
func NewTransposeView(m *Matrix, offset int, rowToColumn bool) (*TransposeView, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("NewTransposeView", err)
	}
	if rowToColumn {
		if err := ValidateColIndex(m, offset); err != nil {
			return nil, opErrorf("NewTransposeView", err)
		}

		return &TransposeView{s: m.storage, offset: offset, rowToColumn: true, length: m.Rows(), width: m.Cols()}, nil
	}
	if err := ValidateRowIndex(m, offset); err != nil {
		return nil, opErrorf("NewTransposeView", err)
	}

	return &TransposeView{s: m.storage, offset: offset, rowToColumn: false, length: m.Cols(), width: m.Rows()}, nil
}

// Len returns the view length (the parent's crossed axis).
func (v *TransposeView) Len() int { return v.length }

// AtQuick fetches the parent's i-th row (or column) vector and extracts
// the fixed offset; an absent vector reads as 0.
func (v *TransposeView) AtQuick(i int) float64 {
	var vec Vector
	if v.rowToColumn {
		vec = v.s.RowQuick(i)
	} else {
		vec = v.s.ColQuick(i)
	}
	if vec == nil {
		return 0
	}

	return vec.AtQuick(v.offset)
}

// SetQuick writes through the parent's i-th row (or column) vector,
// materializing an absent one first: a fresh dense vector of the correct
// width is installed via AssignRowQuick, then written. Sparse backends
// rely on this path to stay correct under view writes.
func (v *TransposeView) SetQuick(i int, val float64) {
	var vec Vector
	if v.rowToColumn {
		vec = v.s.RowQuick(i)
	} else {
		vec = v.s.ColQuick(i)
	}
	if vec == nil {
		vec = newDenseVector(v.width)
		v.s.AssignRowQuick(i, vec)
	}
	vec.SetQuick(v.offset, val)
}

// At is the checked read over the view's own length.
func (v *TransposeView) At(i int) (float64, error) {
	if i < 0 || i >= v.length {
		return 0, indexErrorf(i, v.length)
	}

	return v.AtQuick(i), nil
}

// Set is the checked write over the view's own length.
func (v *TransposeView) Set(i int, val float64) error {
	if i < 0 || i >= v.length {
		return indexErrorf(i, v.length)
	}
	v.SetQuick(i, val)

	return nil
}

// Like returns a fresh dense zero vector.
func (v *TransposeView) Like(n int) Vector { return newDenseVector(n) }

// ---------- sub-matrix window ----------

// partStorage adapts a rectangular window of a base storage to the
// Storage contract. All access offsets into the base, so the window is a
// live alias, not a copy.
type partStorage struct {
	base   Storage
	r0, c0 int
	r, c   int
}

var _ Storage = (*partStorage)(nil)

// ViewPart returns an aliasing sub-matrix window of shape (rows, cols)
// anchored at (rowOff, colOff). Writes through the window mutate the
// parent. The window carries no label bindings.
//
// Errors: ErrInvalidShape (non-positive window), ErrIndexOutOfRange
// (window exceeding the parent). Complexity: O(1).
func (m *Matrix) ViewPart(rowOff, rows, colOff, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf(ctxViewPart, ErrInvalidShape)
	}
	if rowOff < 0 || rowOff+rows > m.Rows() {
		return nil, opErrorf(ctxViewPart, indexErrorf(rowOff+rows, m.Rows()))
	}
	if colOff < 0 || colOff+cols > m.Cols() {
		return nil, opErrorf(ctxViewPart, indexErrorf(colOff+cols, m.Cols()))
	}

	return &Matrix{
		storage:   &partStorage{base: m.storage, r0: rowOff, c0: colOff, r: rows, c: cols},
		sliceAxis: m.sliceAxis,
	}, nil
}

func (p *partStorage) Rows() int { return p.r }

func (p *partStorage) Cols() int { return p.c }

func (p *partStorage) AtQuick(row, col int) float64 {
	return p.base.AtQuick(p.r0+row, p.c0+col)
}

func (p *partStorage) SetQuick(row, col int, v float64) {
	p.base.SetQuick(p.r0+row, p.c0+col, v)
}

// Like delegates to the base family: windows don't form a family of their
// own, so derived results land in the parent's layout.
func (p *partStorage) Like(rows, cols int) Storage { return p.base.Like(rows, cols) }

// RowQuick exposes window row `row` as a live proxy into the base.
func (p *partStorage) RowQuick(row int) Vector { return &RowView{s: p, row: row} }

// ColQuick exposes window column `col` as a live proxy into the base.
func (p *partStorage) ColQuick(col int) Vector { return &ColumnView{s: p, col: col} }

// AssignRowQuick copies v elementwise into window row `row` (writing
// through to the base).
func (p *partStorage) AssignRowQuick(row int, v Vector) {
	for j := 0; j < p.c; j++ {
		p.base.SetQuick(p.r0+row, p.c0+j, v.AtQuick(j))
	}
}

// CloneStorage materializes an independent copy of the window in the base
// family's layout.
func (p *partStorage) CloneStorage() Storage {
	cp := p.base.Like(p.r, p.c)
	for i := 0; i < p.r; i++ {
		for j := 0; j < p.c; j++ {
			cp.SetQuick(i, j, p.AtQuick(i, j))
		}
	}

	return cp
}
