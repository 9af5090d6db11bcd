// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type — wraps a Storage with the
// bounds-checked accessor layer, lazily allocated label bindings, and
// clone support. Algebra lives in ops_assign.go / impl_algebra.go, views
// in views.go, iteration in iterate.go.

package matrix

import (
	"fmt"
	"strings"
)

// Error context tags used by the accessor layer.
const (
	ctxGet        = "Get"
	ctxSet        = "Set"
	ctxGetByLabel = "GetByLabel"
	ctxSetByLabel = "SetByLabel"
	ctxSetRowData = "SetRowData"
)

// Matrix is a 2-D numeric grid with fixed shape, set by its storage at
// construction and never altered afterward. It owns the optional label
// maps (absent until first binding); cell storage is owned by the backend
// and manipulated only through the Storage contract.
type Matrix struct {
	storage   Storage
	sliceAxis Axis
	rowLabels map[string]int // lazily allocated on first row binding
	colLabels map[string]int // lazily allocated on first column binding
}

var _ fmt.Stringer = (*Matrix)(nil)

// New wraps a caller-supplied Storage in a Matrix. The storage must be
// non-nil with a positive shape; its shape is taken as the matrix shape
// for the value's whole lifetime.
//
// Errors: ErrNilMatrix, ErrInvalidShape.
func New(s Storage, opts ...Option) (*Matrix, error) {
	if s == nil {
		return nil, opErrorf("New", ErrNilMatrix)
	}
	if s.Rows() <= 0 || s.Cols() <= 0 {
		return nil, opErrorf("New", ErrInvalidShape)
	}
	o := gatherOptions(opts...)

	return &Matrix{storage: s, sliceAxis: o.sliceAxis}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.storage.Rows() }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.storage.Cols() }

// Storage exposes the primitive backend. Collaborators (encoders, custom
// kernels) may use it; quick accessors skip all validation.
func (m *Matrix) Storage() Storage { return m.storage }

// AtQuick is the unchecked read, delegated to the backend.
func (m *Matrix) AtQuick(row, col int) float64 { return m.storage.AtQuick(row, col) }

// SetQuick is the unchecked write, delegated to the backend.
func (m *Matrix) SetQuick(row, col int, v float64) { m.storage.SetQuick(row, col, v) }

// Like returns an empty matrix of the backend's family with the given
// shape, no label bindings, and the receiver's slice axis.
func (m *Matrix) Like(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf("Like", ErrInvalidShape)
	}

	return &Matrix{storage: m.storage.Like(rows, cols), sliceAxis: m.sliceAxis}, nil
}

// Get returns the element at (row, col) after validating both indices.
//
// Errors: ErrIndexOutOfRange wrapped with the offending value and bound.
// Complexity: O(1).
func (m *Matrix) Get(row, col int) (float64, error) {
	if err := ValidateRowIndex(m, row); err != nil {
		return 0, opErrorf(ctxGet, err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return 0, opErrorf(ctxGet, err)
	}

	return m.storage.AtQuick(row, col), nil
}

// Set stores v at (row, col) after validating both indices.
//
// Errors: ErrIndexOutOfRange wrapped with the offending value and bound.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := ValidateRowIndex(m, row); err != nil {
		return opErrorf(ctxSet, err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return opErrorf(ctxSet, err)
	}
	m.storage.SetQuick(row, col, v)

	return nil
}

// SetRowData bulk-writes one row from data. The row index is validated
// first, then len(data) must equal Cols exactly; only then are cells
// written, so a rejected call leaves the matrix untouched.
//
// Errors: ErrIndexOutOfRange (bad row), ErrCardinality (bad length).
// Complexity: O(cols).
func (m *Matrix) SetRowData(row int, data []float64) error {
	if err := ValidateRowIndex(m, row); err != nil {
		return opErrorf(ctxSetRowData, err)
	}
	cols := m.Cols()
	if len(data) != cols {
		return opErrorf(ctxSetRowData, cardinalityErrorf(cols, len(data)))
	}
	for j := 0; j < cols; j++ {
		m.storage.SetQuick(row, j, data[j])
	}

	return nil
}

// ---------- label bindings ----------

// GetByLabel resolves both labels to indices and reads the cell. Both
// label maps must exist and contain the given keys.
//
// Errors: ErrUnboundLabel (no bindings, or unknown label).
// Complexity: O(1).
func (m *Matrix) GetByLabel(rowLabel, colLabel string) (float64, error) {
	row, col, err := m.resolveLabels(rowLabel, colLabel)
	if err != nil {
		return 0, opErrorf(ctxGetByLabel, err)
	}

	return m.Get(row, col)
}

// SetByLabel resolves both labels to indices and writes the cell.
//
// Errors: ErrUnboundLabel (no bindings, or unknown label).
// Complexity: O(1).
func (m *Matrix) SetByLabel(rowLabel, colLabel string, v float64) error {
	row, col, err := m.resolveLabels(rowLabel, colLabel)
	if err != nil {
		return opErrorf(ctxSetByLabel, err)
	}

	return m.Set(row, col, v)
}

// resolveLabels maps (rowLabel, colLabel) to indices. Both maps must be
// present and both keys bound; resolution never creates bindings.
func (m *Matrix) resolveLabels(rowLabel, colLabel string) (int, int, error) {
	if m.rowLabels == nil || m.colLabels == nil {
		return 0, 0, ErrUnboundLabel
	}
	row, okRow := m.rowLabels[rowLabel]
	if !okRow {
		return 0, 0, labelErrorf(rowLabel)
	}
	col, okCol := m.colLabels[colLabel]
	if !okCol {
		return 0, 0, labelErrorf(colLabel)
	}

	return row, col, nil
}

// SetRowWithLabel binds label -> row (allocating the row-label map on
// first use) and bulk-writes the row in one call. Row index and data
// length are validated before the binding is recorded, so a rejected call
// neither writes cells nor registers the label.
//
// Errors: ErrIndexOutOfRange, ErrCardinality.
// Complexity: O(cols).
func (m *Matrix) SetRowWithLabel(label string, row int, data []float64) error {
	if err := ValidateRowIndex(m, row); err != nil {
		return opErrorf("SetRowWithLabel", err)
	}
	if len(data) != m.Cols() {
		return opErrorf("SetRowWithLabel", cardinalityErrorf(m.Cols(), len(data)))
	}
	if m.rowLabels == nil {
		m.rowLabels = make(map[string]int)
	}
	m.rowLabels[label] = row

	return m.SetRowData(row, data)
}

// SetRowByLabel resolves an existing row binding and bulk-writes that row.
//
// Errors: ErrUnboundLabel (no row bindings or unknown label),
// ErrCardinality (bad data length).
// Complexity: O(cols).
func (m *Matrix) SetRowByLabel(label string, data []float64) error {
	if m.rowLabels == nil {
		return opErrorf("SetRowByLabel", ErrUnboundLabel)
	}
	row, ok := m.rowLabels[label]
	if !ok {
		return opErrorf("SetRowByLabel", labelErrorf(label))
	}

	return m.SetRowData(row, data)
}

// RowLabelBindings returns the live row-label map, or nil when no row
// binding was ever registered. Callers must not mutate it concurrently
// with matrix use.
func (m *Matrix) RowLabelBindings() map[string]int { return m.rowLabels }

// ColumnLabelBindings returns the live column-label map, or nil when no
// column binding was ever registered.
func (m *Matrix) ColumnLabelBindings() map[string]int { return m.colLabels }

// SetRowLabelBindings installs bindings as the row-label map. The map is
// adopted, not copied; pass a fresh map to keep ownership.
func (m *Matrix) SetRowLabelBindings(bindings map[string]int) { m.rowLabels = bindings }

// SetColumnLabelBindings installs bindings as the column-label map.
func (m *Matrix) SetColumnLabelBindings(bindings map[string]int) { m.colLabels = bindings }

// ---------- clone ----------

// Clone returns a new Matrix with storage duplicated under the backend's
// own policy and independent deep copies of both label maps. Post-clone
// label edits never leak between clone and original, in either direction.
//
// Complexity: storage-defined (O(rows*cols) for the reference backends)
// plus O(bindings) for the maps.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		storage:   m.storage.CloneStorage(),
		sliceAxis: m.sliceAxis,
	}
	if m.rowLabels != nil {
		cp.rowLabels = make(map[string]int, len(m.rowLabels))
		for k, v := range m.rowLabels {
			cp.rowLabels[k] = v
		}
	}
	if m.colLabels != nil {
		cp.colLabels = make(map[string]int, len(m.colLabels))
		for k, v := range m.colLabels {
			cp.colLabels[k] = v
		}
	}

	return cp
}

// String renders rows as "[a, b, ...]" lines for diagnostics. Not for hot
// paths. Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		b.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%g", m.storage.AtQuick(i, j)))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
