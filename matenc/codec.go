// SPDX-License-Identifier: MIT

// Package matenc: the YAML matrix codec.
//
// Document layout:
//
//	rows: 2
//	cols: 3
//	values:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
//	rowLabels:  { alpha: 0, beta: 1 }   # optional
//	colLabels:  { x: 0, y: 1, z: 2 }    # optional
//
// Decode validates the document before building anything: shape must be
// positive, the values grid must match it exactly, and every label must
// point inside the shape.

package matenc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numat/matrix"
)

// ErrInvalidDocument marks a structurally broken document: missing or
// non-positive shape, a values grid that contradicts it, or a label bound
// to an index outside the shape. Matched via errors.Is.
var ErrInvalidDocument = errors.New("matenc: invalid document")

// document is the YAML wire shape.
type document struct {
	Rows      int            `yaml:"rows"`
	Cols      int            `yaml:"cols"`
	Values    [][]float64    `yaml:"values"`
	RowLabels map[string]int `yaml:"rowLabels,omitempty"`
	ColLabels map[string]int `yaml:"colLabels,omitempty"`
}

// Marshal renders m as a YAML document holding its shape, every cell and
// both label maps (when present).
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(rows*cols).
func Marshal(m *matrix.Matrix) ([]byte, error) {
	doc, err := toDocument(m)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(doc)
}

// Encode writes the YAML document for m to w.
func Encode(w io.Writer, m *matrix.Matrix) error {
	doc, err := toDocument(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("matenc: encode: %w", err)
	}

	return enc.Close()
}

// Unmarshal parses a YAML document into a dense-backed matrix with the
// document's label bindings installed.
//
// Errors: ErrInvalidDocument (wrapped with the failing detail), YAML
// syntax errors.
// Complexity: O(rows*cols).
func Unmarshal(data []byte) (*matrix.Matrix, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("matenc: unmarshal: %w", err)
	}

	return fromDocument(&doc)
}

// Decode parses one YAML document from r into a dense-backed matrix.
func Decode(r io.Reader) (*matrix.Matrix, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("matenc: decode: %w", err)
	}

	return fromDocument(&doc)
}

// toDocument snapshots m into the wire shape. Label maps are copied so
// later edits to the matrix don't leak into a pending encode.
func toDocument(m *matrix.Matrix) (*document, error) {
	if m == nil {
		return nil, fmt.Errorf("matenc: %w", matrix.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = m.AtQuick(i, j)
		}
		values[i] = row
	}

	return &document{
		Rows:      rows,
		Cols:      cols,
		Values:    values,
		RowLabels: copyBindings(m.RowLabelBindings()),
		ColLabels: copyBindings(m.ColumnLabelBindings()),
	}, nil
}

// fromDocument validates doc and builds the matrix. Validation is
// complete before the first allocation-affecting call.
func fromDocument(doc *document) (*matrix.Matrix, error) {
	if doc.Rows <= 0 || doc.Cols <= 0 {
		return nil, fmt.Errorf("matenc: shape %dx%d: %w", doc.Rows, doc.Cols, ErrInvalidDocument)
	}
	if len(doc.Values) != doc.Rows {
		return nil, fmt.Errorf("matenc: %d value rows for %d matrix rows: %w",
			len(doc.Values), doc.Rows, ErrInvalidDocument)
	}
	for i, row := range doc.Values {
		if len(row) != doc.Cols {
			return nil, fmt.Errorf("matenc: row %d has %d values, want %d: %w",
				i, len(row), doc.Cols, ErrInvalidDocument)
		}
	}
	if err := validateBindings(doc.RowLabels, doc.Rows); err != nil {
		return nil, err
	}
	if err := validateBindings(doc.ColLabels, doc.Cols); err != nil {
		return nil, err
	}

	m, err := matrix.NewDenseFromData(doc.Values)
	if err != nil {
		return nil, fmt.Errorf("matenc: %w", err)
	}
	if doc.RowLabels != nil {
		m.SetRowLabelBindings(copyBindings(doc.RowLabels))
	}
	if doc.ColLabels != nil {
		m.SetColumnLabelBindings(copyBindings(doc.ColLabels))
	}

	return m, nil
}

// validateBindings rejects labels pointing outside [0, bound).
func validateBindings(bindings map[string]int, bound int) error {
	for label, idx := range bindings {
		if idx < 0 || idx >= bound {
			return fmt.Errorf("matenc: label %q -> %d out of bound %d: %w",
				label, idx, bound, ErrInvalidDocument)
		}
	}

	return nil
}

// copyBindings clones a label map; nil stays nil.
func copyBindings(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
