// SPDX-License-Identifier: MIT

// Package matrix: the iteration protocol — lazy, finite, single-pass
// traversal over a matrix's slices as (view, index) pairs.

package matrix

// SliceIter walks a matrix's slices once, in index order. A fresh iterator
// always starts at index 0; an exhausted iterator stays exhausted. The
// views it yields alias the parent, so mutating a yielded view mutates the
// matrix immediately.
type SliceIter struct {
	m     *Matrix
	axis  Axis
	next  int
	count int
}

// IterateAll returns a fresh slice iterator. The slice count equals the
// row count on the default axis, or the column count for matrices built
// WithColumnSlices. Row slices are row views; column slices are transpose
// views, so writing through them lazily materializes rows on sparse
// backends.
//
// Complexity: O(1) to create; each Next is O(1).
func (m *Matrix) IterateAll() *SliceIter {
	it := &SliceIter{m: m, axis: m.sliceAxis}
	if it.axis == ColumnAxis {
		it.count = m.Cols()
	} else {
		it.count = m.Rows()
	}

	return it
}

// NumSlices reports how many slices IterateAll will yield.
func (m *Matrix) NumSlices() int {
	if m.sliceAxis == ColumnAxis {
		return m.Cols()
	}

	return m.Rows()
}

// Next yields the next (view, index) pair, or a zero Slice and false once
// the sequence is exhausted.
func (it *SliceIter) Next() (Slice, bool) {
	if it.next >= it.count {
		return Slice{}, false
	}
	i := it.next
	it.next++

	if it.axis == ColumnAxis {
		// Column slices cross the storage's row organization, so they go
		// through the transpose view and its lazy materialization path.
		return Slice{
			Vec: &TransposeView{
				s:           it.m.storage,
				offset:      i,
				rowToColumn: true,
				length:      it.m.Rows(),
				width:       it.m.Cols(),
			},
			Index: i,
		}, true
	}

	return Slice{Vec: &RowView{s: it.m.storage, row: i}, Index: i}, true
}
