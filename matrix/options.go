// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.

package matrix

// DefaultSliceAxis is the axis IterateAll slices over when no option is
// given: one slice per row.
const DefaultSliceAxis = RowAxis

// Option configures a Matrix at construction time.
type Option func(*matrixOptions)

// matrixOptions holds the gathered construction state.
type matrixOptions struct {
	sliceAxis Axis // axis used by IterateAll
}

// defaultOptions returns the documented defaults. Single source of truth
// for zero-value behavior.
func defaultOptions() matrixOptions {
	return matrixOptions{sliceAxis: DefaultSliceAxis}
}

// WithColumnSlices makes IterateAll yield one slice per column instead of
// one per row. Column slices are transpose views, so writing through them
// lazily materializes absent rows on sparse backends.
func WithColumnSlices() Option {
	return func(o *matrixOptions) { o.sliceAxis = ColumnAxis }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) matrixOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
