// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations return these sentinels and tests check them via
// errors.Is. Call sites wrap with fmt.Errorf("ctx: %w", ErrX) to attach the
// offending values; the sentinel stays matchable through the wrap.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors validate before allocation.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfRange indicates a row, column or vector index outside
	// valid bounds. Checked accessors return it wrapped with the offending
	// value and the bound; quick accessors never check.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrCardinality indicates mismatched shapes between operands of a
	// binary or bulk-assignment operation, or a non-square input where a
	// square one is required. Wrapped with the expected and actual sizes.
	ErrCardinality = errors.New("matrix: cardinality mismatch")

	// ErrUnboundLabel is returned when a label-based accessor runs with no
	// bindings registered, or with a label absent from the bindings.
	ErrUnboundLabel = errors.New("matrix: unbound label")

	// ErrNilMatrix indicates a nil matrix, storage or vector argument.
	ErrNilMatrix = errors.New("matrix: nil receiver or argument")
)

// indexErrorf attaches the offending index and its exclusive bound to
// ErrIndexOutOfRange. Every checked index failure in the package goes
// through here so the message shape is uniform.
func indexErrorf(value, bound int) error {
	return fmt.Errorf("index %d out of bound %d: %w", value, bound, ErrIndexOutOfRange)
}

// cardinalityErrorf attaches the expected and actual cardinality to
// ErrCardinality.
func cardinalityErrorf(expected, actual int) error {
	return fmt.Errorf("expected cardinality %d, found %d: %w", expected, actual, ErrCardinality)
}

// labelErrorf attaches the missing label to ErrUnboundLabel.
func labelErrorf(label string) error {
	return fmt.Errorf("label %q: %w", label, ErrUnboundLabel)
}

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
