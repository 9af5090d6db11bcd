// Package numat is a storage-agnostic 2-D numeric matrix toolkit: one
// algebra engine written against a tiny primitive contract, so dense and
// sparse backends (and aliasing views over either) share identical
// semantics.
//
// 🚀 What is numat?
//
//	A pure-Go matrix core that brings together:
//		• Backends: row-major dense and sparse-by-row storage behind one contract
//		• Safety in layers: checked accessors over documented unchecked fast paths
//		• Labels: string-addressed rows & columns bound to integer indices
//		• Views: row, column, transpose and sub-matrix windows that alias, never copy
//		• Algebra: Plus/Minus/Times, scalar ops, transpose, aggregation folds
//		• Determinant: exact cofactor expansion for reference numerics
//		• Iteration: lazy single-pass slice traversal on either axis
//		• Codec: YAML round-trips via the matenc package
//
// ✨ Why choose numat?
//
//   - Backend-independent – write an operation once, run it on any storage
//   - Rock-solid guarantees – sentinel errors matched via errors.Is, no panics
//     on the checked surface
//   - Pure Go – no cgo in the core
//   - Extensible – implement the Storage contract and inherit the whole engine
//
// Everything is organized under two subpackages:
//
//	matrix/ — the core: contract, backends, views, algebra, iteration
//	matenc/ — YAML encoding & decoding of matrices with their labels
//
// Quick ASCII example:
//
//	    ⎡1 2⎤        rows and columns addressable by index
//	    ⎣3 4⎦        or by bound string labels
//
// See matrix/doc.go for the safety model and the primitive contract, and
// the examples/ directory for runnable walkthroughs.
//
//	go get github.com/katalvlaran/numat/matrix
package numat
