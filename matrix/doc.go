// Package matrix implements a storage-agnostic algebra core for 2-D
// numeric matrices.
//
// The package is split along one boundary: the Storage interface is the
// primitive contract a concrete layout must supply (shape, quick get/set,
// row/column retrieval, row assignment, same-family factory), and
// everything else — bounds-checked access, label bindings, aliasing views,
// slice iteration, elementwise and matrix arithmetic, aggregation and the
// recursive determinant — is written once against that contract and works
// identically for every backend.
//
// Two reference backends ship with the package:
//
//   - DenseStorage: row-major flat buffer, cache-friendly, rows exposed as
//     aliasing sub-slices.
//   - SparseRowStorage: rows allocated on first write; an unwritten row
//     reads as zeros and RowQuick reports it as absent (nil), which the
//     transpose view uses to materialize rows lazily.
//
// Safety model: public accessors (Get/Set and friends) validate indices and
// shapes and return sentinel errors (ErrIndexOutOfRange, ErrCardinality,
// ErrUnboundLabel) matched via errors.Is; quick accessors assume
// pre-validated indices and never check. Shape checks run before any
// mutation, so a rejected bulk operation leaves no partial writes.
//
// Concurrency: matrices and their views are not thread-safe. A view aliases
// its parent's cells; concurrent mutation of a matrix, or of a matrix and a
// view derived from it, must be serialized by the caller.
package matrix
