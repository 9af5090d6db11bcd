// Package matenc encodes matrices to and from a structured YAML text
// document. The codec round-trips everything the algebra core owns: the
// shape, every cell value, and both label-binding maps. Decoding always
// lands on the dense backend; re-encode/decode of any backend therefore
// preserves values and labels, not the storage family.
package matenc
