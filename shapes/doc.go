// Package shapes provides concrete bounding-volume types satisfying
// volume.Volume (and, for axis-aligned boxes, volume.Boxed): AABB2, AABB3,
// Circle, and Sphere.
//
// These are external collaborators, out of scope for the bvh builder's own
// surface — the builder only ever depends on
// them through the volume.Volume / volume.Boxed interfaces. They are kept
// in this module, rather than split into a separate repository, because the
// original Rust source (original_source/src/dim2.rs, dim3.rs) ships them as
// first-class sibling modules of the same crate, and a bvh library needs at
// least one concrete volume family to be independently testable.
//
// Morton codes here use a fixed logBits of 5 (1<<5 = 32 bits per
// coordinate), matching the original source's real-build calls to
// morton_encode(...,5); the narrower logBits of 3 and 4 (8- and 16-bit
// widths) in morton.Encode's own tests exist only to exercise the encoder's
// documented test vectors.
package shapes
