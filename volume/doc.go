// Package volume defines the abstract contract a bounding-volume type must
// satisfy to be organized into a github.com/katalvlaran/bvh hierarchy.
//
// The bvh builder and traverser never inspect concrete geometry; they only
// call the methods declared here. A type implements Volume by supplying:
//
//   - Center      — centroid, used for Morton ordering.
//   - Area        — a cost proxy monotonic in volume size, used by both the
//     PLOC neighbor search and the SAH leaf-merge pass.
//   - Merge       — the smallest (or cheaply-computed small) volume
//     enclosing both inputs. Must be commutative and idempotent.
//   - MortonCode  — Morton encoding of Center().
//   - Intersects  — overlap test, used by traversal predicates, not by the
//     builder.
//   - Infinity    — a sentinel volume enclosing every finite volume of the
//     same type.
//
// Boxed extends Volume with the two extra operations ray and shape-sweep
// traversal need: a slab-style ray intersection test and Minkowski padding.
// Only axis-aligned volumes are expected to implement Boxed; bounding
// spheres/circles satisfy Volume alone and support the overlap predicate
// only.
package volume
