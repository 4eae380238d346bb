// Package bvh implements a static Bounding Volume Hierarchy built with a
// PLOC (Parallel Locally-Ordered Clustering) style agglomeration pass and a
// Surface-Area-Heuristic (SAH) leaf-merging refinement pass.
//
// 🚀 What is lvlath/bvh?
//
//	A dependency-light, generic spatial index that turns a flat collection
//	of bounded items into a tree you can query by overlap, ray, or swept
//	shape — built once, queried many times, never mutated in place.
//
//	  • Construction: Morton-order seeding, bounded-radius neighbor
//	    agglomeration (PLOC), and a second-pass SAH leaf collapse.
//	  • Query: a lazy, allocation-light traversal iterator generic over a
//	    caller-supplied predicate (github.com/katalvlaran/bvh/traverse,
//	    github.com/katalvlaran/bvh/predicate).
//	  • Volumes: bring your own bounding-volume type via
//	    github.com/katalvlaran/bvh/volume, or use the reference AABB/sphere
//	    implementations in github.com/katalvlaran/bvh/shapes.
//
// Build once, query forever: a Bvh is frozen the moment Build returns.
// There is no insertion, removal, or refitting; rebuild from scratch when
// the underlying items move (see Non-goals below).
//
// Errors:
//
//	This package's public surface is total: every documented operation
//	returns a valid value for every input honoring the volume.Volume
//	contract. There are no recoverable error conditions. A caller-supplied
//	Volume implementation that violates its contract (e.g. Merge producing
//	a smaller Area than either input) is undefined behavior at the contract
//	level and triggers an immediate panic rather than silently building an
//	ill-formed tree.
//
// Non-goals: dynamic insertion/removal after construction, BVH refitting on
// object motion, multi-threaded build, GPU offload, serialization, and
// persistence.
//
//	go get github.com/katalvlaran/bvh
package bvh
