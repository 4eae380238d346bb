package predicate

import (
	"iter"

	"github.com/katalvlaran/bvh"
	"github.com/katalvlaran/bvh/traverse"
	"github.com/katalvlaran/bvh/volume"
)

// OverlapTester tests node and item volumes for overlap against a fixed
// query volume.
type OverlapTester[V volume.Volume[V]] struct {
	query V
}

// Test reports whether v intersects the query volume.
func (t OverlapTester[V]) Test(v V) bool {
	return t.query.Intersects(v)
}

// Overlap builds a Tester that accepts volumes intersecting query.
func Overlap[V volume.Volume[V]](query V) OverlapTester[V] {
	return OverlapTester[V]{query: query}
}

// IntersectVolume traverses b, yielding the payload of every item whose
// volume intersects query.
func IntersectVolume[V volume.Volume[V], T any](b *bvh.Bvh[V, T], stack *traverse.Stack, query V) iter.Seq[T] {
	return traverse.Traverse(b, stack, Overlap(query))
}
