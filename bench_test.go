package bvh_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bvh"
	"github.com/katalvlaran/bvh/predicate"
	"github.com/katalvlaran/bvh/shapes"
	"github.com/katalvlaran/bvh/traverse"
	"github.com/katalvlaran/bvh/volume"
)

func benchBoxes(n int) []bvh.Pair[shapes.AABB3, int] {
	rng := rand.New(rand.NewSource(1))
	pairs := make([]bvh.Pair[shapes.AABB3, int], n)
	for i := range pairs {
		cx := rng.Float32()*50 - 25
		cy := rng.Float32()*50 - 25
		cz := rng.Float32()*50 - 25
		hx := 1 + rng.Float32()*4
		hy := 1 + rng.Float32()*4
		hz := 1 + rng.Float32()*4
		pairs[i] = bvh.Pair[shapes.AABB3, int]{
			Payload: i,
			Volume: shapes.NewAABB3(
				volume.Point{X: cx - hx, Y: cy - hy, Z: cz - hz},
				volume.Point{X: cx + hx, Y: cy + hy, Z: cz + hz},
			),
		}
	}

	return pairs
}

// BenchmarkBuild measures Build throughput on 1000 randomly placed AABB3
// boxes, excluding box generation from the timed region.
func BenchmarkBuild(b *testing.B) {
	pairs := benchBoxes(1000) // pre-build input once
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree := bvh.Build(len(pairs), bvh.FromPairs(pairs))
		if tree.NItems() != 1000 {
			b.Fatalf("n_items = %d, want 1000", tree.NItems())
		}
	}
}

// BenchmarkIntersectVolume measures query throughput against a fixed
// 1000-box tree, reusing a single traverse.Stack across iterations the way
// a long-lived caller would.
func BenchmarkIntersectVolume(b *testing.B) {
	pairs := benchBoxes(1000)
	tree := bvh.Build(len(pairs), bvh.FromPairs(pairs))
	query := shapes.NewAABB3(volume.Point{X: -5, Y: -5, Z: -5}, volume.Point{X: 5, Y: 5, Z: 5})
	stack := traverse.NewStack(tree.NItems())
	b.ReportAllocs()
	b.ResetTimer()

	var sink int
	for i := 0; i < b.N; i++ {
		stack.Reset()
		for v := range predicate.IntersectVolume(tree, stack, query) {
			sink = v
		}
	}
	_ = sink
}
