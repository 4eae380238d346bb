package predicate_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bvh"
	"github.com/katalvlaran/bvh/predicate"
	"github.com/katalvlaran/bvh/shapes"
	"github.com/katalvlaran/bvh/traverse"
	"github.com/katalvlaran/bvh/volume"
)

func pt(x, y, z float32) volume.Point { return volume.Point{X: x, Y: y, Z: z} }

func box3(minX, minY, minZ, maxX, maxY, maxZ float32) shapes.AABB3 {
	return shapes.NewAABB3(pt(minX, minY, minZ), pt(maxX, maxY, maxZ))
}

func buildBox(t *testing.T, pairs []bvh.Pair[shapes.AABB3, int]) *bvh.Bvh[shapes.AABB3, int] {
	t.Helper()

	return bvh.Build(len(pairs), bvh.FromPairs(pairs))
}

func TestIntersectVolume_FindsOverlappingItems(t *testing.T) {
	pairs := []bvh.Pair[shapes.AABB3, int]{
		{Payload: 1, Volume: box3(0, 0, 0, 1, 1, 1)},
		{Payload: 2, Volume: box3(5, 5, 5, 6, 6, 6)},
	}
	b := buildBox(t, pairs)
	stack := traverse.NewStack(b.NItems())

	query := box3(0.5, 0.5, 0.5, 2, 2, 2)
	var got []int
	for v := range predicate.IntersectVolume(b, stack, query) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1}, got)
}

func TestIntersectVolume_NoOverlapYieldsNothing(t *testing.T) {
	pairs := []bvh.Pair[shapes.AABB3, int]{
		{Payload: 7, Volume: box3(0, 0, 0, 1, 1, 1)},
	}
	b := buildBox(t, pairs)
	stack := traverse.NewStack(b.NItems())

	query := box3(2, 2, 2, 3, 3, 3)
	var got []int
	for v := range predicate.IntersectVolume(b, stack, query) {
		got = append(got, v)
	}
	assert.Empty(t, got)
}

func TestCastRay_Miss(t *testing.T) {
	pairs := []bvh.Pair[shapes.AABB3, int]{
		{Payload: 42, Volume: box3(10, 10, 10, 11, 11, 11)},
	}
	b := buildBox(t, pairs)
	stack := traverse.NewStack(b.NItems())

	var got []int
	for v := range predicate.CastRay(b, stack, pt(0, 0, 0), pt(1, 0, 0), 5) {
		got = append(got, v)
	}
	assert.Empty(t, got)
}

func TestCastRay_Hit(t *testing.T) {
	pairs := []bvh.Pair[shapes.AABB3, int]{
		{Payload: 42, Volume: box3(10, 10, 10, 11, 11, 11)},
	}
	b := buildBox(t, pairs)
	stack := traverse.NewStack(b.NItems())

	dir := pt(1, 1, 1)
	var got []int
	for v := range predicate.CastRay(b, stack, pt(0, 0, 0), dir, 30) {
		got = append(got, v)
	}
	assert.Equal(t, []int{42}, got)
}

func TestCastShape_PadsTestedVolume(t *testing.T) {
	pairs := []bvh.Pair[shapes.AABB3, int]{
		{Payload: 1, Volume: box3(10, 0, 0, 11, 1, 1)},
	}
	b := buildBox(t, pairs)
	stack := traverse.NewStack(b.NItems())

	sweep := box3(-1, -1, -1, 1, 1, 1)
	var withoutPad, withPad []int
	for v := range predicate.CastRay(b, stack, pt(0, 0.5, 0.5), pt(1, 0, 0), 9) {
		withoutPad = append(withoutPad, v)
	}
	stack.Reset()
	for v := range predicate.CastShape(b, stack, sweep, pt(0, 0.5, 0.5), pt(1, 0, 0), 9) {
		withPad = append(withPad, v)
	}

	assert.Empty(t, withoutPad, "ray alone should fall just short of the box at t_max=9")
	assert.Equal(t, []int{1}, withPad, "padding by the swept shape's half-extent should reach the box")
}

func TestOverlapTester_MultipleHitsSorted(t *testing.T) {
	pairs := []bvh.Pair[shapes.AABB3, int]{
		{Payload: 1, Volume: box3(0, 0, 0, 2, 2, 2)},
		{Payload: 2, Volume: box3(1, 1, 1, 3, 3, 3)},
		{Payload: 3, Volume: box3(10, 10, 10, 11, 11, 11)},
	}
	b := buildBox(t, pairs)
	stack := traverse.NewStack(b.NItems())

	query := box3(0, 0, 0, 3, 3, 3)
	var got []int
	for v := range predicate.IntersectVolume(b, stack, query) {
		got = append(got, v)
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 2}, got)
}
