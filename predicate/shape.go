package predicate

import (
	"iter"

	"github.com/katalvlaran/bvh"
	"github.com/katalvlaran/bvh/traverse"
	"github.com/katalvlaran/bvh/volume"
)

// ShapeTester is a ray cast that pads every tested volume by a swept
// shape's volume (Minkowski-sum style) before the slab test, turning a ray
// cast into a shape sweep.
type ShapeTester[A volume.Boxed[A]] struct {
	Shape  A
	Origin volume.Point
	invDir volume.Point
	MaxT   float32
}

// Test reports whether the swept shape hits v within [0, MaxT].
func (t ShapeTester[A]) Test(v A) bool {
	return intersectsRay(v.Padded(t.Shape), t.Origin, t.invDir, t.MaxT)
}

// Shape builds a Tester for a shape sweep: the swept shape's own volume,
// the sweep's origin and direction, and the maximum parametric distance.
func Shape[A volume.Boxed[A]](shapeVolume A, origin, direction volume.Point, maxT float32) ShapeTester[A] {
	return ShapeTester[A]{Shape: shapeVolume, Origin: origin, invDir: direction.Inverse(), MaxT: maxT}
}

// CastShape traverses b, yielding the payload of every item the swept
// shape hits at t in [0, maxT].
func CastShape[A volume.Boxed[A], T any](b *bvh.Bvh[A, T], stack *traverse.Stack, shapeVolume A, origin, direction volume.Point, maxT float32) iter.Seq[T] {
	return traverse.Traverse(b, stack, Shape[A](shapeVolume, origin, direction, maxT))
}
