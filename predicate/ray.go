package predicate

import (
	"iter"

	"github.com/katalvlaran/bvh"
	"github.com/katalvlaran/bvh/traverse"
	"github.com/katalvlaran/bvh/volume"
)

// RayTester tests node and item volumes against a fixed ray via the slab
// method.
type RayTester[A volume.Boxed[A]] struct {
	Origin volume.Point
	invDir volume.Point
	MaxT   float32
}

// Test reports whether the ray hits v within [0, MaxT].
func (t RayTester[A]) Test(v A) bool {
	return intersectsRay(v, t.Origin, t.invDir, t.MaxT)
}

// Ray builds a Tester for a ray cast: origin, direction, and the maximum
// parametric distance to accept a hit at.
func Ray[A volume.Boxed[A]](origin, direction volume.Point, maxT float32) RayTester[A] {
	return RayTester[A]{Origin: origin, invDir: direction.Inverse(), MaxT: maxT}
}

// CastRay traverses b along a ray, yielding the payload of every item the
// ray hits at t in [0, maxT].
func CastRay[A volume.Boxed[A], T any](b *bvh.Bvh[A, T], stack *traverse.Stack, origin, direction volume.Point, maxT float32) iter.Seq[T] {
	return traverse.Traverse(b, stack, Ray[A](origin, direction, maxT))
}

// intersectsRay clamps a volume's ray-slab entry/exit times against
// [0, maxT] and reports whether the clamped interval is non-empty.
func intersectsRay[A volume.Boxed[A]](v A, origin, invDir volume.Point, maxT float32) bool {
	tMin, tMax := v.IntersectsRayAt(origin, invDir)
	tMin = maxF(tMin, 0)
	tMax = minF(tMax, maxT)

	return tMin <= tMax
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}
