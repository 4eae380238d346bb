package shapes

import (
	"math"

	"github.com/katalvlaran/bvh/morton"
	"github.com/katalvlaran/bvh/volume"
)

// mortonLogBits is the log2 of the bit-width per coordinate (1<<5 = 32 bits)
// used when seeding Morton order for real builds (see doc.go).
const mortonLogBits = 5

// AABB3 is an axis-aligned bounding box in 3D.
type AABB3 struct {
	Min, Max volume.Point
}

// NewAABB3 builds an AABB3 from two corner points, normalizing so Min holds
// the component-wise minimum and Max the component-wise maximum.
func NewAABB3(a, b volume.Point) AABB3 {
	return AABB3{
		Min: volume.Point{X: minF(a.X, b.X), Y: minF(a.Y, b.Y), Z: minF(a.Z, b.Z)},
		Max: volume.Point{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y), Z: maxF(a.Z, b.Z)},
	}
}

// Center returns the true midpoint of the box.
func (a AABB3) Center() volume.Point {
	return volume.Point{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}

// Area returns the box's surface area, 2*(wx*wy + wy*wz + wz*wx).
func (a AABB3) Area() float32 {
	wx := a.Max.X - a.Min.X
	wy := a.Max.Y - a.Min.Y
	wz := a.Max.Z - a.Min.Z

	return 2 * (wx*wy + wy*wz + wz*wx)
}

// Merge returns the smallest AABB3 enclosing both a and other.
func (a AABB3) Merge(other AABB3) AABB3 {
	return AABB3{
		Min: volume.Point{X: minF(a.Min.X, other.Min.X), Y: minF(a.Min.Y, other.Min.Y), Z: minF(a.Min.Z, other.Min.Z)},
		Max: volume.Point{X: maxF(a.Max.X, other.Max.X), Y: maxF(a.Max.Y, other.Max.Y), Z: maxF(a.Max.Z, other.Max.Z)},
	}
}

// MortonCode returns the Morton encoding of the box's centroid, shifted
// into the non-negative window by morton.Center before truncation.
func (a AABB3) MortonCode() uint64 {
	c := a.Center()

	return morton.Encode(
		uint64(c.X+morton.Center),
		uint64(c.Y+morton.Center),
		uint64(c.Z+morton.Center),
		mortonLogBits,
	)
}

// Intersects reports whether a and other overlap on every axis.
func (a AABB3) Intersects(other AABB3) bool {
	return a.Min.X <= other.Max.X && other.Min.X <= a.Max.X &&
		a.Min.Y <= other.Max.Y && other.Min.Y <= a.Max.Y &&
		a.Min.Z <= other.Max.Z && other.Min.Z <= a.Max.Z
}

// Infinity returns an AABB3 enclosing every finite AABB3.
func (AABB3) Infinity() AABB3 {
	return AABB3{
		Min: volume.Point{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1)), Z: float32(math.Inf(-1))},
		Max: volume.Point{X: float32(math.Inf(1)), Y: float32(math.Inf(1)), Z: float32(math.Inf(1))},
	}
}

// IntersectsRayAt returns the entry/exit parametric times of a ray through
// the box's slabs, via the standard slab method: for each axis, compute the
// near/far face using invDir's sign to pick which corner is "entry".
func (a AABB3) IntersectsRayAt(origin, invDir volume.Point) (tMin, tMax float32) {
	tMin = float32(math.Inf(-1))
	tMax = float32(math.Inf(1))

	tMin, tMax = slab(a.Min.X, a.Max.X, origin.X, invDir.X, tMin, tMax)
	tMin, tMax = slab(a.Min.Y, a.Max.Y, origin.Y, invDir.Y, tMin, tMax)
	tMin, tMax = slab(a.Min.Z, a.Max.Z, origin.Z, invDir.Z, tMin, tMax)

	return tMin, tMax
}

// Padded returns a grown by other's extents around the origin,
// Minkowski-sum style.
func (a AABB3) Padded(other AABB3) AABB3 {
	return AABB3{
		Min: a.Min.Add(other.Min),
		Max: a.Max.Add(other.Max),
	}
}

// slab intersects one axis of the slab test, narrowing [tMin, tMax].
func slab(lo, hi, origin, invDir, tMin, tMax float32) (float32, float32) {
	t0 := (lo - origin) * invDir
	t1 := (hi - origin) * invDir
	if invDir < 0 {
		t0, t1 = t1, t0
	}

	return maxF(tMin, t0), minF(tMax, t1)
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
