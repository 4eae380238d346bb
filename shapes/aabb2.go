package shapes

import (
	"math"

	"github.com/katalvlaran/bvh/morton"
	"github.com/katalvlaran/bvh/volume"
)

// AABB2 is an axis-aligned bounding box in 2D. Z is always zero.
type AABB2 struct {
	Min, Max volume.Point
}

// NewAABB2 builds an AABB2 from two corner points, normalizing so Min holds
// the component-wise minimum and Max the component-wise maximum. Z is
// forced to zero on both corners.
func NewAABB2(a, b volume.Point) AABB2 {
	return AABB2{
		Min: volume.Point{X: minF(a.X, b.X), Y: minF(a.Y, b.Y)},
		Max: volume.Point{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y)},
	}
}

// Center returns the true midpoint of the box.
func (a AABB2) Center() volume.Point {
	return volume.Point{X: (a.Min.X + a.Max.X) / 2, Y: (a.Min.Y + a.Max.Y) / 2}
}

// Area returns a cost proxy monotonic in box size: width * height.
func (a AABB2) Area() float32 {
	return (a.Max.X - a.Min.X) * (a.Max.Y - a.Min.Y)
}

// Merge returns the smallest AABB2 enclosing both a and other.
func (a AABB2) Merge(other AABB2) AABB2 {
	return AABB2{
		Min: volume.Point{X: minF(a.Min.X, other.Min.X), Y: minF(a.Min.Y, other.Min.Y)},
		Max: volume.Point{X: maxF(a.Max.X, other.Max.X), Y: maxF(a.Max.Y, other.Max.Y)},
	}
}

// MortonCode returns the Morton encoding of the box's centroid, with the
// z coordinate fixed at zero.
func (a AABB2) MortonCode() uint64 {
	c := a.Center()

	return morton.Encode(uint64(c.X+morton.Center), uint64(c.Y+morton.Center), 0, mortonLogBits)
}

// Intersects reports whether a and other overlap on both axes.
func (a AABB2) Intersects(other AABB2) bool {
	return a.Min.X <= other.Max.X && other.Min.X <= a.Max.X &&
		a.Min.Y <= other.Max.Y && other.Min.Y <= a.Max.Y
}

// Infinity returns an AABB2 enclosing every finite AABB2.
func (AABB2) Infinity() AABB2 {
	return AABB2{
		Min: volume.Point{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
		Max: volume.Point{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
	}
}

// IntersectsRayAt returns the entry/exit parametric times of a ray through
// the box's 2D slabs.
func (a AABB2) IntersectsRayAt(origin, invDir volume.Point) (tMin, tMax float32) {
	tMin = float32(math.Inf(-1))
	tMax = float32(math.Inf(1))

	tMin, tMax = slab(a.Min.X, a.Max.X, origin.X, invDir.X, tMin, tMax)
	tMin, tMax = slab(a.Min.Y, a.Max.Y, origin.Y, invDir.Y, tMin, tMax)

	return tMin, tMax
}

// Padded returns a grown by other's extents around the origin,
// Minkowski-sum style.
func (a AABB2) Padded(other AABB2) AABB2 {
	return AABB2{Min: a.Min.Add(other.Min), Max: a.Max.Add(other.Max)}
}
