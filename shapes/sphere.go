package shapes

import (
	"math"

	"github.com/katalvlaran/bvh/morton"
	"github.com/katalvlaran/bvh/volume"
)

// Sphere is a bounding sphere in 3D. It satisfies volume.Volume but not
// volume.Boxed: ray and shape-sweep traversal are defined over axis-aligned
// volumes only.
type Sphere struct {
	Pos    volume.Point
	Radius float32
}

// NewSphere builds a Sphere from a center and radius.
func NewSphere(center volume.Point, radius float32) Sphere {
	return Sphere{Pos: center, Radius: radius}
}

// Center returns the sphere's center.
func (s Sphere) Center() volume.Point { return s.Pos }

// Area returns radius^2, a cost proxy monotonic in sphere size.
func (s Sphere) Area() float32 {
	return s.Radius * s.Radius
}

// Merge returns the smallest sphere enclosing both s and other.
func (s Sphere) Merge(other Sphere) Sphere {
	d := distance(s.Pos, other.Pos)

	if d+other.Radius <= s.Radius {
		return s
	}
	if d+s.Radius <= other.Radius {
		return other
	}

	newRadius := (s.Radius + other.Radius + d) / 2
	if d < 1e-9 {
		return Sphere{Pos: s.Pos, Radius: newRadius}
	}

	t := (newRadius - s.Radius) / d
	dir := other.Pos.Sub(s.Pos)
	newCenter := volume.Point{
		X: s.Pos.X + dir.X*t,
		Y: s.Pos.Y + dir.Y*t,
		Z: s.Pos.Z + dir.Z*t,
	}

	return Sphere{Pos: newCenter, Radius: newRadius}
}

// MortonCode returns the Morton encoding of the sphere's center.
func (s Sphere) MortonCode() uint64 {
	return morton.Encode(
		uint64(s.Pos.X+morton.Center),
		uint64(s.Pos.Y+morton.Center),
		uint64(s.Pos.Z+morton.Center),
		mortonLogBits,
	)
}

// Intersects reports whether s and other overlap: the distance between
// centers is no more than the sum of radii.
func (s Sphere) Intersects(other Sphere) bool {
	return distance(s.Pos, other.Pos) <= s.Radius+other.Radius
}

// Infinity returns a sphere enclosing every finite sphere.
func (Sphere) Infinity() Sphere {
	return Sphere{Pos: volume.Point{}, Radius: float32(math.Inf(1))}
}

func distance(a, b volume.Point) float32 {
	d := a.Sub(b)

	return float32(math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z)))
}
