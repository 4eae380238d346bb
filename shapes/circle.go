package shapes

import (
	"math"

	"github.com/katalvlaran/bvh/morton"
	"github.com/katalvlaran/bvh/volume"
)

// Circle is a bounding circle in 2D. Z is always zero. Like Sphere, it
// satisfies volume.Volume only, not volume.Boxed.
type Circle struct {
	Pos    volume.Point
	Radius float32
}

// NewCircle builds a Circle from a center and radius. Z is forced to zero.
func NewCircle(center volume.Point, radius float32) Circle {
	center.Z = 0

	return Circle{Pos: center, Radius: radius}
}

// Center returns the circle's center.
func (c Circle) Center() volume.Point { return c.Pos }

// Area returns radius^2, a cost proxy monotonic in circle size.
func (c Circle) Area() float32 {
	return c.Radius * c.Radius
}

// Merge returns the smallest circle enclosing both c and other.
func (c Circle) Merge(other Circle) Circle {
	d := distance(c.Pos, other.Pos)

	if d+other.Radius <= c.Radius {
		return c
	}
	if d+c.Radius <= other.Radius {
		return other
	}

	newRadius := (c.Radius + other.Radius + d) / 2
	if d < 1e-9 {
		return Circle{Pos: c.Pos, Radius: newRadius}
	}

	t := (newRadius - c.Radius) / d
	dir := other.Pos.Sub(c.Pos)
	newCenter := volume.Point{X: c.Pos.X + dir.X*t, Y: c.Pos.Y + dir.Y*t}

	return Circle{Pos: newCenter, Radius: newRadius}
}

// MortonCode returns the Morton encoding of the circle's center.
func (c Circle) MortonCode() uint64 {
	return morton.Encode(uint64(c.Pos.X+morton.Center), uint64(c.Pos.Y+morton.Center), 0, mortonLogBits)
}

// Intersects reports whether c and other overlap.
func (c Circle) Intersects(other Circle) bool {
	return distance(c.Pos, other.Pos) <= c.Radius+other.Radius
}

// Infinity returns a circle enclosing every finite circle.
func (Circle) Infinity() Circle {
	return Circle{Pos: volume.Point{}, Radius: float32(math.Inf(1))}
}
