package volume

// Point is a position in the metric space a Volume occupies. 2D volumes
// leave Z at zero.
type Point struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Inverse returns the component-wise reciprocal of p (1/x, 1/y, 1/z).
// Division by zero yields +/-Inf per IEEE 754, which the ray slab test
// relies on to treat axis-parallel rays correctly.
func (p Point) Inverse() Point {
	return Point{X: 1 / p.X, Y: 1 / p.Y, Z: 1 / p.Z}
}

// Volume is the contract a bounding-volume type V must satisfy to be
// hierarchised by bvh.Build. V is the concrete receiver type itself
// (e.g. shapes.AABB3 implements Volume[shapes.AABB3]).
type Volume[V any] interface {
	// Center returns the centroid used for Morton ordering.
	Center() Point
	// Area is a cost proxy monotonic in volume size (e.g. surface area for
	// an AABB, radius^2 for a sphere).
	Area() float32
	// Merge returns the smallest volume of type V enclosing both the
	// receiver and other. Must be commutative: a.Merge(b) == b.Merge(a) in
	// respect of area, and idempotent: a.Merge(a) == a.
	Merge(other V) V
	// MortonCode returns the Morton encoding of Center().
	MortonCode() uint64
	// Intersects reports whether the receiver and other overlap.
	Intersects(other V) bool
	// Infinity returns a volume of type V enclosing every finite volume of
	// that type. Used as a placeholder sentinel during construction.
	Infinity() V
}

// Boxed is the extended contract ray casting and shape sweeping require on
// top of Volume: a parametric ray/slab test and Minkowski-sum padding.
type Boxed[V any] interface {
	Volume[V]
	// IntersectsRayAt returns the entry and exit parametric times of a ray
	// with the given origin and component-wise inverse direction through
	// the receiver's slab. Callers clamp against [0, maxT] themselves.
	IntersectsRayAt(origin, invDir Point) (tMin, tMax float32)
	// Padded returns the receiver grown by other's extents around the
	// origin, Minkowski-sum style: component-wise addition of each side.
	Padded(other V) V
}
