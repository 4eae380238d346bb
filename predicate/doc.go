// Package predicate provides three ready-made traverse.Tester
// implementations: volume overlap, ray cast, and shape sweep. Ray and
// shape sweep are defined over volume.Boxed volumes (AABB-style); overlap
// works over any volume.Volume.
package predicate
