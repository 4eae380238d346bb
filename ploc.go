package bvh

import "github.com/katalvlaran/bvh/volume"

// ploc runs the PLOC agglomeration loop. It repeatedly merges mutual
// best-neighbor pairs found via findBestNeighbor until a single
// root node remains, writing interior and non-root leaf nodes into nodes
// by decrementing insertIndex: children always land at higher indices than
// the slot their eventual parent will occupy, which is how the flat array ends
// up topologically ordered (parents before children) in one pass. current
// must already be Morton-sorted.
func ploc[V volume.Volume[V]](current []Node[V], nodes []Node[V], insertIndex int) {
	next := make([]Node[V], 0, len(current))
	best := make([]int, 0, len(current))
	cache := &searchCache{}

	for len(current) > 1 {
		best = best[:0]
		for i := range current {
			best = append(best, findBestNeighbor(cache, i, current))
		}

		next = next[:0]
		for i, b := range best {
			if best[b] != i {
				// Not a mutual pair: carry the node forward unchanged.
				next = append(next, current[i])
				continue
			}
			if b < i {
				// Mutual pair, but we only merge from the smaller index so
				// each pair is handled exactly once.
				continue
			}

			left := current[i]
			right := current[b]
			parentVolume := left.Volume.Merge(right.Volume)
			assertf(
				parentVolume.Area() >= left.Volume.Area()-mergeAreaEpsilon &&
					parentVolume.Area() >= right.Volume.Area()-mergeAreaEpsilon,
				"Merge produced area %.6f smaller than an input (left %.6f, right %.6f)",
				parentVolume.Area(), left.Volume.Area(), right.Volume.Area(),
			)

			insertIndex -= 2
			nodes[insertIndex] = left
			nodes[insertIndex+1] = right
			next = append(next, Node[V]{Volume: parentVolume, Count: 0, StartIndex: uint32(insertIndex)})
		}

		current, next = next, current
	}

	insertIndex--
	nodes[insertIndex] = current[0]
	assertf(insertIndex == 0, "PLOC terminated with insertIndex=%d, want 0", insertIndex)
}
