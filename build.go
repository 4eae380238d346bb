package bvh

import (
	"iter"
	"sort"

	"github.com/katalvlaran/bvh/volume"
)

// TraverseCost is the constant subtracted from the combined item count when
// the SAH leaf-merge pass weighs collapsing two leaf children into one
// parent leaf. It is a tuning knob for how aggressively leaves get
// collapsed, exposed as a package-level var rather than a const so callers
// can adjust merge aggressiveness before calling Build. Not safe to mutate
// concurrently with an in-progress Build.
var TraverseCost float32 = 1.5

// mergeAreaEpsilon tolerates float32 rounding when checking the volume
// contract's merge monotonicity (a merged volume's Area must be at least as
// large as either input's).
const mergeAreaEpsilon = 1e-3

// Pair is one (payload, volume) input to Build.
type Pair[V any, T any] struct {
	Payload T
	Volume  V
}

// FromPairs adapts a slice of Pair into the iter.Seq2 shape Build consumes,
// for callers who already have their items in a slice rather than behind a
// generator.
func FromPairs[V any, T any](pairs []Pair[V, T]) iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		for _, p := range pairs {
			if !yield(p.Payload, p.Volume) {
				return
			}
		}
	}
}

// Build constructs a Bvh from a sequence of (payload, volume) pairs: a PLOC
// agglomeration pass seeded by Morton order, followed by an SAH
// leaf-merging refinement pass. n is a capacity hint only; the actual item
// count is however many pairs seq yields. Build consumes seq exactly once.
// An empty sequence yields an empty Bvh.
//
// Complexity: O(n * SearchRadius * log n) for the PLOC phase, O(n * passes)
// for the SAH phase, with passes bounded by tree depth.
func Build[V volume.Volume[V], T any](n int, seq iter.Seq2[T, V]) *Bvh[V, T] {
	if n < 0 {
		n = 0
	}

	// Seed one leaf node per item and record items in input order.
	current := make([]Node[V], 0, n)
	unordered := make([]Item[V, T], 0, n)
	for t, v := range seq {
		current = append(current, Node[V]{Volume: v, Count: 1, StartIndex: uint32(len(current))})
		unordered = append(unordered, Item[V, T]{Volume: v, Payload: t})
	}

	nItems := len(unordered)
	if nItems == 0 {
		return &Bvh[V, T]{}
	}

	// Stably sort by Morton code so spatially nearby items end up adjacent
	// in the sequence.
	sort.SliceStable(current, func(i, j int) bool {
		return current[i].Volume.MortonCode() < current[j].Volume.MortonCode()
	})

	// Preallocate node storage; children fill from the back so a parent is
	// always written at a lower index than both of its children.
	nodes := make([]Node[V], 2*nItems-1)
	var zero V
	placeholder := Node[V]{Volume: zero.Infinity(), Count: 0, StartIndex: noIndex}
	for i := range nodes {
		nodes[i] = placeholder
	}

	// Agglomerate mutual-best-neighbor pairs into the tree (PLOC).
	ploc(current, nodes, len(nodes))

	// Reorder items to match the leaf order the tree settled on.
	items := reorderItems(nodes, unordered)

	// Collapse cheap leaf pairs per the surface-area heuristic.
	mergeLeaves(nodes)

	return &Bvh[V, T]{nodes: nodes, items: items}
}

// noIndex marks the placeholder start_index written into unallocated node
// slots before PLOC fills them in, the Go equivalent of Rust's u32::MAX
// sentinel.
const noIndex = ^uint32(0)
