package traverse

import (
	"iter"

	"github.com/katalvlaran/bvh"
	"github.com/katalvlaran/bvh/volume"
)

// Tester answers "should this subtree be visited?" given a volume. Every
// predicate family in the sibling predicate package implements it. Testers
// are re-applied to each item within a surviving leaf, not just to the
// leaf's aggregate volume, because a leaf's merged volume can pass a test
// that an individual item's volume fails.
type Tester[V any] interface {
	Test(v V) bool
}

// Traverse walks b starting from the root, pruning subtrees whose volume
// fails tester, and yields the payload of every surviving item exactly
// once. stack is reset and reused as scratch space; the returned iter.Seq
// is lazy and can be abandoned early (stop ranging over it) to terminate
// the query without finishing the walk. Traversing an empty Bvh yields no
// items.
//
// The exact visitation order (depth-first or breadth-first) is
// unspecified; only that every reachable leaf surviving tester appears
// exactly once, and ranging over the same Seq twice (by calling Traverse
// twice with the same arguments) yields the same set of payloads.
func Traverse[V volume.Volume[V], T any](b *bvh.Bvh[V, T], stack *Stack, tester Tester[V]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if b.Empty() {
			return
		}

		stack.Reset()
		stack.PushBack(0)

		for {
			index, ok := stack.PopFront()
			if !ok {
				return
			}

			node := b.NodeAt(index)
			if !tester.Test(node.Volume) {
				continue
			}

			if node.IsLeaf() {
				for i := uint32(0); i < node.Count; i++ {
					item := b.ItemAt(node.StartIndex + i)
					if !tester.Test(item.Volume) {
						continue
					}
					if !yield(item.Payload) {
						return
					}
				}

				continue
			}

			stack.PushBack(node.StartIndex)
			stack.PushBack(node.StartIndex + 1)
		}
	}
}
