package bvh

import "github.com/katalvlaran/bvh/volume"

// mergeLeaves iteratively collapses any interior node whose two children
// are both leaves into a single leaf when the Surface Area Heuristic
// predicts a traversal-cost win:
//
//	(leftCount + rightCount - TraverseCost) * area(parent)
//	    < leftCount * area(left) + rightCount * area(right)
//
// When it holds, the parent becomes a leaf spanning both children's item
// ranges (reorderItems already placed them contiguously in left-then-right
// order, so the minimum of the two start indices spans both runs) and the
// two child slots become dead nodes (Count == 0, StartIndex == 0).
// Collapsing a node can expose its own parent as a new candidate (both its
// children are now leaves), so the whole tree is rescanned until a full
// pass makes no merge; this terminates because every pass that merges
// anything strictly reduces the interior node count.
func mergeLeaves[V volume.Volume[V]](nodes []Node[V]) {
	stack := make([]uint32, 0, 32)

	for {
		merged := false
		stack = append(stack[:0], 0)

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			parent := nodes[idx]
			if parent.Count != 0 || parent.StartIndex == 0 {
				// Leaf nodes and dead nodes have nothing to merge.
				continue
			}

			left := nodes[parent.StartIndex]
			right := nodes[parent.StartIndex+1]
			if left.Count == 0 || right.Count == 0 {
				if right.Count == 0 {
					stack = append(stack, parent.StartIndex+1)
				}
				if left.Count == 0 {
					stack = append(stack, parent.StartIndex)
				}
				continue
			}

			leftCount := float32(left.Count)
			rightCount := float32(right.Count)
			if (leftCount+rightCount-TraverseCost)*parent.Volume.Area() <
				leftCount*left.Volume.Area()+rightCount*right.Volume.Area() {

				startIndex := parent.StartIndex
				minStart := left.StartIndex
				if right.StartIndex < minStart {
					minStart = right.StartIndex
				}

				nodes[idx] = Node[V]{
					Volume:     parent.Volume,
					Count:      left.Count + right.Count,
					StartIndex: minStart,
				}
				nodes[startIndex] = Node[V]{Count: 0, StartIndex: 0}
				nodes[startIndex+1] = Node[V]{Count: 0, StartIndex: 0}

				merged = true
			}
		}

		if !merged {
			return
		}
	}
}
