package bvh

import "github.com/katalvlaran/bvh/volume"

// Node is one entry of a Bvh's flat node array.
//
// If Count == 0, the node is interior: StartIndex is the index of its left
// child, StartIndex+1 the index of its right child (children are always
// stored adjacent). If Count > 0, the node is a leaf: the items it owns are
// the contiguous run [StartIndex, StartIndex+Count) of the Bvh's item
// array. A node with Count == 0 && StartIndex == 0 is a dead node, debris
// left by SAH leaf merging; it is unreachable from the root and ignored by
// traversal.
type Node[V any] struct {
	Volume     V
	Count      uint32
	StartIndex uint32
}

// IsLeaf reports whether n is a leaf node (owns one or more items).
func (n Node[V]) IsLeaf() bool { return n.Count > 0 }

// IsDead reports whether n is a tombstone left by SAH leaf merging.
func (n Node[V]) IsDead() bool { return n.Count == 0 && n.StartIndex == 0 }

// Item pairs a user payload with the bounding volume the caller supplied
// for it. Items are the leaves of interest: what the caller originally
// inserted, in the array order the Bvh settled on after leaf reordering.
type Item[V any, T any] struct {
	Volume  V
	Payload T
}

// Bvh is a frozen Bounding Volume Hierarchy: a pair of owned contiguous
// sequences, nodes and items. Index 0 of the node array is the root
// whenever the Bvh is non-empty. A Bvh is built once by Build, then queried
// repeatedly (see the traverse and predicate packages) and discarded as a
// unit; nothing about it is safe to mutate after Build returns, though
// concurrent reads from multiple goroutines are safe as long as each
// traversal holds its own stack (see traverse.Stack).
type Bvh[V volume.Volume[V], T any] struct {
	nodes []Node[V]
	items []Item[V, T]
}

// NNodes returns the number of nodes in the Bvh's node array, including any
// dead nodes. Always <= 2*NItems()-1 for a non-empty tree.
func (b *Bvh[V, T]) NNodes() int { return len(b.nodes) }

// NItems returns the number of items in the Bvh, equal to the number the
// caller supplied to Build.
func (b *Bvh[V, T]) NItems() int { return len(b.items) }

// NodeAt returns the node at index i. The caller is responsible for index
// validity; this mirrors direct slice indexing rather than adding bounds
// padding to a hot traversal path.
func (b *Bvh[V, T]) NodeAt(i uint32) Node[V] { return b.nodes[i] }

// ItemAt returns the item at index i.
func (b *Bvh[V, T]) ItemAt(i uint32) Item[V, T] { return b.items[i] }

// Root returns the root node. Panics if the Bvh is empty; check NItems
// first.
func (b *Bvh[V, T]) Root() Node[V] { return b.nodes[0] }

// Empty reports whether the Bvh holds no items.
func (b *Bvh[V, T]) Empty() bool { return len(b.items) == 0 }
