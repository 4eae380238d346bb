package bvh

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bvh/volume"
)

// String renders an indented textual tree dump: interior nodes as "Node"
// lines, leaves as "Leaf" lines followed by one "Item" line per item. This
// is a debugging aid, not a stable serialization format.
func (b *Bvh[V, T]) String() string {
	var sb strings.Builder
	if b.Empty() {
		return "(empty)\n"
	}

	sb.WriteByte('\n')
	printNode(&sb, b, 0, 0)

	return sb.String()
}

func printNode[V volume.Volume[V], T any](sb *strings.Builder, b *Bvh[V, T], index uint32, level int) {
	node := b.nodes[index]
	indent := strings.Repeat("-", level)

	if node.Count == 0 {
		fmt.Fprintf(sb, "|%s Node: %+v\n", indent, node.Volume)
		printNode(sb, b, node.StartIndex, level+1)
		printNode(sb, b, node.StartIndex+1, level+1)

		return
	}

	fmt.Fprintf(sb, "|%s Leaf: %+v\n", indent, node.Volume)
	for i := uint32(0); i < node.Count; i++ {
		item := b.items[node.StartIndex+i]
		fmt.Fprintf(sb, "|%s Item: %+v (%+v)\n", strings.Repeat("-", level+1), item.Payload, item.Volume)
	}
}
