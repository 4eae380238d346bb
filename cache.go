package bvh

import "github.com/katalvlaran/bvh/volume"

// SearchRadius is the half-width of the sliding window PLOC agglomeration
// scans when looking for each node's best merge partner.
const SearchRadius = 14

// searchCache is a fixed SearchRadius x SearchRadius table of merged-volume
// costs, addressed modulo SearchRadius. It amortizes the symmetric cost
// area(merge(node[i], node[j])) across the PLOC scan: processing index i
// writes the forward half-window (i, i+SearchRadius] and reads back values
// the backward half-window [i-SearchRadius, i) already wrote when *they*
// were processed. It holds no ownership and is reused, cleared or not,
// across PLOC levels: stale cells are always overwritten before they are
// read again, because the builder advances monotonically through indices
// and every backward read at step i retrieves the value computed at step j
// with the same two endpoint nodes (see findBestNeighbor).
type searchCache struct {
	table [SearchRadius][SearchRadius]float32
}

// write records the merged-volume cost between the node processed at step
// writerStep and the node at index target (target > writerStep).
func (c *searchCache) write(writerStep, target int, cost float32) {
	c.table[writerStep%SearchRadius][target%SearchRadius] = cost
}

// read retrieves the cost written by write(writerStep, readerStep, ...).
func (c *searchCache) read(writerStep, readerStep int) float32 {
	return c.table[writerStep%SearchRadius][readerStep%SearchRadius]
}

// findBestNeighbor returns, for nodes[index], the index j != index in
// [index-SearchRadius, index+SearchRadius] minimizing
// area(merge(nodes[index].Volume, nodes[j].Volume)), ties broken by keeping
// the first (lowest-cost-so-far) candidate found. If index == 0 only
// forward candidates exist; near the tail, only backward candidates do.
func findBestNeighbor[V volume.Volume[V]](cache *searchCache, index int, nodes []Node[V]) int {
	bestNode := index
	bestArea := float32(0)
	haveBest := false

	begin := index - SearchRadius
	if begin < 0 {
		begin = 0
	}
	for other := begin; other < index; other++ {
		area := cache.read(other, index)
		if !haveBest || area < bestArea {
			bestNode = other
			bestArea = area
			haveBest = true
		}
	}

	ourVolume := nodes[index].Volume
	end := index + SearchRadius + 1
	if end > len(nodes) {
		end = len(nodes)
	}
	for other := index + 1; other < end; other++ {
		area := ourVolume.Merge(nodes[other].Volume).Area()
		cache.write(index, other, area)
		if !haveBest || area < bestArea {
			bestNode = other
			bestArea = area
			haveBest = true
		}
	}

	return bestNode
}
