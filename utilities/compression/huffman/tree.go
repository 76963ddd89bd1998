package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/dargueta/squish"
)

// Node is a node of a Huffman tree. A leaf has a symbol and no children; an
// internal node has exactly two children and a frequency equal to the sum of
// theirs. Its Symbol is meaningless.
type Node struct {
	Symbol    byte
	Frequency uint64
	Left      *Node
	Right     *Node

	// order breaks ties between nodes with the same frequency; lower wins.
	order int
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman tree from the table using a min-heap ordered by
// (frequency, creation order). A table with a single symbol gives a tree whose
// root is that symbol's leaf. An empty table fails with [squish.ErrEmptyInput].
func BuildTree(table *FrequencyTable) (*Node, error) {
	numLeaves := table.Len()
	if numLeaves == 0 {
		return nil, squish.ErrEmptyInput.WithMessage("can't build a Huffman tree with 0 symbols")
	}

	h := nodeHeap{list: make([]*Node, 0, numLeaves)}
	for index, entry := range table.entries {
		h.list = append(h.list, &Node{
			Symbol:    entry.Symbol,
			Frequency: uint64(entry.Count),
			order:     index,
		})
	}
	h.Init()

	nextOrder := numLeaves
	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)

		heap.Push(&h, &Node{
			Frequency: left.Frequency + right.Frequency,
			Left:      left,
			Right:     right,
			order:     nextOrder,
		})
		nextOrder++
	}

	root := heap.Pop(&h).(*Node)
	assert.Assertf(
		root.Frequency == table.Total(),
		"root frequency %d doesn't match table total %d",
		root.Frequency,
		table.Total(),
	)
	assert.Assertf(
		nextOrder == 2*numLeaves-1,
		"tree has %d nodes, expected %d for %d leaves",
		nextOrder,
		2*numLeaves-1,
		numLeaves,
	)
	return root, nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Frequency != b.Frequency {
		return a.Frequency < b.Frequency
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
