package huffpack

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// maxCodeBits bounds the depth of any code this codec assigns.  A
// deeper tree requires near-Fibonacci frequency counts whose total
// exceeds 2^64 input bytes.
const maxCodeBits = 64

// node is a Huffman tree node.  A node is a leaf iff both children are
// nil; an internal node always owns exactly two children.  Trees are
// read-only after construction.
type node struct {
	symbol Symbol
	weight uint64
	left   *node
	right  *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// buildTree runs the greedy merge over every symbol with a non-zero
// count and returns the root: repeatedly pop the two lightest nodes,
// combine them under a new internal node (first popped becomes the
// left child), and push the combination back.  Ties are broken by
// insertion order, which keeps the result deterministic without
// needing to match any other implementation bit-for-bit, since the
// header transmits the literal tree.
//
// With a single active symbol the merge loop never runs and the root
// is that bare leaf; callers must not assume an internal root.
func buildTree(freq *frequencyTable) *node {
	h := make(nodeHeap, 0, numSymbols)
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		if count := freq[symbol]; count != 0 {
			entry := heapEntry{
				node: &node{symbol: symbol, weight: uint64(count)},
				seq:  uint32(len(h)),
			}
			h = append(h, entry)
		}
	}
	assert.Assertf(len(h) > 0, "empty frequency table: the PseudoEOF count must be at least 1")
	h.Init()

	seq := uint32(len(h))
	for h.Len() > 1 {
		first := heap.Pop(&h).(heapEntry)
		second := heap.Pop(&h).(heapEntry)
		merged := &node{
			weight: first.node.weight + second.node.weight,
			left:   first.node,
			right:  second.node,
		}
		heap.Push(&h, heapEntry{node: merged, seq: seq})
		seq++
	}
	return heap.Pop(&h).(heapEntry).node
}

// countLeaves returns the number of leaves in the tree rooted at n.
func countLeaves(n *node) int {
	if n.isLeaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

// codeTable maps each symbol present in the tree to its bit code.  The
// present array distinguishes the degenerate empty code from an absent
// symbol.
type codeTable struct {
	codes   [numSymbols]Code
	present [numSymbols]bool
}

// buildCodes derives the code table from a tree by depth-first walk:
// descending left appends a 0 bit, descending right a 1 bit, and each
// leaf records the accumulated code.  The degenerate single-leaf tree
// assigns its leaf the empty code.
func buildCodes(root *node) *codeTable {
	table := new(codeTable)
	table.walk(root, Code{})
	return table
}

func (table *codeTable) walk(n *node, prefix Code) {
	if n.isLeaf() {
		table.codes[n.symbol] = prefix
		table.present[n.symbol] = true
		return
	}
	assert.Assertf(prefix.Size < maxCodeBits, "tree depth exceeds %d bits", maxCodeBits)
	table.walk(n.left, prefix.push(0))
	table.walk(n.right, prefix.push(1))
}

// type heapEntry + type nodeHeap {{{

type heapEntry struct {
	node *node
	seq  uint32
}

type nodeHeap []heapEntry

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(heapEntry))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	x := old[last]
	*h = old[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
