package huffpack

import (
	"fmt"
)

// writeTree serializes a tree in pre-order: a 0 bit introduces an
// internal node followed by its left then right subtree, and a 1 bit
// introduces a leaf followed by its 9-bit symbol value.  The encoding
// is self-delimiting, so no length prefix is needed.
func writeTree(w bitWriter, n *node) error {
	if n.isLeaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.symbol), symbolBits)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := writeTree(w, n.left); err != nil {
		return err
	}
	return writeTree(w, n.right)
}

// readTree reconstructs a tree serialized by writeTree.  Weights are
// not persisted and come back zero; the decode walk never consults
// them.  End-of-data before the tree is complete is a format error.
func readTree(r bitReader) (*node, error) {
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	if leaf {
		symbol, err := r.ReadBits(symbolBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
		}
		return &node{symbol: Symbol(symbol)}, nil
	}
	left, err := readTree(r)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}
