package huffpack

import (
	"fmt"
)

// readCompressedBits walks the decode tree against the body bits.
// Each 0 bit descends left, each 1 bit descends right; reaching a leaf
// either terminates the decode (PseudoEOF) or emits one output byte
// and resets the walk to the root.  The walk never resets mid-path,
// and never reads past the first terminator.  End-of-data anywhere
// before the terminator is a format error.
func readCompressedBits(root *node, r bitReader, w bitWriter) error {
	// A single-leaf tree carries the empty code, so the body holds zero
	// code bits.  Only the terminator can be that sole leaf: every tree
	// the compressor builds contains it, and a one-leaf tree has room
	// for nothing else.  Any other sole leaf could never terminate.
	if root.isLeaf() {
		if root.symbol == PseudoEOF {
			return nil
		}
		return fmt.Errorf("%w: single-leaf tree without terminator", ErrTruncatedBody)
	}

	current := root
	for {
		bit, err := r.ReadBool()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTruncatedBody, err)
		}
		if bit {
			current = current.right
		} else {
			current = current.left
		}
		if !current.isLeaf() {
			continue
		}
		if current.symbol == PseudoEOF {
			return nil
		}
		// The low 8 bits only: headers carry 9-bit symbol values, and a
		// corrupt one may exceed 255.  No content validation beyond the
		// magic word, matching the format's contract.
		if err := w.WriteBits(uint64(current.symbol)&(alphabetSize-1), bitsPerWord); err != nil {
			return err
		}
		current = root
	}
}
