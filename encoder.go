package huffpack

import (
	"errors"
	"io"

	"github.com/chronos-tachyon/assert"
)

// readForCounts performs the counting pass: it consumes the input one
// 8-bit symbol at a time until end-of-data, tallying occurrences.  The
// PseudoEOF entry is then overwritten with exactly 1 so that the tree
// always contains the terminator, even though it never appears in the
// input itself.
func readForCounts(r bitReader) (*frequencyTable, error) {
	freq := new(frequencyTable)
	for {
		symbol, err := r.ReadBits(bitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		freq[symbol]++
	}
	freq[PseudoEOF] = 1
	return freq, nil
}

// writeBody re-reads the rewound input and emits each symbol's code in
// MSB-first bit order, then the PseudoEOF code once, and stops.
func writeBody(codes *codeTable, r bitReader, w bitWriter) error {
	for {
		symbol, err := r.ReadBits(bitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := writeCode(w, codes, Symbol(symbol)); err != nil {
			return err
		}
	}
	return writeCode(w, codes, PseudoEOF)
}

func writeCode(w bitWriter, codes *codeTable, symbol Symbol) error {
	// Cannot fire when the counting pass and the encoding pass read the
	// same stream: every symbol seen here was counted and has a leaf.
	assert.Assertf(codes.present[symbol], "symbol %d has no code", symbol)

	hc := codes.codes[symbol]
	if hc.Size == 0 {
		// Degenerate single-leaf tree: the empty code.
		return nil
	}
	return w.WriteBits(hc.Bits, hc.Size)
}
