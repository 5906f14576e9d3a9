package huffpack

// Symbol represents a symbol in the codec's alphabet: the 256 literal
// byte values plus one reserved terminator.  Negative symbols are not
// valid.
type Symbol int32

const (
	bitsPerWord = 8
	bitsPerInt  = 32

	// alphabetSize is the number of literal byte values.
	alphabetSize = 1 << bitsPerWord

	// PseudoEOF is the reserved terminator symbol.  It never occurs in
	// real input, is present in every tree with a frequency of exactly
	// 1, and marks the logical end of the encoded body.
	PseudoEOF = Symbol(alphabetSize)

	// numSymbols is the full alphabet size including PseudoEOF.
	numSymbols = alphabetSize + 1

	// symbolBits is the fixed width of a leaf's symbol value in the
	// serialized tree header: one more bit than a byte, because
	// PseudoEOF does not fit in eight.
	symbolBits = bitsPerWord + 1
)

// frequencyTable holds one occurrence count per symbol, indexed by
// symbol value.  The PseudoEOF entry is always at least 1.
type frequencyTable [numSymbols]uint32
