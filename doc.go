// Package huffpack implements a lossless byte-stream compressor built
// on a per-file Huffman code.
//
// Compression scans the input once to count symbol frequencies, builds
// a prefix-code tree by greedy merging, and writes a self-contained
// container: a 32-bit magic word, a pre-order serialization of the
// literal tree, and a body of variable-length codes terminated by a
// pseudo-EOF symbol.  Decompression rebuilds the exact tree from the
// header and walks it bit by bit against the body; the round trip is
// byte-identical for every input, including the empty one.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffpack
