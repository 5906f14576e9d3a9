package huffpack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/icza/bitio"
)

// Container magic.  The low bits of huffNumber are reserved for format
// variants; huffTree is the tree-header variant implemented here.
const (
	huffNumber = 0xface8200
	huffTree   = huffNumber | 1
)

// Every error is fatal to the current call: no retries, no resumption,
// and no rollback of output already written.
var (
	// ErrBadMagic reports that the leading 32 bits of a candidate
	// compressed stream do not identify the tree-header container.
	ErrBadMagic = errors.New("huffpack: bad magic")

	// ErrTruncatedHeader reports end-of-data inside the serialized
	// tree header.
	ErrTruncatedHeader = errors.New("huffpack: truncated tree header")

	// ErrTruncatedBody reports end-of-data in the encoded body before
	// the terminator code.
	ErrTruncatedBody = errors.New("huffpack: truncated body, no terminator")
)

// bitReader is the bit-granular input the codec consumes, MSB-first.
// Satisfied by *bitio.Reader and *bitio.CountReader.
type bitReader interface {
	ReadBits(n uint8) (uint64, error)
	ReadBool() (bool, error)
}

// bitWriter is the bit-granular output the codec produces, MSB-first.
// Satisfied by *bitio.Writer and *bitio.CountWriter.
type bitWriter interface {
	WriteBits(r uint64, n uint8) error
	WriteBool(b bool) error
}

// Option configures a single Compress or Decompress call.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger routes per-call diagnostics (symbol counts, header and
// body sizes) to the given structured logger at debug level.  The
// default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Compress reads in twice (a counting pass, then an encoding pass
// after rewinding) and writes the compressed container to out: the
// magic word, the pre-order tree header, and the body terminated by
// the PseudoEOF code, with the final partial byte zero-padded.
//
// Arbitrary byte sequences compress successfully; no validation is
// performed on the input.
func Compress(in io.ReadSeeker, out io.Writer, opts ...Option) error {
	cfg := newConfig(opts)

	freq, err := readForCounts(bitio.NewReader(in))
	if err != nil {
		return fmt.Errorf("huffpack: counting pass: %w", err)
	}
	root := buildTree(freq)
	codes := buildCodes(root)
	cfg.logger.Debug("built code tree", slog.Int("leaves", countLeaves(root)))

	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("huffpack: rewind input: %w", err)
	}

	w := bitio.NewCountWriter(out)
	if err := w.WriteBits(huffTree, bitsPerInt); err != nil {
		return fmt.Errorf("huffpack: write magic: %w", err)
	}
	if err := writeTree(w, root); err != nil {
		return fmt.Errorf("huffpack: write tree header: %w", err)
	}
	headerEnd := w.BitsCount
	if err := writeBody(codes, bitio.NewReader(in), w); err != nil {
		return fmt.Errorf("huffpack: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("huffpack: flush output: %w", err)
	}
	cfg.logger.Debug("compressed",
		slog.Int64("header_bits", headerEnd-bitsPerInt),
		slog.Int64("body_bits", w.BitsCount-headerEnd),
		slog.Int64("total_bits", w.BitsCount))
	return nil
}

// Decompress validates the container magic, rebuilds the Huffman tree
// from the header, and decodes the body to out.  On a truncation
// error, bytes already emitted remain written.
func Decompress(in io.Reader, out io.Writer, opts ...Option) error {
	cfg := newConfig(opts)

	r := bitio.NewCountReader(in)
	magic, err := r.ReadBits(bitsPerInt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if magic != huffTree {
		return fmt.Errorf("%w: got %#x, want %#x", ErrBadMagic, magic, uint64(huffTree))
	}
	root, err := readTree(r)
	if err != nil {
		return err
	}
	headerEnd := r.BitsCount

	w := bitio.NewWriter(out)
	if err := readCompressedBits(root, r, w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("huffpack: flush output: %w", err)
	}
	cfg.logger.Debug("decompressed",
		slog.Int64("header_bits", headerEnd-bitsPerInt),
		slog.Int64("body_bits", r.BitsCount-headerEnd))
	return nil
}
