package huffpack_test

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"

	"github.com/rebeccaerenbaum/huffpack"
)

// benchCorpora returns synthetic inputs with different entropy
// profiles: a byte-level Huffman code shines on skewed distributions
// and can do nothing about uniform noise.
func benchCorpora() map[string][]byte {
	rng := rand.New(rand.NewSource(99))

	skewed := make([]byte, 64*1024)
	for i := range skewed {
		// Exponential: a handful of byte values dominate.
		v := rng.ExpFloat64() * 8
		if v > 255 {
			v = 255
		}
		skewed[i] = byte(v)
	}

	noise := make([]byte, 64*1024)
	rng.Read(noise)

	return map[string][]byte{
		"english": []byte(strings.Repeat("now is the winter of our discontent made glorious summer by this sun of york; ", 800)),
		"skewed":  skewed,
		"noise":   noise,
	}
}

func BenchmarkCompress(b *testing.B) {
	for name, data := range benchCorpora() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			var out bytes.Buffer
			for i := 0; i < b.N; i++ {
				out.Reset()
				if err := huffpack.Compress(bytes.NewReader(data), &out); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(out.Len())/float64(len(data)), "ratio")
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for name, data := range benchCorpora() {
		b.Run(name, func(b *testing.B) {
			var compressed bytes.Buffer
			if err := huffpack.Compress(bytes.NewReader(data), &compressed); err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(data)))
			var out bytes.Buffer
			for i := 0; i < b.N; i++ {
				out.Reset()
				if err := huffpack.Decompress(bytes.NewReader(compressed.Bytes()), &out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFlateBaseline measures the same corpora through DEFLATE for
// a ratio baseline; flate adds LZ77 matching on top of Huffman coding,
// so it bounds what byte-level coding alone leaves on the table.
func BenchmarkFlateBaseline(b *testing.B) {
	for name, data := range benchCorpora() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			var out bytes.Buffer
			for i := 0; i < b.N; i++ {
				out.Reset()
				fw, err := flate.NewWriter(&out, flate.DefaultCompression)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := io.Copy(fw, bytes.NewReader(data)); err != nil {
					b.Fatal(err)
				}
				if err := fw.Close(); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(out.Len())/float64(len(data)), "ratio")
		})
	}
}
