// Command huffpack compresses and decompresses files using the
// tree-header Huffman container.
//
// Usage:
//
//	huffpack [-v] [-o output] <file>
//	huffpack -d [-v] [-o output] <file.hf>
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rebeccaerenbaum/huffpack"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		decompress bool
		output     string
		verbose    bool
	)
	pflag.BoolVarP(&decompress, "decompress", "d", false, "decompress instead of compress")
	pflag.StringVarP(&output, "output", "o", "", "output path (default: input path plus or minus .hf)")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log codec diagnostics to stderr")
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		return fmt.Errorf("expected exactly one input file, got %d", pflag.NArg())
	}
	input := pflag.Arg(0)

	if output == "" {
		if decompress {
			output = strings.TrimSuffix(input, ".hf")
			if output == input {
				return fmt.Errorf("cannot derive output name from %q: no .hf suffix (use --output)", input)
			}
		} else {
			output = input + ".hf"
		}
	}

	var opts []huffpack.Option
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, huffpack.WithLogger(slog.New(handler)))
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return err
	}

	if decompress {
		err = huffpack.Decompress(in, out, opts...)
	} else {
		err = huffpack.Compress(in, out, opts...)
	}
	if err != nil {
		out.Close()
		os.Remove(output)
		return err
	}
	return out.Close()
}
