package main

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/pgzip"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/picatz/base64mix/pkg/base64mix"
)

const (
	pgzipBlockSize              = 1 << 20
	pgzipWriterBlocksMultiplier = 2
)

// compress gzips the encoded output when set.
var compress bool

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode [file ...]",
	Short: "Encode files or stdin with the standard alphabet.",
	Long: `Encode files or stdin with the standard alphabet.

Each input is encoded whole and written as one line of padded standard
Base64. With --compress the output stream is gzipped, which pairs with
the decode subcommands' transparent handling of '.gz' inputs.
`,
	Run: func(_ *cobra.Command, args []string) {
		runEncode(base64mix.Standard, args)
	},
}

// encodeURLCmd represents the encodeurl command.
var encodeURLCmd = &cobra.Command{
	Use:   "encodeurl [file ...]",
	Short: "Encode files or stdin with the URL-safe alphabet.",
	Long: `Encode files or stdin with the URL-safe alphabet.

Each input is encoded whole and written as one line of unpadded
URL-safe Base64, fit for URLs, filenames and cookie values.
`,
	Run: func(_ *cobra.Command, args []string) {
		runEncode(base64mix.URL, args)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(encodeURLCmd)

	for _, cmd := range []*cobra.Command{encodeCmd, encodeURLCmd} {
		cmd.Flags().BoolVarP(&compress, "compress", "z",
			false,
			"gzip the encoded output")
	}
}

// runEncode encodes every input with the given alphabet and writes the
// results, one line each, to the output destination.
func runEncode(a *base64mix.Alphabet, args []string) {
	out, closeOut := openOutput()
	defer closeOut()

	w := out

	if compress {
		if outputPath == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			warn("writing compressed output to a terminal")
		}

		zw, closeCompressor := compressOutput(out)
		defer closeCompressor()

		w = zw
	}

	for _, path := range inputsOrStdin(args) {
		start := time.Now()

		data, err := readInput(path, false)
		if err != nil {
			die("%s", err)
		}

		encoded, err := base64mix.Encode(data, a)
		if err != nil {
			die("encode %s: %s", displayName(path), err)
		}

		if _, err := w.Write(encoded); err != nil {
			die("%s", err)
		}

		if _, err := w.Write([]byte{'\n'}); err != nil {
			die("%s", err)
		}

		appLogger.Info("encoded",
			"input", displayName(path),
			"alphabet", a,
			"read", humanize.IBytes(uint64(len(data))),
			"symbols", humanize.Comma(int64(len(encoded))),
			"took", time.Since(start))
	}
}

// compressOutput wraps the output in a parallel gzip writer and returns
// it with a function you should call to flush and close the writer when
// you're done.
func compressOutput(output io.Writer) (io.Writer, func()) {
	zw := pgzip.NewWriter(output)

	err := zw.SetConcurrency(pgzipBlockSize, runtime.GOMAXPROCS(0)*pgzipWriterBlocksMultiplier)
	if err != nil {
		die("%s", err)
	}

	return zw, func() {
		if err := zw.Close(); err != nil {
			die("%s", err)
		}
	}
}
