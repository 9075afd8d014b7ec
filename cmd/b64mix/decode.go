package main

import (
	"bytes"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/picatz/base64mix/pkg/base64mix"
)

// decodeCmd represents the decode command.
var decodeCmd = &cobra.Command{
	Use:   "decode [file ...]",
	Short: "Decode standard-alphabet Base64 from files or stdin.",
	Long: `Decode standard-alphabet Base64 from files or stdin.

Decoding is strict: symbols outside the alphabet, malformed padding and
non-canonical trailing bits are rejected rather than guessed at. Each
input must be a single Base64 string; only surrounding whitespace is
ignored, so files that end with a newline decode as expected.

Files with names ending in '.gz' are decompressed before decoding.
Decoded bytes are written out in argument order.
`,
	Run: func(_ *cobra.Command, args []string) {
		runDecode(base64mix.Standard, args)
	},
}

// decodeURLCmd represents the decodeurl command.
var decodeURLCmd = &cobra.Command{
	Use:   "decodeurl [file ...]",
	Short: "Decode URL-safe Base64 from files or stdin.",
	Long: `Decode URL-safe Base64 from files or stdin.

Behaves like decode, but for input in the URL-safe alphabet. Padded
input is still accepted when well formed.
`,
	Run: func(_ *cobra.Command, args []string) {
		runDecode(base64mix.URL, args)
	},
}

// decodeMixCmd represents the decodemix command.
var decodeMixCmd = &cobra.Command{
	Use:   "decodemix [file ...]",
	Short: "Decode Base64 in either alphabet from files or stdin.",
	Long: `Decode Base64 in either alphabet from files or stdin.

Accepts both '+'/'/' and '-'/'_', even mixed within a single input.
Use this when the producer of the input is unknown or inconsistent
about which alphabet it writes.
`,
	Run: func(_ *cobra.Command, args []string) {
		runDecode(base64mix.Mixed, args)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(decodeURLCmd)
	rootCmd.AddCommand(decodeMixCmd)
}

// runDecode decodes every input with the given alphabet and writes the
// raw bytes to the output destination.
func runDecode(a *base64mix.Alphabet, args []string) {
	out, closeOut := openOutput()
	defer closeOut()

	for _, path := range inputsOrStdin(args) {
		start := time.Now()

		text, err := readInput(path, true)
		if err != nil {
			die("%s", err)
		}

		decoded, err := base64mix.Decode(bytes.TrimSpace(text), a)
		if err != nil {
			die("decode %s: %s", displayName(path), err)
		}

		if _, err := out.Write(decoded); err != nil {
			die("%s", err)
		}

		appLogger.Info("decoded",
			"input", displayName(path),
			"alphabet", a,
			"read", humanize.Comma(int64(len(text))),
			"wrote", humanize.IBytes(uint64(len(decoded))),
			"took", time.Since(start))
	}
}
