package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/klauspost/pgzip"
	"github.com/spf13/cobra"
)

// appLogger is used for logging events in our commands.
var appLogger = log15.New()

// these variables are accessible by all subcommands.
var (
	verbose    bool
	outputPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "b64mix",
	Short: "b64mix encodes and decodes Base64 in three alphabets.",
	Long: `b64mix encodes and decodes Base64 (RFC 4648).

The subcommand picks the alphabet: 'encode' and 'decode' use the standard
alphabet with '=' padding, 'encodeurl' and 'decodeurl' use the unpadded
URL-safe alphabet, and 'decodemix' accepts input produced with either
alphabet, even mixed within a single input.

Each file argument is processed in order; with no arguments stdin is
read. Output goes to stdout unless --output names a file.

Encode a file with the URL-safe alphabet:
$ b64mix encodeurl -o payload.b64 payload.bin

Decode it again, without caring which alphabet produced it:
$ b64mix decodemix -o payload.bin payload.b64`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		lvl := log15.LvlWarn
		if verbose {
			lvl = log15.LvlInfo
		}

		appLogger.SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		die(err.Error())
	}
}

func init() {
	// set up logging to stderr
	appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlWarn, log15.StderrHandler))

	// global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v",
		false,
		"log per-input progress to stderr")

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o",
		"",
		"write output to this file instead of stdout")
}

// warn is a convenience to log a message at the Warn level.
func warn(msg string, a ...interface{}) {
	appLogger.Warn(fmt.Sprintf(msg, a...))
}

// die is a convenience to log a message at the Error level and exit non
// zero.
func die(msg string, a ...interface{}) {
	appLogger.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}

// inputsOrStdin returns the given paths, or the stdin marker when none
// were given.
func inputsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}

	return args
}

// displayName names an input in logs and error messages.
func displayName(path string) string {
	if path == "-" || path == "" {
		return "stdin"
	}

	return path
}

// readInput reads a named input whole, "-" meaning stdin. With unzip set,
// files with names ending in '.gz' are decompressed as they are read.
func readInput(path string, unzip bool) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var r io.Reader = f

	if unzip && strings.HasSuffix(path, ".gz") {
		gr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, err
		}

		defer gr.Close()

		r = gr
	}

	return io.ReadAll(r)
}

// openOutput returns the destination subcommands write to and a function
// you should call to close it when you're done. The default is stdout.
func openOutput() (io.Writer, func()) {
	if outputPath == "" {
		return os.Stdout, func() {}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		die("%s", err)
	}

	return f, func() {
		if err := f.Close(); err != nil {
			die("%s", err)
		}
	}
}
