// Command lexfib enumerates n-tuples of consecutive Fibonacci numbers whose
// English spellings chain: the last letter of each number's spelled name
// equals the first letter of the next one's.
//
// Usage:
//
//	lexfib [options] ARITY
//
// The first five pairs (ARITY 2) are (0, 1), (5, 8), (8, 13), (55, 89),
// (610, 987). Tuples print one per line, in the order the scan finds them;
// if the scan dies before the requested count, the tuples found so far have
// already been printed and stderr reports how far the scan got.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"

	"github.com/katalvlaran/lexfib/lexical"
)

// Exit codes: 0 on normal completion, 1 for a fatal stop after partial
// output, 2 for bad usage.
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// defaultLimit is how many tuples print when -limit is not given.
const defaultLimit = 5

// progressEvery spaces out verbose scan-progress records.
const progressEvery = 50

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires flags to the scan. It is split from main so tests can drive it
// with injected writers and read back the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lexfib", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, `lexfib - lexical n-tuples of consecutive Fibonacci numbers

Usage:
  lexfib [options] ARITY

Arguments:
  ARITY
    Tuple size n (integer >= 2). The scan slides a window of n consecutive
    Fibonacci numbers and prints each window whose spellings chain
    last-letter to first-letter, e.g. five -> eight -> thirteen.

Options:
`)
		fs.PrintDefaults()
	}

	limit := fs.Int("limit", defaultLimit, "how many tuples to print before stopping (>= 1)")
	output := fs.String("output", "", "write tuples to this file instead of stdout")
	outputShort := fs.String("o", "", "write tuples to this file instead of stdout (shorthand)")
	maxTerms := fs.Int("max-terms", 0, "scan at most this many Fibonacci terms (0 means no budget)")
	verbose := fs.Bool("v", false, "verbose progress logging on stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "lexfib: expected exactly one positional argument: ARITY")
		fs.Usage()

		return exitUsage
	}
	arity, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "lexfib: ARITY must be an integer, got %q\n", fs.Arg(0))
		fs.Usage()

		return exitUsage
	}
	if *limit < 1 {
		fmt.Fprintf(stderr, "lexfib: -limit must be at least 1, got %d\n", *limit)
		fs.Usage()

		return exitUsage
	}

	logger := newLogger(stderr, *verbose)

	finder, err := lexical.NewFinder(arity,
		lexical.WithMaxTerms(*maxTerms),
		lexical.WithOnTerm(func(index int, value *big.Int, _ string) {
			if index%progressEvery == 0 {
				logger.Debug("scan progress", "index", index, "digits", len(value.Text(10)))
			}
		}),
	)
	if err != nil {
		// Bad arity or options: a usage problem, caught before any scanning.
		fmt.Fprintf(stderr, "lexfib: %v\n", err)
		fs.Usage()

		return exitUsage
	}

	dest := stdout
	if path := pickOutputPath(*output, *outputShort); path != "" {
		file, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(stderr, "lexfib: %v\n", err)

			return exitFatal
		}
		defer file.Close()
		dest = file
		logger.Info("writing tuples to file", "path", path)
	}

	logger.Info("scan starting", "arity", arity, "limit", *limit, "maxTerms", *maxTerms)

	found := 0
	for found < *limit {
		tuple, err := finder.Next()
		if err != nil {
			// Everything found so far is already printed; report the stop.
			fmt.Fprintf(stderr, "lexfib: %v (checked up to Fibonacci index %d, found %d of %d tuples)\n",
				err, finder.Terms()-1, found, *limit)

			return exitFatal
		}
		if _, err := fmt.Fprintln(dest, tuple); err != nil {
			fmt.Fprintf(stderr, "lexfib: writing output: %v\n", err)

			return exitFatal
		}
		found++
		logger.Info("tuple found", "start", tuple.Start, "tuple", tuple.String(), "found", found)
	}

	logger.Info("scan complete", "found", found, "terms", finder.Terms())

	return exitOK
}

// pickOutputPath resolves the long and shorthand output flags; the long
// form wins when both are set.
func pickOutputPath(long, short string) string {
	if long != "" {
		return long
	}

	return short
}

// newLogger builds the stderr logger: silent by default, debug-level text
// records under -v. Results never go through the logger.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
