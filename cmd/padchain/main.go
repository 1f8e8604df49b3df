/*
padchain prints the total complexity of a list of door codes typed through a
chain of keypad robots.

Each input line holds one code such as 029A. The complexity of a code is the
length of the shortest press sequence on the outermost keypad times the
numeric part of the code; the tool prints the sum over all codes.

If arguments remain after the flags, the first one is the path of the input
file. Otherwise, input is read from standard input.

Usage:

	padchain [-layers N] [-workers N] [-v] [file]
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"

	"github.com/katalvlaran/padchain/chain"
	"github.com/katalvlaran/padchain/keypad"
)

func main() {
	layers := flag.Int("layers", 2, "number of directional robots between the human and the door robot")
	workers := flag.Int("workers", runtime.NumCPU(), "codes scored in parallel")
	verbose := flag.Bool("v", false, "log progress and metrics to stderr")
	flag.Parse()

	if err := run(flag.Arg(0), *layers, *workers, *verbose, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "padchain:", err)
		os.Exit(1)
	}
}

func run(path string, layers, workers int, verbose bool, out io.Writer) error {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	codes, err := keypad.ParseCodes(r)
	if err != nil {
		return err
	}

	opts := []chain.Option{chain.WithWorkers(workers)}
	if verbose {
		logger := logging.NewLogger(os.Stderr, logfmt.MainFormat, logging.LevelDebug, 256)
		opts = append(opts, chain.WithLogger(logger), chain.WithMetrics(chain.NewMetrics(logger)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	total, err := chain.Solve(ctx, codes, layers, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d\n", total)

	return err
}
