package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/sources"
	"github.com/reusee/bf/terms"
	"github.com/reusee/dscope"
)

func init() {
	cmds.Header = `
Usage: bf [options] <file | URL | ->

Runs a program on a tape of cells. Options may also be set in bf.cue or
.bf.cue in the working directory, the user config directory or /etc.
`

	cmds.Define("-theory", cmds.Func(func() error {
		fmt.Fprint(os.Stdout, strings.TrimLeft(bfvm.Theory, "\n"))
		return cmds.ErrUsagePrinted
	}).Desc("describe the machine model and exit"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	os.Exit(run(context.Background(), scope, os.Stderr))
}

// run returns the process exit status.
func run(ctx context.Context, scope dscope.Scope, stderr io.Writer) int {
	var logger logs.Logger
	scope.Call(func(l logs.Logger) {
		logger = l
	})

	fail := func(err error, config bfvm.Config) int {
		logger.DebugContext(ctx, "exit", "error", err)
		fmt.Fprintln(stderr, errorMessage(err, config))
		return 1
	}

	scope, err := bfconfigs.Fork(scope)
	if err != nil {
		return fail(err, bfvm.DefaultConfig())
	}
	var config bfvm.Config
	scope.Call(func(c bfvm.Config) {
		config = c
	})

	var source sources.Source
	scope.Call(func(
		read sources.Read,
	) {
		source, err = read(ctx)
	})
	if err != nil {
		return fail(err, config)
	}

	var streams *terms.Streams
	scope.Call(func(
		open terms.OpenStreams,
	) {
		streams, err = open()
	})
	if err != nil {
		return fail(err, config)
	}

	// debug lines interleave with program output
	scope = scope.Fork(func() bfvm.DebugOutput {
		return streams.Synced(stderr)
	})

	var stats bfvm.Stats
	var newline bfconfigs.Newline
	var showStats bfconfigs.ShowStats
	scope.Call(func(
		interpret bfvm.Interpret,
		n bfconfigs.Newline,
		s bfconfigs.ShowStats,
	) {
		newline = n
		showStats = s
		stats, err = interpret(ctx, source.Text, streams.In, streams.Out)
	})
	stats.Source = source.Name

	if err == nil && newline {
		err = streams.Out.WriteByte('\n')
	}
	if closeErr := streams.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %w", bfvm.ErrIOFailure, closeErr)
	}
	if err != nil {
		return fail(err, config)
	}

	if showStats {
		if _, err := stats.WriteTo(stderr); err != nil {
			return fail(err, config)
		}
	}

	return 0
}

func errorMessage(err error, config bfvm.Config) string {
	msg := "Error: " + err.Error() + "."
	switch {
	case errors.Is(err, bfvm.ErrTapeOutOfBounds) && !config.DynamicTape:
		msg += " Use -tape-wrapping on to enable wrapping or -dynamic-tape on to allow dynamic tape growth."
	case errors.Is(err, bfvm.ErrTapeOutOfBounds):
		msg += " Use -tape-wrapping on to enable wrapping."
	case errors.Is(err, bfvm.ErrCellOverflow), errors.Is(err, bfvm.ErrCellUnderflow):
		msg += " Use -cell-wrapping on to enable wrapping."
	case errors.Is(err, sources.ErrNoProgram):
		msg += " Use -h for usage."
	}
	return msg
}
