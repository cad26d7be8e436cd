package bfvm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
)

// DebugOutput receives one line per DebugPrint record.
type DebugOutput io.Writer

func (Module) DebugOutput() DebugOutput {
	return os.Stderr
}

// DebugREPL hands DebugPrint records to an interactive tap instead of
// printing them.
type DebugREPL bool

// Interpret loads source, runs it against in and out, and reports the
// statistics of the run, also when the run fails.
type Interpret func(ctx context.Context, source string, in io.ByteReader, out io.ByteWriter) (Stats, error)

func (Module) Interpret(
	config Config,
	logger logs.Logger,
	newSpan logs.NewSpan,
	debugOutput DebugOutput,
	debugREPL DebugREPL,
	tap debugs.Tap,
) Interpret {
	return func(ctx context.Context, source string, in io.ByteReader, out io.ByteWriter) (stats Stats, err error) {
		ctx, _ = newSpan(ctx, "")
		begin := time.Now()

		program := bfcode.Load(source, config.Debug)
		loadTime := time.Since(begin)
		logger.DebugContext(ctx, "program loaded",
			"input", len(source),
			"code", len(program),
			"duration", loadTime,
		)

		defer func() {
			stats.InputSize = utf8.RuneCountInString(source)
			stats.CodeSize = len(program)
			stats.LoadTime = loadTime
			stats.TotalTime = time.Since(begin)
			stats.Config = config
			if err != nil {
				logger.DebugContext(ctx, "run failed", "error", err)
				err = logs.WrapSpan(ctx, err)
			} else {
				logger.DebugContext(ctx, "run finished",
					"executed", stats.Executed,
					"duration", stats.ExecTime,
					"tape", stats.FinalTapeSize,
				)
			}
		}()

		vm, err := NewVM(program, config, in, out)
		if err != nil {
			stats.InitialTapeSize = config.TapeSize
			return stats, err
		}
		logger.DebugContext(ctx, "run start",
			"cell_bits", config.CellBits,
			"tape_size", config.TapeSize,
			"dynamic_tape", config.DynamicTape,
		)

		for record, err := range vm.Run {
			if err != nil {
				return vm.Stats(), err
			}
			if debugREPL {
				tap(ctx, record.String(), record.globals(vm))
				continue
			}
			if _, err := fmt.Fprintln(debugOutput, record.String()); err != nil {
				return vm.Stats(), fmt.Errorf("%w: write debug record: %w", ErrIOFailure, err)
			}
		}

		return vm.Stats(), nil
	}
}

func (d *DebugRecord) globals(vm *VM) map[string]any {
	tape := d.Tape
	return map[string]any{
		"ip":    d.IP,
		"tp":    d.TP,
		"value": d.Value,
		"tape":  tape,
		"op":    vm.Program[d.IP].String(),
		"cell": func(i int) (uint64, error) {
			if i < 0 || i >= len(tape) {
				return 0, fmt.Errorf("cell %d out of range [0, %d)", i, len(tape))
			}
			return tape[i], nil
		},
	}
}
