package bfvm

import (
	"io"
	"time"

	"github.com/reusee/bf/bfcode"
)

type VM struct {
	Program bfcode.Program
	Jumps   Jumps
	Config  Config
	Tape    *Tape
	IP      int
	TP      int

	in       io.ByteReader
	out      io.ByteWriter
	maxCell  uint64
	executed uint64
	maxTape  int
	elapsed  time.Duration
}

// NewVM resolves the jumps of program and allocates a zeroed tape. The
// program and config are not modified afterwards.
func NewVM(
	program bfcode.Program,
	config Config,
	in io.ByteReader,
	out io.ByteWriter,
) (*VM, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	jumps, err := BuildJumps(program)
	if err != nil {
		return nil, err
	}
	return &VM{
		Program: program,
		Jumps:   jumps,
		Config:  config,
		Tape:    NewTape(config.TapeSize),
		in:      in,
		out:     out,
		maxCell: config.MaxCell(),
		maxTape: config.TapeSize,
	}, nil
}

func (v *VM) Done() bool {
	return v.IP >= len(v.Program)
}

func (v *VM) Stats() Stats {
	return Stats{
		CodeSize:        len(v.Program),
		Executed:        v.executed,
		ExecTime:        v.elapsed,
		InitialTapeSize: v.Config.TapeSize,
		FinalTapeSize:   v.Tape.Len(),
		MaxTapeSize:     v.maxTape,
		Config:          v.Config,
	}
}

// Execute runs program to the end. Debug records are dropped.
func Execute(
	program bfcode.Program,
	config Config,
	in io.ByteReader,
	out io.ByteWriter,
) (Stats, error) {
	vm, err := NewVM(program, config, in, out)
	if err != nil {
		return Stats{
			CodeSize: len(program),
			Config:   config,
		}, err
	}
	for _, err := range vm.Run {
		if err != nil {
			return vm.Stats(), err
		}
	}
	return vm.Stats(), nil
}
