package bfvm

import (
	"errors"
	"io"
	"time"

	"github.com/reusee/bf/bfcode"
)

// Run executes until the program ends or faults. It yields a record for each
// DebugPrint when debugging is enabled, and yields a fault as its last
// element. Stopping the iteration early pauses the machine; a later Run
// resumes at the next instruction.
func (v *VM) Run(yield func(*DebugRecord, error) bool) {
	start := time.Now()
	defer func() {
		v.elapsed += time.Since(start)
	}()
	for !v.Done() {
		record, err := v.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if record != nil && !yield(record, nil) {
			return
		}
	}
}

// Step executes one instruction. On a fault the tape, the tape pointer and
// the instruction pointer are left as they were before the instruction.
func (v *VM) Step() (*DebugRecord, error) {
	if v.Done() {
		return nil, nil
	}
	op := v.Program[v.IP]
	v.executed++

	var record *DebugRecord

	switch op {

	case bfcode.MoveRight:
		switch {
		case v.TP+1 < v.Tape.Len():
			v.TP++
		case v.Config.DynamicTape:
			v.Tape.Grow()
			v.TP++
			v.maxTape = max(v.maxTape, v.Tape.Len())
		case v.Config.TapeWrapping:
			v.TP = 0
		default:
			return nil, v.fault(ErrTapeOutOfBounds, nil)
		}

	case bfcode.MoveLeft:
		switch {
		case v.TP > 0:
			v.TP--
		case v.Config.TapeWrapping:
			v.TP = v.Tape.Len() - 1
		default:
			return nil, v.fault(ErrTapeOutOfBounds, nil)
		}

	case bfcode.Increment:
		value, err := incrementCell(v.Tape.Get(v.TP), v.maxCell, v.Config.CellWrapping)
		if err != nil {
			return nil, v.fault(err, nil)
		}
		v.Tape.Set(v.TP, value)

	case bfcode.Decrement:
		value, err := decrementCell(v.Tape.Get(v.TP), v.maxCell, v.Config.CellWrapping)
		if err != nil {
			return nil, v.fault(err, nil)
		}
		v.Tape.Set(v.TP, value)

	case bfcode.Output:
		// cells wider than a byte are written modulo 256
		if err := v.out.WriteByte(byte(v.Tape.Get(v.TP))); err != nil {
			return nil, v.fault(ErrIOFailure, err)
		}

	case bfcode.Input:
		b, err := v.in.ReadByte()
		switch {
		case errors.Is(err, ErrHalt):
			v.IP = len(v.Program)
			return nil, nil
		case errors.Is(err, io.EOF):
			switch v.Config.EOF {
			case EOFZero:
				v.Tape.Set(v.TP, 0)
			case EOFMax:
				v.Tape.Set(v.TP, v.maxCell)
			case EOFHalt:
				v.IP = len(v.Program)
				return nil, nil
			}
		case err != nil:
			return nil, v.fault(ErrIOFailure, err)
		default:
			value, err := inputCell(b, v.maxCell, v.Config.CellWrapping)
			if err != nil {
				e := v.fault(err, nil)
				e.Value = value
				return nil, e
			}
			v.Tape.Set(v.TP, value)
		}

	case bfcode.JumpIfZero:
		if v.Tape.Get(v.TP) == 0 {
			v.IP = v.Jumps[v.IP]
		}

	case bfcode.JumpIfNonZero:
		if v.Tape.Get(v.TP) != 0 {
			v.IP = v.Jumps[v.IP]
		}

	case bfcode.DebugPrint:
		if v.Config.Debug {
			record = &DebugRecord{
				IP:    v.IP,
				TP:    v.TP,
				Value: v.Tape.Get(v.TP),
				Tape:  v.Tape.Cells(),
			}
		}

	}

	if v.Config.DynamicTape {
		v.Tape.Shrink(v.TP)
	}
	v.IP++

	return record, nil
}

func (v *VM) fault(kind error, cause error) *Error {
	return &Error{
		Kind:     kind,
		IP:       v.IP,
		Op:       v.Program[v.IP],
		TP:       v.TP,
		Value:    v.Tape.Get(v.TP),
		CellBits: v.Config.CellBits,
		Cause:    cause,
	}
}
