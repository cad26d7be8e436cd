package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/bf/bfcode"
)

var (
	ErrTapeOutOfBounds      = errors.New("tape pointer out of bounds")
	ErrCellOverflow         = errors.New("cell overflow")
	ErrCellUnderflow        = errors.New("cell underflow")
	ErrUnmatchedBracket     = errors.New("unmatched bracket")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIOFailure            = errors.New("io failure")

	// ErrHalt returned by an input reader ends the run without error.
	ErrHalt = errors.New("halt")
)

// Error is a fatal fault at one instruction. errors.Is matches it against
// its Kind.
type Error struct {
	Kind     error
	IP       int
	Op       bfcode.Op
	TP       int
	Value    uint64
	CellBits int
	// Cause is the underlying error of an ErrIOFailure.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnmatchedBracket:
		return fmt.Sprintf("%v: '%c' at instruction %d has no match", e.Kind, byte(e.Op), e.IP)
	case ErrTapeOutOfBounds:
		return fmt.Sprintf("%v: %v at instruction %d, tape pointer %d", e.Kind, e.Op, e.IP, e.TP)
	case ErrCellOverflow:
		return fmt.Sprintf("%v: %v at instruction %d, tape pointer %d, value %d exceeds maximum for %d-bit cells",
			e.Kind, e.Op, e.IP, e.TP, e.Value, e.CellBits)
	case ErrCellUnderflow:
		return fmt.Sprintf("%v: %v at instruction %d, tape pointer %d, value cannot be negative for %d-bit cells",
			e.Kind, e.Op, e.IP, e.TP, e.CellBits)
	case ErrIOFailure:
		return fmt.Sprintf("%v: %v at instruction %d: %v", e.Kind, e.Op, e.IP, e.Cause)
	}
	return fmt.Sprintf("%v: %v at instruction %d, tape pointer %d, cell value %d", e.Kind, e.Op, e.IP, e.TP, e.Value)
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}
