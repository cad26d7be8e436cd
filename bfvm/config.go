package bfvm

import (
	"fmt"
	"math"
	"strings"
)

type EOFPolicy uint8

const (
	// EOFKeep leaves the cell unchanged when input is exhausted.
	EOFKeep EOFPolicy = iota
	// EOFZero stores 0.
	EOFZero
	// EOFMax stores the all-ones cell value, the -1 of signed dialects.
	EOFMax
	// EOFHalt ends the run normally.
	EOFHalt
)

var eofPolicyNames = []string{
	EOFKeep: "keep",
	EOFZero: "zero",
	EOFMax:  "max",
	EOFHalt: "halt",
}

func (e EOFPolicy) String() string {
	if int(e) < len(eofPolicyNames) {
		return eofPolicyNames[e]
	}
	return fmt.Sprintf("EOFPolicy(%d)", e)
}

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for i, name := range eofPolicyNames {
		if name == str {
			return EOFPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown end of input policy %q, expecting one of %s",
		ErrInvalidConfiguration, str, strings.Join(eofPolicyNames, ", "))
}

// Config is built once before a run and passed by value.
type Config struct {
	CellBits     int
	CellWrapping bool
	TapeSize     int
	DynamicTape  bool
	TapeWrapping bool
	Debug        bool
	EOF          EOFPolicy
}

func DefaultConfig() Config {
	return Config{
		CellBits:     8,
		CellWrapping: true,
		TapeSize:     1,
		DynamicTape:  true,
		TapeWrapping: false,
		Debug:        false,
		EOF:          EOFKeep,
	}
}

func (c Config) Validate() error {
	if c.CellBits < 1 || c.CellBits > 64 {
		return fmt.Errorf("%w: cell size must be between 1 and 64 bits, got %d",
			ErrInvalidConfiguration, c.CellBits)
	}
	if c.TapeSize < 1 {
		return fmt.Errorf("%w: tape size must be at least 1 cell, got %d",
			ErrInvalidConfiguration, c.TapeSize)
	}
	if int(c.EOF) >= len(eofPolicyNames) {
		return fmt.Errorf("%w: unknown end of input policy %v",
			ErrInvalidConfiguration, c.EOF)
	}
	return nil
}

// MaxCell is the largest value a cell can hold, 2^CellBits - 1.
func (c Config) MaxCell() uint64 {
	if c.CellBits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(c.CellBits) - 1
}
