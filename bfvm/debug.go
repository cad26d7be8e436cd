package bfvm

import (
	"fmt"
	"strconv"
	"strings"
)

// DebugRecord is the machine state at a DebugPrint instruction.
type DebugRecord struct {
	IP    int
	TP    int
	Value uint64
	Tape  []uint64
}

func (d *DebugRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Debug: Pointer: %d, Tape Pointer: %d, Cell Value: %d, Tape: [", d.IP, d.TP, d.Value)
	for i, cell := range d.Tape {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(cell, 10))
	}
	b.WriteString("]")
	return b.String()
}
