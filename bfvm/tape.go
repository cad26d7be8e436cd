package bfvm

import "slices"

// Tape is the cell memory of one run. It grows only on the right and never
// shrinks below its initial length.
type Tape struct {
	cells []uint64
	floor int
}

func NewTape(size int) *Tape {
	return &Tape{
		cells: make([]uint64, size),
		floor: size,
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Get(i int) uint64 {
	return t.cells[i]
}

func (t *Tape) Set(i int, v uint64) {
	t.cells[i] = v
}

func (t *Tape) Grow() {
	t.cells = append(t.cells, 0)
}

// Shrink drops trailing zero cells to the right of pointer. A trimmed cell
// reads as zero once the tape grows back over it.
func (t *Tape) Shrink(pointer int) {
	n := len(t.cells)
	for n > t.floor && n-1 > pointer && t.cells[n-1] == 0 {
		n--
	}
	t.cells = t.cells[:n]
}

func (t *Tape) Cells() []uint64 {
	return slices.Clone(t.cells)
}
