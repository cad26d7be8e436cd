package bfvm

const Theory = `
Machine Model:
A run owns one tape of unsigned cells, each CellBits wide, and two pointers:
IP into the filtered program and TP into the tape. Both start at 0 and the
tape starts as TapeSize zero cells.

Memory policy, checked in this order when TP leaves the tape:
1. Moving right past the last cell grows the tape by one zero cell if
   DynamicTape is on.
2. Otherwise, if TapeWrapping is on, TP wraps to the other end. Moving left
   past cell 0 never grows; it wraps or fails.
3. Otherwise the run fails with ErrTapeOutOfBounds.
With DynamicTape on, trailing zero cells right of TP are trimmed after every
instruction, never below TapeSize cells. A trimmed cell and a never
allocated one both read as zero, so trimming is invisible to programs.

Cell policy: values live in [0, 2^CellBits-1]. With CellWrapping an
increment of the maximum gives 0, a decrement of 0 gives the maximum, and an
input byte is reduced modulo 2^CellBits. Without it these fail with
ErrCellOverflow or ErrCellUnderflow and leave the cell as it was.

Loops: brackets are matched by nesting depth over the filtered program, once,
before the first instruction runs. An unmatched bracket anywhere fails the
load with ErrUnmatchedBracket, even if execution would never reach it.
`
