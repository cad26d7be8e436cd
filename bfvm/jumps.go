package bfvm

import "github.com/reusee/bf/bfcode"

// Jumps maps the position of every bracket to the position of its match.
// Other positions hold -1.
type Jumps []int

// BuildJumps matches brackets by nesting depth in one pass.
func BuildJumps(program bfcode.Program) (Jumps, error) {
	jumps := make(Jumps, len(program))
	var open []int
	for i, op := range program {
		jumps[i] = -1
		switch op {
		case bfcode.JumpIfZero:
			open = append(open, i)
		case bfcode.JumpIfNonZero:
			if len(open) == 0 {
				return nil, &Error{
					Kind: ErrUnmatchedBracket,
					IP:   i,
					Op:   op,
				}
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[start] = i
			jumps[i] = start
		}
	}
	if len(open) > 0 {
		return nil, &Error{
			Kind: ErrUnmatchedBracket,
			IP:   open[0],
			Op:   bfcode.JumpIfZero,
		}
	}
	return jumps, nil
}

// ScanMatch finds the match of the bracket at i by scanning with a depth
// counter, forward for '[' and backward for ']'. It agrees with BuildJumps
// for every matched bracket and costs O(len(program)) per call.
func ScanMatch(program bfcode.Program, i int) (int, error) {
	op := program[i]
	var step int
	var same, other bfcode.Op
	switch op {
	case bfcode.JumpIfZero:
		step, same, other = 1, bfcode.JumpIfZero, bfcode.JumpIfNonZero
	case bfcode.JumpIfNonZero:
		step, same, other = -1, bfcode.JumpIfNonZero, bfcode.JumpIfZero
	default:
		return -1, nil
	}
	depth := 1
	for j := i + step; j >= 0 && j < len(program); j += step {
		switch program[j] {
		case same:
			depth++
		case other:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return -1, &Error{
		Kind: ErrUnmatchedBracket,
		IP:   i,
		Op:   op,
	}
}
