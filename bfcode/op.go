package bfcode

// Op is one instruction. Its value is the source character it is written as.
type Op byte

const (
	MoveRight     Op = '>'
	MoveLeft      Op = '<'
	Increment     Op = '+'
	Decrement     Op = '-'
	Output        Op = '.'
	Input         Op = ','
	JumpIfZero    Op = '['
	JumpIfNonZero Op = ']'
	DebugPrint    Op = '#'
)

func (o Op) String() string {
	switch o {
	case MoveRight:
		return "MoveRight"
	case MoveLeft:
		return "MoveLeft"
	case Increment:
		return "Increment"
	case Decrement:
		return "Decrement"
	case Output:
		return "Output"
	case Input:
		return "Input"
	case JumpIfZero:
		return "JumpIfZero"
	case JumpIfNonZero:
		return "JumpIfNonZero"
	case DebugPrint:
		return "DebugPrint"
	}
	return "Op(" + string(rune(o)) + ")"
}

// Accepts reports whether r is an instruction character. '#' is one only
// when debug is enabled.
func Accepts(r rune, debug bool) bool {
	if r < 0 || r >= 0x80 {
		return false
	}
	switch Op(r) {
	case MoveRight, MoveLeft, Increment, Decrement,
		Output, Input, JumpIfZero, JumpIfNonZero:
		return true
	case DebugPrint:
		return debug
	}
	return false
}
