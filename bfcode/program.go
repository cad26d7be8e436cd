package bfcode

import "strings"

// Program is a filtered instruction sequence. It is not modified after Load.
type Program []Op

// Load drops every character that is not an instruction. Anything else is a
// comment in the language, so there is nothing to report.
func Load(source string, debug bool) Program {
	program := make(Program, 0, len(source))
	for _, r := range source {
		if Accepts(r, debug) {
			program = append(program, Op(r))
		}
	}
	return program
}

func (p Program) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, op := range p {
		b.WriteByte(byte(op))
	}
	return b.String()
}
