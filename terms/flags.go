package terms

import (
	"os"

	"github.com/reusee/bf/cmds"
)

var (
	inputFlag  = cmds.Var[string]("-input", "read program input from a file instead of standard input", "--input")
	outputFlag = cmds.Var[string]("-output", "write program output to a file instead of standard output", "--output")
)

// Paths redirects the program streams to files. Empty fields mean the
// process streams.
type Paths struct {
	Input  string
	Output string
}

func (Module) Paths() Paths {
	return Paths{
		Input:  *inputFlag,
		Output: *outputFlag,
	}
}

type Std struct {
	In  *os.File
	Out *os.File
}

func (Module) Std() Std {
	return Std{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}
