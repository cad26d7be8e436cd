package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/vars"
)

var (
	cellSizeFlag = cmds.Var[*int]("-cell-size",
		"cell size in bits, 1 to 64 (default 8)",
		"--cell-size", "-cs")
	cellWrappingFlag = cmds.Var[vars.OnOff]("-cell-wrapping",
		"on or off, wrap cell values on overflow and underflow (default on)",
		"--cell-wrapping", "-cw")
	tapeSizeFlag = cmds.Var[*int]("-tape-size",
		"initial tape size in cells (default 1)",
		"--tape-size", "-ts")
	tapeWrappingFlag = cmds.Var[vars.OnOff]("-tape-wrapping",
		"on or off, wrap the tape pointer at the tape ends (default off)",
		"--tape-wrapping", "-tw")
	dynamicTapeFlag = cmds.Var[vars.OnOff]("-dynamic-tape",
		"on or off, grow the tape on demand and trim it back (default on)",
		"--dynamic-tape", "-dt")
	eofFlag = cmds.Var[string]("-eof",
		"end of input policy: keep, zero, max or halt (default keep)",
		"--eof")
	debugFlag = cmds.Switch("-debug",
		"enable the # debug instruction",
		"--debug", "-d")
	debugREPLFlag = cmds.Switch("-debug-repl",
		"open a starlark REPL at each # instead of printing, implies -debug",
		"--debug-repl")
	newlineFlag = cmds.Switch("-newline",
		"print a newline after the program output",
		"--newline", "-n")
	statsFlag = cmds.Switch("-stats",
		"print execution statistics",
		"--stats", "-s")
)

// Flags holds the command line overrides. Zero fields are unset.
type Flags struct {
	CellSize     *int
	CellWrapping vars.OnOff
	TapeSize     *int
	TapeWrapping vars.OnOff
	DynamicTape  vars.OnOff
	EOF          string
	Debug        bool
	DebugREPL    bool
}

func (Module) Flags() Flags {
	return Flags{
		CellSize:     *cellSizeFlag,
		CellWrapping: *cellWrappingFlag,
		TapeSize:     *tapeSizeFlag,
		TapeWrapping: *tapeWrappingFlag,
		DynamicTape:  *dynamicTapeFlag,
		EOF:          *eofFlag,
		Debug:        *debugFlag,
		DebugREPL:    *debugREPLFlag,
	}
}
