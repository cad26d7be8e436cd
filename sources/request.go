package sources

import (
	"io"
	"os"

	"github.com/reusee/bf/cmds"
)

var codeFlag = cmds.Var[string]("-code", "program code string", "--code", "-c")

var filePath string

func init() {
	// a bare argument is the program path; sharing the command makes
	// "-file a.bf b.bf" a repetition error
	file := cmds.Func(func(path string) {
		filePath = path
	}).Desc("program file path, http(s) URL, or - for standard input").OnlyOnce()
	cmds.Define("-file", file)
	cmds.Fallback(file)
}

// Request names where the program comes from. At most one of Code and Path
// is set.
type Request struct {
	Code string
	Path string
}

func (Module) Request() Request {
	return Request{
		Code: *codeFlag,
		Path: filePath,
	}
}

// Stdin is read when Path is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
