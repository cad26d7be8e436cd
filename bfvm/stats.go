package bfvm

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type Stats struct {
	// Source names where the program came from, a path, "-" or a URL.
	Source          string
	InputSize       int
	CodeSize        int
	LoadTime        time.Duration
	Executed        uint64
	ExecTime        time.Duration
	TotalTime       time.Duration
	InitialTapeSize int
	FinalTapeSize   int
	MaxTapeSize     int
	Config          Config
}

var _ io.WriterTo = Stats{}

func (s Stats) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	section := func(title string) {
		fmt.Fprintf(&b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}
	row := func(name string, format string, args ...any) {
		fmt.Fprintf(&b, "%-22s : %s\n", name, fmt.Sprintf(format, args...))
	}

	b.WriteString("\nBrainfuck Interpreter Statistics:\n-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-\n")

	section("Program Information")
	row("Program Path", "%s", s.Source)
	row("Program Size", "%s", plural(s.InputSize, "character"))
	row("Executable Code Size", "%s", plural(s.CodeSize, "character"))
	row("Program Load Time", "%s", millis(s.LoadTime))

	section("Execution Statistics")
	row("# of Commands Executed", "%d", s.Executed)
	row("Command Execution Time", "%s", millis(s.ExecTime))
	row("Total Execution Time", "%s", millis(s.TotalTime))

	section("Tape Information")
	row("Initial Tape Size", "%s", plural(s.InitialTapeSize, "cell"))
	row("Final Tape Size", "%s", plural(s.FinalTapeSize, "cell"))
	row("Maximum Tape Size", "%s", plural(s.MaxTapeSize, "cell"))

	section("Tape Configuration")
	row("Dynamic Tape", "%s", enabled(s.Config.DynamicTape))
	row("Tape Wrapping", "%s", enabled(s.Config.TapeWrapping))

	section("Cell Configuration")
	row("Cell Size", "%s", plural(s.Config.CellBits, "bit"))
	row("Cell Wrapping", "%s", enabled(s.Config.CellWrapping))
	row("End Of Input", "%v", s.Config.EOF)

	b.WriteString("\n")
	row("Debug Mode", "%s", enabled(s.Config.Debug))

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
