package cmds

import (
	"errors"
	"fmt"
	"os"
)

var ErrUsagePrinted = errors.New("usage printed")

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Fallback(command *Command) {
	GlobalExecutor.Fallback(command)
}

// Execute runs the global executor and terminates the process on failure.
func Execute(args []string) {
	err := GlobalExecutor.Execute(args)
	if errors.Is(err, ErrUsagePrinted) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Use -h for usage.\n", err)
		os.Exit(1)
	}
}
