package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Header is printed above the command list.
var Header string

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stderr)
}

func (p *Executor) FprintUsage(w io.Writer) {
	if Header != "" {
		fmt.Fprintln(w, strings.TrimSpace(Header))
		fmt.Fprintln(w)
	}
	printCommands(w, p.commands, "  ")
}

func printCommands(w io.Writer, commands map[string]*Command, indent string) {
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		// primary name first, aliases in definition order
		slices.SortFunc(names[cmd], func(a, b string) int {
			return aliasIndex(cmd, a) - aliasIndex(cmd, b)
		})
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, cmd := range order {
		if cmd.Description == "" {
			continue
		}
		line := strings.Join(names[cmd], ", ")
		if args := cmd.argNames(); len(args) > 0 {
			line += " " + strings.Join(args, " ")
		}
		fmt.Fprintf(w, "%s%s\n", indent, line)
		if cmd.Description != "" {
			fmt.Fprintf(w, "%s    %s\n", indent, cmd.Description)
		}
	}
}

func aliasIndex(cmd *Command, name string) int {
	if i := slices.Index(cmd.Aliases, name); i >= 0 {
		return i + 1
	}
	return 0
}
