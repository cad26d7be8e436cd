package bfconfigs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

// Newline prints a line break after the program output.
type Newline bool

// ShowStats prints the statistics report after the run.
type ShowStats bool

func (Module) Newline(
	loader configs.Loader,
	logger logs.Logger,
) Newline {
	return Newline(*newlineFlag || configSwitch(loader, logger, "newline"))
}

func (Module) ShowStats(
	loader configs.Loader,
	logger logs.Logger,
) ShowStats {
	return ShowStats(*statsFlag || configSwitch(loader, logger, "stats"))
}

func (Module) DebugREPL() bfvm.DebugREPL {
	return bfvm.DebugREPL(*debugREPLFlag)
}

func configSwitch(loader configs.Loader, logger logs.Logger, path string) bool {
	v, err := configs.First[bool](loader, path)
	if err != nil {
		logger.Warn("config switch", "path", path, "error", err)
	}
	return v
}
