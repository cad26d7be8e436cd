package bfvm

import (
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs   logs.Module
	Debugs debugs.Module
}

// Config is replaced by the resolved configuration before a run.
func (Module) Config() Config {
	return DefaultConfig()
}
