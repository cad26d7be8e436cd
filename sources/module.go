package sources

import (
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
