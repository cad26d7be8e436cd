package terms

import (
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
