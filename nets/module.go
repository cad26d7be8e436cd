package nets

import (
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

// Module needs a configs.Loader from the enclosing scope.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
