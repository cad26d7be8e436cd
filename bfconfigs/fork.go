package bfconfigs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/dscope"
)

// Fork resolves the machine configuration and provides it to a child scope.
func Fork(scope dscope.Scope) (ret dscope.Scope, err error) {
	scope.Call(func(
		getConfig GetConfig,
	) {
		var config bfvm.Config
		config, err = getConfig()
		if err != nil {
			return
		}
		ret = scope.Fork(func() bfvm.Config {
			return config
		})
	})
	return
}
