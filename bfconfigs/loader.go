package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var configFileNames = []string{
	"bf.cue",
	".bf.cue",
}

// SearchPaths lists existing config files under dirs, in precedence order.
func SearchPaths(dirs ...string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string

	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}

	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}

	// system wide
	dirs = append(dirs, "/etc")

	paths := SearchPaths(dirs...)
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}

	return configs.NewLoader(paths, schema)
}
