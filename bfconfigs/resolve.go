package bfconfigs

import (
	"fmt"
	"sync"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/vars"
)

// Resolve builds the machine configuration. A flag overrides the config
// files, which override the defaults.
func Resolve(loader configs.Loader, flags Flags) (config bfvm.Config, err error) {
	config = bfvm.DefaultConfig()

	if err := loader.Err(); err != nil {
		return config, fmt.Errorf("%w: %w", bfvm.ErrInvalidConfiguration, err)
	}

	// config files
	if err := lookup(loader, "cell_size", &config.CellBits); err != nil {
		return config, err
	}
	if err := lookup(loader, "cell_wrapping", &config.CellWrapping); err != nil {
		return config, err
	}
	if err := lookup(loader, "tape_size", &config.TapeSize); err != nil {
		return config, err
	}
	if err := lookup(loader, "tape_wrapping", &config.TapeWrapping); err != nil {
		return config, err
	}
	if err := lookup(loader, "dynamic_tape", &config.DynamicTape); err != nil {
		return config, err
	}
	if err := lookup(loader, "debug", &config.Debug); err != nil {
		return config, err
	}
	var eof string
	if err := lookup(loader, "eof", &eof); err != nil {
		return config, err
	}
	if eof != "" {
		config.EOF, err = bfvm.ParseEOFPolicy(eof)
		if err != nil {
			return config, err
		}
	}

	// flags
	if flags.CellSize != nil {
		config.CellBits = *flags.CellSize
	}
	if err := onOff("cell-wrapping", flags.CellWrapping, &config.CellWrapping); err != nil {
		return config, err
	}
	if flags.TapeSize != nil {
		config.TapeSize = *flags.TapeSize
	}
	if err := onOff("tape-wrapping", flags.TapeWrapping, &config.TapeWrapping); err != nil {
		return config, err
	}
	if err := onOff("dynamic-tape", flags.DynamicTape, &config.DynamicTape); err != nil {
		return config, err
	}
	if flags.EOF != "" {
		config.EOF, err = bfvm.ParseEOFPolicy(flags.EOF)
		if err != nil {
			return config, err
		}
	}
	if flags.Debug || flags.DebugREPL {
		config.Debug = true
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func lookup[T any](loader configs.Loader, path string, target *T) error {
	value, ok, err := configs.Lookup[T](loader, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", bfvm.ErrInvalidConfiguration, path, err)
	}
	if ok {
		*target = value
	}
	return nil
}

func onOff(name string, value vars.OnOff, target *bool) error {
	if !value.IsSet() {
		return nil
	}
	b, err := value.Bool()
	if err != nil {
		return fmt.Errorf("%w: %s %w", bfvm.ErrInvalidConfiguration, name, err)
	}
	*target = b
	return nil
}

type GetConfig func() (bfvm.Config, error)

func (Module) GetConfig(
	loader configs.Loader,
	flags Flags,
	logger logs.Logger,
) GetConfig {
	return sync.OnceValues(func() (bfvm.Config, error) {
		config, err := Resolve(loader, flags)
		if err != nil {
			return config, err
		}
		logger.Debug("config",
			"cell_bits", config.CellBits,
			"cell_wrapping", config.CellWrapping,
			"tape_size", config.TapeSize,
			"tape_wrapping", config.TapeWrapping,
			"dynamic_tape", config.DynamicTape,
			"debug", config.Debug,
			"eof", config.EOF,
		)
		return config, nil
	})
}
