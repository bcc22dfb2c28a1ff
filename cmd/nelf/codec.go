package main

import (
	"fmt"
	"log/slog"

	"github.com/nelf-format/nelf/pkg/config"
	"github.com/nelf-format/nelf/pkg/nelf"
)

// buildCodec assembles the codec from the config file (if any) and the
// global flags.
func buildCodec(log *slog.Logger) (*nelf.Codec, error) {
	settings := &config.Settings{}

	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return nil, fmt.Errorf("unable to load config %s: %w", cli.Config, err)
		}
		log.Debug("loaded codec config", "path", cli.Config)
		settings = loaded
	}

	opts, err := merge(settings, cli.Framing).Options()
	if err != nil {
		return nil, err
	}
	return nelf.New(opts...)
}

// merge applies flag values over file-provided settings; flags win.
func merge(settings *config.Settings, flags codecFlags) *config.Settings {
	if flags.Separator != "" {
		settings.Separator = flags.Separator
	}
	if flags.Terminator != "" {
		settings.Terminator = flags.Terminator
	}
	if flags.MaxLength != 0 {
		settings.MaxElementLength = flags.MaxLength
	}
	if flags.MaxElements != 0 {
		settings.MaxElements = flags.MaxElements
	}
	return settings
}
