package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/mdbook-pagebreaks/internal/config"
	"github.com/alnah/mdbook-pagebreaks/internal/fileutil"
	"github.com/alnah/mdbook-pagebreaks/internal/hints"
)

// loadConfig resolves the config file from --config or the environment,
// then applies environment overrides. No file means defaults.
func loadConfig(f *commonFlags, envCfg *envConfig) (*config.Config, error) {
	nameOrPath := f.config
	if nameOrPath == "" {
		nameOrPath = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if nameOrPath != "" {
		loaded, err := config.LoadConfig(nameOrPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedPaths(nameOrPath)))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger every command shares.
func setup(f *commonFlags, env *Environment) (*config.Config, zerolog.Logger, error) {
	cfg, err := loadConfig(f, loadEnvConfig(env.Getenv))
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level, err := resolveLogLevel(f, cfg.Log.Level)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log := newLogger(env.Stderr, level, env.StderrIsTerminal())
	warnUnknownEnvVars(log, env.Environ())
	return cfg, log, nil
}
