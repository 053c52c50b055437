package main

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/mdbook-pagebreaks/internal/config"
)

const envPrefix = "MDBOOK_PAGEBREAKS_"

// envConfig holds configuration from environment variables.
// mdBook runs preprocessors without flags, so this is how a book's CI tunes them.
type envConfig struct {
	ConfigPath string // MDBOOK_PAGEBREAKS_CONFIG: config file name or path
	LogLevel   string // MDBOOK_PAGEBREAKS_LOG_LEVEL: debug, info, warn, error, disabled
	OutputDir  string // MDBOOK_PAGEBREAKS_OUTPUT_DIR: init output directory
	Style      string // MDBOOK_PAGEBREAKS_STYLE: init style name
}

// knownEnvVars lists valid MDBOOK_PAGEBREAKS_* environment variables.
var knownEnvVars = map[string]bool{
	envPrefix + "CONFIG":     true,
	envPrefix + "LOG_LEVEL":  true,
	envPrefix + "OUTPUT_DIR": true,
	envPrefix + "STYLE":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv(envPrefix + "CONFIG"),
		LogLevel:   getenv(envPrefix + "LOG_LEVEL"),
		OutputDir:  getenv(envPrefix + "OUTPUT_DIR"),
		Style:      getenv(envPrefix + "STYLE"),
	}
}

// warnUnknownEnvVars logs a warning for each unrecognized MDBOOK_PAGEBREAKS_* variable.
func warnUnknownEnvVars(log zerolog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.OutputDir != "" {
		cfg.Init.OutputDir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Init.Style = env.Style
	}
}
