package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/mdbook-pagebreaks/internal/config"
)

// newLogger returns a human-readable logger writing to w.
// Stdout carries the book, so w is always stderr in production.
func newLogger(w io.Writer, level zerolog.Level, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !color}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// resolveLogLevel picks the log level.
// Precedence: --quiet > --verbose > log.level (env or config) > info.
func resolveLogLevel(f *commonFlags, configured string) (zerolog.Level, error) {
	switch {
	case f.quiet:
		return zerolog.ErrorLevel, nil
	case f.verbose:
		return zerolog.DebugLevel, nil
	case configured == "":
		return zerolog.InfoLevel, nil
	}

	if !config.IsLogLevel(configured) {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q (must be one of %s)",
			config.ErrInvalidValue, configured, strings.Join(config.LogLevels, ", "))
	}
	return zerolog.ParseLevel(strings.ToLower(configured))
}
