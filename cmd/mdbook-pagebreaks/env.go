package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alnah/mdbook-pagebreaks/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes process I/O, environment lookups and asset loading.
type Environment struct {
	Stdin   io.Reader
	Stdout  io.Writer // Carries the processed book; never log here
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	Getwd   func() (string, error)

	// StdinIsTerminal and StderrIsTerminal report whether a human is attached.
	StdinIsTerminal  func() bool
	StderrIsTerminal func() bool

	// AssetLoader overrides style loading. Nil resolves from assets.basePath.
	AssetLoader assets.AssetLoader
}

// DefaultEnv returns the production environment bound to the process.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Getenv:           os.Getenv,
		Environ:          os.Environ,
		Getwd:            os.Getwd,
		StdinIsTerminal:  func() bool { return isTerminal(os.Stdin) },
		StderrIsTerminal: func() bool { return isTerminal(os.Stderr) },
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
