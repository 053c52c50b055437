package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing and argument count errors.
var ErrUsage = errors.New("usage error")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// initFlags holds all flags for the init command.
type initFlags struct {
	common commonFlags
	output string
	style  string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
}

// newFlagSet creates a silent FlagSet; errors are reported by runMain.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// buildCommonFlagSet creates the FlagSet of commands that only take common flags.
func buildCommonFlagSet(name string, f *commonFlags) *flag.FlagSet {
	fs := newFlagSet(name)
	addCommonFlags(fs, f)
	return fs
}

// buildInitFlagSet creates the FlagSet of the init command.
func buildInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := newFlagSet("init")
	fs.StringVarP(&f.output, "output", "o", "", "directory to write the stylesheet into")
	fs.StringVarP(&f.style, "style", "s", "", "embedded or custom style name")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing stylesheet")
	addCommonFlags(fs, &f.common)
	return fs
}

// parseFlagSet parses args and returns the positional arguments.
// flag.ErrHelp is returned unwrapped so callers can print command help.
func parseFlagSet(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return fs.Args(), nil
}

// parseCommonFlags parses flags for commands without extra flags.
func parseCommonFlags(name string, args []string) (*commonFlags, []string, error) {
	f := &commonFlags{}
	rest, err := parseFlagSet(buildCommonFlagSet(name, f), args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parseInitFlags parses flags for the init command.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	f := &initFlags{}
	rest, err := parseFlagSet(buildInitFlagSet(f), args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}
