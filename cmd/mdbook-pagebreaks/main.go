package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	pagebreaks "github.com/alnah/mdbook-pagebreaks"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that names no command.
var ErrUnknownCommand = errors.New("unknown command")

// commandFunc runs one subcommand with the arguments after its name.
type commandFunc func(args []string, env *Environment) error

// commands maps subcommand names to their handlers.
// The preprocess command has no name: mdBook calls the binary without one.
var commands = map[string]commandFunc{
	"supports":   runSupports,
	"init":       runInit,
	"version":    runVersion,
	"help":       runHelp,
	"completion": runCompletion,
}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args to a command and maps its error to an exit code.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	name, run, cmdArgs, err := dispatch(rest)
	if err == nil {
		err = run(cmdArgs, env)
	}
	if errors.Is(err, flag.ErrHelp) {
		var topic []string
		if name != "" {
			topic = []string{name}
		}
		_ = runHelp(topic, env)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", progName, err)
	}
	return exitCodeFor(err)
}

// dispatch selects the command for args. No arguments, or flags only,
// selects preprocessing.
func dispatch(args []string) (string, commandFunc, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
			return "", runHelp, nil, nil
		}
		return "", runPreprocess, args, nil
	}
	if !isCommand(args[0]) {
		return "", nil, nil, fmt.Errorf("%w: %s (run '%s help')", ErrUnknownCommand, args[0], progName)
	}
	return args[0], commands[args[0]], args[1:], nil
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	_, ok := commands[s]
	return ok
}

// commandNames lists subcommand names in help order.
func commandNames() []string {
	return []string{"supports", "init", "version", "help", "completion"}
}

// runVersion prints the binary version and the mdBook version it targets.
func runVersion(_ []string, env *Environment) error {
	fmt.Fprintf(env.Stdout, "%s %s (mdBook %s)\n", progName, Version, pagebreaks.SupportedMDBookVersion)
	return nil
}
