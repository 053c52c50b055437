package main

import (
	"fmt"
	"io"

	pagebreaks "github.com/alnah/mdbook-pagebreaks"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-pagebreaks [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "mdBook preprocessor turning %s lines into page breaks.\n", pagebreaks.Marker)
	fmt.Fprintln(w, "Without a command, reads mdBook's [context, book] JSON on stdin and")
	fmt.Fprintln(w, "writes the processed book to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  supports     Report whether a renderer is supported")
	fmt.Fprintln(w, "  init         Write the page break stylesheet")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdbook-pagebreaks help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show debug diagnostics")
}

// printSupportsUsage prints usage for the supports command.
func printSupportsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-pagebreaks supports <renderer> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit 0 when the renderer is supported. Every renderer is: html gets")
	fmt.Fprintln(w, "page break elements, the others get the markers removed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-pagebreaks init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the stylesheet that hides page breaks on screen and breaks")
	fmt.Fprintln(w, "pages in print. Add it to book.toml:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  [output.html]")
	fmt.Fprintln(w, "  additional-css = [\"mdbook-pagebreaks.css\"]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>    Directory to write into (default: current)")
	fmt.Fprintln(w, "  -s, --style <name>    Style to write (default: pagebreaks)")
	fmt.Fprintln(w, "  -f, --force           Overwrite an existing stylesheet")
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "supports":
		printSupportsUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdbook-pagebreaks version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdbook-pagebreaks help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
