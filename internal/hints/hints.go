// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user-level location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "mdbook-pagebreaks") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFileExists returns a hint for init refusing to overwrite a stylesheet.
func ForFileExists() string {
	return format("use --force to overwrite it")
}

// ForOutputDirectory returns hints for a missing or unwritable init directory.
func ForOutputDirectory() string {
	return format("check the directory exists and is writable, or pass --output")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidInput returns hints for host input that could not be decoded.
// stdinIsTerminal is true when the user ran the command by hand.
func ForInvalidInput(stdinIsTerminal bool) string {
	var hints []string
	if stdinIsTerminal {
		hints = append(hints, "this command reads mdBook's JSON on stdin; run it through `mdbook build`")
	}
	hints = append(hints, "register it in book.toml under [preprocessor.pagebreaks]")
	return formatHints(hints)
}

// ForVersionMismatch returns a hint for a host mdBook outside the supported range.
func ForVersionMismatch(supported string) string {
	return format("built against mdBook " + supported + "; upgrade mdBook or the preprocessor if output looks wrong")
}

// ForUnsupportedShell returns hints for completion requests with an unknown shell.
func ForUnsupportedShell(shells []string) string {
	return format("supported shells: " + strings.Join(shells, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
