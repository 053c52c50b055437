package main

import (
	"errors"
	"os"

	pagebreaks "github.com/alnah/mdbook-pagebreaks"
	"github.com/alnah/mdbook-pagebreaks/internal/assets"
	"github.com/alnah/mdbook-pagebreaks/internal/config"
	"github.com/alnah/mdbook-pagebreaks/internal/fileutil"
)

// Exit codes for the mdbook-pagebreaks CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// mdBook treats any non-zero status from a preprocessor as a failed build.
const (
	ExitSuccess = 0 // Book processed or command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or host input
	ExitIO      = 3 // Read/write failure, file exists, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pagebreaks.ErrReadInput) ||
		errors.Is(err, pagebreaks.ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrFileExists) ||
		errors.Is(err, fileutil.ErrNotDir) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingRenderer) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pagebreaks.ErrEmptyInput) ||
		errors.Is(err, pagebreaks.ErrInvalidInput) ||
		errors.Is(err, pagebreaks.ErrUnknownBookItem) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
