package assets

import (
	"fmt"
	"strings"
)

// MaxAssetNameLength bounds style names accepted from config and flags.
const MaxAssetNameLength = 64

// ValidateAssetName checks that a style name is safe to turn into a filename.
// Returns ErrInvalidAssetName if the name is empty, too long, or contains path
// separators or dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidAssetName, len(name), MaxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
