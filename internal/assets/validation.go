package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a layout name is safe to embed in a file name.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could change the suffix), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
