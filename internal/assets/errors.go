package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrNoDefaultLayout indicates no layout of that name ships with md2site.
	ErrNoDefaultLayout = errors.New("no default layout")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrAssetRead indicates the embedded skeleton could not be read.
	ErrAssetRead = errors.New("failed to read asset")
)
