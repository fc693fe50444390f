package assets

// LayoutLoader defines the contract for loading page layouts.
type LayoutLoader interface {
	// LoadLayout loads a layout by name (without the .layout.html suffix).
	// Returns ErrNoDefaultLayout if the layout doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadLayout(name string) (string, error)
}
