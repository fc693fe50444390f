package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

const scaffoldRoot = "scaffold"

//go:embed scaffold
var scaffold embed.FS

// File is one file of the site skeleton.
type File struct {
	Path    string // slash-separated, relative to the site root
	Content []byte
}

// EmbeddedLoader loads layouts from the embedded skeleton.
// Implements LayoutLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadLayout loads a default layout by name.
func (e *EmbeddedLoader) LoadLayout(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := scaffold.ReadFile(path.Join(scaffoldRoot, "layouts", name+".layout.html"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNoDefaultLayout, name)
	}

	return string(content), nil
}

// ScaffoldFiles returns every skeleton file in lexical path order.
func ScaffoldFiles() ([]File, error) {
	var files []File
	err := fs.WalkDir(scaffold, scaffoldRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := scaffold.ReadFile(p)
		if err != nil {
			return err
		}
		rel := p[len(scaffoldRoot)+1:]
		files = append(files, File{Path: rel, Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return files, nil
}

// Compile-time interface check.
var _ LayoutLoader = (*EmbeddedLoader)(nil)
