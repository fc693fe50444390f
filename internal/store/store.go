// Package store reads site sources and writes generated pages through a
// go-billy filesystem rooted at the site directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/alnah/go-md2site/internal/assets"
)

// LayoutSuffix is appended to a layout name to form its file name.
const LayoutSuffix = ".layout.html"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Sentinel errors for store operations.
var (
	ErrLayoutNotFound  = errors.New("layout not found")
	ErrPostsDirMissing = errors.New("posts directory not found")
)

// Layout names the site directories and files, relative to the site root.
type Layout struct {
	PostsDir   string
	LayoutsDir string
	OutputDir  string
	IndexFile  string
}

// DefaultLayout returns the conventional site layout.
func DefaultLayout() Layout {
	return Layout{
		PostsDir:   "posts",
		LayoutsDir: "layouts",
		OutputDir:  "public",
		IndexFile:  "index.html",
	}
}

// Site is a source of posts and layouts and a sink for generated pages.
type Site struct {
	fs     billy.Filesystem
	layout Layout
}

// New creates a Site over fs. Empty layout fields take their DefaultLayout value.
func New(fs billy.Filesystem, layout Layout) *Site {
	def := DefaultLayout()
	if layout.PostsDir == "" {
		layout.PostsDir = def.PostsDir
	}
	if layout.LayoutsDir == "" {
		layout.LayoutsDir = def.LayoutsDir
	}
	if layout.OutputDir == "" {
		layout.OutputDir = def.OutputDir
	}
	if layout.IndexFile == "" {
		layout.IndexFile = def.IndexFile
	}
	return &Site{fs: fs, layout: layout}
}

// NewOS creates a Site backed by the operating system filesystem at root.
func NewOS(root string, layout Layout) *Site {
	return New(osfs.New(root), layout)
}

// ListPosts returns the paths of all regular, non-hidden files directly
// inside the posts directory, in lexical order.
func (s *Site) ListPosts() ([]string, error) {
	entries, err := s.fs.ReadDir(s.layout.PostsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPostsDirMissing, s.display(s.layout.PostsDir))
		}
		return nil, fmt.Errorf("listing %s: %w", s.display(s.layout.PostsDir), err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.Mode().IsRegular() {
			continue
		}
		paths = append(paths, s.fs.Join(s.layout.PostsDir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadPost returns the raw contents of the post at path.
func (s *Site) ReadPost(path string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.display(path), err)
	}
	return data, nil
}

// ReadLayout returns the source of layouts/<name>.layout.html.
// The file is read on every call.
func (s *Site) ReadLayout(name string) (string, error) {
	if err := assets.ValidateAssetName(name); err != nil {
		return "", err
	}

	path := s.fs.Join(s.layout.LayoutsDir, name+LayoutSuffix)
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrLayoutNotFound, s.display(path))
		}
		return "", fmt.Errorf("reading %s: %w", s.display(path), err)
	}
	return string(data), nil
}

// EnsurePostDir creates the output directory if it does not exist.
func (s *Site) EnsurePostDir() error {
	if err := s.fs.MkdirAll(s.layout.OutputDir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", s.display(s.layout.OutputDir), err)
	}
	return nil
}

// WritePost writes the page for filename into the output directory and
// returns the path written.
func (s *Site) WritePost(filename string, html []byte) (string, error) {
	path := s.fs.Join(s.layout.OutputDir, filename+".html")
	if err := util.WriteFile(s.fs, path, html, filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", s.display(path), err)
	}
	return s.display(path), nil
}

// WriteIndex writes the index page and returns the path written.
func (s *Site) WriteIndex(html []byte) (string, error) {
	if err := util.WriteFile(s.fs, s.layout.IndexFile, html, filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", s.display(s.layout.IndexFile), err)
	}
	return s.display(s.layout.IndexFile), nil
}

// PutFile writes data at path, creating parent directories. An existing
// file is left untouched unless overwrite is set; the returned bool reports
// whether the file was written.
func (s *Site) PutFile(path string, data []byte, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := s.fs.Stat(path); err == nil {
			return false, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("checking %s: %w", s.display(path), err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
			return false, fmt.Errorf("creating %s: %w", s.display(dir), err)
		}
	}
	if err := util.WriteFile(s.fs, path, data, filePerm); err != nil {
		return false, fmt.Errorf("writing %s: %w", s.display(path), err)
	}
	return true, nil
}

// PostDir returns the output directory as shown to users.
func (s *Site) PostDir() string {
	return s.display(s.layout.OutputDir)
}

// IndexPath returns the index file path as shown to users.
func (s *Site) IndexPath() string {
	return s.display(s.layout.IndexFile)
}

// display joins path onto the filesystem root for messages.
func (s *Site) display(path string) string {
	return s.fs.Join(s.fs.Root(), path)
}
