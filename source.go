package md2site

import "github.com/alnah/go-md2site/internal/store"

// Source provides post and layout contents.
type Source interface {
	// ListPosts returns post paths in lexical order.
	ListPosts() ([]string, error)
	ReadPost(path string) ([]byte, error)
	// ReadLayout returns the named layout. It is called once per render.
	ReadLayout(name string) (string, error)
}

// Sink receives generated pages.
type Sink interface {
	EnsurePostDir() error
	WritePost(filename string, html []byte) (string, error)
	WriteIndex(html []byte) (string, error)
	PostDir() string
	IndexPath() string
}

// Paths locates sources and outputs relative to the site root.
// Empty fields take their default value.
type Paths struct {
	Posts   string // default "posts"
	Layouts string // default "layouts"
	Output  string // default "public"
	Index   string // default "index.html"
}

func (p Paths) storeLayout() store.Layout {
	return store.Layout{
		PostsDir:   p.Posts,
		LayoutsDir: p.Layouts,
		OutputDir:  p.Output,
		IndexFile:  p.Index,
	}
}

// Compile-time interface checks.
var (
	_ Source = (*store.Site)(nil)
	_ Sink   = (*store.Site)(nil)
)
