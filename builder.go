package md2site

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/alnah/go-md2site/internal/filters"
	"github.com/alnah/go-md2site/internal/logfields"
	"github.com/alnah/go-md2site/internal/render"
	"github.com/alnah/go-md2site/internal/store"
)

// Layout names read from the layouts directory.
const (
	PostLayout  = "post"
	IndexLayout = "index"
)

// Result describes a completed build.
type Result struct {
	Posts     []*Post  // in index order
	PostDir   string   // directory holding the post pages
	IndexPath string   // path of the index page
	Pages     []string // every page written, posts first, index last
}

// Builder assembles the whole site: it compiles every post, renders each
// through the post layout, and renders the index.
type Builder struct {
	source   Source
	sink     Sink
	order    Order
	layouts  string
	compiler *Compiler
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewBuilder creates a Builder. The filter registry is created and
// populated here, once, before any page is rendered.
func NewBuilder(opts ...Option) (*Builder, error) {
	s := newSettings(opts)

	registry := s.registry
	if registry == nil {
		registry = filters.NewRegistry()
	}
	if _, ok := registry.Lookup(filters.DateFilterName); !ok {
		if err := filters.RegisterDefaults(registry, s.date); err != nil {
			return nil, err
		}
	}

	layouts := s.paths.Layouts
	if layouts == "" {
		layouts = "layouts"
	}

	return &Builder{
		source:   s.source,
		sink:     s.sink,
		order:    s.order,
		layouts:  layouts,
		compiler: newCompiler(s),
		renderer: render.NewRenderer(registry),
		logger:   s.logger,
	}, nil
}

// page is a rendered post waiting to be written.
type page struct {
	filename string
	html     string
}

// Build generates the site. Every post is compiled and every page rendered
// before the first write, so a parse or render failure leaves the output
// untouched. Write failures are not rolled back.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	listed, err := b.source.ListPosts()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	paths := b.order.apply(listed)
	b.logger.Debug("listed posts", logfields.Count(len(paths)), logfields.Order(b.order.String()))

	posts, err := b.compileAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	pages := make([]page, 0, len(posts))
	contexts := make([]render.PostContext, 0, len(posts))
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pc := render.NewPostContext(p.Filename, p.Headers, p.HTML, p.URL())
		html, err := b.renderLayout(PostLayout, pc)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", p.Filename, err)
		}
		pages = append(pages, page{filename: p.Filename, html: html})
		contexts = append(contexts, pc)
	}

	index, err := b.renderLayout(IndexLayout, render.NewIndexContext(contexts))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	written, err := b.writeAll(pages, index)
	if err != nil {
		return nil, err
	}

	b.logger.Info("site built",
		logfields.Count(len(posts)),
		logfields.Path(b.sink.PostDir()),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
	)

	return &Result{
		Posts:     posts,
		PostDir:   b.sink.PostDir(),
		IndexPath: b.sink.IndexPath(),
		Pages:     written,
	}, nil
}

// compileAll compiles paths in order and rejects two posts sharing a page.
func (b *Builder) compileAll(ctx context.Context, paths []string) ([]*Post, error) {
	posts := make([]*Post, 0, len(paths))
	seen := make(map[string]string, len(paths))

	for _, p := range paths {
		post, err := b.compiler.Compile(ctx, p)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[post.Filename]; dup {
			return nil, fmt.Errorf("%w: %s and %s both produce %s", ErrDuplicatePost, prev, p, post.URL())
		}
		seen[post.Filename] = p
		posts = append(posts, post)
	}
	return posts, nil
}

// renderLayout reads the named layout and executes it with data.
func (b *Builder) renderLayout(name string, data render.Context) (string, error) {
	source, err := b.source.ReadLayout(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return b.renderer.Render(path.Join(b.layouts, name+store.LayoutSuffix), source, data)
}

func (b *Builder) writeAll(pages []page, index string) ([]string, error) {
	if err := b.sink.EnsurePostDir(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	written := make([]string, 0, len(pages)+1)
	for _, pg := range pages {
		dest, err := b.sink.WritePost(pg.filename, []byte(pg.html))
		if err != nil {
			return written, fmt.Errorf("%w: %w", ErrIO, err)
		}
		b.logger.Debug("wrote post", logfields.Post(pg.filename), logfields.Path(dest))
		written = append(written, dest)
	}

	dest, err := b.sink.WriteIndex([]byte(index))
	if err != nil {
		return written, fmt.Errorf("%w: %w", ErrIO, err)
	}
	b.logger.Debug("wrote index", logfields.Path(dest))
	return append(written, dest), nil
}
