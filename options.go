package md2site

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/alnah/go-md2site/internal/filters"
	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/store"
)

// Option configures a Builder or Compiler.
type Option func(*settings)

// settings holds the resolved configuration shared by Builder and Compiler.
type settings struct {
	root             string
	fs               billy.Filesystem
	paths            Paths
	source           Source
	sink             Sink
	order            Order
	date             filters.DateOptions
	highlightStyle   string
	highlightClasses bool
	unsafeHTML       bool
	registry         *filters.Registry
	logger           *slog.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{
		root:           ".",
		order:          OrderNewestFirst,
		highlightStyle: pipeline.DefaultStyle,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil || s.sink == nil {
		var site *store.Site
		if s.fs != nil {
			site = store.New(s.fs, s.paths.storeLayout())
		} else {
			site = store.NewOS(s.root, s.paths.storeLayout())
		}
		if s.source == nil {
			s.source = site
		}
		if s.sink == nil {
			s.sink = site
		}
	}
	return s
}

// urlBase returns the URL prefix of generated posts, e.g. "/public/".
func (s *settings) urlBase() string {
	out := s.paths.Output
	if out == "" {
		return DefaultURLBase
	}
	out = strings.Trim(path.Clean(filepath.ToSlash(out)), "/")
	return "/" + out + "/"
}

// WithRoot sets the site root directory. Defaults to the current directory.
// Ignored when WithFilesystem is used.
func WithRoot(dir string) Option {
	return func(s *settings) {
		if dir != "" {
			s.root = dir
		}
	}
}

// WithFilesystem reads and writes the site through fs instead of the
// operating system filesystem.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(s *settings) {
		s.fs = fs
	}
}

// WithPaths overrides the site directory names.
func WithPaths(p Paths) Option {
	return func(s *settings) {
		s.paths = p
	}
}

// WithSource replaces where posts and layouts are read from.
func WithSource(src Source) Option {
	return func(s *settings) {
		s.source = src
	}
}

// WithSink replaces where pages are written to.
func WithSink(sink Sink) Option {
	return func(s *settings) {
		s.sink = sink
	}
}

// WithOrder sets the ordering policy. Defaults to OrderNewestFirst.
// Panics on an unknown Order (programmer error).
func WithOrder(o Order) Option {
	if !o.valid() {
		panic("md2site: WithOrder called with unknown order")
	}
	return func(s *settings) {
		s.order = o
	}
}

// WithDateFormat sets the layout of the date filter as a token format
// ("DD MMM YYYY") or preset name ("iso", "long", ...).
func WithDateFormat(format string) Option {
	return func(s *settings) {
		s.date.Format = format
	}
}

// WithLocale sets the BCP 47 locale used for month names by the date filter.
func WithLocale(tag string) Option {
	return func(s *settings) {
		s.date.Locale = tag
	}
}

// WithHighlightStyle sets the Chroma style used for code blocks.
func WithHighlightStyle(style string) Option {
	return func(s *settings) {
		if style != "" {
			s.highlightStyle = style
		}
	}
}

// WithHighlightClasses emits CSS classes instead of inline styles in code blocks.
func WithHighlightClasses(enabled bool) Option {
	return func(s *settings) {
		s.highlightClasses = enabled
	}
}

// WithUnsafeHTML lets raw HTML in posts reach the generated pages.
func WithUnsafeHTML(enabled bool) Option {
	return func(s *settings) {
		s.unsafeHTML = enabled
	}
}

// WithRegistry supplies the filter registry used by templates. Built-in
// filters are added only under names the registry does not already hold.
func WithRegistry(r *filters.Registry) Option {
	return func(s *settings) {
		s.registry = r
	}
}

// WithLogger sets the logger for build progress. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
