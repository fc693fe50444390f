package md2site

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/frontmatter"
	"github.com/alnah/go-md2site/internal/logfields"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Compiler turns one post source into a Post.
type Compiler struct {
	source        Source
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	urlBase       string
	logger        *slog.Logger
}

// NewCompiler creates a Compiler. It honors the source, filesystem, path,
// highlighting, Markdown and logger options.
func NewCompiler(opts ...Option) *Compiler {
	return newCompiler(newSettings(opts))
}

func newCompiler(s *settings) *Compiler {
	highlighter := pipeline.NewHighlighter(s.highlightStyle, s.highlightClasses)
	converter := pipeline.NewGoldmarkConverter(
		pipeline.WithHighlighter(highlighter),
		pipeline.WithUnsafeHTML(s.unsafeHTML),
	)
	return &Compiler{
		source:        s.source,
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: converter,
		urlBase:       s.urlBase(),
		logger:        s.logger,
	}
}

// Compile reads the post at path, splits its front matter and renders its
// body to HTML.
func (c *Compiler) Compile(ctx context.Context, path string) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := c.source.ReadPost(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, string(raw))

	headers, body, err := frontmatter.Parse([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	filename := fileutil.BaseName(path)
	if filename == "" {
		return nil, fmt.Errorf("%w: %s: no file name", ErrEmptyPost, path)
	}

	html, err := c.htmlConverter.ToHTML(ctx, string(body))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("%w: %s: no content", ErrEmptyPost, path)
	}

	c.logger.Debug("compiled post", logfields.Post(filename), logfields.Path(path))

	return &Post{
		Filename: filename,
		Headers:  headers,
		HTML:     html,
		urlBase:  c.urlBase,
	}, nil
}
