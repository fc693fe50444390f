package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/color"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/filters"
	"github.com/alnah/go-md2site/internal/frontmatter"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/store"
)

// runBuild loads the configuration, builds the site and reports the result.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q (use --dir to choose the site root)", ErrInvalidArgs, positional[0])
	}

	cfg, err := loadBuildConfig(flags)
	if err != nil {
		return withConfigHint(err, flags.common.config)
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	order, err := md2site.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	registry := filters.NewRegistry()
	logger := newLogger(env, flags.common)

	builder, err := md2site.NewBuilder(
		md2site.WithRoot(flags.dir),
		md2site.WithPaths(md2site.Paths{
			Posts:   cfg.Paths.Posts,
			Layouts: cfg.Paths.Layouts,
			Output:  cfg.Paths.Output,
			Index:   cfg.Paths.Index,
		}),
		md2site.WithOrder(order),
		md2site.WithDateFormat(cfg.Date.Format),
		md2site.WithLocale(cfg.Date.Locale),
		md2site.WithHighlightStyle(cfg.Highlight.Style),
		md2site.WithHighlightClasses(cfg.Highlight.Classes),
		md2site.WithUnsafeHTML(cfg.Markdown.UnsafeHTML),
		md2site.WithRegistry(registry),
		md2site.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := builder.Build(ctx)
	if err != nil {
		return withBuildHint(err, flags.dir, cfg, registry)
	}

	if !flags.common.quiet {
		printResult(env, result, env.Now().Sub(start), flags.common.verbose)
	}
	return nil
}

// loadBuildConfig returns the config named by --config, else <dir>/md2site.yaml
// when it exists, else the defaults.
func loadBuildConfig(flags *buildFlags) (*config.Config, error) {
	if flags.common.config != "" {
		cfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	candidate := filepath.Join(flags.dir, config.DefaultFileName)
	if !fileutil.FileExists(candidate) {
		return config.DefaultConfig(), nil
	}
	if !fileutil.IsFilePath(candidate) {
		candidate = "." + string(filepath.Separator) + candidate
	}
	cfg, err := config.LoadConfig(candidate)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.order != "" {
		cfg.Order = flags.order
	}
	if flags.locale != "" {
		cfg.Date.Locale = flags.locale
	}
	if flags.dateFormat != "" {
		cfg.Date.Format = flags.dateFormat
	}
	if flags.style != "" {
		cfg.Highlight.Style = flags.style
	}
}

// newLogger returns a text logger on stderr. Verbose shows debug events,
// quiet shows errors only.
func newLogger(env *Environment, f commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
}

// printResult prints the success message.
func printResult(env *Environment, result *md2site.Result, elapsed time.Duration, verbose bool) {
	fmt.Fprintf(env.Stdout, "[+] Posts: %s\n", absPath(result.PostDir))
	fmt.Fprintf(env.Stdout, "[+] Index: %s\n", absPath(result.IndexPath))

	msg := fmt.Sprintf("Site built: %d %s", len(result.Posts), plural(len(result.Posts), "post", "posts"))
	if verbose {
		msg += fmt.Sprintf(" (%v)", elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(env.Stdout, color.Green.Sprint(msg))
}

// absPath resolves p against the working directory, keeping p on failure.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// withConfigHint appends a hint to config lookup failures.
func withConfigHint(err error, name string) error {
	if !errors.Is(err, config.ErrConfigNotFound) || fileutil.IsFilePath(name) {
		return err
	}
	var searched []string
	if dir, dirErr := os.UserConfigDir(); dirErr == nil {
		searched = append(searched, filepath.Join(dir, "go-md2site", name+".yaml"))
	}
	return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
}

// withBuildHint appends an actionable hint to build failures.
func withBuildHint(err error, dir string, cfg *config.Config, registry *filters.Registry) error {
	var hint string
	switch {
	case errors.Is(err, store.ErrPostsDirMissing):
		hint = hints.ForPostsDir(filepath.Join(dir, cfg.Paths.Posts))
	case errors.Is(err, store.ErrLayoutNotFound):
		name := md2site.PostLayout
		if strings.Contains(err.Error(), md2site.IndexLayout+store.LayoutSuffix) {
			name = md2site.IndexLayout
		}
		hint = hints.ForMissingLayout(filepath.Join(dir, cfg.Paths.Layouts), name)
	case errors.Is(err, md2site.ErrEmptyPost):
		hint = hints.ForEmptyPost()
	case errors.Is(err, md2site.ErrDuplicatePost):
		hint = hints.ForDuplicatePost()
	case errors.Is(err, frontmatter.ErrInvalidFrontMatter),
		errors.Is(err, frontmatter.ErrMissingClosingDelimiter):
		hint = hints.ForFrontMatter()
	case errors.Is(err, md2site.ErrRender) && strings.Contains(err.Error(), "not defined"):
		hint = hints.ForUnknownFilter(registry.Names())
	case errors.Is(err, os.ErrPermission):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
