// Package config loads and validates md2site configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// DefaultFileName is the config file looked up in the site root.
const DefaultFileName = "md2site.yaml"

// Ordering policies accepted by the order key.
const (
	OrderNewestFirst = "newest-first"
	OrderListing     = "listing"
)

// Field length limits.
const (
	// MaxPathLength bounds a single directory or file name.
	MaxPathLength = 255
	// MaxDateFormatLength bounds date.format.
	MaxDateFormatLength = dateutil.MaxDateFormatLength
	// MaxLocaleLength is the practical maximum of a BCP 47 tag.
	MaxLocaleLength = 35
	// MaxStyleLength bounds a Chroma style name.
	MaxStyleLength = 50
)

// Config represents the md2site configuration.
type Config struct {
	Paths     PathsConfig     `yaml:"paths"`
	Order     string          `yaml:"order"` // "newest-first" (default) or "listing"
	Date      DateConfig      `yaml:"date"`
	Highlight HighlightConfig `yaml:"highlight"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
}

// PathsConfig locates sources and outputs relative to the site root.
type PathsConfig struct {
	Posts   string `yaml:"posts"`
	Layouts string `yaml:"layouts"`
	Output  string `yaml:"output"`
	Index   string `yaml:"index"`
}

// DateConfig configures the date template filter.
type DateConfig struct {
	Format string `yaml:"format"` // Token format or preset ("iso", "short", "long", ...)
	Locale string `yaml:"locale"` // BCP 47 tag, e.g. "pt-BR"
}

// HighlightConfig configures code block highlighting.
type HighlightConfig struct {
	Style   string `yaml:"style"`   // Chroma style name
	Classes bool   `yaml:"classes"` // CSS classes instead of inline styles
}

// MarkdownConfig configures Markdown rendering.
type MarkdownConfig struct {
	UnsafeHTML bool `yaml:"unsafeHTML"` // Pass raw HTML in posts through
}

// DefaultConfig returns a Config with all keys at their default value.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Posts:   "posts",
			Layouts: "layouts",
			Output:  "public",
			Index:   "index.html",
		},
		Order: OrderNewestFirst,
		Date: DateConfig{
			Format: dateutil.DefaultDateFormat,
			Locale: "en-US",
		},
		Highlight: HighlightConfig{Style: "github"},
	}
}

// applyDefaults fills empty string fields from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	fill := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}
	fill(&c.Paths.Posts, def.Paths.Posts)
	fill(&c.Paths.Layouts, def.Paths.Layouts)
	fill(&c.Paths.Output, def.Paths.Output)
	fill(&c.Paths.Index, def.Paths.Index)
	fill(&c.Order, def.Order)
	fill(&c.Date.Format, def.Date.Format)
	fill(&c.Date.Locale, def.Date.Locale)
	fill(&c.Highlight.Style, def.Highlight.Style)
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"paths.posts", c.Paths.Posts},
		{"paths.layouts", c.Paths.Layouts},
		{"paths.output", c.Paths.Output},
		{"paths.index", c.Paths.Index},
	}
	for _, p := range paths {
		if err := validateRelativePath(p.field, p.value); err != nil {
			return err
		}
	}
	if filepath.Clean(c.Paths.Posts) == filepath.Clean(c.Paths.Output) {
		return fmt.Errorf("%w: paths.output: must differ from paths.posts (%q)", ErrInvalidConfig, c.Paths.Output)
	}

	switch c.Order {
	case OrderNewestFirst, OrderListing:
	default:
		return fmt.Errorf("%w: order: invalid value %q (must be %s or %s)",
			ErrInvalidConfig, c.Order, OrderNewestFirst, OrderListing)
	}

	if err := validateFieldLength("date.format", c.Date.Format, MaxDateFormatLength); err != nil {
		return err
	}
	if c.Date.Format != "" {
		if _, err := dateutil.ResolveDateFormat(c.Date.Format); err != nil {
			return fmt.Errorf("%w: date.format: %v", ErrInvalidConfig, err)
		}
	}
	if err := validateFieldLength("date.locale", c.Date.Locale, MaxLocaleLength); err != nil {
		return err
	}
	if _, err := dateutil.ResolveLocale(c.Date.Locale); err != nil {
		return fmt.Errorf("%w: date.locale: %v", ErrInvalidConfig, err)
	}

	return validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength)
}

// validateRelativePath rejects empty, absolute and escaping paths.
func validateRelativePath(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s: required", ErrInvalidConfig, field)
	}
	if err := validateFieldLength(field, value, MaxPathLength); err != nil {
		return err
	}
	if filepath.IsAbs(value) || strings.HasPrefix(value, "/") {
		return fmt.Errorf("%w: %s: must be relative to the site root, got %q", ErrInvalidConfig, field, value)
	}
	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return fmt.Errorf("%w: %s: must stay inside the site root, got %q", ErrInvalidConfig, field, value)
		}
	}
	return nil
}

// validateFieldLength checks if a field value exceeds its maximum length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a configuration by name or path.
// If nameOrPath contains a path separator, it is treated as a file path.
// Otherwise, it searches for nameOrPath.yaml in the current directory,
// then in the user config directory (go-md2site/).
// Keys missing from the file keep their DefaultConfig value; unknown keys
// are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
		}
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2site", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
