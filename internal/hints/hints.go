// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2site/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/md2site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-md2site/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPostsDir returns hints when the posts directory is missing.
func ForPostsDir(dir string) string {
	return format("create " + dir + " or run 'md2site init' to scaffold a site")
}

// ForMissingLayout returns hints when a layout file cannot be found.
func ForMissingLayout(layoutsDir, name string) string {
	path := filepath.Join(layoutsDir, name+".layout.html")
	return format("create " + path + " or run 'md2site init' to write the default layouts")
}

// ForDuplicatePost returns hints when two posts map to the same page.
func ForDuplicatePost() string {
	return format("page names drop the extension; rename one of the posts")
}

// ForEmptyPost returns hints when a post has no body.
func ForEmptyPost() string {
	return format("every post needs Markdown after its front matter; add a body or move the file out of the posts directory")
}

// ForFrontMatter returns hints for malformed front matter.
func ForFrontMatter() string {
	return format("front matter must start and end with a '---' line and contain a YAML mapping")
}

// ForUnknownFilter returns hints listing the filters templates may use.
func ForUnknownFilter(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available filters: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
