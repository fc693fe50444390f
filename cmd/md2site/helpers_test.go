package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	env := &Environment{
		Now:     func() time.Time { return fixed },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Layouts: assets.NewEmbeddedLoader(),
	}
	return env, &stdout, &stderr
}

// writeTestFile writes content at dir/rel, creating parent directories.
func writeTestFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// readTestFile returns the content at dir/rel.
func readTestFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

// exists reports whether dir/rel exists.
func exists(dir, rel string) bool {
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	return err == nil
}

// minimalSite writes a site with bare layouts and the given posts.
func minimalSite(t *testing.T, posts map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "layouts/post.layout.html", "<h1>{{ .Headers.title }}</h1>{{ .HTML }}")
	writeTestFile(t, dir, "layouts/index.layout.html", "{{ range .Posts }}[{{ .Filename }}]{{ end }}")
	if err := os.MkdirAll(filepath.Join(dir, "posts"), 0o755); err != nil {
		t.Fatalf("mkdir posts: %v", err)
	}
	for name, content := range posts {
		writeTestFile(t, dir, "posts/"+name, content)
	}
	return dir
}
