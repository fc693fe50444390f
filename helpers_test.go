package md2site

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	testPostLayout  = `<h1>{{ .Headers.title }}</h1>{{ with .Headers.date }}<time>{{ . | date }}</time>{{ end }}{{ .HTML }}`
	testIndexLayout = `{{ range .Posts }}<a href="{{ .URL }}">{{ .Filename }}</a>;{{ end }}`
)

// newTestFS returns a memfs holding files plus the default test layouts.
func newTestFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()

	fs := memfs.New()
	all := map[string]string{
		"layouts/post.layout.html":  testPostLayout,
		"layouts/index.layout.html": testIndexLayout,
	}
	for path, content := range files {
		all[path] = content
	}
	for path, content := range all {
		if err := util.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return fs
}

func readTestFile(t *testing.T, fs billy.Filesystem, path string) string {
	t.Helper()

	data, err := util.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func fileExists(fs billy.Filesystem, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func threePosts() map[string]string {
	return map[string]string{
		"posts/post-1.md": "---\ntitle: First\ndate: 2021-03-05\n---\n# One\n",
		"posts/post-2.md": "---\ntitle: Second\n---\nTwo\n",
		"posts/post-3.md": "---\ntitle: Third\n---\nThree\n",
	}
}
