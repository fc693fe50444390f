//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkToHTML measures post conversion by post length.
func BenchmarkToHTML(b *testing.B) {
	converter := NewGoldmarkConverter(WithHighlighter(NewHighlighter(DefaultStyle, false)))
	ctx := context.Background()

	for _, sections := range []int{1, 10, 50, 200} {
		post := generatePost(sections)
		b.Run(fmt.Sprintf("sections_%d", sections), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(post)))

			for b.Loop() {
				if _, err := converter.ToHTML(ctx, post); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCodeBlockGrammar compares allowed grammars with the plaintext fallback.
func BenchmarkCodeBlockGrammar(b *testing.B) {
	converter := NewGoldmarkConverter(WithHighlighter(NewHighlighter(DefaultStyle, true)))
	ctx := context.Background()

	for _, lang := range []string{"javascript", "html", "ruby", ""} {
		post := "```" + lang + "\n" + strings.Repeat("<p>let n = render(post, 42);</p>\n", 40) + "```\n"
		name := lang
		if name == "" {
			name = "untagged"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				if _, err := converter.ToHTML(ctx, post); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkHighlight measures the highlighter without Markdown parsing.
func BenchmarkHighlight(b *testing.B) {
	code := strings.Repeat("var answer = compute(42);\n", 50)

	for _, classes := range []bool{false, true} {
		h := NewHighlighter(DefaultStyle, classes)
		b.Run(fmt.Sprintf("classes_%t", classes), func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				_ = h.Highlight(code, "javascript")
			}
		})
	}
}

// BenchmarkPreprocess measures BOM stripping and line ending normalization.
func BenchmarkPreprocess(b *testing.B) {
	p := &CommonMarkPreprocessor{}
	ctx := context.Background()
	post := "\ufeff" + strings.ReplaceAll(generatePost(50), "\n", "\r\n")

	b.ReportAllocs()
	b.SetBytes(int64(len(post)))
	for b.Loop() {
		_ = p.PreprocessMarkdown(ctx, post)
	}
}

// generatePost returns a blog post body with the given number of sections.
func generatePost(sections int) string {
	var sb strings.Builder
	sb.WriteString("Opening paragraph with **bold**, *emphasis* and a [link](https://example.com).\n\n")

	for i := range sections {
		fmt.Fprintf(&sb, "## Part %d\n\n", i+1)
		sb.WriteString("A paragraph with `inline code` and a footnote.[^n]\n\n")
		sb.WriteString("- [x] done\n- [ ] pending\n\n")

		switch i % 4 {
		case 0:
			sb.WriteString("```javascript\nconst posts = await load('posts');\nposts.reverse();\n```\n\n")
		case 1:
			sb.WriteString("```html\n<article>\n  <h1>Title</h1>\n</article>\n```\n\n")
		case 2:
			sb.WriteString("| Post | Date |\n|------|------|\n| one | 2021-03-05 |\n\n")
		}
	}
	sb.WriteString("[^n]: Footnote text.\n")
	return sb.String()
}
