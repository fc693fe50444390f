package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestHighlighter_Grammar - Allow-list selection
// ---------------------------------------------------------------------------

func TestHighlighter_Grammar(t *testing.T) {
	t.Parallel()

	h := NewHighlighter("", false)

	tests := []struct {
		lang string
		want string
	}{
		{"html", "html"},
		{"javascript", "javascript"},
		{"", DefaultGrammar},
		{"python", DefaultGrammar},
		{"go", DefaultGrammar},
		{"js", DefaultGrammar},
		{"JavaScript", DefaultGrammar},
		{"HTML", DefaultGrammar},
		{" html", DefaultGrammar},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			t.Parallel()

			if got := h.Grammar(tt.lang); got != tt.want {
				t.Errorf("Grammar(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHighlighter_Highlight - Markup and escaping
// ---------------------------------------------------------------------------

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		classes      bool
		code         string
		lang         string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "javascript keywords get token classes",
			classes:      true,
			code:         "var answer = 42;\n",
			lang:         "javascript",
			wantContains: []string{"<pre", `class="kd"`, "answer", "</pre>"},
		},
		{
			name:    "unknown language is not tokenized as javascript",
			classes: true,
			code:    "var answer = 42;\n",
			lang:    "python",
			wantNot: []string{`class="kd"`},
		},
		{
			name:         "fallback grammar escapes markup",
			code:         "<b>bold</b> & more\n",
			lang:         "",
			wantContains: []string{"&lt;b&gt;bold&lt;/b&gt; &amp; more"},
			wantNot:      []string{"<b>"},
		},
		{
			name:         "html grammar escapes tags",
			classes:      true,
			code:         "<script>alert(1)</script>\n",
			lang:         "html",
			wantContains: []string{"&lt;", "alert"},
			wantNot:      []string{"<script>"},
		},
		{
			name:         "inline styles without classes",
			classes:      false,
			code:         "var answer = 42;\n",
			lang:         "javascript",
			wantContains: []string{"style="},
			wantNot:      []string{`class="kd"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewHighlighter(DefaultStyle, tt.classes).Highlight(tt.code, tt.lang)

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Highlight() missing %q\ngot: %s", want, got)
				}
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(got, notWant) {
					t.Errorf("Highlight() should not contain %q\ngot: %s", notWant, got)
				}
			}
		})
	}
}

func TestHighlighter_UnknownStyle(t *testing.T) {
	t.Parallel()

	got := NewHighlighter("no-such-style", false).Highlight("var a = 1;\n", "javascript")
	if !strings.Contains(got, "<pre") {
		t.Errorf("Highlight() with unknown style = %q, want <pre> block", got)
	}
}

func TestHighlighter_Deterministic(t *testing.T) {
	t.Parallel()

	h := NewHighlighter(DefaultStyle, true)
	code := "<ul>\n  <li>one</li>\n</ul>\n"

	first := h.Highlight(code, "html")
	second := h.Highlight(code, "html")
	if first != second {
		t.Errorf("Highlight() not deterministic:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestPlainBlock(t *testing.T) {
	t.Parallel()

	got := plainBlock(`if a < b && c > "d" {}`)
	want := "<pre><code>if a &lt; b &amp;&amp; c &gt; &#34;d&#34; {}</code></pre>"
	if got != want {
		t.Errorf("plainBlock() = %q, want %q", got, want)
	}
}
