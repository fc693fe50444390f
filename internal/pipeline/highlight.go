package pipeline

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultGrammar is used for every language tag outside the allow-list.
const DefaultGrammar = "plaintext"

// DefaultStyle is the Chroma style used when none is configured.
const DefaultStyle = "github"

// allowedGrammars maps accepted fence tags to Chroma lexer names.
// Tags are matched exactly; "JavaScript" or "js" fall back to DefaultGrammar.
var allowedGrammars = map[string]string{
	"html":       "html",
	"javascript": "javascript",
}

// Highlighter turns a code block into highlighted, HTML-escaped markup.
// It is safe for concurrent use once constructed.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter using the named Chroma style.
// An empty name selects DefaultStyle; unknown names resolve to Chroma's
// fallback style. When classes is true, tokens carry CSS classes instead
// of inline styles.
func NewHighlighter(style string, classes bool) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(classes)),
	}
}

// Grammar returns the grammar that Highlight uses for lang.
func (h *Highlighter) Grammar(lang string) string {
	if g, ok := allowedGrammars[lang]; ok {
		return g
	}
	return DefaultGrammar
}

// Highlight renders code as a <pre><code> block. It never fails: when
// tokenizing or formatting goes wrong, the code is emitted escaped and
// unhighlighted.
func (h *Highlighter) Highlight(code, lang string) string {
	lexer := lexers.Get(h.Grammar(lang))
	if lexer == nil {
		return plainBlock(code)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainBlock(code)
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return plainBlock(code)
	}
	return sb.String()
}

func plainBlock(code string) string {
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
}
