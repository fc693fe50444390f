package render

import "html/template"

// Context is the data a template executes against. It is closed: the only
// implementations are PostContext and IndexContext.
type Context interface {
	templateContext()
}

// PostContext is the data for a single post page.
//
//	{{ .Headers.title }}  {{ .Headers.date | date }}  {{ .HTML }}  {{ .URL }}
type PostContext struct {
	Filename string
	Headers  map[string]any
	HTML     template.HTML // rendered Markdown, inserted without escaping
	URL      string
}

// IndexContext is the data for the index page.
//
//	{{ range .Posts }}<a href="{{ .URL }}">{{ .Headers.title }}</a>{{ end }}
type IndexContext struct {
	Posts []PostContext
}

func (PostContext) templateContext()  {}
func (IndexContext) templateContext() {}

// NewPostContext builds a PostContext. The HTML must come from the Markdown
// converter, which escapes untrusted input itself.
func NewPostContext(filename string, headers map[string]any, html, url string) PostContext {
	if headers == nil {
		headers = map[string]any{}
	}
	return PostContext{
		Filename: filename,
		Headers:  headers,
		HTML:     template.HTML(html), // #nosec G203 -- produced by goldmark
		URL:      url,
	}
}

// NewIndexContext wraps posts, preserving their order.
func NewIndexContext(posts []PostContext) IndexContext {
	if posts == nil {
		posts = []PostContext{}
	}
	return IndexContext{Posts: posts}
}
