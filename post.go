package md2site

// DefaultURLBase is the URL prefix of posts written to the default output directory.
const DefaultURLBase = "/public/"

// Post is a compiled Markdown post. Posts are not modified after Compile returns.
type Post struct {
	Filename string         // base name of the source without extension
	Headers  map[string]any // front matter; empty when the source has none
	HTML     string         // rendered body

	urlBase string
}

// URL returns the site-absolute URL of the post page.
func (p *Post) URL() string {
	base := p.urlBase
	if base == "" {
		base = DefaultURLBase
	}
	return base + p.Filename + ".html"
}

// PostURL returns the URL of the page for filename in the default output directory.
func PostURL(filename string) string {
	return DefaultURLBase + filename + ".html"
}
