// Package md2site builds a static site from a directory of Markdown posts.
//
// # Quick Start
//
// Build the site rooted at the current directory:
//
//	b, err := md2site.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("posts written to", result.PostDir)
//
// # Site Layout
//
// All paths are relative to the site root:
//
//	posts/                       # one Markdown file per post, flat
//	layouts/post.layout.html     # page template, executed once per post
//	layouts/index.layout.html    # listing template, executed once
//	public/<filename>.html       # generated posts
//	index.html                   # generated index
//
// # Build Pipeline
//
//  1. List posts (lexical order, hidden files skipped) and apply the Order
//  2. Compile every post: front matter, Markdown via Goldmark, code blocks via Chroma
//  3. Render every page through html/template with the filter registry
//  4. Write the pages, then the index
//
// Nothing is written when a post fails to compile or a page fails to render.
//
// # Templates
//
// Post layouts see .Filename, .Headers, .HTML and .URL; the index layout
// sees .Posts, a slice of the same values. Filters are template functions:
//
//	<time>{{ .Headers.date | date }}</time>
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := md2site.NewBuilder(
//	    md2site.WithRoot("/srv/blog"),
//	    md2site.WithOrder(md2site.OrderListing),
//	    md2site.WithLocale("pt-BR"),
//	    md2site.WithHighlightClasses(true),
//	)
package md2site
