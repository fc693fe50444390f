// Package pipeline implements the Markdown-to-HTML stage of a site build.
//
// The stage has three parts:
//   - Markdown preprocessing (byte order mark removal, line ending normalization)
//   - Markdown to HTML conversion via Goldmark
//   - Code block highlighting via Chroma, restricted to an allow-list of grammars
//
// Front matter handling and page templating live outside this package; the
// converter only ever sees the post body and returns an HTML fragment.
package pipeline
