// Package render executes user layouts against post and index data.
//
// Layouts use html/template syntax. Filters from a filters.Registry are
// available as template functions, so {{ .Headers.date | date }} applies the
// registered date filter. Referencing a name that is not registered fails
// at parse time.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/alnah/go-md2site/internal/filters"
)

// ErrRender indicates a layout could not be parsed or executed.
var ErrRender = errors.New("template rendering failed")

// Renderer renders layouts with the filters of one registry.
type Renderer struct {
	registry *filters.Registry
}

// NewRenderer creates a Renderer bound to registry.
// Panics if registry is nil (programmer error).
func NewRenderer(registry *filters.Registry) *Renderer {
	if registry == nil {
		panic("render: NewRenderer requires a filter registry")
	}
	return &Renderer{registry: registry}
}

// Render parses source as the layout called name and executes it with data.
// Layouts are parsed on every call; nothing is cached between renders.
func (r *Renderer) Render(name, source string, data Context) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: %s: nil context", ErrRender, name)
	}

	tmpl, err := template.New(name).
		Funcs(r.registry.FuncMap()).
		Option("missingkey=default").
		Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %w", ErrRender, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: executing %s: %w", ErrRender, name, err)
	}
	return buf.String(), nil
}
