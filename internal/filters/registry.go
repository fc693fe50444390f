// Package filters holds the named value-to-string functions that templates
// apply with the pipeline syntax {{ .Headers.date | date }}.
//
// A Registry is an explicit object: build one at startup, register filters,
// then hand it to the template renderer. Nothing here is package-global.
package filters

import (
	"html/template"
	"sort"
)

// Filter converts a template value to text. Filters must be pure: the same
// input always yields the same output.
type Filter func(value any) (string, error)

// Registry maps filter names to filters.
type Registry struct {
	filters map[string]Filter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Filter)}
}

// Register adds fn under name, replacing any filter already registered there.
// Panics on an empty name or nil fn (programmer error).
func (r *Registry) Register(name string, fn Filter) {
	if name == "" {
		panic("filters: Register with empty name")
	}
	if fn == nil {
		panic("filters: Register with nil filter " + name)
	}
	r.filters[name] = fn
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Filter, bool) {
	fn, ok := r.filters[name]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FuncMap exposes the registry to html/template. Each call builds a fresh
// map, so filters registered later are picked up by later parses.
func (r *Registry) FuncMap() template.FuncMap {
	funcs := make(template.FuncMap, len(r.filters))
	for name, fn := range r.filters {
		funcs[name] = func(value any) (string, error) {
			return fn(value)
		}
	}
	return funcs
}
