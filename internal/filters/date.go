package filters

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/dateutil"
)

// DateFilterName is the name templates use for the date filter.
const DateFilterName = "date"

// DateOptions configures the date filter. Zero values select
// dateutil.DefaultDateFormat and dateutil.DefaultLocale.
type DateOptions struct {
	Format string // token format or preset, e.g. "DD MMM YYYY" or "long"
	Locale string // BCP 47 tag, e.g. "pt-BR"
}

// NewDateFilter builds the date filter. Format and locale are resolved once
// here, so every invocation uses the same layout and month names.
func NewDateFilter(opts DateOptions) (Filter, error) {
	format := opts.Format
	if format == "" {
		format = dateutil.DefaultDateFormat
	}
	layout, err := dateutil.ResolveDateFormat(format)
	if err != nil {
		return nil, err
	}
	locale, err := dateutil.ResolveLocale(opts.Locale)
	if err != nil {
		return nil, err
	}

	return func(value any) (string, error) {
		t, err := dateutil.ParseDateValue(value)
		if err != nil {
			return "", fmt.Errorf("%s filter: %w", DateFilterName, err)
		}
		return dateutil.Format(t, layout, locale), nil
	}, nil
}

// RegisterDefaults installs the built-in filters into r.
func RegisterDefaults(r *Registry, date DateOptions) error {
	fn, err := NewDateFilter(date)
	if err != nil {
		return fmt.Errorf("configuring %s filter: %w", DateFilterName, err)
	}
	r.Register(DateFilterName, fn)
	return nil
}
