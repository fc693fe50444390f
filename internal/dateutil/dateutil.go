// Package dateutil parses date-like values and formats them with
// user-friendly layouts and localized month names.
package dateutil

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidDateFormat indicates an invalid date format string.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidDateValue indicates a value that cannot be read as a date.
	ErrInvalidDateValue = errors.New("invalid date value")

	// ErrUnsupportedLocale indicates a locale with no month name table.
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat renders dates like "05 Mar 2021".
const DefaultDateFormat = "DD MMM YYYY"

// DefaultLocale is used when no locale is configured.
const DefaultLocale = monday.LocaleEnUS

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"short":    "DD MMM YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10) // Pre-allocate with some buffer

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			// Copy content inside brackets literally
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2 // Skip past closing bracket
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveDateFormat accepts a preset name (case-insensitive) or a token
// format and returns the equivalent Go layout.
func ResolveDateFormat(format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseDateFormat(format)
}

// valueLayouts lists the string layouts accepted by ParseDateValue, tried in order.
var valueLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateValue reads a date from a front matter or template value.
// Strings are parsed as UTC unless they carry an offset; numbers are Unix
// milliseconds.
func ParseDateValue(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidDateValue)
		}
		return *x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range valueLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateValue, x)
	case int:
		return time.UnixMilli(int64(x)).UTC(), nil
	case int64:
		return time.UnixMilli(x).UTC(), nil
	case uint64:
		if x > math.MaxInt64 {
			return time.Time{}, fmt.Errorf("%w: %d out of range", ErrInvalidDateValue, x)
		}
		return time.UnixMilli(int64(x)).UTC(), nil
	case float64:
		return time.UnixMilli(int64(x)).UTC(), nil
	case nil:
		return time.Time{}, fmt.Errorf("%w: missing value", ErrInvalidDateValue)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDateValue, v)
	}
}

// ResolveLocale maps a BCP 47 tag ("pt-BR", "fr", "en_GB") to the closest
// locale with translated month names in the same language. An empty tag
// yields DefaultLocale; a language without month names is ErrUnsupportedLocale.
func ResolveLocale(tag string) (monday.Locale, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLocale, nil
	}

	want, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, tag, err)
	}

	locales := monday.ListLocales()
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })

	supported := make([]language.Tag, 0, len(locales))
	candidates := make([]monday.Locale, 0, len(locales))
	for _, l := range locales {
		t, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		supported = append(supported, t)
		candidates = append(candidates, l)
	}

	// The matcher falls back to its first entry with Low confidence for
	// languages it has no table for; only a same-language match counts.
	_, idx, conf := language.NewMatcher(supported).Match(want)
	wantBase, _ := want.Base()
	gotBase, _ := supported[idx].Base()
	if conf == language.No || wantBase != gotBase {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}
	return candidates[idx], nil
}

// Format renders t with a Go layout, translating month and day names.
func Format(t time.Time, layout string, locale monday.Locale) string {
	return monday.Format(t, layout, locale)
}
