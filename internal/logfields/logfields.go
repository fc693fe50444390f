// Package logfields holds the attribute keys shared by every log line.
package logfields

import "log/slog"

// Canonical log field names.
const (
	KeyPost       = "post"
	KeyPath       = "path"
	KeyTemplate   = "template"
	KeyCount      = "count"
	KeyOrder      = "order"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Post(filename string) slog.Attr  { return slog.String(KeyPost, filename) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Template(name string) slog.Attr  { return slog.String(KeyTemplate, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Order(o string) slog.Attr        { return slog.String(KeyOrder, o) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
