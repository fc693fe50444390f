package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies helper keys and values stay stable.
func TestHelperKeyNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Post", KeyPost, "post-1", Post("post-1")},
		{"Path", KeyPath, "public/post-1.html", Path("public/post-1.html")},
		{"Template", KeyTemplate, "layouts/post.layout.html", Template("layouts/post.layout.html")},
		{"Count", KeyCount, "3", Count(3)},
		{"Order", KeyOrder, "newest-first", Order("newest-first")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, got)
		}
	}
}

func TestDurationMS(t *testing.T) {
	t.Parallel()

	a := DurationMS(12.5)
	if a.Key != KeyDurationMS || a.Value.Float64() != 12.5 {
		t.Errorf("DurationMS(12.5) = %v", a)
	}
}
