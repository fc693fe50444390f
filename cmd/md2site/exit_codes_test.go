package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the md2site, config and
//   assets packages, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/store"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Usage/config errors (exit 2)
		{"invalid args", ErrInvalidArgs, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid order", md2site.ErrInvalidOrder, ExitUsage},
		{"invalid asset name", assets.ErrInvalidAssetName, ExitUsage},
		{"no default layout", assets.ErrNoDefaultLayout, ExitUsage},
		{"wrapped config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},

		// Parse errors (exit 4)
		{"parse", md2site.ErrParse, ExitParse},
		{"empty post", md2site.ErrEmptyPost, ExitParse},
		{"wrapped parse", fmt.Errorf("%w: posts/a.md: bad", md2site.ErrParse), ExitParse},

		// Render errors (exit 5)
		{"render", md2site.ErrRender, ExitRender},
		{"wrapped render", fmt.Errorf("post a: %w", md2site.ErrRender), ExitRender},

		// I/O errors (exit 3)
		{"io", md2site.ErrIO, ExitIO},
		{"duplicate post", md2site.ErrDuplicatePost, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"missing layout", fmt.Errorf("%w: %w", md2site.ErrIO, store.ErrLayoutNotFound), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	codes := map[string]int{"ExitIO": ExitIO, "ExitParse": ExitParse, "ExitRender": ExitRender}
	seen := map[int]string{0: "ExitSuccess", 1: "ExitGeneral", 2: "ExitUsage"}
	for name, code := range codes {
		if code >= 126 {
			t.Errorf("%s = %d, must be below 126", name, code)
		}
		if other, dup := seen[code]; dup {
			t.Errorf("%s = %d, same as %s", name, code, other)
		}
		seen[code] = name
	}
}
