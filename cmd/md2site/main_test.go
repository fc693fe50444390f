package main

// Notes:
// - isCommand, hasVerboseFlag: we test argument classification.
// - runMain: we test dispatch and exit codes for help, version and unknown
//   commands. Building and scaffolding are covered in build_test.go and
//   init_test.go.
// - configureMaxProcs: we only check the verbose logger does not panic; the
//   GOMAXPROCS value depends on the host.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestVersion - Version variable
// ---------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	t.Parallel()

	// Version variable should be set (default is "dev")
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"build", true},
		{"init", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"posts", false},
		{"Build", false}, // case sensitive
		{"VERSION", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := isCommand(tt.input)
			if got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Early verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"empty", nil, false},
		{"long flag", []string{"build", "--verbose"}, true},
		{"short flag", []string{"-v"}, true},
		{"other flags", []string{"build", "-q", "--order", "listing"}, false},
		{"after terminator", []string{"build", "--", "-v"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hasVerboseFlag(tt.args)
			if got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfigureMaxProcs - Verbose logging of GOMAXPROCS
// ---------------------------------------------------------------------------

func TestConfigureMaxProcs(t *testing.T) {
	var buf bytes.Buffer
	configureMaxProcs(true, &buf)
	configureMaxProcs(false, &buf)
}

// ---------------------------------------------------------------------------
// TestRunMain_Commands - Dispatch, output and exit codes
// ---------------------------------------------------------------------------

func TestRunMain_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "version command exits 0",
			args:         []string{"md2site", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"md2site " + Version},
		},
		{
			name:         "help command exits 0",
			args:         []string{"md2site", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2site", "Commands:"},
		},
		{
			name:         "help build shows build help",
			args:         []string{"md2site", "help", "build"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2site build", "--date-format"},
		},
		{
			name:         "help init shows init help",
			args:         []string{"md2site", "help", "init"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2site init", "--force"},
		},
		{
			name:         "help version",
			args:         []string{"md2site", "help", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2site version"},
		},
		{
			name:         "help for unknown command goes to stderr",
			args:         []string{"md2site", "help", "deploy"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Unknown command: deploy"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"md2site", "deploy"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: deploy", "Usage: md2site"},
		},
		{
			name:         "build -h prints build usage",
			args:         []string{"md2site", "build", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: md2site build"},
		},
		{
			name:         "bare flag runs build",
			args:         []string{"md2site", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: md2site build"},
		},
		{
			name:         "unknown flag exits with ExitUsage",
			args:         []string{"md2site", "build", "--watch"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid arguments"},
		},
		{
			name:         "init rejects two directories",
			args:         []string{"md2site", "init", "a", "b"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"at most one directory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
