package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), env.Stderr)

	os.Exit(runMain(os.Args, env))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether -v or --verbose appears before a "--".
// Flags are not parsed yet when GOMAXPROCS is configured.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--verbose" || a == "-v" {
			return true
		}
	}
	return false
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	switch s {
	case cmdBuild, cmdInit, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// Command names.
const (
	cmdBuild   = "build"
	cmdInit    = "init"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// runMain dispatches to a command and returns the process exit code.
// With no command, or when the first argument is a flag, build runs.
func runMain(args []string, env *Environment) int {
	cmd, rest := cmdBuild, []string{}
	if len(args) > 1 {
		rest = args[1:]
	}
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		if !isCommand(rest[0]) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", rest[0])
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case cmdBuild:
		ctx, stop := notifyContext(context.Background())
		err = runBuild(ctx, rest, env)
		stop()
	case cmdInit:
		err = runInit(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
	case cmdHelp:
		runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
	}
	return exitCodeFor(err)
}
