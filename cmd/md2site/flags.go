package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidArgs is returned for malformed flags or positional arguments.
var ErrInvalidArgs = errors.New("invalid arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	dir        string
	order      string
	locale     string
	dateFormat string
	style      string
}

// initFlags holds all flags for the init command.
type initFlags struct {
	quiet       bool
	force       bool
	printLayout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show build progress")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet(cmdBuild, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &buildFlags{}

	fs.StringVarP(&f.dir, "dir", "C", ".", "site root directory")
	fs.StringVar(&f.order, "order", "", "post order: newest-first, listing")
	fs.StringVar(&f.locale, "locale", "", "locale for month names (e.g. pt-BR)")
	fs.StringVar(&f.dateFormat, "date-format", "", "date filter format or preset")
	fs.StringVar(&f.style, "style", "", "code highlighting style")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, usage io.Writer) (*initFlags, []string, error) {
	fs := flag.NewFlagSet(cmdInit, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &initFlags{}

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.StringVar(&f.printLayout, "print-layout", "", "print a default layout (post, index) and exit")

	fs.Usage = func() { printInitUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}

	return f, fs.Args(), nil
}

// wrapFlagError tags parse failures as usage errors. flag.ErrHelp passes through.
func wrapFlagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
}
