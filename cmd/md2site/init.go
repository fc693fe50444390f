package main

import (
	"fmt"
	"path/filepath"

	"github.com/gookit/color"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/store"
)

// runInit writes the starter site into the target directory.
// Existing files are kept unless --force is given.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one directory, got %d", ErrInvalidArgs, len(positional))
	}

	if flags.printLayout != "" {
		layout, err := env.Layouts.LoadLayout(flags.printLayout)
		if err != nil {
			return err
		}
		fmt.Fprint(env.Stdout, layout)
		return nil
	}

	dir := "."
	if len(positional) == 1 {
		dir = positional[0]
	}

	files, err := assets.ScaffoldFiles()
	if err != nil {
		return err
	}

	site := store.NewOS(dir, store.DefaultLayout())
	var written, kept int
	for _, f := range files {
		rel := filepath.FromSlash(f.Path)
		ok, err := site.PutFile(rel, f.Content, flags.force)
		if err != nil {
			return fmt.Errorf("%w: %w%s", md2site.ErrIO, err, hints.ForOutputDirectory())
		}

		shown := filepath.Join(dir, rel)
		if ok {
			written++
			if !flags.quiet {
				fmt.Fprintf(env.Stdout, "[+] Created %s\n", shown)
			}
			continue
		}
		kept++
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "[=] Kept %s\n", shown)
		}
	}

	if !flags.quiet {
		fmt.Fprintln(env.Stdout, color.Green.Sprintf("Site ready: %d written, %d kept", written, kept))
		if kept > 0 {
			fmt.Fprintln(env.Stdout, "Use --force to overwrite kept files.")
		}
	}
	return nil
}
