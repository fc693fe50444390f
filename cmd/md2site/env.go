package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and the default layouts.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Layouts assets.LayoutLoader
}

// DefaultEnv returns the production environment with embedded layouts.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Layouts: assets.NewEmbeddedLoader(),
	}
}
