package md2site

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2site/internal/render"
)

// Sentinel errors for build operations. Every returned error wraps exactly
// one of ErrIO, ErrParse or ErrRender.
var (
	// ErrIO indicates a post, layout or output file could not be read or written.
	ErrIO = errors.New("I/O error")

	// ErrParse indicates a post could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrRender indicates a layout failed to parse or execute.
	ErrRender = render.ErrRender

	// ErrDuplicatePost indicates two posts would be written to the same page.
	ErrDuplicatePost = fmt.Errorf("%w: duplicate post", ErrIO)

	// ErrEmptyPost indicates a post with no file name or no rendered body.
	ErrEmptyPost = fmt.Errorf("%w: empty post", ErrParse)

	// ErrInvalidOrder indicates an unknown ordering policy name.
	ErrInvalidOrder = errors.New("invalid order")
)
