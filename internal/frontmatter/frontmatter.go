// Package frontmatter separates a leading YAML metadata block from the
// Markdown body of a post.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Delimiter opens and closes a front matter block on a line of its own.
const Delimiter = "---"

var (
	// ErrMissingClosingDelimiter indicates the document opened a front matter
	// block but never closed it.
	ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

	// ErrInvalidFrontMatter indicates the block is not a valid YAML mapping.
	ErrInvalidFrontMatter = errors.New("invalid front matter")
)

// Split separates front matter from the body. Content must already use "\n"
// line endings.
//
// If the document does not start with a delimiter line, had is false and body
// is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	first, rest, found := bytes.Cut(content, []byte("\n"))
	if !isDelimiter(first) {
		return nil, content, false, nil
	}
	if !found {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	offset := 0
	for offset < len(rest) {
		line := rest[offset:]
		end := bytes.IndexByte(line, '\n')
		if end >= 0 {
			line = line[:end]
		}
		if isDelimiter(line) {
			frontmatter = rest[:offset]
			if end < 0 {
				return frontmatter, []byte{}, true, nil
			}
			return frontmatter, rest[offset+end+1:], true, nil
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}

	return nil, nil, false, ErrMissingClosingDelimiter
}

// Parse splits content and decodes its front matter into a mapping. Documents
// without front matter, and empty blocks, yield an empty non-nil map.
func Parse(content []byte) (map[string]any, []byte, error) {
	fm, body, had, err := Split(content)
	if err != nil {
		return nil, nil, err
	}
	if !had {
		return map[string]any{}, body, nil
	}

	fields, err := yamlutil.UnmarshalMapping(fm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}
	return fields, body, nil
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, " \t")) == Delimiter
}
