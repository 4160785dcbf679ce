// Package frontend extracts frontmatter metadata from markdown documents.
//
// The extraction is deliberately line-oriented: validators only need a couple
// of known scalar fields, so the raw block is scanned with simple patterns
// instead of being fed through a YAML parser. The narrow surface here (Parse,
// Name, Description, HasField) is the only thing validators depend on, so a
// structured parser could replace the internals without touching them.
package frontend

import (
	"errors"
	"regexp"
	"strings"
)

// Delimiter marks the start and end of a frontmatter block.
const Delimiter = "---"

var (
	// ErrMissingFrontmatter is returned when the document does not start
	// with the frontmatter delimiter.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrInvalidFrontmatter is returned when the opening delimiter is never
	// closed, leaving no body to split off.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter format")
)

var (
	namePattern = regexp.MustCompile(`name:\s*(.+)`)
	descPattern = regexp.MustCompile(`description:\s*(.+)`)
)

// Frontmatter holds the raw metadata block and the document body.
type Frontmatter struct {
	Raw  string
	Body string
}

// Parse splits a document into its frontmatter block and body.
//
// The document must start with the delimiter. The split stops after the
// second delimiter: a delimiter reappearing inside the body (horizontal
// rules, for example) stays part of the body.
func Parse(content string) (*Frontmatter, error) {
	if !strings.HasPrefix(content, Delimiter) {
		return nil, ErrMissingFrontmatter
	}

	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 {
		return nil, ErrInvalidFrontmatter
	}

	return &Frontmatter{
		Raw:  parts[1],
		Body: parts[2],
	}, nil
}

// HasField reports whether the frontmatter block contains the given key,
// matched as a "key:" substring on the raw block.
func (f *Frontmatter) HasField(key string) bool {
	return strings.Contains(f.Raw, key+":")
}

// Name returns the trimmed value of the name field, or "" if absent.
func (f *Frontmatter) Name() string {
	return extractField(f.Raw, namePattern)
}

// Description returns the trimmed value of the description field, or "" if
// absent.
func (f *Frontmatter) Description() string {
	return extractField(f.Raw, descPattern)
}

func extractField(raw string, pattern *regexp.Regexp) string {
	match := pattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
