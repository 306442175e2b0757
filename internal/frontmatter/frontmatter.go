// Package frontmatter separates YAML page metadata from a Markdown page body.
//
// MkDocs strips the metadata block before handing the body to page plugins and
// reads the page title from it, so the host does the same.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Page is a Markdown source split into its metadata block and body.
type Page struct {
	Meta    []byte // raw YAML without delimiters; nil when the page has none
	Body    []byte
	had     bool
	newline string
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
// A page without a leading delimiter is returned whole as Body.
func Split(content []byte) (*Page, error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return &Page{Body: content, newline: nl}, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return &Page{Meta: []byte{}, Body: content[start+len(open):], had: true, newline: nl}, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, ErrMissingClosingDelimiter
	}
	return &Page{
		Meta:    content[start : start+idx+len(nl)],
		Body:    content[start+idx+len(closeSeq):],
		had:     true,
		newline: nl,
	}, nil
}

// Bytes reassembles the page, reusing the original newline style for the delimiters.
func (p *Page) Bytes() []byte {
	if !p.had {
		return p.Body
	}
	delim := []byte("---" + p.newline)
	out := make([]byte, 0, 2*len(delim)+len(p.Meta)+len(p.Body))
	out = append(out, delim...)
	out = append(out, p.Meta...)
	out = append(out, delim...)
	out = append(out, p.Body...)
	return out
}

// Title returns the `title` metadata field. ok is false when the page has no
// metadata, no title key, or a blank title.
func (p *Page) Title() (title string, ok bool, err error) {
	if len(p.Meta) == 0 {
		return "", false, nil
	}
	var meta struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal(p.Meta, &meta); err != nil {
		return "", false, fmt.Errorf("parse page metadata: %w", err)
	}
	if meta.Title == "" {
		return "", false, nil
	}
	return meta.Title, true, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
