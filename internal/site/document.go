// Package site models the host side of a documentation build: the file
// manifest, the navigation tree, and the MkDocs rules that derive output
// paths and URLs from source paths.
package site

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

// Document is the narrow view of a manifest entry handed to plugins.
// It has no SetSrcPath: plugins can rewrite where a page is published,
// never where it lives on disk.
type Document interface {
	IsDocumentationPage() bool
	SrcPath() string
	DestPath() string
	SetDestPath(string)
	URL() string
	SetURL(string)
}

var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkdn":     true,
	".mkd":      true,
}

// IsMarkdown reports whether name has a Markdown extension.
func IsMarkdown(name string) bool {
	return markdownExtensions[strings.ToLower(path.Ext(name))]
}

// File is a single entry of the docs manifest. Paths use forward slashes and
// are relative to the docs directory.
type File struct {
	src     string
	dest    string
	url     string
	page    bool
	AbsPath string // Absolute path on disk, empty for in-memory files
	Content []byte // Page source, loaded on demand
}

// NewFile derives the destination path and URL for src the way MkDocs does.
func NewFile(src string, useDirectoryURLs bool) *File {
	src = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(src, "\\", "/")), "/")
	f := &File{src: src, page: IsMarkdown(src)}
	f.dest = destFor(src, f.page, useDirectoryURLs)
	f.url = urlFor(f.dest, f.page, useDirectoryURLs)
	return f
}

func destFor(src string, page, useDirectoryURLs bool) string {
	if !page {
		return src
	}
	dir, name := path.Split(src)
	stem := strings.TrimSuffix(name, path.Ext(name))
	switch {
	case stem == "index" || stem == "README":
		return dir + "index.html"
	case useDirectoryURLs:
		return dir + stem + "/index.html"
	default:
		return dir + stem + ".html"
	}
}

func urlFor(dest string, page, useDirectoryURLs bool) string {
	if !page || !useDirectoryURLs {
		return dest
	}
	dir, name := path.Split(dest)
	if name != "index.html" {
		return dest
	}
	return dir
}

func (f *File) IsDocumentationPage() bool { return f.page }
func (f *File) SrcPath() string           { return f.src }
func (f *File) DestPath() string          { return f.dest }
func (f *File) SetDestPath(dest string)   { f.dest = dest }
func (f *File) URL() string               { return f.url }
func (f *File) SetURL(url string)         { f.url = url }

// Name returns the file name without its extension.
func (f *File) Name() string {
	base := path.Base(f.src)
	return strings.TrimSuffix(base, path.Ext(base))
}

// IsIndex reports whether the page is a directory index (index.md or README.md).
func (f *File) IsIndex() bool {
	name := f.Name()
	return f.page && (name == "index" || name == "README")
}

// LoadContent reads the page source from disk once.
func (f *File) LoadContent() error {
	if f.Content != nil || f.AbsPath == "" {
		return nil
	}
	content, err := os.ReadFile(f.AbsPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileReadFailed, f.src, err)
	}
	f.Content = content
	return nil
}

// Files is the docs manifest in MkDocs sort order.
type Files []*File

// Documents returns the manifest as the plugin-facing Document view.
func (fs Files) Documents() []Document {
	docs := make([]Document, len(fs))
	for i, f := range fs {
		docs[i] = f
	}
	return docs
}

// Pages returns only the documentation pages.
func (fs Files) Pages() Files {
	pages := make(Files, 0, len(fs))
	for _, f := range fs {
		if f.page {
			pages = append(pages, f)
		}
	}
	return pages
}

// Get returns the file with the given source path.
func (fs Files) Get(src string) (*File, bool) {
	for _, f := range fs {
		if f.src == src {
			return f, true
		}
	}
	return nil, false
}

// Sort orders files by directory, then index pages first, then name.
func (fs Files) Sort() {
	sort.SliceStable(fs, func(i, j int) bool {
		return sortKey(fs[i]) < sortKey(fs[j])
	})
}

func sortKey(f *File) string {
	dir, _ := path.Split(f.src)
	rank := "1"
	if f.IsIndex() {
		rank = "0"
	}
	// Separators map below every printable byte so keys compare like the
	// (parent parts, not index, name) tuple MkDocs sorts by.
	return strings.ReplaceAll(dir, "/", "\x00") + "\x01" + rank + path.Base(f.src)
}
