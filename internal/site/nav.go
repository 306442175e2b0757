package site

import (
	"log/slog"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vexyart/stripprefix/internal/config"
	"github.com/vexyart/stripprefix/internal/frontmatter"
	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/markdown"
)

// NavItem is a node of the navigation tree. Title reports ok=false when the
// node has no title attribute at all, which is distinct from an empty title.
type NavItem interface {
	Title() (title string, ok bool)
	SetTitle(string)
	Children() []NavItem
}

type titled struct {
	title    string
	hasTitle bool
}

func (t *titled) Title() (string, bool) { return t.title, t.hasTitle }

func (t *titled) SetTitle(title string) {
	t.title = title
	t.hasTitle = true
}

// Section groups pages under a directory.
type Section struct {
	titled
	Items []NavItem
}

func NewSection(title string, items ...NavItem) *Section {
	return &Section{titled: titled{title: title, hasTitle: true}, Items: items}
}

func (s *Section) Children() []NavItem { return s.Items }

// Page is a nav entry backed by a documentation file.
type Page struct {
	titled
	File *File
}

// NewPage returns a page without a title attribute.
func NewPage(f *File) *Page { return &Page{File: f} }

func (*Page) Children() []NavItem { return nil }

// Link is a nav entry that is not backed by a page, usually an external URL.
type Link struct {
	titled
	Target string
}

func NewLink(title, target string) *Link {
	return &Link{titled: titled{title: title, hasTitle: true}, Target: target}
}

func (*Link) Children() []NavItem { return nil }

// Nav is the root of the navigation tree.
type Nav struct {
	Items []NavItem
}

// Walk visits every node depth-first in display order along with its depth.
func (n *Nav) Walk(visit func(item NavItem, depth int)) {
	type frame struct {
		item  NavItem
		depth int
	}
	stack := make([]frame, 0, len(n.Items))
	for i := len(n.Items) - 1; i >= 0; i-- {
		stack = append(stack, frame{n.Items[i], 0})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(top.item, top.depth)
		children := top.item.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], top.depth + 1})
		}
	}
}

// BuildNav derives the automatic navigation MkDocs produces when mkdocs.yml
// has no nav key: one section per directory, pages in manifest order.
// Page titles come from the title metadata field, then the first H1, then the
// file name. Section titles come from directory names.
func BuildNav(files Files, logger *slog.Logger) (*Nav, error) {
	if logger == nil {
		logger = slog.Default()
	}
	nav := &Nav{}
	sections := map[string]*Section{}

	itemsFor := func(dir string) *[]NavItem {
		if dir == "" {
			return &nav.Items
		}
		return &sectionFor(dir, sections, nav).Items
	}

	for _, f := range files.Pages() {
		if err := f.LoadContent(); err != nil {
			return nil, err
		}
		p := NewPage(f)
		p.SetTitle(pageTitle(f, logger))
		dir := path.Dir(f.SrcPath())
		if dir == "." {
			dir = ""
		}
		items := itemsFor(dir)
		*items = append(*items, p)
	}
	return nav, nil
}

// BuildConfiguredNav builds the navigation from an explicit nav list, as
// MkDocs does when mkdocs.yml has a nav key. Targets naming a documentation
// page become pages, everything else becomes a link. Pages without an explicit
// title are titled the way BuildNav titles them.
func BuildConfiguredNav(entries []config.NavEntry, files Files, logger *slog.Logger) (*Nav, error) {
	if logger == nil {
		logger = slog.Default()
	}
	items, err := configuredItems(entries, files, logger)
	if err != nil {
		return nil, err
	}
	return &Nav{Items: items}, nil
}

func configuredItems(entries []config.NavEntry, files Files, logger *slog.Logger) ([]NavItem, error) {
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		if e.IsSection() {
			children, err := configuredItems(e.Children, files, logger)
			if err != nil {
				return nil, err
			}
			items = append(items, NewSection(e.Title, children...))
			continue
		}

		if f, ok := files.Get(navSrcPath(e.Target)); ok && f.IsDocumentationPage() {
			if err := f.LoadContent(); err != nil {
				return nil, err
			}
			title := e.Title
			if !e.HasTitle() {
				title = pageTitle(f, logger)
			}
			p := NewPage(f)
			p.SetTitle(title)
			items = append(items, p)
			continue
		}

		if !isAbsoluteTarget(e.Target) {
			logger.Warn("Nav entry is not a documentation page, keeping it as a link", logfields.Link(e.Target))
		}
		if e.HasTitle() {
			items = append(items, NewLink(e.Title, e.Target))
		} else {
			items = append(items, &Link{Target: e.Target})
		}
	}
	return items, nil
}

func navSrcPath(target string) string {
	return path.Clean(strings.TrimPrefix(target, "./"))
}

// isAbsoluteTarget reports whether target is a URL or a site-absolute path,
// which MkDocs accepts in nav without a matching file.
func isAbsoluteTarget(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Scheme != "" || u.Host != "" || strings.HasPrefix(u.Path, "/")
}

func sectionFor(dir string, sections map[string]*Section, nav *Nav) *Section {
	if s, ok := sections[dir]; ok {
		return s
	}
	s := NewSection(dirnameToTitle(path.Base(dir)))
	sections[dir] = s
	parent := path.Dir(dir)
	if parent == "." {
		nav.Items = append(nav.Items, s)
	} else {
		ps := sectionFor(parent, sections, nav)
		ps.Items = append(ps.Items, s)
	}
	return s
}

func pageTitle(f *File, logger *slog.Logger) string {
	page, err := frontmatter.Split(f.Content)
	if err != nil {
		logger.Debug("Ignoring malformed page metadata", logfields.SrcPath(f.SrcPath()), logfields.Error(err))
		page = &frontmatter.Page{Body: f.Content}
	}
	if title, ok, err := page.Title(); err == nil && ok {
		return title
	}
	if title, ok := markdown.FirstHeading(page.Body); ok {
		return title
	}
	if f.IsIndex() && path.Dir(f.SrcPath()) == "." {
		return "Home"
	}
	return dirnameToTitle(f.Name())
}

// dirnameToTitle mirrors MkDocs: dashes and underscores become spaces and an
// all-lowercase result gets its first character upper-cased.
func dirnameToTitle(name string) string {
	title := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if title == "" || strings.ToLower(title) != title {
		return title
	}
	_, size := utf8.DecodeRuneInString(title)
	return cases.Upper(language.Und).String(title[:size]) + title[size:]
}
