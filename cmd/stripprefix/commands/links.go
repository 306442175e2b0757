package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
	"github.com/vexyart/stripprefix/internal/frontmatter"
	"github.com/vexyart/stripprefix/internal/markdown"
	"github.com/vexyart/stripprefix/internal/plugin"
)

// LinksCmd implements the 'links' command.
type LinksCmd struct {
	File       string `arg:"" help:"Markdown page, as a path or relative to the docs directory"`
	StripLinks bool   `name:"strip-links" help:"Rewrite links even when strip_links is off in the config"`
	List       bool   `name:"list" help:"List the links of the rewritten page instead of printing it"`
}

func (l *LinksCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	h, err := newHost(cfg, g.Logger, overrides{StripLinks: l.StripLinks})
	if err != nil {
		return err
	}
	return l.render(g.Stdout, h)
}

// render runs the config phase and then the page_markdown phase for one page.
func (l *LinksCmd) render(w io.Writer, h *host) error {
	files, err := h.discover()
	if err != nil {
		return err
	}
	src, err := l.srcPath(h.cfg.DocsPath())
	if err != nil {
		return err
	}
	f, ok := files.Get(src)
	if !ok || !f.IsDocumentationPage() {
		return ferrors.NotFoundError(fmt.Sprintf("%s is not a page of %s", l.File, h.cfg.DocsPath())).
			WithContext("path", l.File).
			Build()
	}

	pc := plugin.NewPluginContext(context.Background(), h.logger, h.recorder)
	if err := h.pipeline.RunConfig(pc); err != nil {
		return err
	}
	out, err := h.pipeline.RenderPage(pc, f)
	if err != nil {
		return classifySiteError(err)
	}
	if l.List {
		return writeLinkList(w, out)
	}
	_, err = io.WriteString(w, out)
	return err
}

// writeLinkList prints the kind and destination of every link in the page body.
func writeLinkList(w io.Writer, page string) error {
	body := []byte(page)
	if p, err := frontmatter.Split(body); err == nil {
		body = p.Body
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, link := range markdown.ExtractLinks(body) {
		fmt.Fprintf(tw, "%s\t%s\n", link.Kind, link.Destination)
	}
	return tw.Flush()
}

// srcPath turns the argument into a docs-relative slash path. Arguments that
// exist on disk are taken relative to the working directory.
func (l *LinksCmd) srcPath(docsDir string) (string, error) {
	if !filepath.IsAbs(l.File) && !fileExists(l.File) {
		return filepath.ToSlash(filepath.Clean(l.File)), nil
	}
	abs, err := filepath.Abs(l.File)
	if err != nil {
		return "", err
	}
	absDocs, err := filepath.Abs(docsDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absDocs, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
