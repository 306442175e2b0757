package stripprefix

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/markdown"
	"github.com/vexyart/stripprefix/internal/plugin"
	"github.com/vexyart/stripprefix/internal/site"
)

// inlineLink matches [text](target) where target names a Markdown file,
// optionally followed by a #fragment. Group 2 is the target.
var inlineLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+\.(?i:md|markdown)(?:#[^)]*)?)\)`)

// urlScheme matches a scheme such as https: or mailto: at the start of a target.
var urlScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

func isExternal(target string) bool {
	return strings.HasPrefix(target, "//") || urlScheme.MatchString(target)
}

// splitFragment splits target at the first #, keeping the # on the fragment.
func splitFragment(target string) (pathPart, fragment string) {
	if i := strings.IndexByte(target, '#'); i >= 0 {
		return target[:i], target[i:]
	}
	return target, ""
}

// StripLinkTarget strips the prefix from the file name of a relative Markdown
// link target. Parent directories and the fragment are kept verbatim.
func (m *Matcher) StripLinkTarget(target string) (string, bool) {
	if isExternal(target) {
		return target, false
	}
	pathPart, fragment := splitFragment(target)
	if pathPart == "" {
		return target, false
	}
	dir, name := "", pathPart
	if i := strings.LastIndexAny(pathPart, `/\`); i >= 0 {
		dir, name = pathPart[:i+1], pathPart[i+1:]
	}
	stripped, ok := m.StripComponent(name)
	if !ok {
		return target, false
	}
	return dir + stripped + fragment, true
}

// RewriteLinks returns body with every eligible inline link target stripped,
// and the edits that were applied. Links inside code spans and code blocks are
// left alone.
func (m *Matcher) RewriteLinks(body string) (string, []markdown.Edit, error) {
	matches := inlineLink.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return body, nil, nil
	}
	code := markdown.CodeRanges([]byte(body))

	var edits []markdown.Edit
	for _, loc := range matches {
		start, end := loc[4], loc[5]
		if inCode(code, start) {
			continue
		}
		if clean, ok := m.StripLinkTarget(body[start:end]); ok {
			edits = append(edits, markdown.Edit{Start: start, End: end, Replacement: []byte(clean)})
		}
	}
	if len(edits) == 0 {
		return body, nil, nil
	}
	out, err := markdown.ApplyEdits([]byte(body), edits)
	if err != nil {
		return body, nil, err
	}
	return string(out), edits, nil
}

func inCode(ranges []markdown.Range, offset int) bool {
	for _, r := range ranges {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}

// OnPageMarkdown rewrites links to prefixed pages when strip_links is on.
func (p *Plugin) OnPageMarkdown(pc *plugin.PluginContext, doc site.Document, body string) (string, error) {
	if !p.opts.StripLinks || p.matcher == nil {
		return body, nil
	}
	out, edits, err := p.matcher.RewriteLinks(body)
	if err != nil {
		return body, err
	}
	for _, e := range edits {
		attrs := []any{logfields.SrcPath(doc.SrcPath()), logfields.Link(body[e.Start:e.End]), slog.String("target", string(e.Replacement))}
		if p.opts.DryRun {
			p.dryRun(pc, "dry run: would rewrite link", attrs...)
		} else {
			p.verbose(pc, "Rewrote link", attrs...)
		}
	}
	if p.opts.DryRun {
		return body, nil
	}
	pc.Recorder.AddLinksRewritten(len(edits))
	return out, nil
}
