// Package markdown holds goldmark-backed analysis helpers and byte-range editing
// for Markdown page bodies. Nothing here re-renders Markdown.
package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func parse(body []byte) (gmast.Node, parser.Context) {
	ctx := parser.NewContext()
	root := goldmark.New().Parser().Parse(text.NewReader(body), parser.WithContext(ctx))
	return root, ctx
}

// ExtractLinks parses a Markdown body and extracts link-like constructs.
// Links inside code spans and code blocks are not links and are not reported.
func ExtractLinks(body []byte) []Link {
	root, ctx := parse(body)

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Reference-style usages resolve to Link nodes with a Destination.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions live in the parse context, not the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}
	return links
}

// CodeRanges returns the byte ranges of code spans, fenced code blocks and
// indented code blocks in body, in source order.
func CodeRanges(body []byte) []Range {
	root, _ := parse(body)

	var ranges []Range
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.CodeSpan:
			if r, ok := childSegments(node); ok {
				ranges = append(ranges, r)
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			lines := node.Lines()
			if lines.Len() > 0 {
				ranges = append(ranges, Range{Start: lines.At(0).Start, End: lines.At(lines.Len() - 1).Stop})
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

func childSegments(n gmast.Node) (Range, bool) {
	r := Range{Start: -1}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*gmast.Text)
		if !ok {
			continue
		}
		if r.Start < 0 {
			r.Start = t.Segment.Start
		}
		r.End = t.Segment.Stop
	}
	return r, r.Start >= 0
}

// FirstHeading returns the plain text of the first level-1 ATX or setext heading.
func FirstHeading(body []byte) (string, bool) {
	root, _ := parse(body)

	var title string
	found := false
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || found {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		var sb strings.Builder
		plainText(&sb, h, body)
		title = strings.TrimSpace(sb.String())
		found = title != ""
		return gmast.WalkSkipChildren, nil
	})
	return title, found
}

func plainText(sb *strings.Builder, n gmast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			sb.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(node.Value)
		default:
			plainText(sb, c, src)
		}
	}
}
