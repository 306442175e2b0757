package stripprefix

import (
	"regexp"
	"strings"

	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/plugin"
	"github.com/vexyart/stripprefix/internal/site"
)

// displayForm matches the title MkDocs derives from a prefixed file or
// directory name once dashes have become spaces, e.g. "010 getting started".
var displayForm = regexp.MustCompile(`^\d+ +`)

// NormalizeTitle returns the clean form of a navigation title.
//
// File form ("010--getting-started"): the prefix is stripped, remaining "--"
// runs are deleted, single dashes become spaces, and the result is trimmed.
// Every dash is affected, so "010--a-b-c" becomes "a b c".
// Display form ("010 getting started"): leading digits and the spaces after them are stripped.
//
// Titles in neither form, and titles that would end up empty, are returned unchanged.
func (m *Matcher) NormalizeTitle(title string) (string, bool) {
	var clean string
	if stripped, ok := m.Strip(title); ok {
		clean = strings.ReplaceAll(stripped, "--", "")
		clean = strings.ReplaceAll(clean, "-", " ")
	} else if loc := displayForm.FindStringIndex(title); loc != nil {
		clean = title[loc[1]:]
	} else {
		return title, false
	}
	clean = strings.TrimSpace(clean)
	if clean == "" || clean == title {
		return title, false
	}
	return clean, true
}

// OnNav rewrites navigation titles depth-first when strip_nav_titles is on.
// Traversal uses an explicit stack, so nesting depth is bounded only by memory.
func (p *Plugin) OnNav(pc *plugin.PluginContext, nav *site.Nav) error {
	if !p.opts.StripNavTitles || p.matcher == nil || nav == nil {
		return nil
	}

	stack := make([]site.NavItem, 0, len(nav.Items))
	for i := len(nav.Items) - 1; i >= 0; i-- {
		stack = append(stack, nav.Items[i])
	}

	stripped := 0
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := item.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}

		title, ok := item.Title()
		if !ok {
			continue
		}
		clean, changed := p.matcher.NormalizeTitle(title)
		if !changed {
			continue
		}
		if p.opts.DryRun {
			p.dryRun(pc, "dry run: would update navigation title", logfields.OldTitle(title), logfields.Title(clean))
			continue
		}
		item.SetTitle(clean)
		stripped++
		p.verbose(pc, "Navigation title updated", logfields.OldTitle(title), logfields.Title(clean))
	}
	pc.Recorder.AddNavTitlesStripped(stripped)
	return nil
}
