package stripprefix

import (
	"log/slog"
	"slices"

	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/plugin"
	"github.com/vexyart/stripprefix/internal/site"
)

// Name is the plugin's name in a config file's plugins list.
const Name = "strip-number-prefix"

// Version is the plugin version reported in its metadata.
const Version = "v1.0.0"

func init() {
	if err := plugin.Register(Name, Factory); err != nil {
		panic(err)
	}
}

// Plugin strips numeric prefixes during a build pass.
type Plugin struct {
	opts    Options
	matcher *Matcher

	transformations []Transformation
	collisions      []Collision
}

// New returns a plugin for opts. It does nothing until OnConfig has run.
func New(opts Options) *Plugin {
	return &Plugin{opts: opts}
}

// Factory decodes raw config options into a Plugin.
func Factory(raw map[string]any) (plugin.Plugin, error) {
	opts, err := DecodeOptions(raw)
	if err != nil {
		return nil, err
	}
	return New(opts), nil
}

func (p *Plugin) Metadata() plugin.PluginMetadata {
	return plugin.PluginMetadata{
		Name:        Name,
		Version:     Version,
		Description: "Strips numeric ordering prefixes from page URLs and navigation titles",
	}
}

// Validate decodes raw and compiles its pattern without touching p.
func (p *Plugin) Validate(raw map[string]any) error {
	opts, err := DecodeOptions(raw)
	if err != nil {
		return err
	}
	_, err = Compile(opts.Pattern)
	return err
}

// Options returns the plugin's options.
func (p *Plugin) Options() Options { return p.opts }

// Transformations returns the log of the most recent files phase.
func (p *Plugin) Transformations() []Transformation {
	return slices.Clone(p.transformations)
}

// Collisions returns the collisions found by the most recent files phase.
func (p *Plugin) Collisions() []Collision {
	return slices.Clone(p.collisions)
}

// OnConfig compiles the prefix pattern.
func (p *Plugin) OnConfig(pc *plugin.PluginContext) error {
	m, err := Compile(p.opts.Pattern)
	if err != nil {
		return err
	}
	p.matcher = m
	p.verbose(pc, "Using prefix pattern", logfields.Pattern(m.Pattern()))
	return nil
}

// OnFiles rewrites the destination path and URL of every prefixed documentation
// page. Collisions are detected over all pages before anything is mutated; in
// strict mode any collision aborts with nothing changed.
func (p *Plugin) OnFiles(pc *plugin.PluginContext, docs []site.Document) error {
	p.transformations = nil
	p.collisions = nil
	if p.matcher == nil {
		return nil
	}

	table := NewCollisionTable()
	var (
		pending []Transformation
		targets []site.Document
	)
	for _, doc := range docs {
		if !doc.IsDocumentationPage() {
			continue
		}
		dest, destChanged := p.matcher.StripPath(doc.DestPath())
		url, urlChanged := p.matcher.StripURL(doc.URL())
		table.Add(dest, doc.SrcPath())
		if destChanged || urlChanged {
			pending = append(pending, Transformation{
				SrcPath: doc.SrcPath(),
				OldDest: doc.DestPath(),
				OldURL:  doc.URL(),
				NewDest: dest,
				NewURL:  url,
			})
			targets = append(targets, doc)
		}
	}

	p.collisions = stripCollisions(table.Collisions(), pending)
	if len(p.collisions) > 0 {
		pc.Recorder.AddCollisions(len(p.collisions))
		if p.opts.Strict {
			return destinationCollisionError(p.collisions)
		}
		for _, c := range p.collisions {
			pc.Logger.Warn("Destination collision, keeping original paths: "+collisionMessage(c),
				logfields.DestPath(c.Destination),
				slog.Any("sources", c.Sources))
		}
	}

	applied := 0
	for i := range pending {
		t := &pending[i]
		attrs := []any{logfields.SrcPath(t.SrcPath), logfields.DestPath(t.NewDest), logfields.URL(t.NewURL)}
		switch {
		case table.Collides(t.NewDest):
			t.Status = StatusSkippedCollision
			p.verbose(pc, "Skipping colliding file", attrs...)
		case p.opts.DryRun:
			t.Status = StatusDryRun
			p.dryRun(pc, "dry run: would rewrite destination", attrs...)
		default:
			targets[i].SetDestPath(t.NewDest)
			targets[i].SetURL(t.NewURL)
			t.Status = StatusApplied
			applied++
			p.verbose(pc, "Stripped prefix", attrs...)
		}
	}
	p.transformations = pending
	pc.Recorder.AddPathsStripped(applied)
	return nil
}

// stripCollisions keeps the collisions that stripping caused, i.e. those with
// at least one prefixed source. Clashes between unprefixed pages are left to the host.
func stripCollisions(all []Collision, pending []Transformation) []Collision {
	stripped := make(map[string]bool, len(pending))
	for _, t := range pending {
		stripped[t.SrcPath] = true
	}
	var out []Collision
	for _, c := range all {
		if slices.ContainsFunc(c.Sources, func(src string) bool { return stripped[src] }) {
			out = append(out, c)
		}
	}
	return out
}

// verbose logs at Info only when the verbose option is on.
func (p *Plugin) verbose(pc *plugin.PluginContext, msg string, args ...any) {
	if p.opts.Verbose {
		pc.Logger.Info(msg, args...)
	}
}

// dryRun logs a change that was not made. It is logged at Info when the
// verbose option is on and at Debug otherwise.
func (p *Plugin) dryRun(pc *plugin.PluginContext, msg string, args ...any) {
	args = append(args, logfields.DryRun(true))
	if p.opts.Verbose {
		pc.Logger.Info(msg, args...)
		return
	}
	pc.Logger.Debug(msg, args...)
}

// Compile-time hook checks.
var (
	_ plugin.ConfigHook       = (*Plugin)(nil)
	_ plugin.FilesHook        = (*Plugin)(nil)
	_ plugin.PageMarkdownHook = (*Plugin)(nil)
	_ plugin.NavHook          = (*Plugin)(nil)
)
