package plugin

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vexyart/stripprefix/internal/config"
	"github.com/vexyart/stripprefix/internal/frontmatter"
	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/metrics"
	"github.com/vexyart/stripprefix/internal/site"
)

// Pipeline runs the hooks of its plugins phase by phase, in registration order.
type Pipeline struct {
	plugins []Plugin
}

// NewPipeline creates a pipeline over plugins.
func NewPipeline(plugins ...Plugin) *Pipeline {
	return &Pipeline{plugins: plugins}
}

// Plugins returns the plugins in execution order.
func (p *Pipeline) Plugins() []Plugin {
	return p.plugins
}

// Build is the host state a full pass operates on.
type Build struct {
	Files site.Files

	// Nav is built from Files after the files phase when nil: from NavConfig
	// when it has entries, automatically otherwise.
	Nav       *site.Nav
	NavConfig []config.NavEntry

	// Pages receives each documentation page's body, keyed by source path,
	// after the page_markdown phase. Metadata blocks are preserved.
	Pages map[string]string
}

// Run executes config, files, page_markdown and nav phases over b.
// Context cancellation is honored between phases, never inside a hook.
func (p *Pipeline) Run(pc *PluginContext, b *Build) error {
	start := time.Now()
	defer func() { pc.Recorder.ObserveBuildDuration(time.Since(start)) }()

	if err := p.RunConfig(pc); err != nil {
		return err
	}
	if err := p.RunFiles(pc, b.Files.Documents()); err != nil {
		return err
	}

	if err := p.runPages(pc, b); err != nil {
		return err
	}

	if b.Nav == nil {
		nav, err := b.buildNav(pc.Logger)
		if err != nil {
			return err
		}
		b.Nav = nav
	}
	return p.RunNav(pc, b.Nav)
}

func (b *Build) buildNav(logger *slog.Logger) (*site.Nav, error) {
	if len(b.NavConfig) > 0 {
		return site.BuildConfiguredNav(b.NavConfig, b.Files, logger)
	}
	return site.BuildNav(b.Files, logger)
}

// RunConfig runs every ConfigHook.
func (p *Pipeline) RunConfig(pc *PluginContext) error {
	return p.phase(pc, PhaseConfig, func(name string, pl Plugin) error {
		if h, ok := pl.(ConfigHook); ok {
			return h.OnConfig(pc.ForPlugin(name))
		}
		return nil
	})
}

// RunFiles runs every FilesHook over the manifest.
func (p *Pipeline) RunFiles(pc *PluginContext, docs []site.Document) error {
	return p.phase(pc, PhaseFiles, func(name string, pl Plugin) error {
		if h, ok := pl.(FilesHook); ok {
			return h.OnFiles(pc.ForPlugin(name), docs)
		}
		return nil
	})
}

// RunPageMarkdown threads markdown through every PageMarkdownHook.
func (p *Pipeline) RunPageMarkdown(pc *PluginContext, doc site.Document, markdown string) (string, error) {
	for _, pl := range p.plugins {
		h, ok := pl.(PageMarkdownHook)
		if !ok {
			continue
		}
		name := pl.Metadata().Name
		out, err := h.OnPageMarkdown(pc.ForPlugin(name), doc, markdown)
		if err != nil {
			return markdown, NewPluginError(name, PhasePageMarkdown.String(), err)
		}
		markdown = out
	}
	return markdown, nil
}

// RunNav runs every NavHook over nav.
func (p *Pipeline) RunNav(pc *PluginContext, nav *site.Nav) error {
	return p.phase(pc, PhaseNav, func(name string, pl Plugin) error {
		if h, ok := pl.(NavHook); ok {
			return h.OnNav(pc.ForPlugin(name), nav)
		}
		return nil
	})
}

func (p *Pipeline) runPages(pc *PluginContext, b *Build) error {
	if b.Pages == nil {
		b.Pages = make(map[string]string)
	}
	return p.timed(pc, PhasePageMarkdown, func() error {
		for _, f := range b.Files.Pages() {
			out, err := p.RenderPage(pc, f)
			if err != nil {
				return err
			}
			b.Pages[f.SrcPath()] = out
		}
		return nil
	})
}

// RenderPage loads f and threads its body through the page_markdown hooks.
// A metadata block is split off first and put back unchanged.
func (p *Pipeline) RenderPage(pc *PluginContext, f *site.File) (string, error) {
	if err := f.LoadContent(); err != nil {
		return "", err
	}
	page, err := frontmatter.Split(f.Content)
	if err != nil {
		// MkDocs treats an unterminated metadata block as body text.
		page = &frontmatter.Page{Body: f.Content}
	}
	body, err := p.RunPageMarkdown(pc, f, string(page.Body))
	if err != nil {
		return "", err
	}
	page.Body = []byte(body)
	return string(page.Bytes()), nil
}

func (p *Pipeline) phase(pc *PluginContext, phase Phase, call func(name string, pl Plugin) error) error {
	return p.timed(pc, phase, func() error {
		for _, pl := range p.plugins {
			name := pl.Metadata().Name
			if err := call(name, pl); err != nil {
				return NewPluginError(name, phase.String(), err)
			}
		}
		return nil
	})
}

func (p *Pipeline) timed(pc *PluginContext, phase Phase, fn func() error) error {
	if err := pc.Context.Err(); err != nil {
		pc.Recorder.IncPhaseResult(phase.String(), metrics.ResultCanceled)
		return fmt.Errorf("%s phase: %w", phase, err)
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	pc.Recorder.ObservePhaseDuration(phase.String(), elapsed)

	if err != nil {
		pc.Recorder.IncPhaseResult(phase.String(), metrics.ResultFailed)
		pc.Logger.Debug("Phase failed", logfields.Phase(phase.String()), logfields.Error(err))
		return err
	}
	pc.Recorder.IncPhaseResult(phase.String(), metrics.ResultSuccess)
	pc.Logger.Debug("Phase complete",
		logfields.Phase(phase.String()),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000),
		slog.Int("plugins", len(p.plugins)))
	return nil
}
