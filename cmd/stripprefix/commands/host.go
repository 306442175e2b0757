package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/vexyart/stripprefix/internal/config"
	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
	"github.com/vexyart/stripprefix/internal/logfields"
	"github.com/vexyart/stripprefix/internal/metrics"
	"github.com/vexyart/stripprefix/internal/plugin"
	"github.com/vexyart/stripprefix/internal/site"
	"github.com/vexyart/stripprefix/internal/stripprefix"
)

// overrides are command-line settings layered over the configured plugin options.
type overrides struct {
	DryRun     bool
	NoStrict   bool
	StripLinks bool
}

func (o overrides) apply(opts map[string]any) map[string]any {
	out := maps.Clone(opts)
	if out == nil {
		out = map[string]any{}
	}
	if o.DryRun {
		out["dry_run"] = true
	}
	if o.NoStrict {
		out["strict"] = false
	}
	if o.StripLinks {
		out["strip_links"] = true
	}
	return out
}

// host is a configured build: plugins from the config file, a metrics registry,
// and the logger every pass uses.
type host struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *plugin.Pipeline
	core     *stripprefix.Plugin
	registry *prom.Registry
	recorder *tally
}

// newHost instantiates every configured plugin the registry knows. Plugins
// without a host implementation are skipped; strip-number-prefix is added with
// default options when the config does not list it.
func newHost(cfg *config.Config, logger *slog.Logger, ov overrides) (*host, error) {
	registry := plugin.DefaultRegistry()
	entries := cfg.Plugins
	if _, ok := entries.Lookup(stripprefix.Name); !ok {
		logger.Debug("Plugin not listed in config, using defaults", logfields.Plugin(stripprefix.Name))
		entries = append(entries[:len(entries):len(entries)], config.PluginEntry{Name: stripprefix.Name})
	}

	h := &host{cfg: cfg, logger: logger, registry: prom.NewRegistry()}
	var plugins []plugin.Plugin
	for _, entry := range entries {
		if !registry.Has(entry.Name) {
			logger.Debug("Ignoring plugin without a host implementation",
				logfields.Plugin(entry.Name), slog.Any("available", registry.Names()))
			continue
		}
		opts := entry.Options
		if entry.Name == stripprefix.Name {
			opts = ov.apply(opts)
		}
		p, err := registry.New(entry.Name, opts)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded plugin", logfields.Plugin(p.Metadata().String()), slog.Any("phases", plugin.Phases(p)))
		if core, ok := p.(*stripprefix.Plugin); ok {
			h.core = core
		}
		plugins = append(plugins, p)
	}
	h.pipeline = plugin.NewPipeline(plugins...)
	h.recorder = &tally{Recorder: metrics.NewPrometheusRecorder(h.registry)}
	return h, nil
}

// result is what one pass over the docs directory produced.
type result struct {
	BuildID         string
	Files           site.Files
	Nav             *site.Nav
	Pages           map[string]string
	Transformations []stripprefix.Transformation
	Collisions      []stripprefix.Collision
	LinksRewritten  int
	TitlesStripped  int
}

func (h *host) discover() (site.Files, error) {
	files, err := site.Discover(h.cfg.DocsPath(), site.DiscoverOptions{
		UseDirectoryURLs: h.cfg.DirectoryURLs(),
		Exclude:          h.cfg.ExcludeDocs,
		Logger:           h.logger,
	})
	if err != nil {
		return nil, classifySiteError(err)
	}
	return files, nil
}

// run discovers the docs directory and runs every phase over it in memory.
// Transformations and collisions are reported even when the files phase fails.
func (h *host) run(ctx context.Context) (*result, error) {
	files, err := h.discover()
	if err != nil {
		return nil, err
	}

	h.recorder.reset()
	pc := plugin.NewPluginContext(ctx, h.logger, h.recorder)
	build := &plugin.Build{Files: files, NavConfig: h.cfg.Nav}
	runErr := h.pipeline.Run(pc, build)

	res := &result{
		BuildID:         pc.BuildID,
		Files:           build.Files,
		Nav:             build.Nav,
		Pages:           build.Pages,
		Transformations: h.core.Transformations(),
		Collisions:      h.core.Collisions(),
		LinksRewritten:  h.recorder.links,
		TitlesStripped:  h.recorder.titles,
	}
	if runErr != nil {
		return res, classifySiteError(runErr)
	}
	pc.Logger.Debug("Build pass complete", logfields.Count(len(res.Transformations)))
	return res, nil
}

// writeMetrics exports the registry when a textfile path is configured.
// The flag value wins over the config file.
func (h *host) writeMetrics(flagPath string) error {
	path := flagPath
	if path == "" {
		path = h.cfg.Metrics.Textfile
	}
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(path, h.registry); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write metrics textfile").
			WithContext("path", path).
			Build()
	}
	h.logger.Debug("Wrote metrics textfile", logfields.Path(path))
	return nil
}

// classifySiteError maps unclassified host errors onto CLI categories.
// Errors that are already classified pass through unchanged.
func classifySiteError(err error) error {
	if ferrors.IsClassified(err) {
		return err
	}
	switch {
	case errors.Is(err, site.ErrDocsDirNotFound):
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, err.Error()).UserAction().Build()
	case errors.Is(err, site.ErrInvalidExcludePattern):
		return ferrors.WrapError(err, ferrors.CategoryConfig, err.Error()).Fatal().UserAction().Build()
	case errors.Is(err, site.ErrDocsDirWalkFailed), errors.Is(err, site.ErrFileReadFailed):
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, err.Error()).Build()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return ferrors.WrapError(err, ferrors.CategoryInternal, fmt.Sprintf("build failed: %v", err)).Fatal().Build()
	}
}

// tally forwards to the metrics recorder and keeps the per-pass counters the
// reports print.
type tally struct {
	metrics.Recorder
	links, titles int
}

func (t *tally) reset() { t.links, t.titles = 0, 0 }

func (t *tally) AddLinksRewritten(n int) {
	t.links += n
	t.Recorder.AddLinksRewritten(n)
}

func (t *tally) AddNavTitlesStripped(n int) {
	t.titles += n
	t.Recorder.AddNavTitlesStripped(n)
}
