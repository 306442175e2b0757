package stripprefix

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexyart/stripprefix/internal/metrics"
	"github.com/vexyart/stripprefix/internal/plugin"
	"github.com/vexyart/stripprefix/internal/site"
)

type countingRecorder struct {
	metrics.NoopRecorder
	paths, collisions, links, titles int
}

func (r *countingRecorder) AddPathsStripped(n int)     { r.paths += n }
func (r *countingRecorder) AddCollisions(n int)        { r.collisions += n }
func (r *countingRecorder) AddLinksRewritten(n int)    { r.links += n }
func (r *countingRecorder) AddNavTitlesStripped(n int) { r.titles += n }

type harness struct {
	pc   *plugin.PluginContext
	logs *bytes.Buffer
	rec  *countingRecorder
}

func newHarness() *harness {
	return newHarnessAt(slog.LevelDebug)
}

func newHarnessAt(level slog.Level) *harness {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: level}))
	rec := &countingRecorder{}
	return &harness{
		pc:   plugin.NewPluginContext(context.Background(), logger, rec),
		logs: logs,
		rec:  rec,
	}
}

// configured returns a plugin whose config phase has run.
func configured(t *testing.T, h *harness, mutate func(*Options)) *Plugin {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	p := New(opts)
	require.NoError(t, p.OnConfig(h.pc))
	return p
}

func mustCompile(t *testing.T, pattern string) *Matcher {
	t.Helper()
	m, err := Compile(pattern)
	require.NoError(t, err)
	return m
}

func manifest(srcs ...string) site.Files {
	files := make(site.Files, len(srcs))
	for i, src := range srcs {
		files[i] = site.NewFile(src, true)
	}
	return files
}

type snapshot struct {
	src, dest, url string
}

func snapshotOf(files site.Files) []snapshot {
	out := make([]snapshot, len(files))
	for i, f := range files {
		out[i] = snapshot{f.SrcPath(), f.DestPath(), f.URL()}
	}
	return out
}

// rawDoc is a Document with verbatim paths, for separators NewFile would normalize.
type rawDoc struct {
	src, dest, url string
}

func (d *rawDoc) IsDocumentationPage() bool { return true }
func (d *rawDoc) SrcPath() string           { return d.src }
func (d *rawDoc) DestPath() string          { return d.dest }
func (d *rawDoc) SetDestPath(s string)      { d.dest = s }
func (d *rawDoc) URL() string               { return d.url }
func (d *rawDoc) SetURL(s string)           { d.url = s }
