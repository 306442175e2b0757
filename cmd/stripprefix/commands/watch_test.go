package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	req, trigger, stop := newDebouncer(20 * time.Millisecond)
	defer stop()

	for i := 0; i < 5; i++ {
		trigger()
	}
	select {
	case <-req:
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired")
	}
	select {
	case <-req:
		t.Fatal("burst fired more than once")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestIgnoreEvent(t *testing.T) {
	assert.True(t, ignoreEvent("/docs/.hidden.md"))
	assert.True(t, ignoreEvent("/docs/page.md~"))
	assert.True(t, ignoreEvent("/docs/.page.md.swp"))
	assert.False(t, ignoreEvent("/docs/010--page.md"))
}

func TestWatch_ReplansOnChange(t *testing.T) {
	path := project(t, "", sampleDocs)
	tio := newTestIO()
	cli := &CLI{Config: path}
	cfg, err := cli.loadConfig(tio.g)
	require.NoError(t, err)
	h, err := newHost(cfg, tio.g.Logger, overrides{})
	require.NoError(t, err)

	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- (&WatchCmd{Debounce: 20 * time.Millisecond}).watch(ctx, out, h) }()

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("4 pages"))
	}, 5*time.Second, 10*time.Millisecond)

	newDir := filepath.Join(cfg.DocsPath(), "050--faq")
	require.NoError(t, os.MkdirAll(newDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DocsPath(), "040--new.md"), []byte("new\n"), 0o644))

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("040--new.md"))
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "new/index.html")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_MissingDocsDir(t *testing.T) {
	path := project(t, "docs_dir: nowhere\n", sampleDocs)
	tio := newTestIO()
	cfg, err := (&CLI{Config: path}).loadConfig(tio.g)
	require.NoError(t, err)
	h, err := newHost(cfg, tio.g.Logger, overrides{})
	require.NoError(t, err)

	err = (&WatchCmd{Debounce: time.Millisecond}).watch(context.Background(), &syncBuffer{}, h)
	require.Error(t, err)
	assert.Equal(t, 11, exitCode(err))
}
