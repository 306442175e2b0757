package site

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func srcPaths(files Files) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.SrcPath())
	}
	return out
}

func TestDiscover(t *testing.T) {
	docs := t.TempDir()
	writeTree(t, docs, map[string]string{
		"index.md":                  "# Home\n",
		"010--getting-started.md":   "# Getting Started\n",
		"020--advanced.md":          "Advanced\n",
		"030--guides/010--setup.md": "# Setup\n",
		"030--guides/img/shot.png":  "png",
		"drafts/wip.md":             "# WIP\n",
		".hidden/secret.md":         "# Secret\n",
		".DS_Store":                 "",
	})

	files, err := Discover(docs, DiscoverOptions{UseDirectoryURLs: true, Exclude: []string{"drafts/**"}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"index.md",
		"010--getting-started.md",
		"020--advanced.md",
		"030--guides/010--setup.md",
		"030--guides/img/shot.png",
	}, srcPaths(files))

	setup, ok := files.Get("030--guides/010--setup.md")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(docs, "030--guides", "010--setup.md"), setup.AbsPath)
	assert.Equal(t, "030--guides/010--setup/index.html", setup.DestPath())
}

func TestDiscover_ReadmeShadowedByIndex(t *testing.T) {
	docs := t.TempDir()
	writeTree(t, docs, map[string]string{
		"index.md":        "# Home\n",
		"README.md":       "# Readme\n",
		"guide/README.md": "# Guide\n",
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	files, err := Discover(docs, DiscoverOptions{UseDirectoryURLs: true, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.md", "guide/README.md"}, srcPaths(files))
	assert.Contains(t, logs.String(), "skipping README.md")
}

func TestDiscover_Errors(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), DiscoverOptions{})
	require.ErrorIs(t, err, ErrDocsDirNotFound)

	_, err = Discover(t.TempDir(), DiscoverOptions{Exclude: []string{"[unclosed"}})
	require.ErrorIs(t, err, ErrInvalidExcludePattern)
}
