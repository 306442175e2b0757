package stripprefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexyart/stripprefix/internal/site"
)

func TestStripLinkTarget(t *testing.T) {
	m := mustCompile(t, DefaultPattern)
	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{"010--x.md", "x.md", true},
		{"010--x.md#sec", "x.md#sec", true},
		{"../020--guides/010--setup.md", "../020--guides/setup.md", true},
		{`sub\010--x.md`, `sub\x.md`, true},
		{"x.md", "x.md", false},
		{"https://e.com/010--x.md", "https://e.com/010--x.md", false},
		{"//cdn.example.com/010--x.md", "//cdn.example.com/010--x.md", false},
		{"mailto:010--x.md", "mailto:010--x.md", false},
		{"#010--local", "#010--local", false},
		{"010--.md", "010--.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, ok := m.StripLinkTarget(tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriteLinks(t *testing.T) {
	m := mustCompile(t, DefaultPattern)
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "relative, external and fragment links",
			body: "[A](010--x.md) [B](https://e.com) [C](010--x.md#sec)",
			want: "[A](x.md) [B](https://e.com) [C](x.md#sec)",
		},
		{
			name: "markdown extension, any case",
			body: "[A](010--x.markdown) [B](020--y.MD)",
			want: "[A](x.markdown) [B](y.MD)",
		},
		{
			name: "non markdown targets untouched",
			body: "[pdf](010--x.pdf) ![img](010--logo.png)",
			want: "[pdf](010--x.pdf) ![img](010--logo.png)",
		},
		{
			name: "code span untouched",
			body: "Use `[A](010--x.md)` or [A](010--x.md).",
			want: "Use `[A](010--x.md)` or [A](x.md).",
		},
		{
			name: "fenced code untouched",
			body: "```\n[A](010--x.md)\n```\n\n[A](010--x.md)\n",
			want: "```\n[A](010--x.md)\n```\n\n[A](x.md)\n",
		},
		{
			name: "no links",
			body: "# Title\n\nplain text\n",
			want: "# Title\n\nplain text\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := m.RewriteLinks(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriteLinks_Idempotent(t *testing.T) {
	m := mustCompile(t, DefaultPattern)
	once, _, err := m.RewriteLinks("[A](010--x.md) [B](../020--y.md#z)")
	require.NoError(t, err)
	twice, edits, err := m.RewriteLinks(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Empty(t, edits)
}

func TestOnPageMarkdown(t *testing.T) {
	const body = "See [A](010--x.md) and [C](010--x.md#sec)."
	doc := site.NewFile("index.md", true)

	t.Run("disabled by default", func(t *testing.T) {
		h := newHarness()
		p := configured(t, h, nil)
		got, err := p.OnPageMarkdown(h.pc, doc, body)
		require.NoError(t, err)
		assert.Equal(t, body, got)
		assert.Zero(t, h.rec.links)
	})

	t.Run("enabled", func(t *testing.T) {
		h := newHarness()
		p := configured(t, h, func(o *Options) { o.StripLinks = true; o.Verbose = true })
		got, err := p.OnPageMarkdown(h.pc, doc, body)
		require.NoError(t, err)
		assert.Equal(t, "See [A](x.md) and [C](x.md#sec).", got)
		assert.Equal(t, 2, h.rec.links)
		assert.Contains(t, h.logs.String(), "Rewrote link")
	})

	t.Run("dry run leaves body", func(t *testing.T) {
		h := newHarness()
		p := configured(t, h, func(o *Options) { o.StripLinks = true; o.DryRun = true })
		got, err := p.OnPageMarkdown(h.pc, doc, body)
		require.NoError(t, err)
		assert.Equal(t, body, got)
		assert.Zero(t, h.rec.links)
		assert.Contains(t, h.logs.String(), "dry run: would rewrite link")
	})

	t.Run("before config", func(t *testing.T) {
		h := newHarness()
		p := New(Options{Pattern: DefaultPattern, StripLinks: true})
		got, err := p.OnPageMarkdown(h.pc, doc, body)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})
}
