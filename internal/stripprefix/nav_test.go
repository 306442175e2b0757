package stripprefix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexyart/stripprefix/internal/site"
)

func TestNormalizeTitle(t *testing.T) {
	m := mustCompile(t, DefaultPattern)
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"010--getting-started", "getting started", true},
		{"010 getting started", "getting started", true},
		{"010  getting started", "getting started", true},
		{"010--a-b-c", "a b c", true},
		{"020--api--reference", "apireference", true},
		{"Getting Started", "Getting Started", false},
		{"", "", false},
		{"010--", "010--", false},
		{"2024 roadmap", "roadmap", true},
		{"v2 notes", "v2 notes", false},
		{"010\tx", "010\tx", false},
		{"010\nx", "010\nx", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := m.NormalizeTitle(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTitle_FormsAgree(t *testing.T) {
	m := mustCompile(t, DefaultPattern)
	fileForm, _ := m.NormalizeTitle("010--getting-started")
	displayForm, _ := m.NormalizeTitle("010 getting started")
	assert.Equal(t, fileForm, displayForm)

	again, changed := m.NormalizeTitle(fileForm)
	assert.False(t, changed)
	assert.Equal(t, fileForm, again)
}

func titles(nav *site.Nav) []string {
	var out []string
	nav.Walk(func(item site.NavItem, depth int) {
		title, ok := item.Title()
		if !ok {
			title = "<none>"
		}
		out = append(out, strings.Repeat("  ", depth)+title)
	})
	return out
}

func sampleNav() *site.Nav {
	return &site.Nav{Items: []site.NavItem{
		site.NewLink("Home", "index.md"),
		site.NewSection("010--getting-started",
			site.NewLink("010 install", "install.md"),
			site.NewSection("020--deep",
				site.NewLink("030--deeper-still", "x.md"),
			),
		),
		site.NewPage(site.NewFile("020--untitled.md", true)),
		site.NewLink("", "empty.md"),
	}}
}

func TestOnNav_StripsTitlesRecursively(t *testing.T) {
	h := newHarness()
	p := configured(t, h, func(o *Options) { o.Verbose = true })
	nav := sampleNav()

	require.NoError(t, p.OnNav(h.pc, nav))
	assert.Equal(t, []string{
		"Home",
		"getting started",
		"  install",
		"  deep",
		"    deeper still",
		"<none>",
		"",
	}, titles(nav))
	assert.Equal(t, 4, h.rec.titles)
	assert.Equal(t, 4, strings.Count(h.logs.String(), "Navigation title updated"))
}

func TestOnNav_Disabled(t *testing.T) {
	h := newHarness()
	p := configured(t, h, func(o *Options) { o.StripNavTitles = false })
	nav := sampleNav()
	before := titles(nav)

	require.NoError(t, p.OnNav(h.pc, nav))
	assert.Equal(t, before, titles(nav))
}

func TestOnNav_DryRun(t *testing.T) {
	h := newHarness()
	p := configured(t, h, func(o *Options) { o.DryRun = true })
	nav := sampleNav()
	before := titles(nav)

	require.NoError(t, p.OnNav(h.pc, nav))
	assert.Equal(t, before, titles(nav))
	assert.Equal(t, 4, strings.Count(h.logs.String(), "dry run: would update navigation title"))
	assert.Zero(t, h.rec.titles)
}

func TestOnNav_NilNavAndUnconfigured(t *testing.T) {
	h := newHarness()
	p := configured(t, h, nil)
	require.NoError(t, p.OnNav(h.pc, nil))

	nav := sampleNav()
	before := titles(nav)
	require.NoError(t, New(DefaultOptions()).OnNav(h.pc, nav))
	assert.Equal(t, before, titles(nav))
}

func TestOnNav_DeepNesting(t *testing.T) {
	const depth = 10000
	leaf := site.NewSection("010--leaf")
	var root site.NavItem = leaf
	for i := 0; i < depth; i++ {
		root = site.NewSection("section", root)
	}

	h := newHarness()
	p := configured(t, h, nil)
	require.NoError(t, p.OnNav(h.pc, &site.Nav{Items: []site.NavItem{root}}))

	title, _ := leaf.Title()
	assert.Equal(t, "leaf", title)
}

func TestOnNav_Idempotent(t *testing.T) {
	h := newHarness()
	p := configured(t, h, nil)
	nav := sampleNav()

	require.NoError(t, p.OnNav(h.pc, nav))
	first := titles(nav)
	require.NoError(t, p.OnNav(h.pc, nav))
	assert.Equal(t, first, titles(nav))
	assert.Equal(t, 4, h.rec.titles, "second pass changes nothing")
}
