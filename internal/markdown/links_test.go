package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_Kinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind LinkKind
		dest string
	}{
		{"inline", "See [Setup](010--setup.md) for details.", LinkKindInline, "010--setup.md"},
		{"image", "![Diagram](010--diagram.png)", LinkKindImage, "010--diagram.png"},
		{"auto", "<https://example.com/path>", LinkKindAuto, "https://example.com/path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := ExtractLinks([]byte(tt.src))
			require.Len(t, links, 1)
			assert.Equal(t, tt.kind, links[0].Kind)
			assert.Equal(t, tt.dest, links[0].Destination)
		})
	}
}

func TestExtractLinks_ReferenceLinkUsageAndDefinition(t *testing.T) {
	links := ExtractLinks([]byte("See [API][ref].\n\n[ref]: 010--api.md\n"))
	require.Len(t, links, 2)
	assert.Equal(t, Link{Kind: LinkKindInline, Destination: "010--api.md"}, links[0])
	assert.Equal(t, Link{Kind: LinkKindReferenceDefinition, Destination: "010--api.md"}, links[1])
}

func TestExtractLinks_SkipsInlineCodeAndCodeBlocks(t *testing.T) {
	src := []byte("" +
		"Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```\n" +
		"[Link](./ignored-fence.md)\n" +
		"```\n" +
		"\n" +
		"Real: [OK](./real.md)\n")

	links := ExtractLinks(src)
	require.Len(t, links, 1)
	assert.Equal(t, "./real.md", links[0].Destination)
}

func TestCodeRanges(t *testing.T) {
	src := "Text `[a](010--a.md)` and\n\n```\n[b](010--b.md)\n```\n\n    [c](010--c.md)\n\n[d](010--d.md)\n"
	ranges := CodeRanges([]byte(src))
	require.Len(t, ranges, 3)

	inside := func(needle string) bool {
		off := strings.Index(src, needle)
		for _, r := range ranges {
			if r.Contains(off) {
				return true
			}
		}
		return false
	}
	assert.True(t, inside("[a]"), "code span")
	assert.True(t, inside("[b]"), "fenced block")
	assert.True(t, inside("[c]"), "indented block")
	assert.False(t, inside("[d]"), "plain paragraph")
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		title string
		ok    bool
	}{
		{"atx", "# Getting Started\n\nBody", "Getting Started", true},
		{"setext", "Advanced\n========\n", "Advanced", true},
		{"inline markup", "# Using `strip` *well*\n", "Using strip well", true},
		{"skips h2", "## Sub\n\n# Main\n", "Main", true},
		{"none", "Just text.\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := FirstHeading([]byte(tt.src))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
		})
	}
}
