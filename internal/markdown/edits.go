package markdown

import (
	"fmt"
	"slices"
)

// Edit replaces source[Start:End] with Replacement. Offsets always refer to the
// original source, never to a partially edited one.
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// ApplyEdits applies non-overlapping byte-range edits to source and returns the
// result. Bytes outside every edit are copied unchanged, so line endings and
// surrounding formatting survive. source itself is never modified.
func ApplyEdits(source []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return source, nil
	}

	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b Edit) int { return a.Start - b.Start })

	size := len(source)
	prevEnd := 0
	for i, e := range sorted {
		switch {
		case e.Start < 0 || e.End > len(source):
			return nil, fmt.Errorf("invalid edit [%d,%d): range out of bounds", e.Start, e.End)
		case e.End < e.Start:
			return nil, fmt.Errorf("invalid edit [%d,%d): end before start", e.Start, e.End)
		case i > 0 && e.Start < prevEnd:
			return nil, fmt.Errorf("invalid edit [%d,%d): overlaps previous edit ending at %d", e.Start, e.End, prevEnd)
		}
		prevEnd = e.End
		size += len(e.Replacement) - (e.End - e.Start)
	}

	out := make([]byte, 0, size)
	cursor := 0
	for _, e := range sorted {
		out = append(out, source[cursor:e.Start]...)
		out = append(out, e.Replacement...)
		cursor = e.End
	}
	return append(out, source[cursor:]...), nil
}
