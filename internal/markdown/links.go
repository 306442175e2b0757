package markdown

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// Range is a half-open byte range [Start, End) into a Markdown source.
type Range struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside r.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}
