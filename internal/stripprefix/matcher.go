package stripprefix

import (
	"regexp"
	"strings"
)

// Matcher applies a compiled prefix pattern. The pattern is always anchored at
// the start of its input and removes at most one leading match.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// Compile compiles pattern. A pattern written without a leading ^ still only
// matches at the start of a component or title.
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, invalidPatternError(pattern, err)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// Pattern returns the pattern as configured.
func (m *Matcher) Pattern() string { return m.pattern }

// Match reports whether s starts with a non-empty prefix.
func (m *Matcher) Match(s string) bool {
	_, ok := m.Strip(s)
	return ok
}

// Strip removes the leading prefix from s. A zero-length match is no match.
func (m *Matcher) Strip(s string) (string, bool) {
	loc := m.re.FindStringIndex(s)
	if loc == nil || loc[1] == 0 {
		return s, false
	}
	return s[loc[1]:], true
}

// StripComponent strips the prefix from a single path component. When the
// component has an extension only the stem is stripped and the extension is
// reattached. A component whose stem would become empty is left unchanged.
func (m *Matcher) StripComponent(name string) (string, bool) {
	stem, ext := splitExt(name)
	stripped, ok := m.Strip(stem)
	if !ok || stripped == "" {
		return name, false
	}
	return stripped + ext, true
}

// splitExt splits off the final extension. Leading dots do not start an extension.
func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}
