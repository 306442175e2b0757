package stripprefix

import "strings"

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// StripPath strips the prefix from every component of p. Components are split
// on both / and \ and every separator is kept exactly where it was, so
// platform separators and trailing slashes survive.
func (m *Matcher) StripPath(p string) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(p))
	changed := false
	start := 0
	for i := 0; i <= len(p); i++ {
		if i < len(p) && !isSeparator(p[i]) {
			continue
		}
		component := p[start:i]
		if stripped, ok := m.StripComponent(component); ok {
			component = stripped
			changed = true
		}
		sb.WriteString(component)
		if i < len(p) {
			sb.WriteByte(p[i])
		}
		start = i + 1
	}
	if !changed {
		return p, false
	}
	return sb.String(), true
}

// StripURL is StripPath for URLs. The result always uses forward slashes.
func (m *Matcher) StripURL(u string) (string, bool) {
	clean, changed := m.StripPath(u)
	if !changed {
		return u, false
	}
	return strings.ReplaceAll(clean, `\`, "/"), true
}

// destinationKey normalizes separators so Windows and POSIX spellings of the
// same destination collide.
func destinationKey(dest string) string {
	return strings.ReplaceAll(dest, `\`, "/")
}
