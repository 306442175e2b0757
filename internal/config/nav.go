package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NavEntry is one item of an explicit nav list. MkDocs accepts three shapes:
// a bare target ("page.md" or a URL), a single-key mapping from title to
// target, and a single-key mapping from title to a nested list (a section).
type NavEntry struct {
	Title    string
	Target   string
	Children []NavEntry
	titled   bool
}

// HasTitle reports whether the entry was written with an explicit title.
func (e NavEntry) HasTitle() bool { return e.titled }

// IsSection reports whether the entry groups nested entries.
func (e NavEntry) IsSection() bool { return e.Target == "" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *NavEntry) UnmarshalYAML(node *yaml.Node) error {
	*e = NavEntry{}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return fmt.Errorf("line %d: nav entry is empty", node.Line)
		}
		e.Target = node.Value
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: nav entry must have exactly one title, got %d", node.Line, len(node.Content)/2)
		}
	default:
		return fmt.Errorf("line %d: nav entry must be a target, a title: target mapping or a title: [entries] mapping", node.Line)
	}

	e.Title, e.titled = node.Content[0].Value, true
	v := node.Content[1]
	switch v.Kind {
	case yaml.ScalarNode:
		if v.Value == "" || v.Tag == "!!null" {
			return fmt.Errorf("line %d: nav entry %q has no target", v.Line, e.Title)
		}
		e.Target = v.Value
	case yaml.SequenceNode:
		if err := v.Decode(&e.Children); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: nav entry %q must map to a target or a list", v.Line, e.Title)
	}
	return nil
}
