package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PluginEntry is one item of the plugins list. MkDocs accepts either a bare
// name or a single-key mapping from name to options.
type PluginEntry struct {
	Name    string
	Options map[string]any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *PluginEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		e.Name = node.Value
		e.Options = nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: plugin entry must have exactly one name, got %d", node.Line, len(node.Content)/2)
		}
		e.Name = node.Content[0].Value
		e.Options = nil
		if v := node.Content[1]; v.Tag != "!!null" {
			if err := v.Decode(&e.Options); err != nil {
				return fmt.Errorf("line %d: options for plugin %q: %w", v.Line, e.Name, err)
			}
		}
	default:
		return fmt.Errorf("line %d: plugin entry must be a name or a name: options mapping", node.Line)
	}
	if e.Name == "" {
		return fmt.Errorf("line %d: plugin name is empty", node.Line)
	}
	return nil
}

// MarshalYAML writes the short form when there are no options.
func (e PluginEntry) MarshalYAML() (any, error) {
	if len(e.Options) == 0 {
		return e.Name, nil
	}
	return map[string]any{e.Name: e.Options}, nil
}

// Plugins is the ordered plugins list.
type Plugins []PluginEntry

// Lookup returns the options of the named plugin and whether it is listed.
// A plugin listed without options yields an empty, non-nil map.
func (ps Plugins) Lookup(name string) (map[string]any, bool) {
	for _, p := range ps {
		if p.Name != name {
			continue
		}
		if p.Options == nil {
			return map[string]any{}, true
		}
		return p.Options, true
	}
	return nil, false
}

// Names lists plugin names in config order.
func (ps Plugins) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}
