// Package plugin defines the contract between the build host and its plugins:
// metadata, the per-phase hook interfaces, a factory registry keyed by the
// names used in a config file's plugins list, and the Pipeline that drives
// hooks in phase order.
package plugin

import (
	"errors"
	"fmt"
)

// Plugin represents a build plugin with metadata and option validation.
// A plugin takes part in a phase by also implementing that phase's hook interface.
type Plugin interface {
	// Metadata returns the plugin's metadata (name, version, description).
	Metadata() PluginMetadata

	// Validate checks raw options without retaining them.
	Validate(options map[string]any) error
}

// PluginMetadata describes a plugin's identity.
type PluginMetadata struct {
	// Name is the identifier used in the config file (e.g., "strip-number-prefix").
	Name string

	// Version is the semantic version (e.g., "v1.0.0").
	Version string

	Description string
}

// String returns a human-readable representation of the plugin metadata.
func (m PluginMetadata) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}

// Validate checks if the plugin metadata is valid.
func (m PluginMetadata) Validate() error {
	if m.Name == "" {
		return errors.New("plugin name is required")
	}
	if m.Version == "" {
		return errors.New("plugin version is required")
	}
	return nil
}

// Phases lists the phases p has hooks for, in execution order.
func Phases(p Plugin) []Phase {
	var phases []Phase
	if _, ok := p.(ConfigHook); ok {
		phases = append(phases, PhaseConfig)
	}
	if _, ok := p.(FilesHook); ok {
		phases = append(phases, PhaseFiles)
	}
	if _, ok := p.(PageMarkdownHook); ok {
		phases = append(phases, PhasePageMarkdown)
	}
	if _, ok := p.(NavHook); ok {
		phases = append(phases, PhaseNav)
	}
	return phases
}
