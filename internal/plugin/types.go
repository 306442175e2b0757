package plugin

import (
	"fmt"

	"github.com/vexyart/stripprefix/internal/site"
)

// Phase identifies a build phase in which hooks run.
type Phase string

const (
	// PhaseConfig runs once, before any file is looked at.
	PhaseConfig Phase = "config"

	// PhaseFiles runs once over the complete manifest.
	PhaseFiles Phase = "files"

	// PhasePageMarkdown runs once per documentation page, on the body without metadata.
	PhasePageMarkdown Phase = "page_markdown"

	// PhaseNav runs once over the navigation tree.
	PhaseNav Phase = "nav"
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}

// ConfigHook is implemented by plugins that prepare state from their options.
type ConfigHook interface {
	OnConfig(pc *PluginContext) error
}

// FilesHook is implemented by plugins that rewrite manifest destinations.
type FilesHook interface {
	OnFiles(pc *PluginContext, docs []site.Document) error
}

// PageMarkdownHook is implemented by plugins that rewrite a page body.
type PageMarkdownHook interface {
	OnPageMarkdown(pc *PluginContext, doc site.Document, markdown string) (string, error)
}

// NavHook is implemented by plugins that rewrite the navigation tree.
type NavHook interface {
	OnNav(pc *PluginContext, nav *site.Nav) error
}

// PluginError represents an error that occurred within a plugin.
type PluginError struct {
	// PluginName identifies which plugin failed.
	PluginName string

	// Operation describes what the plugin was doing when it failed.
	Operation string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin %s failed during %s: %v", e.PluginName, e.Operation, e.Err)
}

// Unwrap returns the underlying error for error inspection.
func (e *PluginError) Unwrap() error {
	return e.Err
}

// NewPluginError creates a new plugin error.
func NewPluginError(pluginName, operation string, err error) *PluginError {
	return &PluginError{
		PluginName: pluginName,
		Operation:  operation,
		Err:        err,
	}
}
