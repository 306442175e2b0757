// Package config loads the host configuration: the subset of mkdocs.yml the
// reference host understands, plus logging and metrics settings.
package config

import (
	"errors"
	"path/filepath"
)

// DefaultConfigFile is the config path used when none is given.
const DefaultConfigFile = "mkdocs.yml"

var (
	// ErrConfigNotFound indicates the config file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidConfig indicates the config file could not be parsed or failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the host configuration.
type Config struct {
	SiteName         string        `yaml:"site_name,omitempty"`
	DocsDir          string        `yaml:"docs_dir"`
	UseDirectoryURLs *bool         `yaml:"use_directory_urls,omitempty"`
	ExcludeDocs      []string      `yaml:"exclude_docs,omitempty"`
	Nav              []NavEntry    `yaml:"nav,omitempty"`
	Logging          LoggingConfig `yaml:"logging"`
	Metrics          MetricsConfig `yaml:"metrics"`
	Plugins          Plugins       `yaml:"plugins,omitempty"`

	// path is the file the config was loaded from.
	path string
}

// LoggingConfig controls the host's slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// Textfile, when set, receives the registry in node_exporter textfile format after each run.
	Textfile string `yaml:"textfile,omitempty"`
}

// DirectoryURLs reports whether pages are written as dir/index.html.
// MkDocs defaults this to true.
func (c *Config) DirectoryURLs() bool {
	return c.UseDirectoryURLs == nil || *c.UseDirectoryURLs
}

// Path returns the file the config was loaded from, or "" for a config built in code.
func (c *Config) Path() string { return c.path }

// DocsPath resolves DocsDir against the config file's directory, as MkDocs does.
func (c *Config) DocsPath() string {
	if filepath.IsAbs(c.DocsDir) || c.path == "" {
		return c.DocsDir
	}
	return filepath.Join(filepath.Dir(c.path), c.DocsDir)
}
