// Package commands implements the stripprefix CLI on top of the plugin pipeline.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vexyart/stripprefix/internal/config"
)

// Global is shared state passed to every subcommand.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// NewGlobal returns a Global writing to the process streams.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Stdout: os.Stdout, Stderr: os.Stderr}
}

// CLI is the root command and its global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"mkdocs.yml" type:"path"`
	Verbose bool             `short:"v" help:"Enable debug logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Plan  PlanCmd  `cmd:"" help:"Show the destination and URL every page would get"`
	Nav   NavCmd   `cmd:"" help:"Print the navigation tree with normalized titles"`
	Links LinksCmd `cmd:"" help:"Print a page body with links to prefixed pages rewritten"`
	Watch WatchCmd `cmd:"" help:"Re-run plan whenever the docs directory changes"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing and installs the default logger.
// Commands that load a config replace it once the logging settings are known.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, config.LogFormatText))
	return nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig loads the config file and reconfigures g.Logger from its logging
// section. -v always wins over the configured level.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config, g.Logger)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level.Slog()
	if c.Verbose {
		level = slog.LevelDebug
	}
	stderr := g.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	g.Logger = newLogger(stderr, level, cfg.Logging.Format)
	return cfg, nil
}
