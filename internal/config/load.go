package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
)

// Load reads the config file at path. Environment files next to it are loaded
// first, ${VAR} references in the file are expanded, then defaults are applied
// and the result is validated. Keys outside the supported subset are ignored,
// since a mkdocs.yml usually carries many of them.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := loadEnvFiles(filepath.Dir(path), logger); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load environment file").
			Fatal().
			WithContext("path", path).
			Build()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.WrapError(fmt.Errorf("%w: %s", ErrConfigNotFound, path), ferrors.CategoryConfig,
				fmt.Sprintf("configuration file not found: %s", path)).
				Fatal().
				UserAction().
				WithContext("path", path).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	cfg.path = path
	logger.Debug("Loaded configuration",
		slog.String("path", path),
		slog.String("docs_dir", cfg.DocsDir),
		slog.Any("plugins", cfg.Plugins.Names()))
	return cfg, nil
}

// Parse decodes data, applies defaults and validates. It does not expand
// environment references.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, invalid(err, "failed to parse configuration")
		}
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DocsDir == "" {
		cfg.DocsDir = "docs"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}

// Validate canonicalizes enumerations in place and checks exclude globs.
func (c *Config) Validate() error {
	level, err := ParseLogLevel(string(c.Logging.Level))
	if err != nil {
		return invalid(err, err.Error())
	}
	c.Logging.Level = level

	format, err := ParseLogFormat(string(c.Logging.Format))
	if err != nil {
		return invalid(err, err.Error())
	}
	c.Logging.Format = format

	for _, pattern := range c.ExcludeDocs {
		if !doublestar.ValidatePattern(pattern) {
			return invalid(fmt.Errorf("bad glob %q", pattern), fmt.Sprintf("invalid exclude_docs pattern %q", pattern))
		}
	}
	return nil
}

func invalid(cause error, message string) error {
	return ferrors.WrapError(fmt.Errorf("%w: %w", ErrInvalidConfig, cause), ferrors.CategoryConfig, message).
		Fatal().
		UserAction().
		Build()
}
