package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vexyart/stripprefix/internal/config"
	ferrors "github.com/vexyart/stripprefix/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if err := writeExampleConfig(root.Config, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Stdout, "Wrote example configuration to %s\n", root.Config)
	return err
}

// writeExampleConfig writes config.Example to path. An existing file is only
// replaced with force.
func writeExampleConfig(path string, force bool) error {
	if _, err := config.Parse([]byte(config.Example)); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "built-in example configuration is invalid").Fatal().Build()
	}

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return ferrors.ConfigError(fmt.Sprintf("%s already exists (use --force to overwrite)", path)).
				WithContext("path", path).
				Build()
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to check config path").Build()
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create config directory").
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(path, []byte(config.Example), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write configuration").
			WithContext("path", path).
			Build()
	}
	return nil
}
