package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads .env files from dir into the process environment. Variables
// already set are never overridden, so a file loaded first wins over a later one.
// Missing files are skipped.
func loadEnvFiles(dir string, logger *slog.Logger) error {
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		err := godotenv.Load(p)
		switch {
		case err == nil:
			logger.Debug("Loaded environment file", slog.String("path", p))
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return err
		}
	}
	return nil
}
