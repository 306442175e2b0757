package site

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vexyart/stripprefix/internal/logfields"
)

// DiscoverOptions controls how a docs directory becomes a manifest.
type DiscoverOptions struct {
	UseDirectoryURLs bool
	// Exclude holds doublestar globs matched against docs-relative slash paths.
	// A matching directory is skipped entirely.
	Exclude []string
	Logger  *slog.Logger
}

// Discover walks docsDir and returns every file in it as a manifest entry.
// Hidden files and directories are skipped, as are paths matching opts.Exclude.
// When a directory holds both index.md and README.md, README.md is dropped.
func Discover(docsDir string, opts DiscoverOptions) (Files, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(docsDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDocsDirNotFound, docsDir)
	}
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExcludePattern, pattern)
		}
	}

	var files Files
	err = filepath.WalkDir(docsDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == docsDir {
			return nil
		}
		rel, err := filepath.Rel(docsDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if strings.HasPrefix(d.Name(), ".") || excluded(rel, opts.Exclude) {
			logger.Debug("Skipping path", logfields.Path(rel))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		f := NewFile(rel, opts.UseDirectoryURLs)
		f.AbsPath = p
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocsDirWalkFailed, docsDir, err)
	}

	files = dropShadowedReadmes(files, logger)
	files.Sort()
	logger.Debug("Docs discovered", logfields.Path(docsDir), logfields.Count(len(files)))
	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		// Patterns were validated up front, so Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func dropShadowedReadmes(files Files, logger *slog.Logger) Files {
	hasIndex := make(map[string]bool)
	for _, f := range files {
		if f.IsDocumentationPage() && f.Name() == "index" {
			hasIndex[path.Dir(f.SrcPath())] = true
		}
	}
	kept := files[:0]
	for _, f := range files {
		if f.IsDocumentationPage() && f.Name() == "README" && hasIndex[path.Dir(f.SrcPath())] {
			logger.Warn("Both index.md and README.md found, skipping README.md", logfields.SrcPath(f.SrcPath()))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}
