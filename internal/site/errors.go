package site

import "errors"

// Sentinel errors for docs-dir discovery and page loading.
var (
	// ErrDocsDirNotFound indicates the configured docs_dir does not exist or is not a directory.
	ErrDocsDirNotFound = errors.New("docs directory not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the docs directory failed.
	ErrDocsDirWalkFailed = errors.New("docs directory walk failed")

	// ErrFileReadFailed indicates reading a discovered page failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrInvalidExcludePattern indicates an exclude_docs entry is not a valid glob.
	ErrInvalidExcludePattern = errors.New("invalid exclude_docs pattern")
)
