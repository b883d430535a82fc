// Package errors provides sentinel errors for documentation tree loading.
// These enable consistent classification and improved error handling for docs failures.
package errors

import "errors"

var (
	// ErrDocsPathNotFound indicates the configured documentation directory does not exist.
	ErrDocsPathNotFound = errors.New("documentation path not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of a docs directory failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading content from a documentation file failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrFrontmatterInvalid indicates a document's YAML frontmatter could not be parsed.
	ErrFrontmatterInvalid = errors.New("invalid frontmatter")

	// ErrNoDocsFound indicates the docs directory holds no Markdown documents.
	ErrNoDocsFound = errors.New("no documentation files found")

	// ErrPathCollision indicates two source files map to the same rendered page,
	// for example README.md and index.md in one directory.
	ErrPathCollision = errors.New("path collision detected")
)
