// Package project locates the project a command operates on.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// FindRoot returns the project root for start: the nearest directory at or
// above start holding a configuration file, else the root of the enclosing git
// worktree, else start itself.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve start directory").
			WithContext("path", start).
			Build()
	}

	for dir := abs; ; {
		if _, err := os.Stat(filepath.Join(dir, config.DefaultConfigFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if root, ok := worktreeRoot(abs); ok {
		return root, nil
	}
	return abs, nil
}

// ConfigPath returns the configuration file location for start.
func ConfigPath(start string) (string, error) {
	root, err := FindRoot(start)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, config.DefaultConfigFile), nil
}

func worktreeRoot(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

// Revision returns the HEAD commit of the git worktree containing dir. It
// returns "" without error when dir is not tracked or the repository has no
// commits yet. Other failures are warnings: the revision is informational.
func Revision(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", nil
	}
	if err != nil {
		return "", ferrors.FileSystemError("failed to open git repository").WithCause(err).
			Warning().
			WithContext("path", dir).
			Build()
	}
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", ferrors.FileSystemError("failed to resolve HEAD").WithCause(err).
			Warning().
			WithContext("path", dir).
			Build()
	}
	return head.Hash().String(), nil
}
