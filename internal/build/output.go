package build

import (
	"bytes"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// writeOutput replaces path with data via a temporary file in the same
// directory, so readers never observe a partial navigation file.
func writeOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ferrors.FileSystemError("failed to create output directory").WithCause(err).
			WithContext("dir", dir).
			Build()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return ferrors.FileSystemError("failed to create temporary output").WithCause(err).
			WithContext("dir", dir).
			Build()
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := bytes.NewReader(data).WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return ferrors.FileSystemError("failed to write output").WithCause(err).
			WithContext("file", path).
			Build()
	}
	if err := tmp.Close(); err != nil {
		return ferrors.FileSystemError("failed to write output").WithCause(err).
			WithContext("file", path).
			Build()
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return ferrors.FileSystemError("failed to set output permissions").WithCause(err).
			WithContext("file", path).
			Build()
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ferrors.FileSystemError("failed to replace output").WithCause(err).
			WithContext("file", path).
			Build()
	}
	return nil
}
