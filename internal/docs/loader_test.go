package docs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func TestLoadFS_BuildsTree(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md":              file("---\ntitle: Getting Started\n---\nWelcome\n"),
		"one.md":                 file("# One\n"),
		"two.md":                 file("no heading here\n"),
		"logo.png":               file("png"),
		".hidden.md":             file("# Hidden\n"),
		"child/README.md":        file("# Nested Root\n"),
		"child/three.md":         file("---\ntitle: Three\n---\n"),
		"child/nested/four.md":   file("# Four\n"),
		"images/diagram.svg":     file("<svg/>"),
		".git/HEAD":              file("ref"),
		"reference/api-notes.md": file("# API Notes\n"),
	}

	root, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)

	assert.Equal(t, "", root.Path)
	assert.Equal(t, []string{"README.md", "one.md", "two.md"}, docPaths(root))
	assert.Equal(t, "Getting Started", root.Index().Title)
	assert.Equal(t, "One", root.Docs[1].Title)
	assert.Equal(t, "Two", root.Docs[2].Title, "title falls back to the file name")

	require.Len(t, root.Dirs, 2, "images/ holds no Markdown and is skipped")
	child := root.Dirs[0]
	assert.Equal(t, "child", child.Path)
	assert.Equal(t, "Nested Root", child.Index().Title)
	assert.Equal(t, "Three", child.Docs[1].Title)

	require.Len(t, child.Dirs, 1)
	nested := child.Dirs[0]
	assert.Equal(t, "child/nested", nested.Path)
	assert.True(t, nested.Index().Synthesized)
	assert.Equal(t, "Nested", nested.Index().Title)
	assert.Equal(t, []string{"child/nested/README.md", "child/nested/four.md"}, docPaths(nested))

	reference := root.Dirs[1]
	assert.Equal(t, "Reference", reference.Index().Title)

	for _, doc := range []*Document{root.Docs[1], child.Docs[0]} {
		assert.NotEmpty(t, doc.Fingerprint)
	}
}

func TestLoadFS_IndexTitleFallsBackToDirectoryName(t *testing.T) {
	root, err := LoadFS(context.Background(), fstest.MapFS{
		"README.md":             file("plain\n"),
		"user-guide/README.md":  file("plain\n"),
		"user-guide/install.md": file("# Install\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Home", root.Index().Title)
	assert.Equal(t, "User Guide", root.Dirs[0].Index().Title)
}

func TestLoadFS_PathCollision(t *testing.T) {
	_, err := LoadFS(context.Background(), fstest.MapFS{
		"README.md": file("# A\n"),
		"index.md":  file("# B\n"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrPathCollision))
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryDocs))
}

func TestLoadFS_InvalidFrontmatter(t *testing.T) {
	_, err := LoadFS(context.Background(), fstest.MapFS{
		"README.md": file("---\ntitle: [broken\n---\n"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrFrontmatterInvalid))
}

func TestLoadFS_NoDocs(t *testing.T) {
	_, err := LoadFS(context.Background(), fstest.MapFS{"logo.png": file("png")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrNoDocsFound))
}

func TestLoadFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFS(ctx, fstest.MapFS{"README.md": file("# A\n")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "docs"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "child"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Home Page\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "child", "page.md"), []byte("# Page\n"), 0o600))

	root, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "Home Page", root.Index().Title)
	require.Len(t, root.Dirs, 1)
	assert.Equal(t, "child/page.md", root.Dirs[0].Docs[1].Path)
}

func TestSignature(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md":   file("# Home\n"),
		"a/README.md": file("# A\n"),
	}
	first, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)
	second, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)
	assert.Equal(t, first.Signature(), second.Signature())

	fsys["a/README.md"] = file("# A\n\nchanged body\n")
	changed, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)
	assert.NotEqual(t, first.Signature(), changed.Signature())
}

func docPaths(d *Directory) []string {
	out := make([]string, 0, len(d.Docs))
	for _, doc := range d.Docs {
		out = append(out, doc.Path)
	}
	return out
}
