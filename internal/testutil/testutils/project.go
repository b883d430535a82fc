// Package helpers holds test fixtures shared by docnav's package tests.
package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	testDirPermissions  = 0o750
	testFilePermissions = 0o600
)

// WriteFile creates path with content, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), testDirPermissions); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), testFilePermissions); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ProjectBuilder lays out a docnav project (configuration plus docs tree) in
// a temporary directory.
type ProjectBuilder struct {
	t      *testing.T
	root   string
	config string
	pages  map[string]string
	order  []string
}

// NewProject starts a project titled title with no navigation rules.
func NewProject(t *testing.T, title string) *ProjectBuilder {
	t.Helper()
	return &ProjectBuilder{
		t:      t,
		root:   t.TempDir(),
		config: "title: " + title + "\n",
		pages:  make(map[string]string),
	}
}

// WithPage adds a Markdown file at rel (relative to the project root).
func (b *ProjectBuilder) WithPage(rel, content string) *ProjectBuilder {
	if _, ok := b.pages[rel]; !ok {
		b.order = append(b.order, rel)
	}
	b.pages[rel] = content
	return b
}

// WithConfig appends raw YAML to the configuration file.
func (b *ProjectBuilder) WithConfig(yaml string) *ProjectBuilder {
	b.config += yaml
	return b
}

// Build writes the project and returns the configuration file path.
func (b *ProjectBuilder) Build() string {
	b.t.Helper()
	for _, rel := range b.order {
		WriteFile(b.t, filepath.Join(b.root, filepath.FromSlash(rel)), b.pages[rel])
	}
	cfgPath := filepath.Join(b.root, "docnav.yaml")
	WriteFile(b.t, cfgPath, b.config)
	return cfgPath
}

// Root returns the project directory.
func (b *ProjectBuilder) Root() string {
	return b.root
}
