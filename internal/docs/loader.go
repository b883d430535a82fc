package docs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/inful/mdfp"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

// Load reads the docs directory at root into a Directory tree.
func Load(ctx context.Context, root string) (*Directory, error) {
	st, err := os.Stat(root)
	if err != nil || !st.IsDir() {
		return nil, ferrors.WrapError(derrors.ErrDocsPathNotFound, ferrors.CategoryDocs, "docs directory not found").
			Fatal().
			UserAction().
			WithContext("docs_dir", root).
			Build()
	}
	return LoadFS(ctx, os.DirFS(root))
}

// LoadFS reads a docs tree rooted at fsys. Hidden entries and non-Markdown
// files are skipped, as are directories without any Markdown below them.
func LoadFS(ctx context.Context, fsys fs.FS) (*Directory, error) {
	l := &loader{fsys: fsys}
	root, err := l.loadDir(ctx, ".")
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ferrors.WrapError(derrors.ErrNoDocsFound, ferrors.CategoryDocs, "docs directory holds no Markdown files").
			Fatal().
			UserAction().
			Build()
	}
	slog.Debug("Docs tree loaded", logfields.Docs(root.CountDocuments()))
	return root, nil
}

type loader struct {
	fsys fs.FS
}

// loadDir returns nil when the directory holds no Markdown at any depth.
func (l *loader) loadDir(ctx context.Context, dir string) (*Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, ferrors.WrapError(fmt.Errorf("%w: %s: %w", derrors.ErrDocsDirWalkFailed, dir, err), ferrors.CategoryFileSystem, "failed to read docs directory").
			WithContext("path", dir).
			Build()
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	rel := ""
	if dir != "." {
		rel = dir
	}
	d := &Directory{Path: rel}
	destinations := make(map[string]string)

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := path.Join(dir, name)

		if entry.IsDir() {
			child, err := l.loadDir(ctx, full)
			if err != nil {
				return nil, err
			}
			if child != nil {
				d.Dirs = append(d.Dirs, child)
			}
			continue
		}
		if !IsMarkdownFile(name) {
			continue
		}

		doc, err := l.loadDocument(full, rel)
		if err != nil {
			return nil, err
		}
		dest := doc.HTMLPath()
		if other, ok := destinations[dest]; ok {
			return nil, ferrors.WrapError(derrors.ErrPathCollision, ferrors.CategoryDocs, "two documents render to the same page").
				Fatal().
				UserAction().
				WithContext("path", doc.Path).
				WithContext("other", other).
				WithContext("destination", dest).
				Build()
		}
		destinations[dest] = doc.Path
		d.Docs = append(d.Docs, doc)
	}

	if len(d.Docs) == 0 && len(d.Dirs) == 0 {
		return nil, nil
	}
	if !hasIndex(d) {
		index := synthesizeIndex(rel)
		slog.Debug("Synthesized index document", logfields.Path(index.Path), logfields.Title(index.Title))
		d.Docs = append([]*Document{index}, d.Docs...)
	}
	return d, nil
}

func (l *loader) loadDocument(full, dir string) (*Document, error) {
	content, err := fs.ReadFile(l.fsys, full)
	if err != nil {
		return nil, ferrors.WrapError(fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, full, err), ferrors.CategoryFileSystem, "failed to read document").
			WithContext("path", full).
			Build()
	}

	parsed, err := frontmatter.Parse(content)
	if err != nil {
		return nil, ferrors.WrapError(fmt.Errorf("%w: %w", derrors.ErrFrontmatterInvalid, err), ferrors.CategoryDocs, "failed to parse frontmatter").
			Fatal().
			UserAction().
			WithContext("path", full).
			Build()
	}

	doc := &Document{
		Path:        full,
		Fingerprint: mdfp.CalculateFingerprintFromParts(string(parsed.Raw), string(parsed.Body)),
	}
	doc.Title = resolveTitle(parsed, doc, dir)
	return doc, nil
}

// resolveTitle prefers the frontmatter title, then the first level-1 heading,
// then a title derived from the file (or, for index pages, directory) name.
func resolveTitle(parsed *frontmatter.Document, doc *Document, dir string) string {
	if title, ok := parsed.String("title"); ok {
		return title
	}
	if title := markdown.FirstHeading(parsed.Body); title != "" {
		return title
	}
	if doc.IsIndex() {
		return synthesizeIndex(dir).Title
	}
	base := path.Base(doc.Path)
	return Humanize(strings.TrimSuffix(base, path.Ext(base)))
}

func hasIndex(d *Directory) bool {
	for _, doc := range d.Docs {
		if doc.IsIndex() {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the docs directory is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, derrors.ErrDocsPathNotFound)
}
