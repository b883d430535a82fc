package docs

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/util/sets"
)

// PageExtension is the extension of rendered pages.
const PageExtension = ".html"

// Document is an authored page inside the docs tree.
type Document struct {
	Title string
	// Path is the source path relative to the docs root, slash separated (e.g. "guides/README.md").
	Path string
	// Fingerprint is the content fingerprint of the source file; empty for synthesized documents.
	Fingerprint string
	// Synthesized marks index documents generated for directories without one.
	Synthesized bool
}

// IsIndex reports whether the document represents its directory.
func (d *Document) IsIndex() bool {
	return IsIndexName(path.Base(d.Path))
}

// HTMLPath returns the destination path of the rendered page relative to the
// site root. Index documents render to index.html.
func (d *Document) HTMLPath() string {
	dir, file := path.Split(d.Path)
	name := strings.TrimSuffix(file, path.Ext(file))
	if IsIndexName(file) {
		name = "index"
	}
	return dir + name + PageExtension
}

// Directory is a node of the docs tree. Docs and Dirs keep the order they were
// discovered in.
type Directory struct {
	// Path is relative to the docs root, slash separated; "" for the root.
	Path string
	Docs []*Document
	Dirs []*Directory
}

// Index returns the document representing the directory. A directory without
// README or index page gets a synthesized one titled after the directory.
func (d *Directory) Index() *Document {
	for _, doc := range d.Docs {
		if doc.IsIndex() {
			return doc
		}
	}
	return synthesizeIndex(d.Path)
}

// Walk visits every document depth first: a directory's own documents, then
// its subdirectories in order.
func (d *Directory) Walk(fn func(dir *Directory, doc *Document)) {
	for _, doc := range d.Docs {
		fn(d, doc)
	}
	for _, child := range d.Dirs {
		child.Walk(fn)
	}
}

// CountDocuments returns the number of documents in the tree.
func (d *Directory) CountDocuments() int {
	n := 0
	d.Walk(func(*Directory, *Document) { n++ })
	return n
}

// IsIndexName reports whether a file name marks a directory's index page.
func IsIndexName(file string) bool {
	name := PageStem(file)
	return strings.EqualFold(name, "readme") || name == "index"
}

// IsPageFile reports whether a name carries a source or rendered page extension.
func IsPageFile(name string) bool {
	return IsMarkdownFile(name) || strings.EqualFold(path.Ext(name), PageExtension)
}

// PageStem strips a page extension. Other suffixes, such as the ".2" of a
// "v1.2" directory, are part of the name and kept.
func PageStem(name string) string {
	if IsPageFile(name) {
		return strings.TrimSuffix(name, path.Ext(name))
	}
	return name
}

var markdownExtensions = sets.New(".md", ".markdown", ".mdown", ".mkd")

// IsMarkdownFile checks if a file name carries a Markdown extension.
func IsMarkdownFile(filename string) bool {
	return markdownExtensions.Has(strings.ToLower(path.Ext(filename)))
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// Humanize turns a file stem or directory name into a display title:
// "getting-started" becomes "Getting Started".
func Humanize(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(strings.Join(strings.Fields(name), " "))
}

func synthesizeIndex(dirPath string) *Document {
	title := "Home"
	if dirPath != "" {
		title = Humanize(path.Base(dirPath))
	}
	return &Document{
		Title:       title,
		Path:        path.Join(dirPath, "README.md"),
		Synthesized: true,
	}
}
