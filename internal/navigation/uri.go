package navigation

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

// ResolveURI maps a page's destination path to its canonical URI. A Markdown
// or ".html" extension is dropped while other suffixes stay part of the name,
// and an index page (index or README) maps to the URI of its directory:
// "one.html" gives "/one", "child/index.html" gives "/child", "v1.2" gives
// "/v1.2" and "" gives "/". Both "/" and the host separator split components.
func ResolveURI(p string) string {
	parts := splitPath(p)
	if n := len(parts); n > 0 {
		last := parts[n-1]
		if docs.IsIndexName(last) {
			parts = parts[:n-1]
		} else if stem := docs.PageStem(last); stem != "" {
			parts[n-1] = stem
		}
	}
	return "/" + strings.Join(parts, "/")
}

// RuleURI resolves a navigation rule path. Rule paths start with the docs root
// ("docs/guides/intro.md"), which is not part of the site's URIs and is dropped.
func RuleURI(rulePath string) string {
	parts := splitPath(rulePath)
	if len(parts) > 0 {
		parts = parts[1:]
	}
	return ResolveURI(strings.Join(parts, "/"))
}

func splitPath(p string) []string {
	fields := strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	parts := fields[:0]
	for _, f := range fields {
		if f != "." {
			parts = append(parts, f)
		}
	}
	return parts
}
