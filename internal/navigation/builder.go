package navigation

import (
	"slices"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

// BuildDefault derives the navigation for dir from the docs tree alone.
//
// Every document except dir's own index becomes a leaf link; every
// subdirectory becomes a link to its index page whose children are built
// recursively. The list is sorted by CompareTitles. The sort is stable, so
// equal titles keep documents before directories and otherwise input order.
func BuildDefault(dir *docs.Directory) []Link {
	indexURI := ResolveURI(dir.Index().HTMLPath())
	links := make([]Link, 0, len(dir.Docs)+len(dir.Dirs))

	for _, doc := range dir.Docs {
		uri := ResolveURI(doc.HTMLPath())
		if uri == indexURI {
			continue
		}
		links = append(links, Link{Path: uri, Title: doc.Title})
	}

	for _, child := range dir.Dirs {
		index := child.Index()
		links = append(links, Link{
			Path:     ResolveURI(index.HTMLPath()),
			Title:    index.Title,
			Children: BuildDefault(child),
		})
	}

	if len(links) == 0 {
		return nil
	}
	slices.SortStableFunc(links, func(a, b Link) int {
		return CompareTitles(a.Title, b.Title)
	})
	return links
}
