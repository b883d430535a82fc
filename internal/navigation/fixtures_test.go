package navigation

import (
	"git.home.luguber.info/inful/docnav/internal/docs"
)

func page(path, title string) *docs.Document {
	return &docs.Document{Path: path, Title: title}
}

// basicTree is a root with two pages and one subdirectory holding one page.
func basicTree() *docs.Directory {
	return &docs.Directory{
		Path: "",
		Docs: []*docs.Document{
			page("README.md", "Getting Started"),
			page("one.md", "One"),
			page("two.md", "Two"),
		},
		Dirs: []*docs.Directory{{
			Path: "child",
			Docs: []*docs.Document{
				page("child/README.md", "Nested Root"),
				page("child/three.md", "Three"),
			},
		}},
	}
}

// nestedTree extends basicTree with child/nested holding one page.
func nestedTree() *docs.Directory {
	root := basicTree()
	root.Dirs[0].Dirs = []*docs.Directory{{
		Path: "child/nested",
		Docs: []*docs.Document{
			page("child/nested/README.md", "Nested Root"),
			page("child/nested/four.md", "Four"),
		},
	}}
	return root
}

// dottedTree has a directory whose name carries a dot.
func dottedTree() *docs.Directory {
	return &docs.Directory{
		Docs: []*docs.Document{page("README.md", "Home")},
		Dirs: []*docs.Directory{{
			Path: "v1.2",
			Docs: []*docs.Document{
				page("v1.2/README.md", "Release 1.2"),
				page("v1.2/notes.md", "Notes"),
			},
		}},
	}
}
