package render

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/docnav/internal/navigation"
)

// HTMLRenderer writes the tree as a nav element with nested lists, ready to be
// included in a page template. Link targets are the canonical URIs.
type HTMLRenderer struct {
	Title string
}

func (r HTMLRenderer) Render(w io.Writer, links []navigation.Link) error {
	nav := element(atom.Nav, html.Attribute{Key: "class", Val: "docnav"})
	if r.Title != "" {
		nav.Attr = append(nav.Attr, html.Attribute{Key: "aria-label", Val: r.Title})
	}
	if len(links) > 0 {
		nav.AppendChild(list(links))
	}
	if err := html.Render(w, nav); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func list(links []navigation.Link) *html.Node {
	ul := element(atom.Ul)
	for _, l := range links {
		a := element(atom.A, html.Attribute{Key: "href", Val: l.Path})
		a.AppendChild(&html.Node{Type: html.TextNode, Data: l.Title})

		li := element(atom.Li)
		li.AppendChild(a)
		if len(l.Children) > 0 {
			li.AppendChild(list(l.Children))
		}
		ul.AppendChild(li)
	}
	return ul
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
