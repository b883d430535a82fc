package navigation

import "encoding/json"

// Link is one entry of the navigation tree.
type Link struct {
	// Path is the canonical URI: absolute, "/"-separated, without page
	// extension and without trailing slash except for the site root.
	Path     string `json:"path" yaml:"path"`
	Title    string `json:"title" yaml:"title"`
	Children []Link `json:"children" yaml:"children"`
}

// Clone returns a deep copy of the link and its subtree.
func (l Link) Clone() Link {
	return Link{Path: l.Path, Title: l.Title, Children: cloneLinks(l.Children)}
}

func cloneLinks(links []Link) []Link {
	if links == nil {
		return nil
	}
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = l.Clone()
	}
	return out
}

// MarshalJSON always emits children as a list, never null.
func (l Link) MarshalJSON() ([]byte, error) {
	type plain Link
	p := plain(l)
	if p.Children == nil {
		p.Children = []Link{}
	}
	return json.Marshal(p)
}

// Walk visits links depth first with their nesting depth (0 for the given list).
func Walk(links []Link, fn func(link Link, depth int)) {
	walk(links, 0, fn)
}

func walk(links []Link, depth int, fn func(Link, int)) {
	for _, l := range links {
		fn(l, depth)
		walk(l.Children, depth+1, fn)
	}
}

// CountLinks returns the number of links in the tree.
func CountLinks(links []Link) int {
	n := 0
	Walk(links, func(Link, int) { n++ })
	return n
}

// Find returns the first link whose path equals uri, searching depth first.
func Find(links []Link, uri string) (Link, bool) {
	for _, l := range links {
		if l.Path == uri {
			return l, true
		}
		if found, ok := Find(l.Children, uri); ok {
			return found, true
		}
	}
	return Link{}, false
}
