package render

import (
	"encoding/json"
	"io"

	"git.home.luguber.info/inful/docnav/internal/navigation"
)

// JSONRenderer writes the tree as an indented JSON array.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, links []navigation.Link) error {
	if links == nil {
		links = []navigation.Link{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(links)
}
