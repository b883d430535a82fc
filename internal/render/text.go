package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/navigation"
)

// TextRenderer writes one line per link, indented by depth:
//
//	Guides  /guides
//	  Install  /guides/install
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, links []navigation.Link) error {
	bw := bufio.NewWriter(w)
	if len(links) == 0 {
		if _, err := fmt.Fprintln(bw, "(empty navigation)"); err != nil {
			return err
		}
		return bw.Flush()
	}

	var werr error
	navigation.Walk(links, func(l navigation.Link, depth int) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "%s%s  %s\n", strings.Repeat("  ", depth), l.Title, l.Path)
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}
