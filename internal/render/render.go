// Package render serializes a navigation tree for consumption by site
// templates and humans.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/navigation"
)

// Format names an output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Formats lists the supported formats in the order shown in help output.
var Formats = []Format{FormatJSON, FormatYAML, FormatHTML, FormatText}

// Renderer writes a navigation tree to w.
type Renderer interface {
	Render(w io.Writer, links []navigation.Link) error
}

// Options tune renderers that need site metadata.
type Options struct {
	// Title labels the HTML nav element.
	Title string
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", ferrors.ValidationError(fmt.Sprintf("unknown output format %q", name)).
		WithContext("supported", FormatNames()).
		Build()
}

// FormatNames returns the supported format names.
func FormatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}

// New returns the renderer for f.
func New(f Format, opts Options) (Renderer, error) {
	switch f {
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	case FormatHTML:
		return HTMLRenderer{Title: opts.Title}, nil
	case FormatText:
		return TextRenderer{}, nil
	default:
		_, err := ParseFormat(string(f))
		return nil, err
	}
}
