package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/navigation"
)

// YAMLRenderer writes the tree as a YAML sequence.
type YAMLRenderer struct{}

type yamlLink struct {
	Path     string     `yaml:"path"`
	Title    string     `yaml:"title"`
	Children []yamlLink `yaml:"children,omitempty"`
}

func toYAML(links []navigation.Link) []yamlLink {
	out := make([]yamlLink, 0, len(links))
	for _, l := range links {
		out = append(out, yamlLink{Path: l.Path, Title: l.Title, Children: toYAML(l.Children)})
	}
	return out
}

func (YAMLRenderer) Render(w io.Writer, links []navigation.Link) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(links)); err != nil {
		return err
	}
	return enc.Close()
}
