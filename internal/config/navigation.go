package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// WildCardChildren is the `children` value that carries a directory's pages over unchanged.
const WildCardChildren = "*"

// NavRule is one entry of the navigation rule list. The set of variants is
// closed: FileRule and DirRule.
type NavRule interface {
	// RulePath returns the path as written in the configuration, including the
	// docs root as its first segment.
	RulePath() string
	navRule()
}

// FileRule references a single page.
type FileRule struct {
	Path string
}

// DirRule references a directory. Include selects which of its pages are shown;
// nil means none.
type DirRule struct {
	Path    string
	Include DirInclude
}

// DirInclude selects a directory's nested menu. The set of variants is closed:
// WildCard and Explicit.
type DirInclude interface {
	dirInclude()
}

// WildCard keeps every page of the directory in its original order.
type WildCard struct{}

// Explicit reshapes the directory's pages with a nested rule list.
type Explicit struct {
	Rules []NavRule
}

func (r FileRule) RulePath() string { return r.Path }
func (r DirRule) RulePath() string  { return r.Path }

func (FileRule) navRule() {}
func (DirRule) navRule()  {}

func (WildCard) dirInclude() {}
func (Explicit) dirInclude() {}

func (r FileRule) String() string { return "file " + r.Path }

func (r DirRule) String() string {
	switch inc := r.Include.(type) {
	case WildCard:
		return "dir " + r.Path + " (*)"
	case Explicit:
		return fmt.Sprintf("dir %s (%d rules)", r.Path, len(inc.Rules))
	default:
		return "dir " + r.Path
	}
}

// NavRules is the ordered rule list found under the `navigation` key.
type NavRules []NavRule

type ruleDocument struct {
	Path     string     `yaml:"path"`
	Children yaml.Node `yaml:"children"`
}

// UnmarshalYAML decodes a sequence of rule mappings.
func (rs *NavRules) UnmarshalYAML(node *yaml.Node) error {
	rules, err := decodeRules(node)
	if err != nil {
		return err
	}
	*rs = rules
	return nil
}

func decodeRules(node *yaml.Node) (NavRules, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, ruleError("navigation must be a list of rules", node)
	}
	rules := make(NavRules, 0, len(node.Content))
	for _, item := range node.Content {
		rule, err := decodeRule(item)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func decodeRule(node *yaml.Node) (NavRule, error) {
	if node.Kind != yaml.MappingNode {
		return nil, ruleError("navigation rule must be a mapping with a path", node)
	}
	var doc ruleDocument
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}
	path := strings.TrimSpace(doc.Path)
	if path == "" {
		return nil, ruleError("navigation rule is missing a path", node)
	}

	children := &doc.Children
	if children.Kind == 0 || isNull(children) {
		if docs.IsMarkdownFile(path) {
			return FileRule{Path: path}, nil
		}
		return DirRule{Path: path}, nil
	}

	if docs.IsMarkdownFile(path) {
		return nil, ruleError("page rules cannot have children", children).
			WithContext("path", path)
	}

	switch children.Kind {
	case yaml.ScalarNode:
		if children.Value != WildCardChildren {
			return nil, ruleError(`children must be "*" or a list of rules`, children).
				WithContext("path", path)
		}
		return DirRule{Path: path, Include: WildCard{}}, nil
	case yaml.SequenceNode:
		nested, err := decodeRules(children)
		if err != nil {
			return nil, err
		}
		return DirRule{Path: path, Include: Explicit{Rules: nested}}, nil
	default:
		return nil, ruleError(`children must be "*" or a list of rules`, children).
			WithContext("path", path)
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func ruleError(msg string, node *yaml.Node) *ferrors.ClassifiedError {
	return ferrors.ValidationError(msg).
		WithContext("line", node.Line).
		Build()
}

type ruleOutput struct {
	Path     string `yaml:"path"`
	Children any    `yaml:"children,omitempty"`
}

// MarshalYAML writes the rule back in the shape UnmarshalYAML accepts.
func (r FileRule) MarshalYAML() (any, error) {
	return ruleOutput{Path: r.Path}, nil
}

// MarshalYAML writes the rule back in the shape UnmarshalYAML accepts.
func (r DirRule) MarshalYAML() (any, error) {
	out := ruleOutput{Path: r.Path}
	switch inc := r.Include.(type) {
	case WildCard:
		out.Children = WildCardChildren
	case Explicit:
		out.Children = NavRules(inc.Rules)
	}
	return out, nil
}

// CountRules returns the number of rules including nested ones.
func CountRules(rules []NavRule) int {
	n := 0
	for _, rule := range rules {
		n++
		if dir, ok := rule.(DirRule); ok {
			if inc, ok := dir.Include.(Explicit); ok {
				n += CountRules(inc.Rules)
			}
		}
	}
	return n
}
