package navigation

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// Customize reshapes candidates according to rules. The result holds one link
// per rule, in rule order; candidates no rule names are dropped.
//
//   - FileRule: the matched link, children included as they are.
//   - DirRule without include: the matched link with no children.
//   - DirRule with WildCard: the matched link with its full subtree.
//   - DirRule with Explicit: the matched link whose children are the nested
//     rules applied to its own children.
//
// A rule matching no candidate fails the whole call with *UnmatchedRuleError.
// The returned links never share memory with candidates.
func Customize(rules []config.NavRule, candidates []Link) ([]Link, error) {
	return customize(rules, candidates, "/")
}

func customize(rules []config.NavRule, candidates []Link, scope string) ([]Link, error) {
	var links []Link

	for _, rule := range rules {
		if rule == nil {
			return nil, fmt.Errorf("nil navigation rule under %s", scope)
		}
		matched, err := findMatchingLink(rule.RulePath(), candidates, scope)
		if err != nil {
			return nil, err
		}

		switch r := rule.(type) {
		case config.FileRule:
			links = append(links, matched.Clone())
		case config.DirRule:
			link, err := applyDirRule(r, matched)
			if err != nil {
				return nil, err
			}
			links = append(links, link)
		default:
			return nil, fmt.Errorf("unsupported navigation rule %T", rule)
		}
	}

	return links, nil
}

func applyDirRule(rule config.DirRule, matched Link) (Link, error) {
	switch inc := rule.Include.(type) {
	case nil:
		return Link{Path: matched.Path, Title: matched.Title}, nil
	case config.WildCard:
		return matched.Clone(), nil
	case config.Explicit:
		children, err := customize(inc.Rules, matched.Children, matched.Path)
		if err != nil {
			return Link{}, err
		}
		return Link{Path: matched.Path, Title: matched.Title, Children: children}, nil
	default:
		return Link{}, fmt.Errorf("unsupported directory include %T", rule.Include)
	}
}

// findMatchingLink returns the first candidate whose path equals the rule's URI.
func findMatchingLink(rulePath string, candidates []Link, scope string) (Link, error) {
	uri := RuleURI(rulePath)
	for _, link := range candidates {
		if link.Path == uri {
			return link, nil
		}
	}
	return Link{}, &UnmatchedRuleError{Path: rulePath, URI: uri, Scope: scope}
}
