package navigation

import "fmt"

// UnmatchedRuleError reports a navigation rule whose path resolves to no link
// among the candidates it was matched against.
type UnmatchedRuleError struct {
	// Path is the rule path as written in the configuration.
	Path string
	// URI is the URI the path resolved to.
	URI string
	// Scope is the URI of the link whose children were searched, "/" for the top level.
	Scope string
}

func (e *UnmatchedRuleError) Error() string {
	return fmt.Sprintf("navigation rule %q (%s) matches no page under %s", e.Path, e.URI, e.Scope)
}
