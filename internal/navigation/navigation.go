package navigation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/observability"
)

// StageName labels navigation timings in logs and metrics.
const StageName = "navigation"

// Navigation builds the navigation tree for a site build.
type Navigation struct {
	rules    []config.NavRule
	recorder metrics.Recorder
}

// New creates a Navigation driven by cfg's rule list. A nil cfg or a config
// without rules yields the default navigation.
func New(cfg *config.Config) *Navigation {
	n := &Navigation{recorder: metrics.NoopRecorder{}}
	if cfg != nil && cfg.HasNavigation() {
		n.rules = cfg.Navigation
	}
	return n
}

// WithRecorder sets the metrics recorder.
func (n *Navigation) WithRecorder(r metrics.Recorder) *Navigation {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	n.recorder = r
	return n
}

// BuildFor returns the navigation for dir: the default tree, reshaped by the
// configured rules when there are any. A rule matching no page fails the build
// with a navigation ClassifiedError wrapping *UnmatchedRuleError; no partial
// tree is returned.
func (n *Navigation) BuildFor(ctx context.Context, dir *docs.Directory) ([]Link, error) {
	ctx = observability.WithStage(ctx, StageName)
	start := time.Now()
	defer func() { n.recorder.ObserveStageDuration(StageName, time.Since(start)) }()

	defaults := BuildDefault(dir)
	if n.rules == nil {
		observability.DebugContext(ctx, "Using default navigation", logfields.Links(CountLinks(defaults)))
		n.recorder.SetLinkCount(CountLinks(defaults))
		return defaults, nil
	}

	for _, rule := range n.rules {
		observability.DebugContext(ctx, "Navigation rule", logfields.Rule(fmt.Sprint(rule)))
	}
	links, err := Customize(n.rules, defaults)
	if err != nil {
		var unmatched *UnmatchedRuleError
		if errors.As(err, &unmatched) {
			n.recorder.IncUnmatchedRule()
			observability.ErrorContext(ctx, "Navigation rule matches no page",
				logfields.Path(unmatched.Path), logfields.URI(unmatched.URI))
			return nil, ferrors.NavigationError("navigation rule does not match any page").
				WithCause(unmatched).
				WithContext("path", unmatched.Path).
				WithContext("uri", unmatched.URI).
				WithContext("scope", unmatched.Scope).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "navigation customization failed").Fatal().Build()
	}

	count := CountLinks(links)
	observability.DebugContext(ctx, "Applied navigation rules",
		logfields.Rules(config.CountRules(n.rules)), logfields.Links(count),
		logfields.Elapsed(time.Since(start)))
	n.recorder.SetLinkCount(count)
	return links, nil
}
