package navigation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

type countingRecorder struct {
	stages    []string
	links     int
	unmatched int
}

func (r *countingRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	r.stages = append(r.stages, stage)
}
func (r *countingRecorder) ObserveBuildDuration(time.Duration) {}
func (r *countingRecorder) IncBuildOutcome(string)             {}
func (r *countingRecorder) SetLinkCount(n int)                 { r.links = n }
func (r *countingRecorder) IncUnmatchedRule()                  { r.unmatched++ }

func TestBuildFor_WithoutRulesReturnsDefaults(t *testing.T) {
	for name, cfg := range map[string]*config.Config{
		"nil config":    nil,
		"nil rule list": {Title: "Docs"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := &countingRecorder{}
			links, err := New(cfg).WithRecorder(rec).BuildFor(context.Background(), basicTree())
			require.NoError(t, err)
			assert.Equal(t, BuildDefault(basicTree()), links)
			assert.Equal(t, 4, rec.links)
			assert.Equal(t, []string{StageName}, rec.stages)
		})
	}
}

func TestBuildFor_EmptyRuleListYieldsEmptyNavigation(t *testing.T) {
	cfg := &config.Config{Navigation: config.NavRules{}}

	links, err := New(cfg).BuildFor(context.Background(), basicTree())
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestBuildFor_AppliesRules(t *testing.T) {
	cfg := &config.Config{Navigation: config.NavRules{
		config.FileRule{Path: "docs/two.md"},
		config.DirRule{Path: "docs/child", Include: config.WildCard{}},
	}}
	rec := &countingRecorder{}

	links, err := New(cfg).WithRecorder(rec).BuildFor(context.Background(), basicTree())
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{Path: "/two", Title: "Two"},
		{Path: "/child", Title: "Nested Root", Children: []Link{
			{Path: "/child/three", Title: "Three"},
		}},
	}, links)
	assert.Equal(t, 3, rec.links)
	assert.Zero(t, rec.unmatched)
}

func TestBuildFor_UnmatchedRule(t *testing.T) {
	cfg := &config.Config{Navigation: config.NavRules{
		config.FileRule{Path: "docs/one.md"},
		config.FileRule{Path: "docs/ghost.md"},
	}}
	rec := &countingRecorder{}

	links, err := New(cfg).WithRecorder(rec).BuildFor(context.Background(), basicTree())
	require.Error(t, err)
	assert.Nil(t, links)
	assert.Equal(t, 1, rec.unmatched)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryNavigation, classified.Category())
	assert.True(t, classified.IsFatal())
	path, _ := classified.Context().GetString("path")
	assert.Equal(t, "docs/ghost.md", path)
	uri, _ := classified.Context().GetString("uri")
	assert.Equal(t, "/ghost", uri)

	var unmatched *UnmatchedRuleError
	require.True(t, errors.As(err, &unmatched))
	assert.Equal(t, "docs/ghost.md", unmatched.Path)
}

func TestWithRecorder_NilFallsBackToNoop(t *testing.T) {
	n := New(nil).WithRecorder(nil)
	_, err := n.BuildFor(context.Background(), basicTree())
	require.NoError(t, err)
}
