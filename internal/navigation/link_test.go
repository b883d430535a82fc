package navigation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_MarshalJSON(t *testing.T) {
	links := []Link{
		{Path: "/child", Title: "Child", Children: []Link{{Path: "/child/a", Title: "A"}}},
	}

	data, err := json.Marshal(links)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"path":"/child","title":"Child","children":[{"path":"/child/a","title":"A","children":[]}]}]`,
		string(data))
}

func TestLink_Clone(t *testing.T) {
	orig := Link{Path: "/a", Title: "A", Children: []Link{
		{Path: "/a/b", Title: "B", Children: []Link{{Path: "/a/b/c", Title: "C"}}},
	}}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Children[0].Children[0].Title = "changed"
	assert.Equal(t, "C", orig.Children[0].Children[0].Title)

	assert.Nil(t, Link{Path: "/leaf"}.Clone().Children)
}

func TestWalkAndFind(t *testing.T) {
	links := BuildDefault(nestedTree())

	var depths []int
	Walk(links, func(_ Link, depth int) { depths = append(depths, depth) })
	assert.Equal(t, []int{0, 1, 2, 1, 0, 0}, depths)
	assert.Equal(t, 6, CountLinks(links))

	found, ok := Find(links, "/child/nested/four")
	require.True(t, ok)
	assert.Equal(t, "Four", found.Title)

	_, ok = Find(links, "/missing")
	assert.False(t, ok)
}
