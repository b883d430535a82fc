package navigation

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCompareTitles_Orders(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
	}{
		{"numbers before letters", []string{"11", "22", "AA", "BB"}},
		{"digits then lowercase", []string{"123", "aa", "bb", "cc"}},
		{"numeric value", []string{"2", "11", "100"}},
		{"runs inside titles", []string{"Chapter 2", "Chapter 10", "Chapter 10a", "Chapter 11"}},
		{"digit-leading before letter-leading", []string{"11", "Index", "bb"}},
		{"prefix first", []string{"Guide", "Guide 1", "Guides"}},
		{"leading zeros break ties last", []string{"1", "01", "001", "2"}},
		{"huge numbers", []string{"99999999999999999999", "100000000000000000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shuffled := slices.Clone(tt.titles)
			slices.Reverse(shuffled)
			slices.SortStableFunc(shuffled, CompareTitles)
			assert.Equal(t, tt.titles, shuffled)
		})
	}
}

func TestCompareTitles_Equal(t *testing.T) {
	assert.Equal(t, 0, CompareTitles("", ""))
	assert.Equal(t, 0, CompareTitles("Index", "Index"))
	assert.Equal(t, 0, CompareTitles("v10.2", "v10.2"))
}

func TestCompareTitles_InvalidUTF8(t *testing.T) {
	a, b := "Guide \xff", "Guide \xfe"
	assert.NotEqual(t, 0, CompareTitles(a, b))
	assert.Equal(t, -CompareTitles(a, b), CompareTitles(b, a))
	assert.Equal(t, 0, CompareTitles(a, a))
}

var titleGen = rapid.StringMatching(`[0-9aAbB .-]{0,8}`)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestCompareTitles_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := titleGen.Draw(t, "a")
		b := titleGen.Draw(t, "b")
		c := titleGen.Draw(t, "c")

		if CompareTitles(a, a) != 0 {
			t.Fatalf("%q not equal to itself", a)
		}
		if sign(CompareTitles(a, b)) != -sign(CompareTitles(b, a)) {
			t.Fatalf("compare(%q, %q) is not antisymmetric", a, b)
		}
		if CompareTitles(a, b) == 0 && a != b {
			t.Fatalf("distinct titles %q and %q compare equal", a, b)
		}
		if CompareTitles(a, b) <= 0 && CompareTitles(b, c) <= 0 && CompareTitles(a, c) > 0 {
			t.Fatalf("ordering not transitive for %q, %q, %q", a, b, c)
		}
	})
}

func TestCompareTitles_NumericValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64().Draw(t, "x")
		y := rapid.Uint64().Draw(t, "y")
		prefix := rapid.StringMatching(`[a-z ]{0,4}`).Draw(t, "prefix")

		got := sign(CompareTitles(fmt.Sprintf("%s%d", prefix, x), fmt.Sprintf("%s%d", prefix, y)))
		want := 0
		switch {
		case x < y:
			want = -1
		case x > y:
			want = 1
		}
		if got != want {
			t.Fatalf("compare(%d, %d) = %d, want %d", x, y, got, want)
		}
	})
}
