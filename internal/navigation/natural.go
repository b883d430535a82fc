package navigation

import (
	"cmp"
	"strings"
)

// CompareTitles orders titles naturally. Runs of ASCII digits compare by
// numeric value ("2" < "11"), any other characters compare by code point, and
// at the same position a digit sorts before a non-digit. When one title is a
// prefix of the other the shorter comes first. Numbers of equal value differing
// only in leading zeros ("01" and "1") are decided next, fewer zeros first.
// Titles still equal after that, which only happens when invalid UTF-8 decodes
// to the same replacement runes, fall back to byte order.
func CompareTitles(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	zeros := 0

	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		da, db := isDigit(ca), isDigit(cb)

		switch {
		case da && db:
			ei, ej := digitRunEnd(ra, i), digitRunEnd(rb, j)
			c, z := compareNumbers(ra[i:ei], rb[j:ej])
			if c != 0 {
				return c
			}
			if zeros == 0 {
				zeros = z
			}
			i, j = ei, ej
		case da:
			return -1
		case db:
			return 1
		default:
			if ca != cb {
				return cmp.Compare(ca, cb)
			}
			i++
			j++
		}
	}

	if c := cmp.Compare(len(ra)-i, len(rb)-j); c != 0 {
		return c
	}
	if zeros != 0 {
		return zeros
	}
	return strings.Compare(a, b)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func digitRunEnd(rs []rune, start int) int {
	end := start
	for end < len(rs) && isDigit(rs[end]) {
		end++
	}
	return end
}

// compareNumbers compares two digit runs by value without converting them, so
// runs of any length work. The second result orders equal values by leading zeros.
func compareNumbers(a, b []rune) (int, int) {
	ta, tb := trimZeros(a), trimZeros(b)
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c, 0
	}
	for k := range ta {
		if c := cmp.Compare(ta[k], tb[k]); c != 0 {
			return c, 0
		}
	}
	return 0, cmp.Compare(len(a), len(b))
}

func trimZeros(rs []rune) []rune {
	k := 0
	for k < len(rs)-1 && rs[k] == '0' {
		k++
	}
	return rs[k:]
}
