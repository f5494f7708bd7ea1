package data

import (
	"strings"
	"unicode"
)

// FilterByName returns the characters whose name contains query, ignoring
// case. Relative order is preserved and the input slice is never modified.
// An empty query matches everything.
func FilterByName(characters []Character, query string) []Character {
	out := make([]Character, 0, len(characters))
	if query == "" {
		return append(out, characters...)
	}

	needle := foldRunes(query)
	for _, c := range characters {
		if strings.Contains(foldRunes(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// foldRunes maps each rune to a single case-folded rune, so the string
// keeps its length: "ß" stays "ß" and never matches "ss".
func foldRunes(s string) string {
	return strings.Map(func(r rune) rune {
		return unicode.ToLower(unicode.ToUpper(r))
	}, s)
}
