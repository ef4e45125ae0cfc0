package tabread

import (
	"unicode"
	"unicode/utf8"
)

// EndPolicy controls whether the end keyword match is retained in a
// ranged slice. The default is EndInclusive so that content keeps the
// heading of its final section.
type EndPolicy int

// End keyword inclusion policies.
const (
	EndInclusive EndPolicy = iota
	EndExclusive
)

// SliceRange bounds text to the region delimited by two optional keywords.
// Matching is case-insensitive, first-occurrence substring search.
//
// With no keywords the text is returned unchanged. With only a start
// keyword the slice runs from its first occurrence to the end of text.
// With only an end keyword the slice runs from the start of text through
// its first occurrence, retained or dropped per policy. With both, the
// end keyword is searched only after the start match; if it does not
// occur there, the slice runs to the end of text.
//
// Returns ENOTFOUND if a start keyword is given but absent from text.
func SliceRange(text, startKeyword, endKeyword string, policy EndPolicy) (string, error) {
	if startKeyword == "" && endKeyword == "" {
		return text, nil
	}

	from := 0
	searchFrom := 0
	if startKeyword != "" {
		start, end := indexFold(text, startKeyword)
		if start < 0 {
			return "", Errorf(ENOTFOUND, "start keyword %q not found", startKeyword)
		}
		from = start
		// An end keyword is only meaningful after the start match.
		searchFrom = end
	}

	to := len(text)
	if endKeyword != "" {
		if start, end := indexFold(text[searchFrom:], endKeyword); start >= 0 {
			if policy == EndInclusive {
				to = searchFrom + end
			} else {
				to = searchFrom + start
			}
		}
	}

	return text[from:to], nil
}

// indexFold returns the byte offsets in s spanning the first
// case-insensitive occurrence of substr, or (-1, -1) if absent. Offsets
// index into s itself, so they stay valid even when case folding changes
// a rune's encoded length.
func indexFold(s, substr string) (start, end int) {
	if substr == "" {
		return 0, 0
	}
	for i := range s {
		if n, ok := matchFold(s[i:], substr); ok {
			return i, i + n
		}
	}
	return -1, -1
}

// matchFold reports whether s begins with a case-insensitive match of
// substr, and the byte length of the matched prefix of s.
func matchFold(s, substr string) (int, bool) {
	n := 0
	for _, kr := range substr {
		sr, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !runeFoldEqual(sr, kr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// runeFoldEqual compares two runes under Unicode simple case folding,
// the same relation strings.EqualFold uses.
func runeFoldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	if b < a {
		a, b = b, a
	}
	if b < utf8.RuneSelf {
		return 'A' <= a && a <= 'Z' && b == a+'a'-'A'
	}
	r := unicode.SimpleFold(a)
	for r != a && r < b {
		r = unicode.SimpleFold(r)
	}
	return r == b
}
