// Package normalize canonicalizes SudachiDict part-of-speech tags and
// inflection vocabularies into the IPADIC-era vocabulary expected by
// Vibrato and jpreprocess.
//
// Every function is pure and total: values that cannot be mapped degrade to
// the "*" sentinel (or the generic その他 POS tuple) instead of failing.
// CType and CForm additionally report whether information was discarded so
// callers can count coverage loss.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"
	"unicode"
)

// Star is the "unspecified" sentinel used by MeCab-style feature columns.
const Star = "*"

// ideographicSpace is the full-width space used in Japanese text.
const ideographicSpace = '　'

// TextOrStar trims surrounding whitespace and maps an empty result to Star.
func TextOrStar(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Star
	}
	return s
}

// StripSpaces removes every whitespace rune, including U+3000, and performs
// no other transformation.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ideographicSpace {
			return -1
		}
		return r
	}, s)
}

// prepare applies the trim/strip preprocessing shared by CType and CForm.
// It returns the trimmed source (for fallback accounting) and the
// space-stripped value used for matching.
func prepare(s string) (src, canonical string) {
	src = TextOrStar(s)
	return src, StripSpaces(src)
}

// resolve membership-tests canonical against allowed. On a miss it returns
// Star, reporting a fallback unless the source already was Star.
func resolve(src, canonical string, allowed map[string]struct{}) (string, bool) {
	if _, ok := allowed[canonical]; ok {
		return canonical, false
	}
	return Star, src != Star
}
