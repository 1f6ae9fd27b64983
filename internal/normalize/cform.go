package normalize

import "strings"

// cformPrefixes collapses Sudachi's subdivided inflection forms (活用形),
// e.g. "連用形-促音便", onto the coarse IPADIC form. First match wins.
var cformPrefixes = []rewrite{
	{"終止形", "基本形"},
	{"連体形", "基本形"},
	{"連用形", "連用形"},
	{"未然形", "未然形"},
	{"仮定形", "仮定形"},
	{"命令形", "命令ｙｏ"},
}

// cformExact maps whole values that have a direct IPADIC counterpart.
var cformExact = map[string]string{
	"終止連体形": "基本形",
	"意志推量形": "未然ウ接続",
}

// CForm canonicalizes a Sudachi inflection form into the IPADIC vocabulary.
// Unknown forms map to Star with the same fallback rule as CType.
func CForm(s string) (canonical string, fallback bool) {
	src, canonical := prepare(s)
	canonical = collapseCForm(canonical)
	return resolve(src, canonical, allowedCForms)
}

func collapseCForm(s string) string {
	if exact, ok := cformExact[s]; ok {
		return exact
	}
	for _, rw := range cformPrefixes {
		if strings.HasPrefix(s, rw.from) {
			return rw.to
		}
	}
	return s
}
