package normalize

import "strings"

// POS is a four-level part-of-speech tuple (品詞, 細分類1..3).
type POS [4]string

// String renders the tuple in CSV feature order.
func (p POS) String() string {
	return strings.Join(p[:], ",")
}

var (
	posNoun      = POS{"名詞", "一般", Star, Star}
	posNumber    = POS{"名詞", "数", Star, Star}
	posVerb      = POS{"動詞", "自立", Star, Star}
	posAdjective = POS{"形容詞", "自立", Star, Star}
	posParticle  = POS{"助詞", "格助詞", "一般", Star}
	posAuxVerb   = POS{"助動詞", Star, Star, Star}
	posAdverb    = POS{"副詞", "一般", Star, Star}
	posConj      = POS{"接続詞", Star, Star, Star}
	posAdnominal = POS{"連体詞", Star, Star, Star}
	posIntj      = POS{"感動詞", Star, Star, Star}
	posPrefix    = POS{"接頭詞", "名詞接続", Star, Star}
	posSymbol    = POS{"記号", "一般", Star, Star}
	posFiller    = POS{"フィラー", Star, Star, Star}
	posOther     = POS{"その他", Star, Star, Star}
)

// posMap maps Sudachi (UniDic-style) coarse POS labels to IPADIC tuples.
var posMap = map[string]POS{
	// Noun-like
	"名詞":   posNoun,
	"代名詞":  posNoun,
	"形状詞":  posNoun,
	"接尾辞":  posNoun,
	"動詞":   posVerb,
	"形容詞":  posAdjective,
	"助詞":   posParticle,
	"助動詞":  posAuxVerb,
	"副詞":   posAdverb,
	"接続詞":  posConj,
	"連体詞":  posAdnominal,
	"感動詞":  posIntj,
	"接頭辞":  posPrefix,
	"接頭詞":  posPrefix,
	"記号":   posSymbol,
	"補助記号": posSymbol,
	"空白":   posSymbol,
	"フィラー": posFiller,
}

// numericPOS2 are second-level labels that mark a noun as a numeral.
var numericPOS2 = map[string]bool{
	"数詞": true,
	"数":  true,
}

// MapPOS maps a coarse POS label to its IPADIC tuple. Unknown or empty
// labels map to その他,*,*,*. Only the first level is consulted.
func MapPOS(pos1 string) POS {
	if p, ok := posMap[strings.TrimSpace(pos1)]; ok {
		return p
	}
	return posOther
}

// RefineNumeric turns a normalized noun tuple into 名詞,数,*,* when pos2
// marks it as a numeral. Other tuples are returned unchanged.
func RefineNumeric(p POS, pos2 string) POS {
	if p[0] == posNoun[0] && numericPOS2[strings.TrimSpace(pos2)] {
		return posNumber
	}
	return p
}
