package normalize

import "strings"

// Canonical spellings of the サ変 classes; the separator is U+2212.
const (
	suru = "サ変・\u2212スル"
	zuru = "サ変・\u2212ズル"
)

// rewrite is a literal substring substitution.
type rewrite struct {
	from string
	to   string
}

// dashReplacer maps ASCII hyphen, full-width hyphen and minus sign to the
// katakana middle dot that separates IPADIC inflection-type segments.
var dashReplacer = strings.NewReplacer(
	"-", "・",
	"\uff0d", "・", // －
	"\u2212", "・", // −
)

// legacyCTypes are whole-value spellings replaced before the substring pass.
var legacyCTypes = map[string]string{
	"五段・ワア行": "五段・ワ行ウ音便",
}

// suruZuruRewrites canonicalizes alternate renderings of the サ変 スル/ズル
// classes. Applied in order; dashReplacer has already turned U+2212 into ・,
// which is why the doubled separator form is listed.
var suruZuruRewrites = []rewrite{
	{"サ変・スル", suru},
	{"サ変・ズル", zuru},
	{"サ変・\uff70スル", suru}, // half-width prolonged mark ｰ
	{"サ変・\uff70ズル", zuru},
	{"サ変・\u30fcスル", suru}, // prolonged mark ー
	{"サ変・\u30fcズル", zuru},
	{"サ変・・スル", suru},
	{"サ変・・ズル", zuru},
}

// CType canonicalizes a Sudachi inflection type (活用型) such as
// "五段-カ行" into the IPADIC spelling "五段・カ行".
//
// Values outside the IPADIC vocabulary map to Star; fallback is true when
// that discarded a value other than Star itself.
func CType(s string) (canonical string, fallback bool) {
	src, canonical := prepare(s)
	canonical = dashReplacer.Replace(canonical)

	if legacy, ok := legacyCTypes[canonical]; ok {
		canonical = legacy
	}
	for _, rw := range suruZuruRewrites {
		canonical = strings.ReplaceAll(canonical, rw.from, rw.to)
	}

	return resolve(src, canonical, allowedCTypes)
}
