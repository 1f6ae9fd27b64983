package normalize

import (
	"maps"
	"slices"
)

// allowedCTypes is the IPADIC inflection-type vocabulary accepted by
// jpreprocess. Never mutated after package initialization.
var allowedCTypes = newSet(
	"*",
	"ラ変",
	"不変化型",
	"カ変・クル",
	"カ変・来ル",
	"サ変・スル",
	"サ変・\u2212スル",
	"サ変・\u2212ズル",
	"一段",
	"一段・病メル",
	"一段・クレル",
	"一段・得ル",
	"一段・ル",
	"下二・ア行",
	"下二・カ行",
	"下二・ガ行",
	"下二・サ行",
	"下二・ザ行",
	"下二・タ行",
	"下二・ダ行",
	"下二・ナ行",
	"下二・ハ行",
	"下二・バ行",
	"下二・マ行",
	"下二・ヤ行",
	"下二・ラ行",
	"下二・ワ行",
	"下二・得",
	"形容詞・アウオ段",
	"形容詞・イ段",
	"形容詞・イイ",
	"五段・カ行イ音便",
	"五段・カ行促音便",
	"五段・カ行促音便ユク",
	"五段・ガ行",
	"五段・サ行",
	"五段・タ行",
	"五段・ナ行",
	"五段・バ行",
	"五段・マ行",
	"五段・ラ行",
	"五段・ラ行アル",
	"五段・ラ行特殊",
	"五段・ワ行ウ音便",
	"五段・ワ行促音便",
	"四段・カ行",
	"四段・ガ行",
	"四段・サ行",
	"四段・タ行",
	"四段・バ行",
	"四段・マ行",
	"四段・ラ行",
	"四段・ハ行",
	"上二・ダ行",
	"上二・ハ行",
	"特殊・ナイ",
	"特殊・タイ",
	"特殊・タ",
	"特殊・ダ",
	"特殊・デス",
	"特殊・ドス",
	"特殊・ジャ",
	"特殊・マス",
	"特殊・ヌ",
	"特殊・ヤ",
	"文語・ベシ",
	"文語・ゴトシ",
	"文語・ナリ",
	"文語・マジ",
	"文語・シム",
	"文語・キ",
	"文語・ケリ",
	"文語・ル",
	"文語・リ",
)

// allowedCForms is the IPADIC inflection-form vocabulary accepted by
// jpreprocess. Never mutated after package initialization.
var allowedCForms = newSet(
	"*",
	"ガル接続",
	"音便基本形",
	"仮定形",
	"仮定縮約１",
	"仮定縮約２",
	"基本形",
	"基本形-促音便",
	"現代基本形",
	"体言接続",
	"体言接続特殊",
	"体言接続特殊２",
	"文語基本形",
	"未然ウ接続",
	"未然ヌ接続",
	"未然レル接続",
	"未然形",
	"未然特殊",
	"命令ｅ",
	"命令ｉ",
	"命令ｒｏ",
	"命令ｙｏ",
	"連用ゴザイ接続",
	"連用タ接続",
	"連用テ接続",
	"連用デ接続",
	"連用ニ接続",
	"連用形",
)

func newSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsAllowedCType reports whether s is a canonical inflection type.
func IsAllowedCType(s string) bool {
	_, ok := allowedCTypes[s]
	return ok
}

// IsAllowedCForm reports whether s is a canonical inflection form.
func IsAllowedCForm(s string) bool {
	_, ok := allowedCForms[s]
	return ok
}

// AllowedCTypes returns a sorted copy of the inflection-type vocabulary.
func AllowedCTypes() []string {
	return slices.Sorted(maps.Keys(allowedCTypes))
}

// AllowedCForms returns a sorted copy of the inflection-form vocabulary.
func AllowedCForms() []string {
	return slices.Sorted(maps.Keys(allowedCForms))
}
