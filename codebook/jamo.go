package codebook

import (
	"strconv"

	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/kobraille/hangul"
)

type cells = kobraille.Cells

// Initial consonants (rule 1). Tense consonants have no entry of their own;
// they are written as kobraille.DoubledConsonant followed by the base.
var choseongCells = map[int]kobraille.Cell{
	hangul.ChoG:    8,  // ⠈
	hangul.ChoN:    9,  // ⠉
	hangul.ChoD:    10, // ⠊
	hangul.ChoR:    16, // ⠐
	hangul.ChoM:    17, // ⠑
	hangul.ChoB:    24, // ⠘
	hangul.ChoS:    32, // ⠠
	hangul.ChoNull: 27, // ⠛
	hangul.ChoJ:    40, // ⠨
	hangul.ChoCh:   48, // ⠰
	hangul.ChoK:    11, // ⠋
	hangul.ChoT:    19, // ⠓
	hangul.ChoP:    25, // ⠙
	hangul.ChoH:    26, // ⠚
}

// Medial vowels (rule 4), indexed by jungseong.
var jungseongCells = [hangul.JungseongCount]cells{
	{35},     // ㅏ ⠣
	{23},     // ㅐ ⠗
	{28},     // ㅑ ⠜
	{28, 23}, // ㅒ ⠜⠗
	{14},     // ㅓ ⠎
	{29},     // ㅔ ⠝
	{49},     // ㅕ ⠱
	{12},     // ㅖ ⠌
	{37},     // ㅗ ⠥
	{39},     // ㅘ ⠧
	{39, 23}, // ㅙ ⠧⠗
	{61},     // ㅚ ⠽
	{44},     // ㅛ ⠬
	{13},     // ㅜ ⠍
	{15},     // ㅝ ⠏
	{15, 23}, // ㅞ ⠏⠗
	{13, 23}, // ㅟ ⠍⠗
	{41},     // ㅠ ⠩
	{42},     // ㅡ ⠪
	{58},     // ㅢ ⠺
	{21},     // ㅣ ⠕
}

// Final consonants (rules 2, 3), indexed by jongseong. Index 0 is "no final".
var jongseongCells = [hangul.JongseongCount]cells{
	nil,      // –
	{1},      // ㄱ ⠁
	{1, 1},   // ㄲ ⠁⠁
	{1, 4},   // ㄳ ⠁⠄
	{18},     // ㄴ ⠒
	{18, 5},  // ㄵ ⠒⠅
	{18, 52}, // ㄶ ⠒⠴
	{20},     // ㄷ ⠔
	{2},      // ㄹ ⠂
	{2, 1},   // ㄺ ⠂⠁
	{2, 34},  // ㄻ ⠂⠢
	{2, 3},   // ㄼ ⠂⠃
	{2, 4},   // ㄽ ⠂⠄
	{2, 38},  // ㄾ ⠂⠦
	{2, 50},  // ㄿ ⠂⠲
	{2, 52},  // ㅀ ⠂⠴
	{34},     // ㅁ ⠢
	{3},      // ㅂ ⠃
	{3, 4},   // ㅄ ⠃⠄
	{4},      // ㅅ ⠄
	{12},     // ㅆ ⠌ (rule 16)
	{54},     // ㅇ ⠶
	{5},      // ㅈ ⠅
	{6},      // ㅊ ⠆
	{22},     // ㅋ ⠖
	{38},     // ㅌ ⠦
	{50},     // ㅍ ⠲
	{52},     // ㅎ ⠴
}

// Choseong returns the cell of a plain initial consonant.
func Choseong(cho int) (kobraille.Cells, error) {
	if cho < 0 || cho >= hangul.ChoseongCount {
		return nil, &kobraille.DecompositionError{Component: "choseong", Index: cho}
	}
	c, ok := choseongCells[cho]
	if !ok {
		return nil, &kobraille.LookupError{Table: "choseong", Key: jamoKey(hangul.ChoseongJamo(cho))}
	}
	return cells{c}, nil
}

// Jungseong returns the cells of a medial vowel.
func Jungseong(jung int) (kobraille.Cells, error) {
	if jung < 0 || jung >= hangul.JungseongCount {
		return nil, &kobraille.DecompositionError{Component: "jungseong", Index: jung}
	}
	return append(cells(nil), jungseongCells[jung]...), nil
}

// Jongseong returns the cells of a final consonant. There are no cells for
// hangul.JongNone.
func Jongseong(jong int) (kobraille.Cells, error) {
	if jong < 0 || jong >= hangul.JongseongCount {
		return nil, &kobraille.DecompositionError{Component: "jongseong", Index: jong}
	}
	if jong == hangul.JongNone {
		return nil, &kobraille.LookupError{Table: "jongseong", Key: "none"}
	}
	return append(cells(nil), jongseongCells[jong]...), nil
}

// Jamo returns the cells of a bare jamo standing on its own or attached to
// a word (rules 8, 10), without the indicator in front of it. Consonants
// are written in their final form, tense consonants as doubling indicator
// plus the final form of their base. Vowels are written in their medial
// form.
func Jamo(jamo rune) (kobraille.Cells, error) {
	if jung, ok := hangul.JungseongOf(jamo); ok {
		return Jungseong(jung)
	}
	if cho, ok := hangul.ChoseongOf(jamo); ok {
		if base, doubled := hangul.SplitDoubled(cho); doubled {
			bj, _ := hangul.ChoseongJamo(base)
			jong, _ := hangul.JongseongOf(bj)
			fin, err := Jongseong(jong)
			if err != nil {
				return nil, err
			}
			return append(cells{kobraille.DoubledConsonant}, fin...), nil
		}
	}
	if jong, ok := hangul.JongseongOf(jamo); ok {
		return Jongseong(jong)
	}
	return nil, &kobraille.LookupError{Table: "jamo", Key: string(jamo)}
}

// JamoFinal returns the final-consonant form of a bare jamo, as used for
// consonants numbering list items (rule 9). Vowels have no final form and
// are written in their medial form. ㄸ, ㅃ, ㅉ have no final form and
// result in a *kobraille.LookupError.
func JamoFinal(jamo rune) (kobraille.Cells, error) {
	if jung, ok := hangul.JungseongOf(jamo); ok {
		return Jungseong(jung)
	}
	if jong, ok := hangul.JongseongOf(jamo); ok {
		return Jongseong(jong)
	}
	return nil, &kobraille.LookupError{Table: "jongseong", Key: string(jamo)}
}

func jamoKey(r rune, ok bool) string {
	if !ok {
		return "?"
	}
	return strconv.QuoteRuneToGraphic(r)
}
