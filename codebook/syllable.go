package codebook

import (
	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/kobraille/hangul"
)

// Abbreviations for an initial consonant followed by ㅏ (rule 13): 가 나 다
// 마 바 사 자 카 타 파 하. Keyed by plain choseong.
var abbreviationsWithA = map[int]kobraille.Cell{
	hangul.ChoG: 43, // 가 ⠫
	hangul.ChoN: 9,  // 나 ⠉
	hangul.ChoD: 10, // 다 ⠊
	hangul.ChoM: 17, // 마 ⠑
	hangul.ChoB: 24, // 바 ⠘
	hangul.ChoS: 7,  // 사 ⠇
	hangul.ChoJ: 40, // 자 ⠨
	hangul.ChoK: 11, // 카 ⠋
	hangul.ChoT: 19, // 타 ⠓
	hangul.ChoP: 25, // 파 ⠙
	hangul.ChoH: 26, // 하 ⠚
}

type rhyme struct {
	jung, jong int
}

// Abbreviations for a vowel followed by a final consonant (rule 15).
var rhymeAbbreviations = map[rhyme]kobraille.Cell{
	{hangul.JungEo, hangul.JongG}:   57, // 억 ⠹
	{hangul.JungEo, hangul.JongN}:   62, // 언 ⠾
	{hangul.JungEo, hangul.JongL}:   30, // 얼 ⠞
	{hangul.JungYeo, hangul.JongN}:  33, // 연 ⠡
	{hangul.JungYeo, hangul.JongL}:  51, // 열 ⠳
	{hangul.JungYeo, hangul.JongNg}: 59, // 영 ⠻
	{hangul.JungO, hangul.JongG}:    45, // 옥 ⠭
	{hangul.JungO, hangul.JongN}:    55, // 온 ⠷
	{hangul.JungO, hangul.JongNg}:   63, // 옹 ⠿
	{hangul.JungU, hangul.JongN}:    27, // 운 ⠛
	{hangul.JungU, hangul.JongL}:    47, // 울 ⠯
	{hangul.JungEu, hangul.JongN}:   53, // 은 ⠵
	{hangul.JungEu, hangul.JongL}:   46, // 을 ⠮
	{hangul.JungI, hangul.JongN}:    31, // 인 ⠟
}

// 것 is abbreviated as a whole (rule 16).
var geotCells = cells{56, 14} // ⠸⠎

// Sibilants which write ㅓ+ㅇ with the abbreviation of 영 (rule 17):
// 성 썽 정 쩡 청.
var sibilantChoseong = map[int]bool{
	hangul.ChoS:  true,
	hangul.ChoJ:  true,
	hangul.ChoCh: true,
}

// Syllable returns the cells of a complete syllable, applying all the
// syllable-level abbreviations of the orthography. This is the default
// encoding for syllables; context-dependent exceptions are the business of
// the caller.
//
//   - 초성 ㅇ is not written (rule 3)
//   - tense initials are written with a doubling indicator (rule 1)
//   - 가 나 다 마 바 사 자 카 타 파 하 are abbreviated (rule 13)
//   - 억 언 얼 연 열 영 옥 온 옹 운 울 은 을 인 are abbreviated (rule 15),
//     also as first part of a compound final, e.g. 걲 = ㄱ+억+ㄱ, 끊 = ㄲ+은+ㅎ
//   - 것 and 껏 are abbreviated (rule 16)
//   - 성 썽 정 쩡 청 use the abbreviation of 영 (rule 17)
func Syllable(cho, jung, jong int) (kobraille.Cells, error) {
	if cho < 0 || cho >= hangul.ChoseongCount {
		return nil, &kobraille.DecompositionError{Component: "choseong", Index: cho}
	}
	if jung < 0 || jung >= hangul.JungseongCount {
		return nil, &kobraille.DecompositionError{Component: "jungseong", Index: jung}
	}
	if jong < 0 || jong >= hangul.JongseongCount {
		return nil, &kobraille.DecompositionError{Component: "jongseong", Index: jong}
	}
	out := make(kobraille.Cells, 0, 4)
	base, doubled := hangul.SplitDoubled(cho)
	if doubled {
		out = append(out, kobraille.DoubledConsonant)
	}
	if base == hangul.ChoG && jung == hangul.JungEo && jong == hangul.JongS {
		tracer().Debugf("abbreviation 것 for %s", syllableString(cho, jung, jong))
		return append(out, geotCells...), nil
	}
	if jung == hangul.JungA {
		if c, ok := abbreviationsWithA[base]; ok {
			out = append(out, c)
			return appendFinal(out, jong)
		}
	}
	if base != hangul.ChoNull {
		c, err := Choseong(base)
		if err != nil {
			return nil, err
		}
		out = append(out, c...)
	}
	if sibilantChoseong[base] && jung == hangul.JungEo && jong == hangul.JongNg {
		return append(out, rhymeAbbreviations[rhyme{hangul.JungYeo, hangul.JongNg}]), nil
	}
	if jong != hangul.JongNone {
		first, rest := hangul.SplitFinal(jong)
		if c, ok := rhymeAbbreviations[rhyme{jung, first}]; ok {
			out = append(out, c)
			return appendFinal(out, rest)
		}
	}
	v, err := Jungseong(jung)
	if err != nil {
		return nil, err
	}
	out = append(out, v...)
	return appendFinal(out, jong)
}

// appendFinal appends the cells for a final consonant, if any.
func appendFinal(out kobraille.Cells, jong int) (kobraille.Cells, error) {
	if jong == hangul.JongNone {
		return out, nil
	}
	f, err := Jongseong(jong)
	if err != nil {
		return nil, err
	}
	return append(out, f...), nil
}

func syllableString(cho, jung, jong int) string {
	return hangul.Syllable{Cho: cho, Jung: jung, Jong: jong}.String()
}
