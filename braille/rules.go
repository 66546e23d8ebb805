package braille

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/kobraille/hangul"
)

// Syllables written with their components in full, bypassing the default
// abbreviations:
//
//   팠      rule 14 [붙임]: ㅏ is written out
//   껐      rule 16 [붙임]: 꺼 plus final ㅆ, not 껏 plus ㅆ
//   겄      as 껐, would otherwise read as 것 plus ㅅ
//   셩 쎵 졍 쪙 쳥   rule 17 applies to 엉 only, not to 영
//
// Every member has a final consonant.
var literalSyllables = hashset.New('팠', '껐', '셩', '쎵', '졍', '쪙', '쳥', '겄')

// Rule 14: 나 다 마 바 자 카 타 파 하 are not abbreviated if the next
// syllable starts with a vowel.
var noAbbreviationBeforeVowel = hashset.New('나', '다', '마', '바', '자', '카', '타', '파', '하')

// Rule 44 [다만]: initials which could be mistaken for digits when following
// a number. The syllable 운 is affected as well.
var digitConfusableChoseong = hashset.New(
	hangul.ChoN, hangul.ChoD, hangul.ChoM, hangul.ChoK, hangul.ChoT, hangul.ChoP, hangul.ChoH,
)

const digitConfusableSyllable = '운'

// Rule 12: vowels which need a separator in front of 애.
var vowelsBeforeAe = hashset.New(hangul.JungYa, hangul.JungWa, hangul.JungU, hangul.JungWo)

// Rule 43: a digit following one of these does not start a new number.
var numberContinuation = hashset.New('.', ',')

// Rule 28: a run of capitals inside a word gets at most two indicators.
const maxUppercaseMarks = 2

// Rule 28: a phrase of capitalized words has at least three words.
const phraseMinWords = 3

// Bare jamo followed by one of these are list numbering (rule 9) or a
// letter name (…자).
const (
	numberingSuffix  = '.'
	letterNameSuffix = '자'
)

// needsSeparator checks rules 11 and 12: a vowel-final syllable followed by
// 예, and ㅑ ㅘ ㅜ ㅝ followed by 애, are separated by a hyphen-like cell.
func needsSeparator(s hangul.Syllable, next rune) bool {
	if s.HasFinal() {
		return false
	}
	n, ok := hangul.Decompose(next)
	if !ok || n.Cho != hangul.ChoNull {
		return false
	}
	if n.Jung == hangul.JungYe {
		tracer().Debugf("rule 11: separator before %c", next)
		return true
	}
	if n.Jung == hangul.JungAe && vowelsBeforeAe.Contains(s.Jung) {
		tracer().Debugf("rule 12: separator before %c", next)
		return true
	}
	return false
}
