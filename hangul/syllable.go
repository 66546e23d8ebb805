package hangul

import "fmt"

// Code-point range of precomposed modern Hangul syllables.
const (
	SyllableBase rune = 0xAC00
	SyllableLast rune = 0xD7A3
)

// Compatibility jamo range.
const (
	JamoFirst rune = 0x3131
	JamoLast  rune = 0x3163
)

// Syllable is a decomposed Hangul syllable block.
type Syllable struct {
	Cho  int // 0…18
	Jung int // 0…20
	Jong int // 0…27, JongNone for open syllables
}

// HasFinal is true if the syllable carries a final consonant.
func (s Syllable) HasFinal() bool {
	return s.Jong != JongNone
}

// Rune re-composes the syllable.
func (s Syllable) Rune() rune {
	r, _ := Compose(s.Cho, s.Jung, s.Jong)
	return r
}

func (s Syllable) String() string {
	cho, _ := ChoseongJamo(s.Cho)
	jung, _ := JungseongJamo(s.Jung)
	if jong, ok := JongseongJamo(s.Jong); ok {
		return fmt.Sprintf("%c+%c+%c", cho, jung, jong)
	}
	return fmt.Sprintf("%c+%c", cho, jung)
}

// IsSyllable is true for precomposed Hangul syllables U+AC00…U+D7A3.
func IsSyllable(r rune) bool {
	return r >= SyllableBase && r <= SyllableLast
}

// IsJamo is true for Hangul compatibility jamo U+3131…U+3163.
func IsJamo(r rune) bool {
	return r >= JamoFirst && r <= JamoLast
}

// IsHangul is true for syllables and compatibility jamo.
func IsHangul(r rune) bool {
	return IsSyllable(r) || IsJamo(r)
}

// Decompose splits a syllable into its components. It returns false if r
// is not a precomposed syllable.
func Decompose(r rune) (Syllable, bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}
	index := int(r - SyllableBase)
	return Syllable{
		Cho:  index / (JongseongCount * JungseongCount),
		Jung: (index / JongseongCount) % JungseongCount,
		Jong: index % JongseongCount,
	}, true
}

// Compose builds a syllable from component indices.
func Compose(cho, jung, jong int) (rune, bool) {
	if cho < 0 || cho >= ChoseongCount || jung < 0 || jung >= JungseongCount ||
		jong < 0 || jong >= JongseongCount {
		return 0, false
	}
	return SyllableBase + rune((cho*JungseongCount+jung)*JongseongCount+jong), true
}

// HasNullInitial is true if r is a syllable starting with the silent
// initial ㅇ, i.e. a syllable which starts with its vowel.
func HasNullInitial(r rune) bool {
	s, ok := Decompose(r)
	return ok && s.Cho == ChoNull
}
