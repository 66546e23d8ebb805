package hangul

// Component counts of the modern Hangul syllable block.
const (
	ChoseongCount  = 19
	JungseongCount = 21
	JongseongCount = 28 // including "no final consonant"
)

// Choseong indices of the syllable decomposition.
const (
	ChoG  = iota // ㄱ
	ChoGG        // ㄲ
	ChoN         // ㄴ
	ChoD         // ㄷ
	ChoDD        // ㄸ
	ChoR         // ㄹ
	ChoM         // ㅁ
	ChoB         // ㅂ
	ChoBB        // ㅃ
	ChoS         // ㅅ
	ChoSS        // ㅆ
	ChoNull      // ㅇ
	ChoJ         // ㅈ
	ChoJJ        // ㅉ
	ChoCh        // ㅊ
	ChoK         // ㅋ
	ChoT         // ㅌ
	ChoP         // ㅍ
	ChoH         // ㅎ
)

// Jungseong indices of the syllable decomposition.
const (
	JungA   = iota // ㅏ
	JungAe         // ㅐ
	JungYa         // ㅑ
	JungYae        // ㅒ
	JungEo         // ㅓ
	JungE          // ㅔ
	JungYeo        // ㅕ
	JungYe         // ㅖ
	JungO          // ㅗ
	JungWa         // ㅘ
	JungWae        // ㅙ
	JungOe         // ㅚ
	JungYo         // ㅛ
	JungU          // ㅜ
	JungWo         // ㅝ
	JungWe         // ㅞ
	JungWi         // ㅟ
	JungYu         // ㅠ
	JungEu         // ㅡ
	JungUi         // ㅢ
	JungI          // ㅣ
)

// Jongseong indices of the syllable decomposition. JongNone is not a
// consonant but flags an open syllable.
const (
	JongNone = iota
	JongG    // ㄱ
	JongGG   // ㄲ
	JongGS   // ㄳ
	JongN    // ㄴ
	JongNJ   // ㄵ
	JongNH   // ㄶ
	JongD    // ㄷ
	JongL    // ㄹ
	JongLG   // ㄺ
	JongLM   // ㄻ
	JongLB   // ㄼ
	JongLS   // ㄽ
	JongLT   // ㄾ
	JongLP   // ㄿ
	JongLH   // ㅀ
	JongM    // ㅁ
	JongB    // ㅂ
	JongBS   // ㅄ
	JongS    // ㅅ
	JongSS   // ㅆ
	JongNg   // ㅇ
	JongJ    // ㅈ
	JongCh   // ㅊ
	JongK    // ㅋ
	JongT    // ㅌ
	JongP    // ㅍ
	JongH    // ㅎ
)

// Compatibility jamo for each component index.
var (
	choseongJamo = [ChoseongCount]rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	jungseongJamo = [JungseongCount]rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ',
		'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
	}
	jongseongJamo = [JongseongCount]rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// Reverse lookup of the tables above, filled in init().
var (
	choseongIndex  = make(map[rune]int, ChoseongCount)
	jungseongIndex = make(map[rune]int, JungseongCount)
	jongseongIndex = make(map[rune]int, JongseongCount)
)

func init() {
	for i, r := range choseongJamo {
		choseongIndex[r] = i
	}
	for i, r := range jungseongJamo {
		jungseongIndex[r] = i
	}
	for i, r := range jongseongJamo {
		if r != 0 {
			jongseongIndex[r] = i
		}
	}
}

// ChoseongJamo returns the compatibility jamo for a choseong index.
func ChoseongJamo(cho int) (rune, bool) {
	if cho < 0 || cho >= ChoseongCount {
		return 0, false
	}
	return choseongJamo[cho], true
}

// JungseongJamo returns the compatibility jamo for a jungseong index.
func JungseongJamo(jung int) (rune, bool) {
	if jung < 0 || jung >= JungseongCount {
		return 0, false
	}
	return jungseongJamo[jung], true
}

// JongseongJamo returns the compatibility jamo for a jongseong index.
// JongNone has no jamo.
func JongseongJamo(jong int) (rune, bool) {
	if jong <= JongNone || jong >= JongseongCount {
		return 0, false
	}
	return jongseongJamo[jong], true
}

// ChoseongOf returns the choseong index of a compatibility jamo, if the
// jamo may start a syllable.
func ChoseongOf(jamo rune) (int, bool) {
	i, ok := choseongIndex[jamo]
	return i, ok
}

// JungseongOf returns the jungseong index of a compatibility vowel jamo.
func JungseongOf(jamo rune) (int, bool) {
	i, ok := jungseongIndex[jamo]
	return i, ok
}

// JongseongOf returns the jongseong index of a compatibility jamo, if the
// jamo may end a syllable. ㄸ, ㅃ and ㅉ may not.
func JongseongOf(jamo rune) (int, bool) {
	i, ok := jongseongIndex[jamo]
	return i, ok
}

// IsVowelJamo is true for compatibility vowel jamo ㅏ…ㅣ.
func IsVowelJamo(r rune) bool {
	return r >= 0x314F && r <= 0x3163
}

// IsConsonantJamo is true for compatibility consonant jamo ㄱ…ㅎ.
func IsConsonantJamo(r rune) bool {
	return r >= 0x3131 && r <= 0x314E
}

// Tense (doubled) initial consonants and their plain counterparts.
var doubledChoseong = map[int]int{
	ChoGG: ChoG,
	ChoDD: ChoD,
	ChoBB: ChoB,
	ChoSS: ChoS,
	ChoJJ: ChoJ,
}

// SplitDoubled splits a choseong index into its base consonant and a flag
// telling whether the consonant is tense, i.e. written with a doubling
// indicator in front of the base. ㄲ splits into (ㄱ, true), ㄴ into
// (ㄴ, false).
func SplitDoubled(cho int) (base int, doubled bool) {
	if b, ok := doubledChoseong[cho]; ok {
		return b, true
	}
	return cho, false
}

// Compound final consonants and their first and second components.
// ㅆ is not listed, as Braille has a cell of its own for it.
var compoundJongseong = map[int][2]int{
	JongGG: {JongG, JongG},
	JongGS: {JongG, JongS},
	JongNJ: {JongN, JongJ},
	JongNH: {JongN, JongH},
	JongLG: {JongL, JongG},
	JongLM: {JongL, JongM},
	JongLB: {JongL, JongB},
	JongLS: {JongL, JongS},
	JongLT: {JongL, JongT},
	JongLP: {JongL, JongP},
	JongLH: {JongL, JongH},
	JongBS: {JongB, JongS},
}

// SplitFinal splits a jongseong index into its first consonant and the rest.
// For simple finals rest is JongNone.
func SplitFinal(jong int) (first, rest int) {
	if parts, ok := compoundJongseong[jong]; ok {
		return parts[0], parts[1]
	}
	return jong, JongNone
}
