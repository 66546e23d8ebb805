package braille

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/kobraille/hangul"
)

// runState is carried from code-point to code-point and from word to word.
// inDigits and upperMarked are reset at the start of every word, inLatin
// and inPhrase live across word boundaries.
type runState struct {
	inDigits    bool // number sign has been written for the current run of digits
	inLatin     bool // LatinOpen has been written and not yet closed
	upperMarked bool // capital indicators have been written for the current run of capitals
	inPhrase    bool // inside a phrase of capitalized words
}

func (st runState) enterWord() runState {
	st.inDigits = false
	st.upperMarked = false
	return st
}

// decay updates the state after code-point r has been transcribed.
func (st runState) decay(r rune) runState {
	if !hangul.IsASCIIDigit(r) {
		st.inDigits = false
	}
	if hangul.IsASCIILetter(r) && !unicode.IsUpper(r) {
		st.upperMarked = false
	}
	return st
}

func (st runState) String() string {
	return fmt.Sprintf("[digits=%v latin=%v upper=%v phrase=%v]",
		st.inDigits, st.inLatin, st.upperMarked, st.inPhrase)
}
