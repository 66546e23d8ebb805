package braille

import (
	"strings"
	"unicode"

	"github.com/npillmayer/kobraille/hangul"
	"github.com/samber/lo"
)

// word is a white-space delimited part of the input text, together with
// flags the rules consult.
type word struct {
	text        string
	runes       []rune
	allUpper    bool // every code-point is an upper case letter
	allAlpha    bool // every code-point is a Roman letter
	hasSyllable bool // contains a Hangul syllable
	firstLatin  bool // starts with a Roman letter
}

func scanWord(text string) word {
	runes := []rune(text)
	return word{
		text:        text,
		runes:       runes,
		allUpper:    lo.EveryBy(runes, unicode.IsUpper),
		allAlpha:    lo.EveryBy(runes, hangul.IsASCIILetter),
		hasSyllable: lo.SomeBy(runes, hangul.IsSyllable),
		firstLatin:  len(runes) > 0 && hangul.IsASCIILetter(runes[0]),
	}
}

// next returns the code-point following position j, if any.
func (w *word) next(j int) (rune, bool) {
	if j+1 < len(w.runes) {
		return w.runes[j+1], true
	}
	return 0, false
}

// document is the prescanned input text.
type document struct {
	words     []word
	hasKorean bool // any syllable or jamo anywhere in the text
}

func prescan(text string) *document {
	words := lo.Map(strings.Fields(text), func(f string, _ int) word {
		return scanWord(f)
	})
	return &document{
		words: words,
		hasKorean: lo.SomeBy(words, func(w word) bool {
			return lo.SomeBy(w.runes, hangul.IsHangul)
		}),
	}
}

// startsPhrase is true if word i is the first word of a phrase of
// capitalized words (rule 28). Word i must be all capitals, must not follow
// a word of Roman letters, and must be followed by at least two words of
// Roman letters.
func (doc *document) startsPhrase(i int) bool {
	if !doc.words[i].allUpper {
		return false
	}
	if i > 0 && doc.words[i-1].allAlpha {
		return false
	}
	if len(doc.words)-i < phraseMinWords {
		return false
	}
	return lo.EveryBy(doc.words[i+1:i+phraseMinWords], func(w word) bool {
		return w.allAlpha
	})
}

// continuesPhrase is true if a phrase of capitalized words extends beyond
// word i.
func (doc *document) continuesPhrase(i int) bool {
	return i+1 < len(doc.words) && doc.words[i+1].allAlpha
}

func (doc *document) isLast(i int) bool {
	return i == len(doc.words)-1
}
