package braille

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/kobraille/codebook"
	"github.com/npillmayer/kobraille/hangul"
	"github.com/npillmayer/kobraille/shortcut"
	"github.com/samber/lo"
)

// Encoder transcribes text to Braille cells. An Encoder holds no state
// between calls and may be used by multiple goroutines.
type Encoder struct {
	shortcuts *shortcut.Matcher
}

// NewEncoder creates an encoder using a dictionary of word abbreviations.
// If shortcuts is nil, no word abbreviations are applied.
func NewEncoder(shortcuts *shortcut.Matcher) *Encoder {
	return &Encoder{shortcuts: shortcuts}
}

// Encode transcribes a text to Braille cells. Text is NFC-normalized and
// full-width forms are folded to their narrow counterparts before
// transcription.
func (enc *Encoder) Encode(text string) (kobraille.Cells, error) {
	buf := kobraille.BorrowBuffer()
	defer buf.Release()
	if err := enc.transcribe(normalize(text), buf); err != nil {
		return nil, err
	}
	return buf.Cells(), nil
}

// transcribe is a full run over a text, with its own prescan and a fresh
// run state. The remainder of an abbreviated word is transcribed by a run of
// its own.
func (enc *Encoder) transcribe(text string, buf *kobraille.Buffer) error {
	doc := prescan(text)
	tracer().Debugf("transcribing %d words, Korean=%v", len(doc.words), doc.hasKorean)
	var st runState
	var err error
	for i := range doc.words {
		if st, err = enc.word(doc, i, st, buf); err != nil {
			return err
		}
	}
	return nil
}

func (enc *Encoder) word(doc *document, i int, st runState, buf *kobraille.Buffer) (runState, error) {
	w := &doc.words[i]
	st = st.enterWord()
	if entry, rest, ok := enc.shortcuts.Match(w.text); ok {
		if err := enc.abbreviated(w.text, entry, rest, buf); err != nil {
			return st, err
		}
	} else {
		if doc.hasKorean && !st.inLatin && w.firstLatin {
			tracer().Debugf("rule 31: Roman letters start at %q", w.text)
			buf.Append(kobraille.LatinOpen)
		}
		if w.allUpper && !st.inPhrase {
			if doc.startsPhrase(i) {
				tracer().Debugf("rule 28: phrase of capitals starts at %q", w.text)
				st.inPhrase = true
				buf.Append(kobraille.Uppercase, kobraille.Uppercase, kobraille.Uppercase)
			} else if len(w.runes) >= 2 {
				buf.Append(kobraille.Uppercase, kobraille.Uppercase)
			}
		}
		var err error
		for j := range w.runes {
			if st, err = enc.codepoint(doc, w, j, st, buf); err != nil {
				return st, err
			}
		}
	}
	if st.inPhrase && !doc.continuesPhrase(i) {
		buf.Append(kobraille.Uppercase, kobraille.UppercaseEnd)
		st.inPhrase = false
	}
	if !doc.isLast(i) {
		if doc.hasKorean && !doc.words[i+1].firstLatin {
			if st.inLatin {
				buf.Append(kobraille.LatinClose)
			}
			st.inLatin = false
		}
		buf.Append(kobraille.Blank)
	}
	return st, nil
}

// abbreviated writes the cells of a word starting with a dictionary entry.
// Further entries at the start of the remainder are written in turn; what is
// left after the last one is transcribed as a text of its own.
func (enc *Encoder) abbreviated(text string, entry shortcut.Entry, rest string, buf *kobraille.Buffer) error {
	for {
		if len(rest) >= len(text) {
			return &kobraille.InternalError{
				Msg: fmt.Sprintf("abbreviation %q does not shorten word %q", entry.Word, text),
			}
		}
		buf.Append(entry.Cells...)
		if rest == "" {
			return nil
		}
		text = rest
		var ok bool
		if entry, rest, ok = enc.shortcuts.Match(text); !ok {
			return enc.transcribe(text, buf)
		}
	}
}

// codepoint transcribes the code-point at position j of word w.
func (enc *Encoder) codepoint(doc *document, w *word, j int, st runState, buf *kobraille.Buffer) (runState, error) {
	r := w.runes[j]
	cat, err := hangul.Classify(r)
	if err != nil {
		return st, err
	}
	if doc.hasKorean && j > 0 && !hangul.IsASCIILetter(r) {
		if st.inLatin {
			buf.Append(kobraille.LatinClose)
		}
		st.inLatin = false
	}
	var cells kobraille.Cells
	switch cat.Class {
	case hangul.SyllableClass:
		cells, err = syllable(w, j, cat.Syllable, st.inDigits)
	case hangul.JamoClass:
		cells, err = jamo(w, j)
	case hangul.LatinClass:
		if (!w.allUpper || len(w.runes) < 2) && !st.upperMarked && cat.Upper {
			st.upperMarked = true
			buf.Append(uppercaseMarks(w, j)...)
		}
		st.inLatin = true
		cells, err = codebook.Latin(r)
	case hangul.DigitClass:
		if !st.inDigits {
			if j == 0 || !numberContinuation.Contains(w.runes[j-1]) {
				buf.Append(kobraille.NumberSign)
			}
			st.inDigits = true
		}
		cells, err = codebook.Digit(cat.Digit)
	case hangul.SymbolClass:
		if next, ok := w.next(j); ok && r == ',' && st.inDigits && hangul.IsASCIIDigit(next) {
			cells = kobraille.Cells{kobraille.ThousandsSeparator}
		} else {
			cells, err = codebook.Symbol(r)
		}
	case hangul.SpaceClass:
		cells = kobraille.Cells{kobraille.Blank}
	case hangul.MathSymbolClass:
		cells, err = mathSymbol(w, j)
	default:
		err = &kobraille.InternalError{Msg: fmt.Sprintf("%#U classified as %s", r, cat.Class)}
	}
	if err != nil {
		tracer().Errorf("transcribing %q at %d: %v", w.text, j, err)
		return st, err
	}
	buf.Append(cells...)
	return st.decay(r), nil
}

// syllable transcribes a Hangul syllable, including a blank in front of it
// (rule 44) and a separator after it (rules 11, 12).
func syllable(w *word, j int, s hangul.Syllable, afterDigits bool) (kobraille.Cells, error) {
	r := w.runes[j]
	var out kobraille.Cells
	if afterDigits && (digitConfusableChoseong.Contains(s.Cho) || r == digitConfusableSyllable) {
		tracer().Debugf("rule 44: blank between number and %c", r)
		out = append(out, kobraille.Blank)
	}
	next, hasNext := w.next(j)
	var cells kobraille.Cells
	var err error
	switch {
	case literalSyllables.Contains(r):
		cells, err = literalSyllable(s)
	case hasNext && noAbbreviationBeforeVowel.Contains(r) && hangul.HasNullInitial(next):
		tracer().Debugf("rule 14: %c not abbreviated before %c", r, next)
		cells, err = initialAndVowel(s.Cho, s.Jung)
	default:
		cells, err = codebook.Syllable(s.Cho, s.Jung, s.Jong)
	}
	if err != nil {
		return nil, err
	}
	out = append(out, cells...)
	if hasNext && needsSeparator(s, next) {
		out = append(out, kobraille.Separator)
	}
	return out, nil
}

// literalSyllable writes every component of a syllable without
// abbreviations.
func literalSyllable(s hangul.Syllable) (kobraille.Cells, error) {
	if !s.HasFinal() {
		return nil, &kobraille.InternalError{
			Msg: fmt.Sprintf("literal syllable %c without final consonant", s.Rune()),
		}
	}
	base, doubled := hangul.SplitDoubled(s.Cho)
	var out kobraille.Cells
	if doubled {
		out = append(out, kobraille.DoubledConsonant)
	}
	cells, err := initialAndVowel(base, s.Jung)
	if err != nil {
		return nil, err
	}
	out = append(out, cells...)
	fin, err := codebook.Jongseong(s.Jong)
	if err != nil {
		return nil, err
	}
	return append(out, fin...), nil
}

func initialAndVowel(cho, jung int) (kobraille.Cells, error) {
	c, err := codebook.Choseong(cho)
	if err != nil {
		return nil, err
	}
	v, err := codebook.Jungseong(jung)
	if err != nil {
		return nil, err
	}
	return append(c, v...), nil
}

// jamo transcribes a bare jamo. Which indicator precedes it and whether a
// consonant takes its final form depends on the word it appears in
// (rules 8–10).
func jamo(w *word, j int) (kobraille.Cells, error) {
	r := w.runes[j]
	marker, final := kobraille.StandaloneJamo, false
	switch n := len(w.runes); {
	case n == 1:
	case n == 2:
		final = j == 0 && w.runes[1] == numberingSuffix
	case j == 0 && w.runes[1] == letterNameSuffix:
		final = true
	case w.hasSyllable:
		marker = kobraille.AttachedJamo
	default:
		final = true
	}
	var cells kobraille.Cells
	var err error
	if final {
		cells, err = codebook.JamoFinal(r)
	} else {
		cells, err = codebook.Jamo(r)
	}
	if err != nil {
		return nil, err
	}
	return append(kobraille.Cells{marker}, cells...), nil
}

// uppercaseMarks writes one capital indicator for a single capital letter
// and two for a run of capitals starting at position j (rule 28).
func uppercaseMarks(w *word, j int) kobraille.Cells {
	var out kobraille.Cells
	for k := 0; k < min(len(w.runes)-j, maxUppercaseMarks); k++ {
		if !unicode.IsUpper(w.runes[j+k]) {
			break
		}
		out = append(out, kobraille.Uppercase)
	}
	return out
}

// mathSymbol surrounds a mathematical symbol with blanks where it touches
// Korean words.
func mathSymbol(w *word, j int) (kobraille.Cells, error) {
	cells, err := codebook.MathSymbol(w.runes[j])
	if err != nil {
		return nil, err
	}
	var out kobraille.Cells
	if lo.SomeBy(w.runes[:j], hangul.IsSyllable) {
		out = append(out, kobraille.Blank)
	}
	out = append(out, cells...)
	if lo.SomeBy(w.runes[j+1:], hangul.IsSyllable) {
		out = append(out, kobraille.Blank)
	}
	return out, nil
}
