package braille

import (
	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/kobraille/shortcut"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var defaultEncoder = NewEncoder(shortcut.Default())

// Encode transcribes a text to Braille cells, using the standard word
// abbreviations.
//
// Encode is all-or-nothing: if any part of the text cannot be transcribed,
// no cells are returned.
func Encode(text string) (kobraille.Cells, error) {
	return defaultEncoder.Encode(text)
}

// EncodeToDisplayString transcribes a text and renders the cells as
// characters of the Unicode Braille Patterns block (U+2800 + cell).
func EncodeToDisplayString(text string) (string, error) {
	cells, err := Encode(text)
	if err != nil {
		return "", err
	}
	return cells.String(), nil
}

// Decode returns text unchanged. Transcription from Braille back to Korean
// is not supported.
func Decode(text string) string {
	return text
}

// normalize composes conjoining jamo to syllables and folds full-width
// forms, e.g. 'Ａ' to 'A' and '１' to '1'.
func normalize(text string) string {
	return norm.NFC.String(width.Fold.String(text))
}
