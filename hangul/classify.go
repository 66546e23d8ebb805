package hangul

import (
	"unicode"

	"github.com/npillmayer/kobraille"
	"golang.org/x/text/unicode/rangetable"
)

// Class is the type of character categories.
type Class int8

// These are all the character categories.
const (
	Unclassified   Class = iota
	SyllableClass        // complete Hangul syllable
	JamoClass            // bare consonant or vowel
	LatinClass           // ASCII letter
	DigitClass           // ASCII digit
	SymbolClass          // punctuation
	SpaceClass           // white space
	MathSymbolClass      // arithmetic operators and relations
)

var classNames = [...]string{
	"Unclassified", "SyllableClass", "JamoClass", "LatinClass", "DigitClass",
	"SymbolClass", "SpaceClass", "MathSymbolClass",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(?)"
	}
	return classNames[c]
}

// Category is the classification of a single code-point. Which of the
// fields besides Class and Rune carry information depends on Class.
type Category struct {
	Class    Class
	Rune     rune
	Syllable Syllable // SyllableClass
	Upper    bool     // LatinClass
	Digit    int      // DigitClass
}

// Punctuation we know cells for. Must be disjoint from MathSymbols.
var Symbols = rangetable.New(
	'.', ',', '?', '!', ':', ';', '/', '\'', '"', '(', ')', '{', '}', '[', ']',
	'-', '~', '*', '&', '#', '@', '·', '…', '‘', '’', '“', '”',
)

// Mathematical symbols we know cells for.
var MathSymbols = rangetable.New(
	'+', '−', '×', '÷', '=', '<', '>',
)

// Classify returns the category of a code-point, or a
// *kobraille.ClassificationError if the code-point is not supported.
func Classify(r rune) (Category, error) {
	cat := Category{Rune: r}
	switch {
	case IsSyllable(r):
		cat.Class = SyllableClass
		cat.Syllable, _ = Decompose(r)
	case IsJamo(r):
		cat.Class = JamoClass
	case IsASCIILetter(r):
		cat.Class = LatinClass
		cat.Upper = r >= 'A' && r <= 'Z'
	case r >= '0' && r <= '9':
		cat.Class = DigitClass
		cat.Digit = int(r - '0')
	case unicode.IsSpace(r):
		cat.Class = SpaceClass
	case unicode.Is(Symbols, r):
		cat.Class = SymbolClass
	case unicode.Is(MathSymbols, r):
		cat.Class = MathSymbolClass
	default:
		tracer().Errorf("cannot classify %#U", r)
		return Category{Rune: r}, &kobraille.ClassificationError{Rune: r}
	}
	return cat, nil
}

// IsASCIILetter is true for a…z and A…Z.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsASCIIDigit is true for 0…9.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
