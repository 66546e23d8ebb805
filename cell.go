package kobraille

import (
	"strconv"
	"strings"
)

// Cell is a single 6-dot Braille cell, 0…63.
type Cell uint8

// MaxCell is the cell with all six dots raised.
const MaxCell Cell = 63

// GlyphBase is the first code-point of the Unicode Braille Patterns block.
// Cell c is rendered as rune GlyphBase+c.
const GlyphBase rune = 0x2800

// Cells the rules of the orthography insert on their own, i.e., cells which
// do not stem from a letter.
const (
	Blank              Cell = 0  // ⠀ space between words
	ThousandsSeparator Cell = 2  // ⠂ comma inside a number (rule 41)
	UppercaseEnd       Cell = 4  // ⠄ second cell of the capital phrase terminator
	Uppercase          Cell = 32 // ⠠ capital letter indicator (rule 28)
	DoubledConsonant   Cell = 32 // ⠠ 된소리표 in front of a tense consonant
	Separator          Cell = 36 // ⠤ 구분표 (rules 11, 12)
	LatinClose         Cell = 50 // ⠲ end of Roman letters (rule 31)
	LatinOpen          Cell = 52 // ⠴ start of Roman letters (rule 31)
	AttachedJamo       Cell = 56 // ⠸ jamo attached to a word (rule 10)
	NumberSign         Cell = 60 // ⠼ 수표 (rule 40)
	StandaloneJamo     Cell = 63 // ⠿ jamo standing alone (rule 8)
)

// Glyph returns the Unicode Braille Patterns rune for a cell.
func (c Cell) Glyph() rune {
	return GlyphBase + rune(c&MaxCell)
}

// Dots lists the raised dots of a cell in ascending order.
func (c Cell) Dots() []int {
	var dots []int
	for d := 0; d < 6; d++ {
		if c&(1<<d) != 0 {
			dots = append(dots, d+1)
		}
	}
	return dots
}

// Cells is a sequence of Braille cells in reading order.
type Cells []Cell

// String renders cells as Unicode Braille glyphs.
func (cs Cells) String() string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteRune(c.Glyph())
	}
	return b.String()
}

// Digits renders cells as their concatenated decimal codes, e.g. "60102".
// This is the notation used by test fixtures. Note that it is not
// reversible on its own.
func (cs Cells) Digits() string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(strconv.Itoa(int(c)))
	}
	return b.String()
}

// Ints converts cells to plain integers, mostly for display and testing.
func (cs Cells) Ints() []int {
	ints := make([]int, len(cs))
	for i, c := range cs {
		ints[i] = int(c)
	}
	return ints
}

// Equal reports whether two cell sequences are identical.
func (cs Cells) Equal(other Cells) bool {
	if len(cs) != len(other) {
		return false
	}
	for i := range cs {
		if cs[i] != other[i] {
			return false
		}
	}
	return true
}
