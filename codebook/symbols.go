package codebook

import (
	"github.com/npillmayer/kobraille"
)

// Digits 0…9 (rule 40), written without the number sign.
var digitCells = [10]kobraille.Cell{
	26, // 0 ⠚
	1,  // 1 ⠁
	3,  // 2 ⠃
	9,  // 3 ⠉
	25, // 4 ⠙
	17, // 5 ⠑
	11, // 6 ⠋
	27, // 7 ⠛
	19, // 8 ⠓
	10, // 9 ⠊
}

// Latin letters a…z (rule 28), written without capital indicators.
var latinCells = [26]kobraille.Cell{
	1, 3, 9, 25, 17, 11, 27, 19, 10, 26, // a … j
	5, 7, 13, 29, 21, 15, 31, 23, 14, 30, // k … t
	37, 39, 58, 45, 61, 53, // u … z
}

// Punctuation (rule 49 ff.).
var symbolCells = map[rune]cells{
	'.':  {50},         // ⠲
	',':  {16},         // ⠐
	'?':  {38},         // ⠦
	'!':  {22},         // ⠖
	'·':  {16, 6},      // ⠐⠆
	':':  {16, 2},      // ⠐⠂
	';':  {48, 6},      // ⠰⠆
	'/':  {56, 12},     // ⠸⠌
	'“':  {38},         // ⠦
	'”':  {52},         // ⠴
	'"':  {38},         // ⠦
	'‘':  {32, 38},     // ⠠⠦
	'’':  {52, 4},      // ⠴⠄
	'\'': {4},          // ⠄
	'(':  {38, 4},      // ⠦⠄
	')':  {32, 52},     // ⠠⠴
	'{':  {38, 2},      // ⠦⠂
	'}':  {16, 52},     // ⠐⠴
	'[':  {38, 6},      // ⠦⠆
	']':  {48, 52},     // ⠰⠴
	'-':  {36},         // ⠤
	'~':  {8, 20},      // ⠈⠔
	'…':  {32, 32, 32}, // ⠠⠠⠠
	'*':  {16, 20},     // ⠐⠔
	'&':  {8, 47},      // ⠈⠯
	'#':  {56, 1},      // ⠸⠁
	'@':  {8, 1},       // ⠈⠁
}

// Mathematical symbols (rule 57 ff.).
var mathSymbolCells = map[rune]cells{
	'+': {34},     // ⠢
	'−': {20},     // ⠔
	'×': {33},     // ⠡
	'÷': {12, 12}, // ⠌⠌
	'=': {18, 18}, // ⠒⠒
	'<': {20, 20}, // ⠔⠔
	'>': {34, 34}, // ⠢⠢
}

// Digit returns the cell of a digit 0…9.
func Digit(d int) (kobraille.Cells, error) {
	if d < 0 || d > 9 {
		return nil, &kobraille.DecompositionError{Component: "digit", Index: d}
	}
	return cells{digitCells[d]}, nil
}

// Latin returns the cell of a Latin letter, regardless of its case.
func Latin(ch rune) (kobraille.Cells, error) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return cells{latinCells[ch-'a']}, nil
	case ch >= 'A' && ch <= 'Z':
		return cells{latinCells[ch-'A']}, nil
	}
	return nil, &kobraille.LookupError{Table: "latin", Key: string(ch)}
}

// Symbol returns the cells of a punctuation symbol.
func Symbol(ch rune) (kobraille.Cells, error) {
	if c, ok := symbolCells[ch]; ok {
		return append(cells(nil), c...), nil
	}
	tracer().Errorf("no cells for symbol %#U", ch)
	return nil, &kobraille.LookupError{Table: "symbol", Key: string(ch)}
}

// MathSymbol returns the cells of a mathematical symbol.
func MathSymbol(ch rune) (kobraille.Cells, error) {
	if c, ok := mathSymbolCells[ch]; ok {
		return append(cells(nil), c...), nil
	}
	tracer().Errorf("no cells for math symbol %#U", ch)
	return nil, &kobraille.LookupError{Table: "math symbol", Key: string(ch)}
}
