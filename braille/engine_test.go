package braille

import (
	"strings"
	"testing"

	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/kobraille/hangul"
	"github.com/npillmayer/kobraille/shortcut"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrescan(t *testing.T) {
	doc := prescan("ATM 기기 kg ㄱ.")
	require.Len(t, doc.words, 4)
	assert.True(t, doc.hasKorean)
	atm := doc.words[0]
	assert.True(t, atm.allUpper)
	assert.True(t, atm.allAlpha)
	assert.True(t, atm.firstLatin)
	assert.False(t, atm.hasSyllable)
	assert.True(t, doc.words[1].hasSyllable)
	assert.False(t, doc.words[1].firstLatin)
	assert.False(t, doc.words[2].allUpper)
	assert.True(t, doc.words[2].allAlpha)
	assert.False(t, doc.words[3].hasSyllable)
	//
	assert.False(t, prescan("WELCOME TO KOREA").hasKorean)
	assert.True(t, prescan("ABC ㅏ").hasKorean, "bare jamo count as Korean")
	assert.Empty(t, prescan("  \t ").words)
}

func TestStartsPhrase(t *testing.T) {
	tests := []struct {
		text  string
		at    int
		start bool
	}{
		{"WELCOME TO KOREA", 0, true},
		{"WELCOME TO KOREA", 1, false}, // previous word is alphabetic
		{"WELCOME TO", 0, false},       // too short
		{"가 ABC DEF GHI", 1, true},
		{"ABC DEF 가", 0, false},
		{"abc DEF GHI JKL", 1, false},
		{"1 DEF GHI JKL", 1, true},
		{"ABC DEF GHI", 2, false},
	}
	for _, tt := range tests {
		doc := prescan(tt.text)
		assert.Equal(t, tt.start, doc.startsPhrase(tt.at), "%q at word %d", tt.text, tt.at)
	}
}

func TestRunStateDecay(t *testing.T) {
	st := runState{inDigits: true, inLatin: true, upperMarked: true, inPhrase: true}
	st2 := st.decay('7')
	assert.Equal(t, st, st2, "digit keeps all flags")
	st2 = st.decay('A')
	assert.False(t, st2.inDigits)
	assert.True(t, st2.upperMarked, "capital keeps upper case marker")
	st2 = st.decay('a')
	assert.False(t, st2.upperMarked)
	assert.True(t, st2.inLatin, "decay never closes Roman letters")
	st2 = st.enterWord()
	assert.False(t, st2.inDigits)
	assert.False(t, st2.upperMarked)
	assert.True(t, st2.inLatin)
	assert.True(t, st2.inPhrase)
}

func TestNeedsSeparator(t *testing.T) {
	tests := []struct {
		cur, next rune
		sep       bool
	}{
		{'시', '예', true},  // rule 11
		{'가', '예', true},  // rule 11
		{'각', '예', false}, // final consonant
		{'시', '계', false}, // no null initial
		{'화', '액', true},  // rule 12
		{'야', '애', true},
		{'구', '애', true},
		{'워', '애', true},
		{'이', '애', false},
		{'화', '.', false},
	}
	for _, tt := range tests {
		s, _ := hangul.Decompose(tt.cur)
		assert.Equal(t, tt.sep, needsSeparator(s, tt.next), "%c%c", tt.cur, tt.next)
	}
}

func TestRuleTables(t *testing.T) {
	for _, v := range literalSyllables.Values() {
		s, ok := hangul.Decompose(v.(rune))
		require.True(t, ok, "%v is not a syllable", v)
		assert.True(t, s.HasFinal(), "literal syllable %c needs a final", v)
	}
	for _, v := range noAbbreviationBeforeVowel.Values() {
		s, ok := hangul.Decompose(v.(rune))
		require.True(t, ok)
		assert.Equal(t, hangul.JungA, s.Jung)
		assert.False(t, s.HasFinal())
	}
}

func TestLiteralSyllableWithoutFinal(t *testing.T) {
	_, err := literalSyllable(hangul.Syllable{Cho: hangul.ChoP, Jung: hangul.JungA})
	assert.True(t, kobraille.IsInternal(err))
}

func TestJamoRules(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tests := []struct {
		in   string
		want []int
	}{
		{"ㄱ", []int{63, 1}},
		{"ㄱ.", []int{63, 1, 50}},
		{"ㅎ자", []int{63, 52, 40}},
		{"ㄱㄴㄷ", []int{63, 1, 63, 18, 63, 20}},
		{"ㄱ자음", []int{63, 1, 40, 35, 42, 34}},
		{"ㄲ", []int{63, 32, 1}},
		{"ㅆ", []int{63, 32, 4}},
		{"ㄸ", []int{63, 32, 20}},
		{"ㅏ", []int{63, 35}},
	}
	for _, tt := range tests {
		cells, err := Encode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, cells.Ints(), tt.in)
	}
}

func TestAttachedJamo(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := prescan("ㅋㅋ가")
	cells, err := jamo(&doc.words[0], 0)
	require.NoError(t, err)
	assert.Equal(t, []int{56, 22}, cells.Ints())
	cells, err = jamo(&doc.words[0], 1)
	require.NoError(t, err)
	assert.Equal(t, []int{56, 22}, cells.Ints())
}

func TestUppercase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tests := []struct {
		in   string
		want []int
	}{
		{"X", []int{32, 45}},
		{"Ab", []int{32, 1, 3}},
		{"AB", []int{32, 32, 1, 3}},
		{"ABc", []int{32, 32, 1, 3, 9}},
		{"aBcD", []int{1, 32, 3, 9, 32, 25}},
		{"ABC DEF", []int{32, 32, 1, 3, 9, 0, 32, 32, 25, 17, 11}},
		{"ABC DEF GHI 가", []int{52, 32, 32, 32, 1, 3, 9, 0, 25, 17, 11, 0, 27, 19, 10, 32, 4, 50, 0, 43}},
		{"ABC DEF GHI 가 JKL", []int{
			52, 32, 32, 32, 1, 3, 9, 0, 25, 17, 11, 0, 27, 19, 10, 32, 4, 50, 0, 43, 0,
			52, 32, 32, 26, 5, 7}},
	}
	for _, tt := range tests {
		cells, err := Encode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, cells.Ints(), tt.in)
	}
}

func TestPhraseCloseCount(t *testing.T) {
	cells, err := Encode("THIS IS IT 그리고 THAT IS ALL")
	require.NoError(t, err)
	s := cells.Digits()
	assert.Equal(t, 2, strings.Count(cells.String(), "⠠⠠⠠"), "two phrases in %s", s)
	assert.Equal(t, 2, strings.Count(cells.String(), "⠠⠄"), "two phrase ends in %s", s)
}

func TestNumbers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tests := []struct {
		in   string
		want []int
	}{
		{"12", []int{60, 1, 3}},
		{"1.5", []int{60, 1, 50, 17}},
		{"3년", []int{60, 9, 0, 9, 33}},
		{"3개", []int{60, 9, 8, 23}},
		{"1, 2", []int{60, 1, 16, 0, 60, 3}},
		{"1-2", []int{60, 1, 36, 60, 3}},
	}
	for _, tt := range tests {
		cells, err := Encode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, cells.Ints(), tt.in)
	}
}

func TestMathSymbolBlanks(t *testing.T) {
	cells, err := Encode("가+나")
	require.NoError(t, err)
	assert.Equal(t, []int{43, 0, 34, 0, 9}, cells.Ints())
	cells, err = Encode("1+2")
	require.NoError(t, err)
	assert.Equal(t, []int{60, 1, 34, 60, 3}, cells.Ints())
}

func TestShortcutRemainder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cells, err := Encode("그래서는")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 14, 9, 53}, cells.Ints())
	cells, err = NewEncoder(nil).Encode("그래서")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 42, 16, 23, 32, 14}, cells.Ints(), "no abbreviations without a dictionary")
}

func TestLongShortcutChain(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m, err := shortcut.New(shortcut.Entry{Word: "가", Cells: kobraille.Cells{43}})
	require.NoError(t, err)
	cells, err := NewEncoder(m).Encode(strings.Repeat("가", 500))
	require.NoError(t, err)
	assert.Len(t, cells, 500)
	//
	cells, err = Encode(strings.Repeat("그래서", 65) + "는")
	require.NoError(t, err)
	want := append(kobraille.Cells(nil), 9, 53)
	for k := 0; k < 65; k++ {
		want = append(kobraille.Cells{1, 14}, want...)
	}
	assert.Equal(t, want.Ints(), cells.Ints())
}
