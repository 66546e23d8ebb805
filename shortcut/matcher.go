package shortcut

import (
	"fmt"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/kobraille"
)

// Entry is a word abbreviation: a word and the cells standing for it.
type Entry struct {
	Word  string
	Cells kobraille.Cells
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%s", e.Word, e.Cells)
}

// Matcher finds the longest dictionary entry which is a prefix of a word.
// A Matcher is immutable after construction and may be shared between
// goroutines.
type Matcher struct {
	dict   *treemap.Map // word → Entry, ordered by word
	maxLen int          // length of the longest word in runes
}

// New creates a matcher for a dictionary. Entries must have a non-empty
// word and at least one cell, words must be unique.
func New(entries ...Entry) (*Matcher, error) {
	m := &Matcher{dict: treemap.NewWithStringComparator()}
	for _, e := range entries {
		if e.Word == "" {
			return nil, fmt.Errorf("shortcut: empty word in dictionary")
		}
		if len(e.Cells) == 0 {
			return nil, fmt.Errorf("shortcut: no cells for %q", e.Word)
		}
		if _, dup := m.dict.Get(e.Word); dup {
			return nil, fmt.Errorf("shortcut: duplicate word %q", e.Word)
		}
		e.Cells = append(kobraille.Cells(nil), e.Cells...)
		m.dict.Put(e.Word, e)
		if l := utf8.RuneCountInString(e.Word); l > m.maxLen {
			m.maxLen = l
		}
	}
	return m, nil
}

// Match returns the longest entry which is a prefix of word, together with
// the rest of word following it. If no entry matches, ok is false.
func (m *Matcher) Match(word string) (entry Entry, rest string, ok bool) {
	if m == nil || m.dict.Empty() {
		return Entry{}, word, false
	}
	// byte offsets of prefixes of up to maxLen runes
	ends := make([]int, 0, m.maxLen)
	for i := range word {
		if i > 0 {
			ends = append(ends, i)
		}
		if len(ends) == m.maxLen {
			break
		}
	}
	if len(ends) < m.maxLen {
		ends = append(ends, len(word))
	}
	for j := len(ends) - 1; j >= 0; j-- {
		prefix := word[:ends[j]]
		if v, found := m.dict.Get(prefix); found {
			entry = v.(Entry)
			tracer().Debugf("word %q starts with abbreviation %s", word, entry)
			return entry, word[ends[j]:], true
		}
	}
	return Entry{}, word, false
}

// Entries lists all dictionary entries, ordered by word.
func (m *Matcher) Entries() []Entry {
	entries := make([]Entry, 0, m.dict.Size())
	it := m.dict.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(Entry))
	}
	return entries
}

// Size is the number of dictionary entries.
func (m *Matcher) Size() int {
	return m.dict.Size()
}

// Word abbreviations of rule 18.
var conjunctions = []Entry{
	{"그래서", kobraille.Cells{1, 14}},  // ⠁⠎
	{"그러나", kobraille.Cells{1, 9}},   // ⠁⠉
	{"그러면", kobraille.Cells{1, 18}},  // ⠁⠒
	{"그러므로", kobraille.Cells{1, 34}}, // ⠁⠢
	{"그런데", kobraille.Cells{1, 29}},  // ⠁⠝
	{"그리고", kobraille.Cells{1, 37}},  // ⠁⠥
	{"그리하여", kobraille.Cells{1, 49}}, // ⠁⠱
}

var defaultMatcher *Matcher

func init() {
	var err error
	if defaultMatcher, err = New(conjunctions...); err != nil {
		panic(err)
	}
}

// Default returns the matcher for the standard word abbreviations.
func Default() *Matcher {
	return defaultMatcher
}
