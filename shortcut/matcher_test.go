package shortcut

import (
	"testing"

	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		word  string
		cells []int
		rest  string
		ok    bool
	}{
		{"그래서", []int{1, 14}, "", true},
		{"그래서는", []int{1, 14}, "는", true},
		{"그리하여", []int{1, 49}, "", true},
		{"그리고요", []int{1, 37}, "요", true},
		{"그러므로", []int{1, 34}, "", true},
		{"그래", nil, "그래", false},
		{"작동", nil, "작동", false},
		{"", nil, "", false},
	}
	for _, tt := range tests {
		e, rest, ok := Default().Match(tt.word)
		assert.Equal(t, tt.ok, ok, "match of %q", tt.word)
		assert.Equal(t, tt.rest, rest, "rest of %q", tt.word)
		if tt.ok {
			assert.Equal(t, tt.cells, e.Cells.Ints(), "cells of %q", tt.word)
			assert.Less(t, len(rest), len(tt.word), "rest must be shorter than the word")
		}
	}
}

func TestLongestPrefixWins(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, err := New(
		Entry{"그", kobraille.Cells{1}},
		Entry{"그리", kobraille.Cells{2}},
		Entry{"그리하여", kobraille.Cells{3}},
	)
	require.NoError(t, err)
	e, rest, ok := m.Match("그리하여서")
	require.True(t, ok)
	assert.Equal(t, "그리하여", e.Word)
	assert.Equal(t, "서", rest)
	e, rest, ok = m.Match("그리하")
	require.True(t, ok)
	assert.Equal(t, "그리", e.Word)
	assert.Equal(t, "하", rest)
	e, _, _ = m.Match("그")
	assert.Equal(t, "그", e.Word)
}

func TestInvalidDictionary(t *testing.T) {
	_, err := New(Entry{"", kobraille.Cells{1}})
	assert.Error(t, err, "empty words must be rejected")
	_, err = New(Entry{"그", nil})
	assert.Error(t, err, "entries without cells must be rejected")
	_, err = New(Entry{"그", kobraille.Cells{1}}, Entry{"그", kobraille.Cells{2}})
	assert.Error(t, err, "duplicates must be rejected")
}

func TestEntriesAreOrdered(t *testing.T) {
	entries := Default().Entries()
	require.Equal(t, 7, Default().Size())
	require.Len(t, entries, 7)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Word, entries[i].Word)
	}
}

func TestEntryCellsAreCopied(t *testing.T) {
	cells := kobraille.Cells{1, 14}
	m, err := New(Entry{"그래서", cells})
	require.NoError(t, err)
	cells[0] = 63
	e, _, _ := m.Match("그래서")
	assert.Equal(t, []int{1, 14}, e.Cells.Ints())
}
