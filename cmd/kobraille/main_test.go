package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/kobraille"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := mainE(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestTranscribeArguments(t *testing.T) {
	out, err := run(t, "", "안녕하세요")
	require.NoError(t, err)
	assert.Equal(t, "⠣⠒⠉⠻⠚⠠⠝⠬\n", out)
	out, err = run(t, "", "--format", "digits", "이", "옷")
	require.NoError(t, err)
	assert.Equal(t, "210374\n", out)
	out, err = run(t, "", "--format", "cells", "1,000")
	require.NoError(t, err)
	assert.Equal(t, "60 1 2 26 26 26\n", out)
}

func TestTranscribeStdin(t *testing.T) {
	out, err := run(t, "아름다운 세상.\n\nkg\n")
	require.NoError(t, err)
	assert.Equal(t, "⠣⠐⠪⠢⠊⠣⠛⠀⠠⠝⠇⠶⠲\n\n⠅⠛\n", out)
}

func TestTranscriptionError(t *testing.T) {
	_, err := run(t, "가\n世界\n")
	require.Error(t, err)
	assert.True(t, kobraille.IsClassification(err))
	assert.Contains(t, err.Error(), "line 2")
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "", "--format", "morse", "가")
	assert.Error(t, err)
	_, err = run(t, "", "--help")
	assert.NoError(t, err)
}

func TestListShortcuts(t *testing.T) {
	out, err := run(t, "", "--list-shortcuts", "--format", "digits")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines, "그래서\t114")
}
