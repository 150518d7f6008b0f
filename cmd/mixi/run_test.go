package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEndFactorial(t *testing.T) {
	var buf bytes.Buffer
	result, err := run("DEF fact(n) DO IF n == 0 DO RETURN 1; ELSE RETURN n * fact(n - 1); END END fact(5);", &buf)
	require.NoError(t, err)
	assert.Equal(t, "120", result.String())
}

func TestRun_PrintWritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	_, err := run(`print("hello");`, &buf)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}

func TestRun_LexErrorIsWrapped(t *testing.T) {
	var buf bytes.Buffer
	_, err := run(`LET x = "unterminated;`, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lex error")
}

func TestRun_ParseErrorIsWrapped(t *testing.T) {
	var buf bytes.Buffer
	_, err := run("LET x = ;", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestRun_AnalyzeErrorIsReportedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	result, err := run(`LET x: String = 1; x;`, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "analyze error")
	assert.Equal(t, "1", result.String())
}

func TestRun_EvaluateErrorIsWrapped(t *testing.T) {
	var buf bytes.Buffer
	_, err := run("1 / 0;", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluate error")
}
