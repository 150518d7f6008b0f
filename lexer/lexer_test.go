/*
File   : mixi/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_OperatorsAndIdentifiers(t *testing.T) {
	tokens, err := Lex(`x <= y != 3`)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: IDENTIFIER, Literal: "x", Line: 1, Column: 1},
		{Kind: OPERATOR, Literal: "<=", Line: 1, Column: 3},
		{Kind: IDENTIFIER, Literal: "y", Line: 1, Column: 6},
		{Kind: OPERATOR, Literal: "!=", Line: 1, Column: 8},
		{Kind: INTEGER, Literal: "3", Line: 1, Column: 11},
	}, tokens)
}

func TestLex_SignDisambiguation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "leading signed number before another number",
			in:   "-3 5",
			want: []Token{
				{Kind: INTEGER, Literal: "-3", Line: 1, Column: 1},
				{Kind: INTEGER, Literal: "5", Line: 1, Column: 4},
			},
		},
		{
			name: "minus after identifier is an operator",
			in:   "a-3",
			want: []Token{
				{Kind: IDENTIFIER, Literal: "a", Line: 1, Column: 1},
				{Kind: OPERATOR, Literal: "-", Line: 1, Column: 2},
				{Kind: INTEGER, Literal: "3", Line: 1, Column: 3},
			},
		},
		{
			name: "minus after a closing paren is an operator",
			in:   "(1)-3",
			want: []Token{
				{Kind: OPERATOR, Literal: "(", Line: 1, Column: 1},
				{Kind: INTEGER, Literal: "1", Line: 1, Column: 2},
				{Kind: OPERATOR, Literal: ")", Line: 1, Column: 3},
				{Kind: OPERATOR, Literal: "-", Line: 1, Column: 4},
				{Kind: INTEGER, Literal: "3", Line: 1, Column: 5},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Lex(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLex_NumberShapes(t *testing.T) {
	tests := []struct {
		in       string
		wantKind Kind
	}{
		{"1", INTEGER},
		{"1.5", DECIMAL},
		{"1e10", INTEGER},
		{"1.5e-2", DECIMAL},
		{"2e-1", INTEGER}, // lexically INTEGER; semantic fractional-ness is the Parser's concern
	}
	for _, tc := range tests {
		toks, err := Lex(tc.in)
		require.NoError(t, err)
		require.Len(t, toks, 1)
		assert.Equal(t, tc.wantKind, toks[0].Kind, "input %q", tc.in)
		assert.Equal(t, tc.in, toks[0].Literal)
	}
}

func TestLex_CharAndStringLiterals(t *testing.T) {
	toks, err := Lex(`'\n' "abc\"def"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, CHARACTER, toks[0].Kind)
	assert.Equal(t, `'\n'`, toks[0].Literal)
	assert.Equal(t, STRING, toks[1].Kind)
	assert.Equal(t, `"abc\"def"`, toks[1].Literal)
}

func TestLex_LiteralIsSubstringOfInput(t *testing.T) {
	input := `LET x = 1 + 2 * 3; // trailing comment
x;`
	toks, err := Lex(input)
	require.NoError(t, err)
	for _, tok := range toks {
		if tok.Kind == EOF {
			continue
		}
		assert.Contains(t, input, tok.Literal)
	}
}

func TestLex_UnterminatedStringFails(t *testing.T) {
	_, err := Lex(`"abc`)
	assert.Error(t, err)
}

func TestLex_IllegalNewlineInStringFails(t *testing.T) {
	_, err := Lex("\"abc\ndef\"")
	assert.Error(t, err)
}

func TestLex_SkipsLineComments(t *testing.T) {
	toks, err := Lex("1 // this is ignored\n+ 2")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, INTEGER, toks[0].Kind)
	assert.Equal(t, OPERATOR, toks[1].Kind)
	assert.Equal(t, INTEGER, toks[2].Kind)
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("END"))
	assert.True(t, IsKeyword("LET"))
	assert.False(t, IsKeyword("notakeyword"))
}
