package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tok struct {
	kind Kind
	lit  string
}

func kinds(ts []Token) []tok {
	out := make([]tok, 0, len(ts))
	for _, t := range ts {
		out = append(out, tok{t.Kind, t.Lit})
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		expect []tok
	}{
		{
			"simple sum",
			"5+3",
			[]tok{{KindNumber, "5"}, {KindOp, "+"}, {KindNumber, "3"}},
		},
		{
			"declaration",
			`have x = 5;`,
			[]tok{{KindIdent, "have"}, {KindIdent, "x"}, {KindOp, "="}, {KindNumber, "5"}, {KindSemicolon, ";"}},
		},
		{
			"float literal",
			"3.14",
			[]tok{{KindNumber, "3.14"}},
		},
		{
			"integer then dot-less access is two tokens only when digits follow",
			"10.5+2",
			[]tok{{KindNumber, "10.5"}, {KindOp, "+"}, {KindNumber, "2"}},
		},
		{
			"multi-rune operators win over single",
			"a==b<=c",
			[]tok{{KindIdent, "a"}, {KindOp, "=="}, {KindIdent, "b"}, {KindOp, "<="}, {KindIdent, "c"}},
		},
		{
			"string literal without escapes",
			`put "hi there"`,
			[]tok{{KindIdent, "put"}, {KindText, "hi there"}},
		},
		{
			"comment runs to end of line",
			"1 // two three\n2",
			[]tok{{KindNumber, "1"}, {KindNumber, "2"}},
		},
		{
			"punctuation",
			"(){};,",
			[]tok{{KindLParen, "("}, {KindRParen, ")"}, {KindLBrace, "{"}, {KindRBrace, "}"}, {KindSemicolon, ";"}, {KindComma, ","}},
		},
		{
			"whitespace only",
			" \t\r\n",
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.expect, kinds(toks))
		})
	}
}

func TestTokenizeRejectsUnknownCharacter(t *testing.T) {
	_, err := Tokenize("have x = @")
	require.Error(t, err)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '@', lexErr.Char)
	assert.Equal(t, 1, lexErr.Pos.Line)
	assert.Equal(t, 10, lexErr.Pos.Col)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`put "oops`)
	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '"', lexErr.Char)
}

func TestTokenizeTracksLines(t *testing.T) {
	toks, err := Tokenize("put 1\nput 2")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 2, toks[2].Pos.Line)
	assert.Equal(t, 1, toks[2].Pos.Col)
}

func TestTokenizeDots(t *testing.T) {
	// A dot only extends a number when digits follow; everywhere else it is
	// its own token so raw target-language lines survive lexing.
	toks, err := Tokenize("3.")
	require.NoError(t, err)
	assert.Equal(t, []tok{{KindNumber, "3"}, {KindDot, "."}}, kinds(toks))

	toks, err = Tokenize("Application.Exit()")
	require.NoError(t, err)
	assert.Equal(t, []tok{
		{KindIdent, "Application"}, {KindDot, "."}, {KindIdent, "Exit"},
		{KindLParen, "("}, {KindRParen, ")"},
	}, kinds(toks))
}
