package parser

import (
	"strings"
	"unicode/utf8"
)

var twoRuneOps = []string{"==", "!=", "<=", ">="}

const singleRuneOps = "+-*/%<>="

// Tokenize converts source text into the complete token sequence in one
// linear pass. Whitespace and //-comments produce no tokens. Multi-rune
// operators are matched before single-rune ones so "==" never splits.
func Tokenize(src string) ([]Token, error) {
	lx := &lexer{src: src, line: 1, col: 1}
	return lx.run()
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func (lx *lexer) run() ([]Token, error) {
	var toks []Token
	for {
		lx.skipSpaceAndComments()
		if lx.pos >= len(lx.src) {
			return toks, nil
		}
		tok, err := lx.scan()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func (lx *lexer) scan() (Token, error) {
	start := lx.here()
	ch := lx.src[lx.pos]

	switch {
	case ch >= '0' && ch <= '9':
		return lx.scanNumber(start), nil
	case ch == '"':
		return lx.scanText(start)
	case isIdentStart(rune(ch)):
		return lx.scanIdent(start), nil
	}

	if lx.pos+2 <= len(lx.src) {
		two := lx.src[lx.pos : lx.pos+2]
		for _, op := range twoRuneOps {
			if two == op {
				lx.advance(2)
				return lx.token(KindOp, op, start), nil
			}
		}
	}

	if strings.IndexByte(singleRuneOps, ch) >= 0 {
		lx.advance(1)
		return lx.token(KindOp, string(ch), start), nil
	}

	var punct Kind
	switch ch {
	case '{':
		punct = KindLBrace
	case '}':
		punct = KindRBrace
	case '(':
		punct = KindLParen
	case ')':
		punct = KindRParen
	case ',':
		punct = KindComma
	case ';':
		punct = KindSemicolon
	case '.':
		// Bare dots never appear in Nova itself, but raw window-body lines
		// carry target-language member access through the token stream.
		punct = KindDot
	default:
		r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
		return Token{}, &LexError{Pos: start, Char: r}
	}
	lx.advance(1)
	return lx.token(punct, string(ch), start), nil
}

func (lx *lexer) scanNumber(start Pos) Token {
	begin := lx.pos
	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.advance(1)
	}
	if lx.pos+1 < len(lx.src) && lx.src[lx.pos] == '.' && isDigit(lx.src[lx.pos+1]) {
		lx.advance(1)
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.advance(1)
		}
	}
	return lx.token(KindNumber, lx.src[begin:lx.pos], start)
}

// scanText reads a double-quoted string. There is no escape processing: the
// literal runs to the next double quote.
func (lx *lexer) scanText(start Pos) (Token, error) {
	lx.advance(1)
	begin := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '"' {
		lx.advance(1)
	}
	if lx.pos >= len(lx.src) {
		return Token{}, &LexError{Pos: start, Char: '"'}
	}
	lit := lx.src[begin:lx.pos]
	lx.advance(1)
	return lx.token(KindText, lit, start), nil
}

func (lx *lexer) scanIdent(start Pos) Token {
	begin := lx.pos
	for lx.pos < len(lx.src) && isIdentPart(rune(lx.src[lx.pos])) {
		lx.advance(1)
	}
	return lx.token(KindIdent, lx.src[begin:lx.pos], start)
}

func (lx *lexer) skipSpaceAndComments() {
	for lx.pos < len(lx.src) {
		ch := lx.src[lx.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			lx.advance(1)
			continue
		}
		if ch == '/' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.advance(1)
			}
			continue
		}
		return
	}
}

func (lx *lexer) here() Pos {
	return Pos{Offset: lx.pos, Line: lx.line, Col: lx.col}
}

func (lx *lexer) token(kind Kind, lit string, start Pos) Token {
	return Token{Kind: kind, Lit: lit, Pos: start, End: lx.pos}
}

func (lx *lexer) advance(n int) {
	for i := 0; i < n && lx.pos < len(lx.src); i++ {
		if lx.src[lx.pos] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		lx.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
