package parser

import "fmt"

// Kind enumerates lexical categories recognised by the Nova lexer.
type Kind int

const (
	KindEOF Kind = iota
	KindNumber
	KindText
	KindIdent
	KindOp
	KindLBrace
	KindRBrace
	KindLParen
	KindRParen
	KindComma
	KindSemicolon
	KindDot
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindNumber:
		return "number"
	case KindText:
		return "string"
	case KindIdent:
		return "identifier"
	case KindOp:
		return "operator"
	case KindLBrace:
		return "'{'"
	case KindRBrace:
		return "'}'"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	case KindComma:
		return "','"
	case KindSemicolon:
		return "';'"
	case KindDot:
		return "'.'"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pos is a position in the source text. Offset is a byte offset; Line and
// Col are 1-based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is one lexeme. Lit holds the literal value with quotes already
// stripped for strings. End is the byte offset just past the lexeme.
type Token struct {
	Kind Kind
	Lit  string
	Pos  Pos
	End  int
}

func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "end of input"
	case KindText:
		return fmt.Sprintf("%q", t.Lit)
	default:
		return fmt.Sprintf("%q", t.Lit)
	}
}
