package parser

import (
	"strconv"
	"strings"

	"github.com/novalang/nova/ast"
)

// binaryOps is the closed operator set consumed by expressions. The lexer
// accepts a few more (!=, <=, >=, %) which simply end the expression.
var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"==": true, "<": true, ">": true, "=": true,
}

// Parse tokenizes src and parses it into a program. The token sequence is
// produced completely before parsing begins; the resulting tree is never
// mutated afterwards, so loops re-execute cached statement lists instead of
// ever touching source text again.
func Parse(src string) (*ast.Program, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	prog := &ast.Program{}
	for p.peek().Kind != KindEOF {
		st, err := p.statement(true)
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, st)
	}
	return prog, nil
}

type parser struct {
	src  string
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: KindEOF, Pos: Pos{Offset: len(p.src)}, End: len(p.src)}
	}
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind Kind, what string) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, &ParseError{Expected: what, Found: tok, Incomplete: tok.Kind == KindEOF}
	}
	return tok, nil
}

// acceptSemi consumes a trailing semicolon if one is present. Statement
// terminators are optional throughout the grammar.
func (p *parser) acceptSemi() {
	if p.peek().Kind == KindSemicolon {
		p.next()
	}
}

func (p *parser) isOp(lit string) bool {
	t := p.peek()
	return t.Kind == KindOp && t.Lit == lit
}

func (p *parser) statement(topLevel bool) (ast.Statement, error) {
	if tok := p.peek(); tok.Kind == KindIdent {
		switch tok.Lit {
		case "have", "let":
			return p.varDecl()
		case "print", "put":
			return p.printStmt()
		case "pause":
			return p.pauseStmt()
		case "when":
			return p.whenStmt()
		case "while":
			return p.whileStmt()
		case "ui_message":
			return p.messageStmt()
		case "ui_window":
			// Window blocks are only recognised at the top level; nested
			// occurrences fall through to the expression grammar.
			if topLevel {
				return p.windowStmt()
			}
		}
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.acceptSemi()
	return ast.ExprStmt{Expr: expr}, nil
}

func (p *parser) varDecl() (ast.Statement, error) {
	p.next() // have / let
	name, err := p.expect(KindIdent, "a variable name")
	if err != nil {
		return nil, err
	}
	decl := ast.VarDecl{Name: name.Lit}
	if p.isOp("=") {
		p.next()
		decl.Init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	p.acceptSemi()
	return decl, nil
}

func (p *parser) printStmt() (ast.Statement, error) {
	p.next() // print / put
	var expr ast.Expr
	var err error
	if p.peek().Kind == KindLParen {
		p.next()
		expr, err = p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(KindRParen, "')'"); err != nil {
			return nil, err
		}
	} else {
		expr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	p.acceptSemi()
	return ast.PrintStmt{Expr: expr}, nil
}

func (p *parser) pauseStmt() (ast.Statement, error) {
	p.next() // pause
	stmt := ast.PauseStmt{}
	if p.peek().Kind == KindLParen {
		p.next()
		if p.peek().Kind != KindRParen {
			expr, err := p.expression()
			if err != nil {
				return nil, err
			}
			stmt.Expr = expr
		}
		if _, err := p.expect(KindRParen, "')'"); err != nil {
			return nil, err
		}
	}
	p.acceptSemi()
	return stmt, nil
}

func (p *parser) whenStmt() (ast.Statement, error) {
	p.next() // when
	cond, err := p.parenExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := ast.IfStmt{Cond: cond, Then: then}
	if tok := p.peek(); tok.Kind == KindIdent && tok.Lit == "otherwise" {
		p.next()
		stmt.Else, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *parser) whileStmt() (ast.Statement, error) {
	p.next() // while
	cond, err := p.parenExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.WhileStmt{Cond: cond, Body: body}, nil
}

func (p *parser) messageStmt() (ast.Statement, error) {
	p.next() // ui_message
	if _, err := p.expect(KindLParen, "'('"); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindRParen, "')'"); err != nil {
		return nil, err
	}
	p.acceptSemi()
	return ast.MessageStmt{Expr: expr}, nil
}

func (p *parser) parenExpr() (ast.Expr, error) {
	if _, err := p.expect(KindLParen, "'('"); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindRParen, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) block() ([]ast.Statement, error) {
	if _, err := p.expect(KindLBrace, "'{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for {
		switch tok := p.peek(); tok.Kind {
		case KindRBrace:
			p.next()
			return stmts, nil
		case KindEOF:
			return nil, &ParseError{Expected: "'}'", Found: tok, Incomplete: true}
		}
		st, err := p.statement(false)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
}

// expression parses a flat left-to-right operator chain with no precedence:
// "2 + 3 * 4" nests as (2+3)*4. Parentheses are the only grouping tool.
// A "=" whose accumulated left operand is a bare variable reference turns
// the rest of the chain into an assignment; any other left operand is an
// error.
func (p *parser) expression() (ast.Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != KindOp || !binaryOps[tok.Lit] {
			return left, nil
		}
		p.next()
		if tok.Lit == "=" {
			ref, ok := left.(ast.VarRef)
			if !ok {
				return nil, &ParseError{Expected: "a variable reference on the left of '='", Found: tok}
			}
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			return ast.AssignExpr{Name: ref.Name, Value: value}, nil
		}
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: tok.Lit, Left: left, Right: right}
	}
}

func (p *parser) primary() (ast.Expr, error) {
	switch tok := p.peek(); tok.Kind {
	case KindLParen:
		p.next()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(KindRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case KindNumber:
		p.next()
		return numberLit(tok.Lit)
	case KindText:
		p.next()
		return ast.TextLit{Value: tok.Lit}, nil
	case KindIdent:
		p.next()
		return ast.VarRef{Name: tok.Lit}, nil
	default:
		return nil, &ParseError{Expected: "an expression", Found: tok, Incomplete: tok.Kind == KindEOF}
	}
}

// numberLit keeps the original distinction: a decimal point makes the
// literal a float, everything else stays integral.
func numberLit(lit string) (ast.Expr, error) {
	if strings.ContainsRune(lit, '.') {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, &ParseError{Expected: "a number", Found: Token{Kind: KindNumber, Lit: lit}}
		}
		return ast.NumberLit{IsFloat: true, Float: f}, nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, &ParseError{Expected: "a number", Found: Token{Kind: KindNumber, Lit: lit}}
	}
	return ast.NumberLit{Int: i}, nil
}
