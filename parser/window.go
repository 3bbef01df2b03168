package parser

import (
	"strings"

	"github.com/novalang/nova/ast"
)

// Window header defaults, used when ui_window() omits arguments.
var (
	defaultTitle  = ast.TextLit{Value: "Nova App"}
	defaultWidth  = ast.NumberLit{Int: 400}
	defaultHeight = ast.NumberLit{Int: 300}
)

func (p *parser) windowStmt() (ast.Statement, error) {
	p.next() // ui_window
	args, err := p.callArgs()
	if err != nil {
		return nil, err
	}
	stmt := ast.WindowStmt{Title: defaultTitle, Width: defaultWidth, Height: defaultHeight}
	if len(args) >= 1 {
		stmt.Title = args[0]
	}
	if len(args) >= 2 {
		stmt.Width = args[1]
	}
	if len(args) >= 3 {
		stmt.Height = args[2]
	}
	stmt.Body, err = p.windowBody()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// windowBody parses the brace-delimited mini-grammar inside ui_window.
// Recognised forms are widgets and the ordinary statement keywords; any
// other line is preserved verbatim so target-language snippets can flow
// through untouched.
func (p *parser) windowBody() ([]ast.UIStatement, error) {
	if _, err := p.expect(KindLBrace, "'{'"); err != nil {
		return nil, err
	}
	var body []ast.UIStatement
	for {
		tok := p.peek()
		switch tok.Kind {
		case KindRBrace:
			p.next()
			return body, nil
		case KindEOF:
			return nil, &ParseError{Expected: "'}'", Found: tok, Incomplete: true}
		}

		var item ast.UIStatement
		var err error
		if tok.Kind == KindIdent {
			switch tok.Lit {
			case "set_icon":
				item, err = p.setIconStmt()
			case "label":
				item, err = p.labelStmt()
			case "button":
				item, err = p.buttonStmt()
			case "have", "let", "print", "put", "pause", "ui_message":
				var st ast.Statement
				st, err = p.statement(false)
				item = ast.StmtItem{Stmt: st}
			default:
				item = p.rawStmt()
			}
		} else {
			item = p.rawStmt()
		}
		if err != nil {
			return nil, err
		}
		body = append(body, item)
	}
}

func (p *parser) setIconStmt() (ast.UIStatement, error) {
	p.next() // set_icon
	if _, err := p.expect(KindLParen, "'('"); err != nil {
		return nil, err
	}
	path, err := p.expect(KindText, "an icon path string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindRParen, "')'"); err != nil {
		return nil, err
	}
	p.acceptSemi()
	return ast.SetIconStmt{Path: path.Lit}, nil
}

func (p *parser) labelStmt() (ast.UIStatement, error) {
	p.next() // label
	args, err := p.callArgs()
	if err != nil {
		return nil, err
	}
	stmt := ast.LabelStmt{Text: ast.TextLit{}}
	assign := []*ast.Expr{&stmt.Text, &stmt.X, &stmt.Y, &stmt.W, &stmt.H}
	for i := 0; i < len(args) && i < len(assign); i++ {
		*assign[i] = args[i]
	}
	p.acceptSemi()
	return stmt, nil
}

func (p *parser) buttonStmt() (ast.UIStatement, error) {
	p.next() // button
	args, err := p.callArgs()
	if err != nil {
		return nil, err
	}
	stmt := ast.ButtonStmt{Text: ast.TextLit{Value: "Button"}}
	if len(args) >= 1 {
		stmt.Text = args[0]
	}
	if len(args) >= 3 {
		stmt.X, stmt.Y = args[1], args[2]
	}
	// The click handler is optional: no '{' after the header means the
	// button is inert. Handler bodies reuse the general statement grammar.
	if p.peek().Kind == KindLBrace {
		stmt.OnClick, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	p.acceptSemi()
	return stmt, nil
}

// callArgs parses "( expr, expr, ... )" with an arbitrary count, including
// zero.
func (p *parser) callArgs() ([]ast.Expr, error) {
	if _, err := p.expect(KindLParen, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for {
		if p.peek().Kind == KindRParen {
			p.next()
			return args, nil
		}
		if len(args) > 0 {
			if _, err := p.expect(KindComma, "','"); err != nil {
				return nil, err
			}
		}
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

// rawStmt consumes one unrecognised body line and keeps its source text
// verbatim. Consumption is line-oriented: it stops at the end of the
// starting line, at a top-level semicolon, or before the window's closing
// brace, but follows balanced braces across lines so inline blocks survive.
func (p *parser) rawStmt() ast.UIStatement {
	first := p.next()
	start := first.Pos.Offset
	end := first.End
	line := first.Pos.Line
	depth := 0
	if first.Kind == KindLBrace {
		depth++
	}
	if first.Kind != KindSemicolon {
		for {
			t := p.peek()
			if t.Kind == KindEOF {
				break
			}
			if depth == 0 && (t.Kind == KindRBrace || t.Pos.Line != line) {
				break
			}
			p.next()
			end = t.End
			line = t.Pos.Line
			switch t.Kind {
			case KindLBrace:
				depth++
			case KindRBrace:
				depth--
			}
			if depth == 0 && t.Kind == KindSemicolon {
				break
			}
		}
	}
	return ast.RawStmt{Text: strings.TrimSpace(p.src[start:end])}
}
