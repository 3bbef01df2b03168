package codegen

import (
	"strconv"
	"strings"

	"github.com/novalang/nova/ast"
)

// renderExpr turns an expression tree back into C# source text. Nested
// operands are parenthesised so the flat left-to-right grouping the parser
// produced survives C#'s own precedence rules: (2+3)*4 stays (2+3)*4.
func renderExpr(e ast.Expr) string {
	switch ex := e.(type) {
	case ast.NumberLit:
		if ex.IsFloat {
			return renderFloat(ex.Float)
		}
		return strconv.FormatInt(ex.Int, 10)
	case ast.TextLit:
		return quoteText(ex.Value)
	case ast.VarRef:
		return ex.Name
	case ast.BinaryExpr:
		return renderOperand(ex.Left) + " " + ex.Op + " " + renderOperand(ex.Right)
	case ast.AssignExpr:
		return ex.Name + " = " + renderExpr(ex.Value)
	default:
		return ""
	}
}

func renderOperand(e ast.Expr) string {
	switch e.(type) {
	case ast.BinaryExpr, ast.AssignExpr:
		return "(" + renderExpr(e) + ")"
	default:
		return renderExpr(e)
	}
}

// renderFloat keeps the literal a C# double even when the fraction is zero.
func renderFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteText emits a C# string literal, escaping anything that would break
// out of the quotes.
func quoteText(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
