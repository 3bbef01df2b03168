package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalang/nova/ast"
)

func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	return prog.Statements[0]
}

func TestParseVarDecl(t *testing.T) {
	decl := parseOne(t, "have x = 5;").(ast.VarDecl)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, ast.NumberLit{Int: 5}, decl.Init)

	bare := parseOne(t, "let y").(ast.VarDecl)
	assert.Equal(t, "y", bare.Name)
	assert.Nil(t, bare.Init)
}

func TestParsePrintForms(t *testing.T) {
	withParens := parseOne(t, `put("hi")`).(ast.PrintStmt)
	assert.Equal(t, ast.TextLit{Value: "hi"}, withParens.Expr)

	bare := parseOne(t, `print 1 + 2`).(ast.PrintStmt)
	assert.Equal(t, ast.BinaryExpr{
		Op:    "+",
		Left:  ast.NumberLit{Int: 1},
		Right: ast.NumberLit{Int: 2},
	}, bare.Expr)
}

func TestParsePauseForms(t *testing.T) {
	for _, src := range []string{"pause", "pause()", "pause;"} {
		stmt := parseOne(t, src).(ast.PauseStmt)
		assert.Nil(t, stmt.Expr, src)
	}
	withArg := parseOne(t, `pause("any key")`).(ast.PauseStmt)
	assert.Equal(t, ast.TextLit{Value: "any key"}, withArg.Expr)
}

func TestParseFlatExpressionChain(t *testing.T) {
	// No precedence: the chain nests strictly left to right.
	stmt := parseOne(t, "put 2 + 3 * 4").(ast.PrintStmt)
	assert.Equal(t, ast.BinaryExpr{
		Op: "*",
		Left: ast.BinaryExpr{
			Op:    "+",
			Left:  ast.NumberLit{Int: 2},
			Right: ast.NumberLit{Int: 3},
		},
		Right: ast.NumberLit{Int: 4},
	}, stmt.Expr)
}

func TestParseParenthesesGroup(t *testing.T) {
	stmt := parseOne(t, "put 2 + (3 * 4)").(ast.PrintStmt)
	assert.Equal(t, ast.BinaryExpr{
		Op:   "+",
		Left: ast.NumberLit{Int: 2},
		Right: ast.BinaryExpr{
			Op:    "*",
			Left:  ast.NumberLit{Int: 3},
			Right: ast.NumberLit{Int: 4},
		},
	}, stmt.Expr)
}

func TestParseAssignmentExpression(t *testing.T) {
	stmt := parseOne(t, "i = i + 1").(ast.ExprStmt)
	assert.Equal(t, ast.AssignExpr{
		Name: "i",
		Value: ast.BinaryExpr{
			Op:    "+",
			Left:  ast.VarRef{Name: "i"},
			Right: ast.NumberLit{Int: 1},
		},
	}, stmt.Expr)
}

func TestParseAssignmentTargetMustBeVariable(t *testing.T) {
	_, err := Parse("1 + 2 = 3")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.False(t, perr.Incomplete)
}

func TestParseWhenOtherwise(t *testing.T) {
	stmt := parseOne(t, `when (1 < 2) { put "yes"; } otherwise { put "no"; }`).(ast.IfStmt)
	assert.Equal(t, ast.BinaryExpr{
		Op:    "<",
		Left:  ast.NumberLit{Int: 1},
		Right: ast.NumberLit{Int: 2},
	}, stmt.Cond)
	require.Len(t, stmt.Then, 1)
	require.Len(t, stmt.Else, 1)

	noElse := parseOne(t, `when (1) { put 1 }`).(ast.IfStmt)
	assert.Nil(t, noElse.Else)
}

func TestParseWhile(t *testing.T) {
	stmt := parseOne(t, `while (i < 3) { put i; i = i + 1; }`).(ast.WhileStmt)
	require.Len(t, stmt.Body, 2)
}

func TestParseIncompleteInput(t *testing.T) {
	for _, src := range []string{
		`when (1 < 2) {`,
		`while (1) { put 1;`,
		`put 1 +`,
		`have x =`,
	} {
		_, err := Parse(src)
		require.Error(t, err, src)
		assert.True(t, IsIncomplete(err), src)
	}
}

func TestParseMessage(t *testing.T) {
	stmt := parseOne(t, `ui_message("saved")`).(ast.MessageStmt)
	assert.Equal(t, ast.TextLit{Value: "saved"}, stmt.Expr)
}

func TestParseWindow(t *testing.T) {
	src := `
ui_window("My App", 640, 480) {
    set_icon("logo.png")
    label("Welcome", 10, 10)
    button("Go", 10, 40) {
        put "clicked";
    }
    button("Inert")
    put "built";
    Application.Exit()
}
`
	stmt := parseOne(t, src).(ast.WindowStmt)
	assert.Equal(t, ast.TextLit{Value: "My App"}, stmt.Title)
	assert.Equal(t, ast.NumberLit{Int: 640}, stmt.Width)
	assert.Equal(t, ast.NumberLit{Int: 480}, stmt.Height)
	require.Len(t, stmt.Body, 6)

	icon := stmt.Body[0].(ast.SetIconStmt)
	assert.Equal(t, "logo.png", icon.Path)

	lbl := stmt.Body[1].(ast.LabelStmt)
	assert.Equal(t, ast.TextLit{Value: "Welcome"}, lbl.Text)
	assert.Equal(t, ast.NumberLit{Int: 10}, lbl.X)
	assert.Nil(t, lbl.W)

	btn := stmt.Body[2].(ast.ButtonStmt)
	require.Len(t, btn.OnClick, 1)
	assert.IsType(t, ast.PrintStmt{}, btn.OnClick[0])

	inert := stmt.Body[3].(ast.ButtonStmt)
	assert.Nil(t, inert.OnClick)

	lifted := stmt.Body[4].(ast.StmtItem)
	assert.IsType(t, ast.PrintStmt{}, lifted.Stmt)

	raw := stmt.Body[5].(ast.RawStmt)
	assert.Equal(t, "Application.Exit()", raw.Text)
}

func TestParseWindowDefaults(t *testing.T) {
	stmt := parseOne(t, `ui_window() {}`).(ast.WindowStmt)
	assert.Equal(t, ast.TextLit{Value: "Nova App"}, stmt.Title)
	assert.Equal(t, ast.NumberLit{Int: 400}, stmt.Width)
	assert.Equal(t, ast.NumberLit{Int: 300}, stmt.Height)
	assert.Empty(t, stmt.Body)
}

func TestParseWindowOnlyAtTopLevel(t *testing.T) {
	// Nested occurrences fall through to the expression grammar, so the
	// identifier parses as a variable reference.
	prog, err := Parse("when (1) { ui_window }")
	require.NoError(t, err)
	body := prog.Statements[0].(ast.IfStmt).Then
	require.Len(t, body, 1)
	assert.Equal(t, ast.ExprStmt{Expr: ast.VarRef{Name: "ui_window"}}, body[0])
}

func TestParseRawLineKeepsSemicolon(t *testing.T) {
	src := "ui_window() {\n  MessageBox.Show(\"x\");\n}"
	stmt := parseOne(t, src).(ast.WindowStmt)
	require.Len(t, stmt.Body, 1)
	raw := stmt.Body[0].(ast.RawStmt)
	assert.Equal(t, `MessageBox.Show("x");`, raw.Text)
}
