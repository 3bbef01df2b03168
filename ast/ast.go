package ast

// Program is the parsed form of one Nova source file.
type Program struct {
	Statements []Statement
}

type Statement interface {
	isStatement()
}

// VarDecl is a "have"/"let" declaration with an optional initializer.
type VarDecl struct {
	Name string
	Init Expr // nil when declared without a value
}

func (VarDecl) isStatement() {}

// PrintStmt is a "put"/"print" statement.
type PrintStmt struct {
	Expr Expr
}

func (PrintStmt) isStatement() {}

// PauseStmt blocks until the host acknowledges. The optional argument is
// evaluated and discarded; it exists only for surface compatibility.
type PauseStmt struct {
	Expr Expr
}

func (PauseStmt) isStatement() {}

// IfStmt is a "when"/"otherwise" conditional.
type IfStmt struct {
	Cond Expr
	Then []Statement
	Else []Statement // nil when no otherwise block follows
}

func (IfStmt) isStatement() {}

type WhileStmt struct {
	Cond Expr
	Body []Statement
}

func (WhileStmt) isStatement() {}

// MessageStmt is a "ui_message" call. It is only meaningful to the code
// generator; the evaluator rejects it.
type MessageStmt struct {
	Expr Expr
}

func (MessageStmt) isStatement() {}

// WindowStmt is a top-level "ui_window" block. Only meaningful to the code
// generator; the evaluator rejects it.
type WindowStmt struct {
	Title  Expr
	Width  Expr
	Height Expr
	Body   []UIStatement
}

func (WindowStmt) isStatement() {}

// ExprStmt is a bare expression used in statement position.
type ExprStmt struct {
	Expr Expr
}

func (ExprStmt) isStatement() {}

// UIStatement is a statement form allowed inside a ui_window body.
type UIStatement interface {
	isUIStatement()
}

type SetIconStmt struct {
	Path string
}

func (SetIconStmt) isUIStatement() {}

// LabelStmt places a label. X/Y/W/H are nil when the position was omitted.
type LabelStmt struct {
	Text Expr
	X, Y Expr
	W, H Expr
}

func (LabelStmt) isUIStatement() {}

// ButtonStmt places a button. OnClick is nil when no handler block follows
// the header; handler bodies reuse the general statement grammar.
type ButtonStmt struct {
	Text    Expr
	X, Y    Expr
	OnClick []Statement
}

func (ButtonStmt) isUIStatement() {}

// StmtItem lifts a general statement into a window body (put, have,
// ui_message, pause and friends are all legal between widgets).
type StmtItem struct {
	Stmt Statement
}

func (StmtItem) isUIStatement() {}

// RawStmt is an unrecognized window-body line kept verbatim. The generator
// passes it through to the target language untouched.
type RawStmt struct {
	Text string
}

func (RawStmt) isUIStatement() {}

type Expr interface {
	isExpr()
}

type NumberLit struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func (NumberLit) isExpr() {}

type TextLit struct {
	Value string
}

func (TextLit) isExpr() {}

type VarRef struct {
	Name string
}

func (VarRef) isExpr() {}

// BinaryExpr holds one step of a flat left-to-right chain. The parser never
// applies operator precedence: "2 + 3 * 4" nests as (2+3)*4.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}

// AssignExpr is "name = value" in expression position. The parser only
// builds it when the accumulated left operand is a bare variable reference.
type AssignExpr struct {
	Name  string
	Value Expr
}

func (AssignExpr) isExpr() {}
