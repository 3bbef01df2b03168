package nruntime

import (
	"github.com/novalang/nova/ast"
)

// AckProvider blocks until the user acknowledges a pause. The interpreter
// has no console dependency of its own; hosts supply one. A nil provider
// makes pause return immediately.
type AckProvider func()

// Interp executes a parsed program against one flat, mutable environment.
// The environment survives across Run calls, which is what lets a REPL
// keep state between inputs.
type Interp struct {
	env     map[string]Value
	outputs []string
	hook    func(line string)
	ack     AckProvider
}

func New() *Interp {
	return &Interp{env: map[string]Value{}}
}

// SetOutputHook forwards each printed line to fn as it is produced, in
// addition to the accumulated slice Run returns.
func (in *Interp) SetOutputHook(fn func(line string)) {
	in.hook = fn
}

func (in *Interp) SetAckProvider(fn AckProvider) {
	in.ack = fn
}

// Lookup reads a variable from the environment.
func (in *Interp) Lookup(name string) (Value, bool) {
	v, ok := in.env[name]
	return v, ok
}

// Run walks the program's statements in order. The first error stops the
// run; lines printed before the failure are still returned.
func (in *Interp) Run(prog *ast.Program) ([]string, error) {
	in.outputs = nil
	err := in.runStatements(prog.Statements)
	return in.outputs, err
}

func (in *Interp) runStatements(stmts []ast.Statement) error {
	for _, st := range stmts {
		if err := in.runStatement(st); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) runStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case ast.VarDecl:
		// Re-declaring an existing name overwrites it; there is only one
		// scope.
		value := Unset()
		if s.Init != nil {
			v, err := in.evalExpr(s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		in.env[s.Name] = value
		return nil
	case ast.PrintStmt:
		v, err := in.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		in.emit(v.String())
		return nil
	case ast.PauseStmt:
		if s.Expr != nil {
			if _, err := in.evalExpr(s.Expr); err != nil {
				return err
			}
		}
		if in.ack != nil {
			in.ack()
		}
		return nil
	case ast.IfStmt:
		cond, err := in.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return in.runStatements(s.Then)
		}
		return in.runStatements(s.Else)
	case ast.WhileStmt:
		// The body was parsed exactly once; each iteration re-evaluates
		// only the cached condition expression.
		for {
			cond, err := in.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := in.runStatements(s.Body); err != nil {
				return err
			}
		}
	case ast.MessageStmt:
		return undefined("ui_message is not supported by the interpreter")
	case ast.WindowStmt:
		return undefined("ui_window is not supported by the interpreter")
	case ast.ExprStmt:
		_, err := in.evalExpr(s.Expr)
		return err
	default:
		return undefined("unsupported statement %T", stmt)
	}
}

func (in *Interp) evalExpr(e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case ast.NumberLit:
		if ex.IsFloat {
			return Float(ex.Float), nil
		}
		return Int(ex.Int), nil
	case ast.TextLit:
		return Text(ex.Value), nil
	case ast.VarRef:
		// Reading a name that was never declared yields zero rather than
		// failing.
		if v, ok := in.env[ex.Name]; ok {
			return v, nil
		}
		return Int(0), nil
	case ast.BinaryExpr:
		left, err := in.evalExpr(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := in.evalExpr(ex.Right)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(ex.Op, left, right)
	case ast.AssignExpr:
		// Assignment is an expression: it stores the value and yields it,
		// creating the binding if the name was never declared.
		v, err := in.evalExpr(ex.Value)
		if err != nil {
			return Value{}, err
		}
		in.env[ex.Name] = v
		return v, nil
	default:
		return Value{}, undefined("unsupported expression %T", e)
	}
}

func (in *Interp) emit(line string) {
	in.outputs = append(in.outputs, line)
	if in.hook != nil {
		in.hook(line)
	}
}
