// Package nova is the front door to the Nova language engine: parse source
// once, then either interpret the tree directly or lower it to C#.
package nova

import (
	"github.com/novalang/nova/ast"
	"github.com/novalang/nova/codegen"
	"github.com/novalang/nova/parser"
	nruntime "github.com/novalang/nova/runtime"
)

// Parse returns the AST for tooling use.
func Parse(src string) (*ast.Program, error) {
	return parser.Parse(src)
}

// NewInterp parses src and builds an interpreter holding a fresh
// environment. Callers wire output and acknowledgment hooks before running.
func NewInterp(src string) (*nruntime.Interp, *ast.Program, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	return nruntime.New(), prog, nil
}

// Run parses and interprets src in one go, returning the printed lines.
func Run(src string) ([]string, error) {
	in, prog, err := NewInterp(src)
	if err != nil {
		return nil, err
	}
	return in.Run(prog)
}

// Translate parses src and lowers it to C# source plus the metadata a host
// needs to build it (capability flags, icon staging work).
func Translate(src, className string) (string, codegen.Metadata, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return "", codegen.Metadata{}, err
	}
	code, meta := codegen.Generate(prog, className)
	return code, meta, nil
}
