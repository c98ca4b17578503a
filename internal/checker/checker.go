// Package checker is the scoped, interning type checker: expression
// typing plus statement-level rules, structured as a switch-on-variant
// walk the way yoru's types2.Checker dispatches expr/stmt, but built
// around this language's own ast and types packages (§4.9).
package checker

import (
	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/diag"
	"github.com/nomisfailla/arctic/internal/source"
	"github.com/nomisfailla/arctic/internal/types"
)

// Checker holds the interner and the accumulated diagnostic list for one
// Check call. Each Check call builds its own Checker, matching
// §5's "no shared mutable state across components" rule.
type Checker struct {
	file    string
	global  *scope
	interns *types.Interner
	diags   diag.List
}

// Check type-checks every top-level function (and every member function
// of every struct) against a fresh global scope, returning the
// accumulated diagnostics.
func Check(file string, mod ast.Module) diag.List {
	c := &Checker{
		file:    file,
		global:  newScope(nil),
		interns: types.NewInterner(),
	}
	c.registerGlobals(mod)
	for _, d := range mod.Declarations {
		switch decl := d.(type) {
		case ast.FuncDecl:
			c.checkFunc(decl)
		case ast.StructDecl:
			for _, fn := range decl.Functions {
				c.checkFunc(fn)
			}
		}
	}
	return c.diags
}

// registerGlobals seeds the global scope with every free function's
// signature so call sites can resolve forward references regardless of
// declaration order.
func (c *Checker) registerGlobals(mod ast.Module) {
	for _, d := range mod.Declarations {
		if fn, ok := d.(ast.FuncDecl); ok {
			c.global.add(fn.Name, c.funcSigType(fn))
		}
	}
}

func (c *Checker) funcSigType(fn ast.FuncDecl) types.Type {
	argExprs := make([]ast.TypeExpr, len(fn.Args))
	for i, a := range fn.Args {
		argExprs[i] = a.Type
	}
	return c.interns.Get(ast.FuncType{Args: argExprs, Ret: fn.Ret, Position: fn.Position})
}

func (c *Checker) semanticf(pos source.Position, format string, args ...any) {
	c.diags.Add(diag.New(diag.Semantic, c.file, pos, format, args...))
}
