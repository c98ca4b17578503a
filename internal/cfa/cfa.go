// Package cfa is the control-flow termination analyzer: for each
// top-level function it checks that every path returns a value and
// flags statements that can never execute. It is structured as a
// switch-on-variant walk over the statement tree, the idiom nar-lang's
// checker.go uses for its expression walk, generalized here to
// ast.Statement/ast.Block (§4.6).
package cfa

import (
	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/diag"
)

// Analyze runs the termination check over every function declared at
// module scope (and, recursively, every member function of a struct),
// accumulating diagnostics. It never aborts early: one function's
// defects do not hide another's.
func Analyze(file string, mod ast.Module) diag.List {
	var diags diag.List
	for _, d := range mod.Declarations {
		switch decl := d.(type) {
		case ast.FuncDecl:
			analyzeFunc(file, decl, &diags)
		case ast.StructDecl:
			for _, fn := range decl.Functions {
				analyzeFunc(file, fn, &diags)
			}
		}
	}
	return diags
}

func analyzeFunc(file string, fn ast.FuncDecl, diags *diag.List) {
	checkUnreachable(file, fn.Body, diags)
	if !blockTerminates(fn.Body) {
		diags.Add(diag.New(diag.Semantic, file, fn.Position, "not all control paths return a value"))
	}
}

// checkUnreachable flags every statement following the first
// terminating statement in a block, recursing into if-branches so
// nested dead code is caught too.
func checkUnreachable(file string, body ast.Block, diags *diag.List) {
	terminatedAt := -1
	for i, stmt := range body {
		if terminatedAt == -1 {
			if ifStmt, ok := stmt.(ast.IfStmt); ok {
				for _, b := range ifStmt.Branches {
					checkUnreachable(file, b.Body, diags)
				}
				checkUnreachable(file, ifStmt.Else, diags)
			}
			if statementTerminates(stmt) {
				terminatedAt = i
			}
			continue
		}
		diags.Add(diag.New(diag.Semantic, file, stmt.Pos(), "unreachable code"))
	}
}

// statementTerminates reports whether control cannot fall through past
// this statement, per §4.6: a Return always terminates; an If
// terminates only if it has an else and every branch, the else
// included, terminates; any other statement kind does not.
func statementTerminates(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case ast.ReturnStmt:
		return true
	case ast.IfStmt:
		if s.Else == nil {
			return false
		}
		for _, b := range s.Branches {
			if !blockTerminates(b.Body) {
				return false
			}
		}
		return blockTerminates(s.Else)
	default:
		return false
	}
}

// blockTerminates reports whether some statement in the block
// terminates — not necessarily the last one, since everything after it
// is unreachable rather than making the block itself non-terminating.
func blockTerminates(body ast.Block) bool {
	for _, stmt := range body {
		if statementTerminates(stmt) {
			return true
		}
	}
	return false
}
