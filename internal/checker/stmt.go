package checker

import (
	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/source"
)

// checkFunc implements §4.9's statement-checking entry point: a single
// child scope of the global scope, seeded with the function's own
// arguments, with the body's top-level statements checked directly
// against that same scope — so a top-level let/const reusing an
// argument's name is a same-scope collision, not a shadow.
func (c *Checker) checkFunc(fn ast.FuncDecl) {
	sc := newScope(c.global)
	for _, a := range fn.Args {
		if !sc.add(a.Name, c.interns.Get(a.Type)) {
			c.semanticf(fn.Position, "variable name '%s' already taken", a.Name)
		}
	}
	c.checkStmts(sc, fn.Body)
}

// checkStmts checks every statement in body against sc directly, with no
// new scope of its own.
func (c *Checker) checkStmts(sc *scope, body ast.Block) {
	for _, stmt := range body {
		c.checkStmt(sc, stmt)
	}
}

// checkBlock checks a block's statements against a fresh child scope of
// sc, so that a nested block's own lets/consts shadow (but never
// collide with) an enclosing scope's — this is what if/elif/else bodies
// use, per §3's "shadowing across nested scopes is permitted" invariant;
// the function body itself is not a "block" in this sense, see
// checkFunc above.
func (c *Checker) checkBlock(parent *scope, body ast.Block) {
	sc := newScope(parent)
	c.checkStmts(sc, body)
}

func (c *Checker) checkStmt(sc *scope, stmt ast.Statement) {
	switch s := stmt.(type) {
	case ast.LetStmt:
		c.checkLetOrConst(sc, s.Name, s.Type, s.Init, s.Position)
	case ast.ConstStmt:
		c.checkLetOrConst(sc, s.Name, s.Type, s.Init, s.Position)
	case ast.ReturnStmt:
		if s.Expr != nil {
			c.typeOf(sc, s.Expr)
		}
	case ast.IfStmt:
		for _, b := range s.Branches {
			c.typeOf(sc, b.Cond)
			c.checkBlock(sc, b.Body)
		}
		if s.Else != nil {
			c.checkBlock(sc, s.Else)
		}
	case ast.ExprStmt:
		c.typeOf(sc, s.Expr)
	default:
		panic("internal: unhandled statement variant")
	}
}

// checkLetOrConst implements §4.9's four Let cases; Const follows the
// exact same shape (its grammar is identical to Let's, differing only in
// mutability, which this checker does not enforce).
func (c *Checker) checkLetOrConst(sc *scope, name string, declared ast.TypeExpr, init ast.Expression, pos source.Position) {
	switch {
	case declared == nil && init == nil:
		c.semanticf(pos, "cannot deduce variable type")
	case declared != nil && init != nil:
		declaredType := c.interns.Get(declared)
		initType := c.typeOf(sc, init)
		if declaredType != initType {
			c.semanticf(pos, "types cannot be assigned")
		}
		if !sc.add(name, declaredType) {
			c.semanticf(pos, "variable name '%s' already taken", name)
		}
	case init != nil:
		initType := c.typeOf(sc, init)
		if !sc.add(name, initType) {
			c.semanticf(pos, "variable name '%s' already taken", name)
		}
	default: // declared != nil && init == nil
		declaredType := c.interns.Get(declared)
		if !sc.add(name, declaredType) {
			c.semanticf(pos, "variable name '%s' already taken", name)
		}
	}
}
