package checker

import (
	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/types"
)

// typeOf types an expression against sc, never failing hard: on any
// error it records a diagnostic and returns the None sentinel, which
// keeps cascading failures bounded (§4.9, §7).
func (c *Checker) typeOf(sc *scope, expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case ast.IntegerLit:
		return c.interns.Primitive("u64")
	case ast.FloatLit:
		return c.interns.Primitive("f64")
	case ast.BooleanLit:
		return c.interns.Primitive("bool")
	case ast.NameExpr:
		return c.typeOfName(sc, e)
	case ast.BinaryExpr:
		return c.typeOfBinary(sc, e)
	case ast.UnaryExpr:
		return c.typeOfUnary(sc, e)
	case ast.CallExpr:
		return c.typeOfCall(sc, e)
	case ast.IndexExpr:
		return c.typeOfIndex(sc, e)
	case ast.AccessExpr:
		c.semanticf(e.Position, "unimplemented: field access is not yet type-checked")
		return c.interns.Primitive("none")
	case ast.CastExpr:
		return c.typeOfCast(sc, e)
	default:
		panic("internal: unhandled expression variant")
	}
}

func (c *Checker) typeOfName(sc *scope, e ast.NameExpr) types.Type {
	t, ok := sc.lookup(e.Name)
	if !ok {
		c.semanticf(e.Position, "could not find variable with name %s", e.Name)
		return c.interns.Primitive("none")
	}
	return t
}

// isComparison reports whether op is one of the operators whose result
// is always bool regardless of operand type — the fix to §9's open
// question ("the correct systems-language behavior is bool").
func isComparison(op ast.BinaryOp) bool {
	switch op {
	case ast.Lt, ast.Le, ast.Gt, ast.Ge, ast.Eq, ast.Neq, ast.LAnd, ast.LOr:
		return true
	default:
		return false
	}
}

func (c *Checker) typeOfBinary(sc *scope, e ast.BinaryExpr) types.Type {
	lhs := c.typeOf(sc, e.Lhs)
	rhs := c.typeOf(sc, e.Rhs)

	if lhs != rhs {
		c.semanticf(e.Position, "operator %s not implemented for types %s and %s", e.Op, lhs, rhs)
		return c.interns.Primitive("none")
	}
	if isComparison(e.Op) {
		return c.interns.Primitive("bool")
	}
	return lhs
}

func (c *Checker) typeOfUnary(sc *scope, e ast.UnaryExpr) types.Type {
	operand := c.typeOf(sc, e.Operand)

	switch e.Op {
	case ast.LNot:
		return c.interns.Primitive("bool")
	case ast.AddrOf:
		return c.interns.PointerTo(operand)
	case ast.Deref:
		if ptr, ok := operand.(*types.PointerType); ok {
			return ptr.Base
		}
		c.semanticf(e.Position, "cannot dereference a value of type %s", operand)
		return c.interns.Primitive("none")
	default: // Pos, Neg, BNot, Inc, Dec: arithmetic on the operand's own type
		return operand
	}
}

func (c *Checker) typeOfCall(sc *scope, e ast.CallExpr) types.Type {
	calleeType := c.typeOf(sc, e.Callee)
	fn, ok := calleeType.(*types.FuncType)
	if !ok {
		c.semanticf(e.Position, "object is not callable")
		return c.interns.Primitive("none")
	}

	if len(e.Args) != len(fn.Args) {
		c.semanticf(e.Position, "incorrect number of parameters passed to function, expected %d, got %d", len(fn.Args), len(e.Args))
		return fn.Ret
	}

	for i, arg := range e.Args {
		argType := c.typeOf(sc, arg)
		if argType != fn.Args[i] {
			c.semanticf(arg.Pos(), "parameter type mismatch at index %d", i)
		}
	}

	return fn.Ret
}

// typeOfIndex gives Index a real rule even though §9 only requires it
// stay total: indexing a pointer yields the pointee type, the natural
// reading of a[i] as pointer arithmetic in a language with no distinct
// array semantic type (§3's Type variant list has no Array).
func (c *Checker) typeOfIndex(sc *scope, e ast.IndexExpr) types.Type {
	lhs := c.typeOf(sc, e.Lhs)
	indexType := c.typeOf(sc, e.Index)
	if _, ok := indexType.(*types.IntegerType); !ok {
		c.semanticf(e.Index.Pos(), "index must be an integer")
	}
	ptr, ok := lhs.(*types.PointerType)
	if !ok {
		c.semanticf(e.Position, "object is not indexable")
		return c.interns.Primitive("none")
	}
	return ptr.Base
}

// typeOfCast gives Cast a real rule too: the result is simply the
// interned target type, with the source expression still typed so its
// own diagnostics surface.
func (c *Checker) typeOfCast(sc *scope, e ast.CastExpr) types.Type {
	c.typeOf(sc, e.Lhs)
	return c.interns.Get(e.Type)
}
