package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/lexer"
)

func parse(t *testing.T, src string) (ast.Module, []string) {
	t.Helper()
	toks, lexDiags := lexer.Scan("test", []byte(src))
	if len(lexDiags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %v", lexDiags)
	}
	mod, diags := ParseModule("test", toks)
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.Message
	}
	return mod, msgs
}

func TestParseFunctionWithArithmeticBody(t *testing.T) {
	mod, diags := parse(t, `
func add(a: i64, b: i64): i64 {
	return a + b;
}
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(mod.Declarations) != 1 {
		t.Fatalf("got %d declarations, want 1", len(mod.Declarations))
	}

	fn, ok := mod.Declarations[0].(ast.FuncDecl)
	if !ok {
		t.Fatalf("declaration is %T, want ast.FuncDecl", mod.Declarations[0])
	}
	if fn.Name != "add" {
		t.Fatalf("func name = %q", fn.Name)
	}
	if len(fn.Args) != 2 || fn.Args[0].Name != "a" || fn.Args[1].Name != "b" {
		t.Fatalf("func args = %+v", fn.Args)
	}

	want := ast.ReturnStmt{Expr: ast.BinaryExpr{
		Op:  ast.Add,
		Lhs: ast.NameExpr{Name: "a"},
		Rhs: ast.NameExpr{Name: "b"},
	}}
	if len(fn.Body) != 1 || !fn.Body[0].Equal(want) {
		t.Fatalf("body = %+v, want one return statement equal to %+v", fn.Body, want)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	mod, diags := parse(t, `
func f(): none {
	a = b = c;
}
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	fn := mod.Declarations[0].(ast.FuncDecl)
	exprStmt := fn.Body[0].(ast.ExprStmt)

	want := ast.BinaryExpr{
		Op:  ast.Assign,
		Lhs: ast.NameExpr{Name: "a"},
		Rhs: ast.BinaryExpr{Op: ast.Assign, Lhs: ast.NameExpr{Name: "b"}, Rhs: ast.NameExpr{Name: "c"}},
	}
	if !exprStmt.Expr.Equal(want) {
		t.Fatalf("got %+v, want right-associative %+v", exprStmt.Expr, want)
	}
}

func TestParsePrecedenceMulBindsTighterThanAdd(t *testing.T) {
	mod, _ := parse(t, `
func f(): none {
	1 + 2 * 3;
}
`)
	fn := mod.Declarations[0].(ast.FuncDecl)
	exprStmt := fn.Body[0].(ast.ExprStmt)

	want := ast.BinaryExpr{
		Op:  ast.Add,
		Lhs: ast.IntegerLit{Value: 1},
		Rhs: ast.BinaryExpr{Op: ast.Mul, Lhs: ast.IntegerLit{Value: 2}, Rhs: ast.IntegerLit{Value: 3}},
	}
	if !exprStmt.Expr.Equal(want) {
		t.Fatalf("got %+v, want %+v", exprStmt.Expr, want)
	}
}

func TestParseCastIsLeftAssociative(t *testing.T) {
	mod, _ := parse(t, `
func f(): none {
	x as u32 as u8;
}
`)
	fn := mod.Declarations[0].(ast.FuncDecl)
	exprStmt := fn.Body[0].(ast.ExprStmt)

	want := ast.CastExpr{
		Lhs:  ast.CastExpr{Lhs: ast.NameExpr{Name: "x"}, Type: ast.NameType{Name: "u32"}},
		Type: ast.NameType{Name: "u8"},
	}
	if !exprStmt.Expr.Equal(want) {
		t.Fatalf("got %+v, want %+v", exprStmt.Expr, want)
	}
}

func TestParseStructWithFieldsAndMethod(t *testing.T) {
	mod, diags := parse(t, `
struct Point {
	x: i64;
	y: i64;

	func sum(self: Point): i64 {
		return self.x + self.y;
	}
}
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	st, ok := mod.Declarations[0].(ast.StructDecl)
	if !ok {
		t.Fatalf("declaration is %T, want ast.StructDecl", mod.Declarations[0])
	}
	if len(st.Fields) != 2 || len(st.Functions) != 1 {
		t.Fatalf("fields=%d functions=%d, want 2 and 1", len(st.Fields), len(st.Functions))
	}
}

func TestParseIfElifElse(t *testing.T) {
	mod, diags := parse(t, `
func f(x: i64): none {
	if x == 0 {
		return;
	} elif x == 1 {
		return;
	} else {
		return;
	}
}
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	fn := mod.Declarations[0].(ast.FuncDecl)
	ifStmt, ok := fn.Body[0].(ast.IfStmt)
	if !ok {
		t.Fatalf("statement is %T, want ast.IfStmt", fn.Body[0])
	}
	if len(ifStmt.Branches) != 2 {
		t.Fatalf("got %d branches, want 2 (if + elif)", len(ifStmt.Branches))
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else clause")
	}
}

func TestParseUnexpectedTokenProducesOneSyntacticDiagnostic(t *testing.T) {
	_, diags := parse(t, `func f(: i64 {}`)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(diags), diags)
	}
}

func TestParseDuplicateArgNameFails(t *testing.T) {
	_, diags := parse(t, `func f(a: i64, a: i64): none {}`)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1 duplicate-name diagnostic: %v", len(diags), diags)
	}
}

func TestParseDuplicateFieldNameFails(t *testing.T) {
	_, diags := parse(t, `
struct Point {
	x: i64;
	x: i64;
}
`)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1 duplicate-name diagnostic: %v", len(diags), diags)
	}
}

func TestParseMissingClosingBraceFails(t *testing.T) {
	_, diags := parse(t, `func f(): none {`)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(diags), diags)
	}
}

func TestAstEqualIsStructural(t *testing.T) {
	a := ast.NameExpr{Name: "x"}
	b := ast.NameExpr{Name: "x"}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("structurally identical nodes differ: %s", diff)
	}
}
