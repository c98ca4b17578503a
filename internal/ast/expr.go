package ast

import "github.com/nomisfailla/arctic/internal/source"

// Expression is one of the grammar's expression forms. Equal is
// content-only: two expressions parsed from different positions but
// with the same shape compare equal, which is what the parser's
// round-trip tests (§8.5) rely on.
type Expression interface {
	isExpression()
	Pos() source.Position
	Equal(Expression) bool
}

type IntegerLit struct {
	Value    uint64
	Position source.Position
}

func (IntegerLit) isExpression()            {}
func (e IntegerLit) Pos() source.Position   { return e.Position }
func (e IntegerLit) Equal(o Expression) bool {
	v, ok := o.(IntegerLit)
	return ok && v.Value == e.Value
}

type FloatLit struct {
	Value    float64
	Position source.Position
}

func (FloatLit) isExpression()           {}
func (e FloatLit) Pos() source.Position  { return e.Position }
func (e FloatLit) Equal(o Expression) bool {
	v, ok := o.(FloatLit)
	return ok && v.Value == e.Value
}

type BooleanLit struct {
	Value    bool
	Position source.Position
}

func (BooleanLit) isExpression()           {}
func (e BooleanLit) Pos() source.Position  { return e.Position }
func (e BooleanLit) Equal(o Expression) bool {
	v, ok := o.(BooleanLit)
	return ok && v.Value == e.Value
}

type NameExpr struct {
	Name     string
	Position source.Position
}

func (NameExpr) isExpression()           {}
func (e NameExpr) Pos() source.Position  { return e.Position }
func (e NameExpr) Equal(o Expression) bool {
	v, ok := o.(NameExpr)
	return ok && v.Name == e.Name
}

type BinaryExpr struct {
	Op       BinaryOp
	Lhs, Rhs Expression
	Position source.Position
}

func (BinaryExpr) isExpression()          {}
func (e BinaryExpr) Pos() source.Position { return e.Position }
func (e BinaryExpr) Equal(o Expression) bool {
	v, ok := o.(BinaryExpr)
	return ok && v.Op == e.Op && v.Lhs.Equal(e.Lhs) && v.Rhs.Equal(e.Rhs)
}

type UnaryExpr struct {
	Op       UnaryOp
	Postfix  bool
	Operand  Expression
	Position source.Position
}

func (UnaryExpr) isExpression()          {}
func (e UnaryExpr) Pos() source.Position { return e.Position }
func (e UnaryExpr) Equal(o Expression) bool {
	v, ok := o.(UnaryExpr)
	return ok && v.Op == e.Op && v.Postfix == e.Postfix && v.Operand.Equal(e.Operand)
}

type CallExpr struct {
	Callee   Expression
	Args     []Expression
	Position source.Position
}

func (CallExpr) isExpression()          {}
func (e CallExpr) Pos() source.Position { return e.Position }
func (e CallExpr) Equal(o Expression) bool {
	v, ok := o.(CallExpr)
	if !ok || !v.Callee.Equal(e.Callee) || len(v.Args) != len(e.Args) {
		return false
	}
	for i, a := range e.Args {
		if !a.Equal(v.Args[i]) {
			return false
		}
	}
	return true
}

type IndexExpr struct {
	Lhs, Index Expression
	Position   source.Position
}

func (IndexExpr) isExpression()          {}
func (e IndexExpr) Pos() source.Position { return e.Position }
func (e IndexExpr) Equal(o Expression) bool {
	v, ok := o.(IndexExpr)
	return ok && v.Lhs.Equal(e.Lhs) && v.Index.Equal(e.Index)
}

type AccessExpr struct {
	Lhs      Expression
	Field    string
	Position source.Position
}

func (AccessExpr) isExpression()          {}
func (e AccessExpr) Pos() source.Position { return e.Position }
func (e AccessExpr) Equal(o Expression) bool {
	v, ok := o.(AccessExpr)
	return ok && v.Lhs.Equal(e.Lhs) && v.Field == e.Field
}

type CastExpr struct {
	Lhs      Expression
	Type     TypeExpr
	Position source.Position
}

func (CastExpr) isExpression()          {}
func (e CastExpr) Pos() source.Position { return e.Position }
func (e CastExpr) Equal(o Expression) bool {
	v, ok := o.(CastExpr)
	return ok && v.Lhs.Equal(e.Lhs) && v.Type.Equal(e.Type)
}
