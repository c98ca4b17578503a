package ast

import (
	"hash/fnv"

	"github.com/nomisfailla/arctic/internal/source"
)

// TypeExpr is the syntactic form of a type as written in source: a name,
// a pointer-to another type expression, or a function signature. Equal
// and Hash are content-only (position-independent), since two type
// expressions written in different places that denote the same type must
// intern to the same semantic type (§4.8's invariant).
type TypeExpr interface {
	isTypeExpr()
	Pos() source.Position
	Equal(TypeExpr) bool
	Hash() uint64
}

type NameType struct {
	Name     string
	Position source.Position
}

func (NameType) isTypeExpr()            {}
func (t NameType) Pos() source.Position { return t.Position }

func (t NameType) Equal(other TypeExpr) bool {
	o, ok := other.(NameType)
	return ok && o.Name == t.Name
}

func (t NameType) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'N'})
	h.Write([]byte(t.Name))
	return h.Sum64()
}

type PointerType struct {
	Base     TypeExpr
	Position source.Position
}

func (PointerType) isTypeExpr()            {}
func (t PointerType) Pos() source.Position { return t.Position }

func (t PointerType) Equal(other TypeExpr) bool {
	o, ok := other.(PointerType)
	return ok && t.Base.Equal(o.Base)
}

func (t PointerType) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'P'})
	writeUint64(h, t.Base.Hash())
	return h.Sum64()
}

type FuncType struct {
	Args     []TypeExpr
	Ret      TypeExpr
	Position source.Position
}

func (FuncType) isTypeExpr()            {}
func (t FuncType) Pos() source.Position { return t.Position }

func (t FuncType) Equal(other TypeExpr) bool {
	o, ok := other.(FuncType)
	if !ok || len(t.Args) != len(o.Args) {
		return false
	}
	for i, a := range t.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return t.Ret.Equal(o.Ret)
}

func (t FuncType) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'F'})
	for _, a := range t.Args {
		writeUint64(h, a.Hash())
	}
	writeUint64(h, t.Ret.Hash())
	return h.Sum64()
}

func writeUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	h.Write(b[:])
}
