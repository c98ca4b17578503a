// Package types is the semantic type representation used by the checker,
// distinct from the syntactic ast.TypeExpr. Identity is by reference
// after interning (§3): every Type value handed out by an Interner is a
// pointer, so two equal type expressions intern to the exact same
// pointer and can be compared with plain ==. Modeled as a small
// tagged-interface variant the way yoru's internal/types models
// Basic/Pointer/Signature, and the way nar-lang's typed.Type variants
// carry their own EqualsTo.
package types

import "fmt"

type Type interface {
	isType()
	String() string
}

// NoneType is the sentinel substituted for any expression whose type
// could not be determined, so that cascading failures stay bounded (§7).
type NoneType struct{}

func (*NoneType) isType()        {}
func (*NoneType) String() string { return "none" }

type BoolType struct{}

func (*BoolType) isType()        {}
func (*BoolType) String() string { return "bool" }

// IntegerType is one of the eight i8..u64 primitives.
type IntegerType struct {
	Signed bool
	Width  int // 8, 16, 32 or 64
}

func (*IntegerType) isType() {}
func (t *IntegerType) String() string {
	if t.Signed {
		return fmt.Sprintf("i%d", t.Width)
	}
	return fmt.Sprintf("u%d", t.Width)
}

// FloatType is one of the two f32/f64 primitives.
type FloatType struct {
	Width int // 32 or 64
}

func (*FloatType) isType()          {}
func (t *FloatType) String() string { return fmt.Sprintf("f%d", t.Width) }

type PointerType struct {
	Base Type
}

func (*PointerType) isType()          {}
func (t *PointerType) String() string { return "*" + t.Base.String() }

type FuncType struct {
	Ret  Type
	Args []Type
}

func (*FuncType) isType() {}
func (t *FuncType) String() string {
	s := "("
	for i, a := range t.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + "): " + t.Ret.String()
}

// PrimitiveNames are pre-populated in the interner at checker
// construction (§3's invariant list).
var PrimitiveNames = []string{
	"none", "bool", "f32", "f64",
	"u8", "u16", "u32", "u64",
	"i8", "i16", "i32", "i64",
}

// Primitive constructs the canonical semantic type for one of
// PrimitiveNames; it panics on any other name, since callers are
// expected to only invoke it while seeding the interner (or via the
// interner itself, which is the only correct way to get a primitive's
// interned pointer outside this package).
func Primitive(name string) Type {
	switch name {
	case "none":
		return &NoneType{}
	case "bool":
		return &BoolType{}
	case "f32":
		return &FloatType{Width: 32}
	case "f64":
		return &FloatType{Width: 64}
	case "u8":
		return &IntegerType{Signed: false, Width: 8}
	case "u16":
		return &IntegerType{Signed: false, Width: 16}
	case "u32":
		return &IntegerType{Signed: false, Width: 32}
	case "u64":
		return &IntegerType{Signed: false, Width: 64}
	case "i8":
		return &IntegerType{Signed: true, Width: 8}
	case "i16":
		return &IntegerType{Signed: true, Width: 16}
	case "i32":
		return &IntegerType{Signed: true, Width: 32}
	case "i64":
		return &IntegerType{Signed: true, Width: 64}
	default:
		panic("internal: not a primitive type name: " + name)
	}
}
