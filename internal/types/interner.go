package types

import "github.com/nomisfailla/arctic/internal/ast"

// Interner maps a type expression's stable hash to the one semantic
// Type instance that expression denotes, giving reference equality to
// every pair of structurally equal ast.TypeExpr values (§4.8, §3's
// interning invariant). Its lifetime is bounded by the type checker that
// owns it.
type Interner struct {
	byHash   map[uint64]Type
	pointers map[Type]*PointerType
	none     Type
}

// NewInterner builds an interner pre-populated with the primitive type
// names, matching the checker-construction invariant in §3.
func NewInterner() *Interner {
	in := &Interner{byHash: make(map[uint64]Type), pointers: make(map[Type]*PointerType)}
	for _, name := range PrimitiveNames {
		spec := ast.NameType{Name: name}
		in.byHash[spec.Hash()] = Primitive(name)
	}
	in.none = in.byHash[ast.NameType{Name: "none"}.Hash()]
	return in
}

// Primitive returns the interned pointer for one of PrimitiveNames,
// letting callers outside this package (expression typing, mainly) get
// a reference-equal none/bool/u64/etc. without spelling out a NameType.
func (in *Interner) Primitive(name string) Type {
	return in.byHash[ast.NameType{Name: name}.Hash()]
}

// Get resolves a syntactic type expression to its canonical semantic
// type, interning pointer and function types on first sight. A Name spec
// that misses the interner is not constructed automatically — it
// signals an unknown type name by returning the None sentinel (§4.8,
// §9's note on this asymmetry).
func (in *Interner) Get(spec ast.TypeExpr) Type {
	if t, ok := in.byHash[spec.Hash()]; ok {
		return t
	}

	switch s := spec.(type) {
	case ast.NameType:
		return in.none
	case ast.PointerType:
		base := in.Get(s.Base)
		t := in.PointerTo(base)
		in.byHash[spec.Hash()] = t
		return t
	case ast.FuncType:
		args := make([]Type, len(s.Args))
		for i, a := range s.Args {
			args[i] = in.Get(a)
		}
		ret := in.Get(s.Ret)
		t := &FuncType{Ret: ret, Args: args}
		in.byHash[spec.Hash()] = t
		return t
	default:
		panic("internal: unhandled type expression variant")
	}
}

// PointerTo memoizes a pointer-to-base semantic type keyed on the
// already-resolved base Type, the case an address-of expression needs
// since it has a semantic operand type but no ast.PointerType spec to
// hash. Get's own PointerType case calls this too, so &x's pointer type
// and a declared *T's pointer type share the same cache and come out
// reference-equal for the same base, which every comparison in the
// checker relies on.
func (in *Interner) PointerTo(base Type) Type {
	if t, ok := in.pointers[base]; ok {
		return t
	}
	t := &PointerType{Base: base}
	in.pointers[base] = t
	return t
}
