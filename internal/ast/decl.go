package ast

import "github.com/nomisfailla/arctic/internal/source"

// Declaration is one of the top-level forms: an import, a namespace
// marker, a type alias, a free function or a struct.
type Declaration interface {
	isDeclaration()
	Pos() source.Position
	Equal(Declaration) bool
}

type ImportDecl struct {
	Path     string
	Position source.Position
}

func (ImportDecl) isDeclaration()          {}
func (d ImportDecl) Pos() source.Position  { return d.Position }
func (d ImportDecl) Equal(o Declaration) bool {
	v, ok := o.(ImportDecl)
	return ok && v.Path == d.Path
}

type NamespaceDecl struct {
	Name     string
	Position source.Position
}

func (NamespaceDecl) isDeclaration()          {}
func (d NamespaceDecl) Pos() source.Position  { return d.Position }
func (d NamespaceDecl) Equal(o Declaration) bool {
	v, ok := o.(NamespaceDecl)
	return ok && v.Name == d.Name
}

type AliasDecl struct {
	Name     string
	Type     TypeExpr
	Position source.Position
}

func (AliasDecl) isDeclaration()          {}
func (d AliasDecl) Pos() source.Position  { return d.Position }
func (d AliasDecl) Equal(o Declaration) bool {
	v, ok := o.(AliasDecl)
	return ok && v.Name == d.Name && v.Type.Equal(d.Type)
}

// Arg is a single `name: type` function parameter.
type Arg struct {
	Name string
	Type TypeExpr
}

func argsEqual(a, b []Arg) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if x.Name != b[i].Name || !x.Type.Equal(b[i].Type) {
			return false
		}
	}
	return true
}

type FuncDecl struct {
	Name     string
	Args     []Arg
	Ret      TypeExpr
	Body     Block
	Position source.Position
}

func (FuncDecl) isDeclaration()          {}
func (d FuncDecl) Pos() source.Position  { return d.Position }
func (d FuncDecl) Equal(o Declaration) bool {
	v, ok := o.(FuncDecl)
	if !ok || v.Name != d.Name || !argsEqual(v.Args, d.Args) {
		return false
	}
	if !typeExprEqual(d.Ret, v.Ret) {
		return false
	}
	return d.Body.Equal(v.Body)
}

// Field is a single `name: type;` struct field.
type Field struct {
	Name string
	Type TypeExpr
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if x.Name != b[i].Name || !x.Type.Equal(b[i].Type) {
			return false
		}
	}
	return true
}

type StructDecl struct {
	Name      string
	Fields    []Field
	Functions []FuncDecl
	Position  source.Position
}

func (StructDecl) isDeclaration()          {}
func (d StructDecl) Pos() source.Position  { return d.Position }
func (d StructDecl) Equal(o Declaration) bool {
	v, ok := o.(StructDecl)
	if !ok || v.Name != d.Name || !fieldsEqual(v.Fields, d.Fields) {
		return false
	}
	if len(v.Functions) != len(d.Functions) {
		return false
	}
	for i, f := range d.Functions {
		if !f.Equal(v.Functions[i]) {
			return false
		}
	}
	return true
}

// Module is the parser's top-level result: zero or more declarations.
type Module struct {
	Declarations []Declaration
}

func (m Module) Equal(o Module) bool {
	if len(m.Declarations) != len(o.Declarations) {
		return false
	}
	for i, d := range m.Declarations {
		if !d.Equal(o.Declarations[i]) {
			return false
		}
	}
	return true
}
