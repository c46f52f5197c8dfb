// Package ast defines the minimal surface tree the inferencer (internal/infer)
// and the lowerer (internal/lower) consume. It carries no lexing or parsing
// logic: it is the data contract a front end is expected to produce.
package ast

import "fmt"

// Node is the base interface every AST node implements.
type Node interface {
	String() string
	Position() Pos
}

// Pos is a single point in source text.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a half-open range in source text, used for diagnostics.
type Span struct {
	Start Pos
	End   Pos
}

// Program is the root node: an ordered sequence of top-level declarations.
type Program struct {
	Decls []Decl
}

func (p *Program) String() string   { return "Program" }
func (p *Program) Position() Pos    { return Pos{} }

// Decl is a top-level declaration: either a function or a data type.
type Decl interface {
	Node
	declNode()
}

// FuncDecl binds Name to a (possibly polymorphic) function value.
//
// Sig is optional: when nil, the full type is inferred; when present, it
// pins the declaration's principal type and the inferencer checks the body
// against it instead of generalizing a fresh one.
type FuncDecl struct {
	Name   string
	Params []string
	Sig    *SchemeSyntax
	Body   Expr
	Pos    Pos
}

func (d *FuncDecl) declNode()       {}
func (d *FuncDecl) Position() Pos   { return d.Pos }
func (d *FuncDecl) String() string  { return "func " + d.Name }

// CtorDecl is one constructor of a DataDecl, e.g. `Cons a (List a)`.
type CtorDecl struct {
	Name   string
	Fields []TypeSyntax
	Pos    Pos
}

// DataDecl declares an algebraic data type and its constructors.
type DataDecl struct {
	Name       string
	TypeParams []string
	Ctors      []CtorDecl
	Pos        Pos
}

func (d *DataDecl) declNode()      {}
func (d *DataDecl) Position() Pos  { return d.Pos }
func (d *DataDecl) String() string { return "data " + d.Name }

// TypeSyntax is the surface syntax for a type annotation (distinct from the
// inferencer's own internal Type representation in internal/types).
type TypeSyntax interface {
	typeSyntaxNode()
	String() string
}

type TEVar struct{ Name string }
type TECon struct{ Name string }
type TEApp struct{ Func, Arg TypeSyntax }
type TEFun struct{ Param, Return TypeSyntax }
type TEList struct{ Elem TypeSyntax }
type TETuple struct{ Items []TypeSyntax }

func (TEVar) typeSyntaxNode()   {}
func (TECon) typeSyntaxNode()   {}
func (TEApp) typeSyntaxNode()   {}
func (TEFun) typeSyntaxNode()   {}
func (TEList) typeSyntaxNode()  {}
func (TETuple) typeSyntaxNode() {}

func (t TEVar) String() string  { return t.Name }
func (t TECon) String() string  { return t.Name }
func (t TEApp) String() string  { return t.Func.String() + " " + t.Arg.String() }
func (t TEFun) String() string  { return t.Param.String() + " -> " + t.Return.String() }
func (t TEList) String() string { return "[" + t.Elem.String() + "]" }
func (t TETuple) String() string {
	s := "("
	for i, it := range t.Items {
		if i > 0 {
			s += ", "
		}
		s += it.String()
	}
	return s + ")"
}

// ConstraintSyntax is a surface class constraint, e.g. `Num a`.
type ConstraintSyntax struct {
	ClassName string
	TypeVar   string
}

// SchemeSyntax is a surface polymorphic type signature: `(Num a) => a -> a`.
type SchemeSyntax struct {
	Constraints []ConstraintSyntax
	Type        TypeSyntax
}
