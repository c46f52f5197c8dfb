package core

import "github.com/sunholo/typelang/internal/ast"

// Expr is a Core IR expression node (spec §3.3). Every variant carries its
// own ValueTy; there is no untyped node, unlike the teacher's tree-walking
// Core which defers typing to the evaluator.
type Expr interface {
	Ty() ValueTy
	Position() ast.Pos
	exprNode()
}

type base struct {
	ty  ValueTy
	pos ast.Pos
}

func (b base) Ty() ValueTy      { return b.ty }
func (b base) Position() ast.Pos { return b.pos }

// VarKind classifies how a Var resolved (spec §4.3 "Expression lowering").
type VarKind int

const (
	VarLocal VarKind = iota
	VarParam
	VarFunction
	VarPrimitive
	VarIntrinsic
)

type Literal struct {
	base
	Kind LitKind
	Int  int64
	Flt  float64
	Str  string
	Bool bool
	Char rune
}

type LitKind = ast.LitKind

func (e *Literal) exprNode() {}

type Var struct {
	base
	Name string
	Kind VarKind
}

func (e *Var) exprNode() {}

// Binding is one entry of a Let's binding list (spec §3.3).
type Binding struct {
	Name  string
	Value Expr
	Ty    ValueTy
}

type Let struct {
	base
	Bindings []Binding
	Body     Expr
}

func (e *Let) exprNode() {}

type Apply struct {
	base
	Func Expr
	Args []Expr
}

func (e *Apply) exprNode() {}

type If struct {
	base
	Cond, Then, Else Expr
}

func (e *If) exprNode() {}

// PrimOpKind enumerates the integer/double arithmetic, comparison, and
// boolean primitive operations (spec §3.3).
type PrimOpKind int

const (
	OpIAdd PrimOpKind = iota
	OpISub
	OpIMul
	OpIDiv
	OpIMod
	OpDAdd
	OpDSub
	OpDMul
	OpDDiv
	OpIEq
	OpINeq
	OpILt
	OpILe
	OpIGt
	OpIGe
	OpDEq
	OpDNeq
	OpDLt
	OpDLe
	OpDGt
	OpDGe
	OpBEq
	OpBNeq
	OpAnd
	OpOr
	OpNot
)

type PrimOp struct {
	base
	Op                 PrimOpKind
	Args               []Expr
	DictionaryFallback bool
	// FallbackClass/Method are set when DictionaryFallback is true, naming
	// which class method catalog entry codegen must dispatch through.
	FallbackClass  string
	FallbackMethod string
}

func (e *PrimOp) exprNode() {}

type TupleExpr struct {
	base
	Items []Expr
}

func (e *TupleExpr) exprNode() {}

type ListExpr struct {
	base
	Items []Expr
}

func (e *ListExpr) exprNode() {}

type Lambda struct {
	base
	Params []Parameter
	Body   Expr
}

func (e *Lambda) exprNode() {}

// DictionaryPlaceholder stands in for "the dictionary for class C at type
// T" until codegen resolves it to a builder call (spec §3.3, §9).
type DictionaryPlaceholder struct {
	base
	ClassName          string
	TypeRepresentation string
}

func (e *DictionaryPlaceholder) exprNode() {}

// MatchBinding is one pattern-introduced binding, recording its one-level
// field-index path from the scrutinee (spec §3.3).
type MatchBinding struct {
	Name string
	Ty   ValueTy
	Path []int
}

// MatchArm is one arm of a Match (spec §3.3).
type MatchArm struct {
	Pattern     ast.Pattern
	Guard       Expr // nil if unguarded
	Body        Expr
	CtorName    string // empty if the pattern has no constructor
	Tag         int
	Arity       int
	HasCtor     bool
	Bindings    []MatchBinding
}

type Match struct {
	base
	Scrutinee Expr
	Arms      []MatchArm
}

func (e *Match) exprNode() {}

// NewLiteral, NewVar, etc. are small constructors used by internal/lower.

func NewLiteral(pos ast.Pos, ty ValueTy, kind LitKind) *Literal {
	return &Literal{base: base{ty: ty, pos: pos}, Kind: kind}
}

func NewVar(pos ast.Pos, ty ValueTy, name string, kind VarKind) *Var {
	return &Var{base: base{ty: ty, pos: pos}, Name: name, Kind: kind}
}

func NewLet(pos ast.Pos, ty ValueTy, bindings []Binding, body Expr) *Let {
	return &Let{base: base{ty: ty, pos: pos}, Bindings: bindings, Body: body}
}

func NewApply(pos ast.Pos, ty ValueTy, fn Expr, args []Expr) *Apply {
	return &Apply{base: base{ty: ty, pos: pos}, Func: fn, Args: args}
}

func NewIf(pos ast.Pos, ty ValueTy, cond, then, els Expr) *If {
	return &If{base: base{ty: ty, pos: pos}, Cond: cond, Then: then, Else: els}
}

func NewPrimOp(pos ast.Pos, ty ValueTy, op PrimOpKind, args []Expr) *PrimOp {
	return &PrimOp{base: base{ty: ty, pos: pos}, Op: op, Args: args}
}

func NewPrimOpFallback(pos ast.Pos, ty ValueTy, op PrimOpKind, args []Expr, class, method string) *PrimOp {
	return &PrimOp{base: base{ty: ty, pos: pos}, Op: op, Args: args, DictionaryFallback: true, FallbackClass: class, FallbackMethod: method}
}

func NewTupleExpr(pos ast.Pos, ty ValueTy, items []Expr) *TupleExpr {
	return &TupleExpr{base: base{ty: ty, pos: pos}, Items: items}
}

func NewListExpr(pos ast.Pos, ty ValueTy, items []Expr) *ListExpr {
	return &ListExpr{base: base{ty: ty, pos: pos}, Items: items}
}

func NewDictionaryPlaceholder(pos ast.Pos, class, typeRepr string) *DictionaryPlaceholder {
	return &DictionaryPlaceholder{base: base{ty: TyDict(class), pos: pos}, ClassName: class, TypeRepresentation: typeRepr}
}

func NewMatch(pos ast.Pos, ty ValueTy, scrutinee Expr, arms []MatchArm) *Match {
	return &Match{base: base{ty: ty, pos: pos}, Scrutinee: scrutinee, Arms: arms}
}
