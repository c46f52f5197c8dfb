// Package core is the typed, first-order, dictionary-passing Core IR of
// spec.md §3.3. It is regenerated from the teacher's untyped tree-walking
// core.go (same CoreNode-embedding style: every node carries an ID and a
// source Span) and from the Rust core_ir/mod.rs this spec was distilled
// from, whose Module/Function/ValueTy/Expr shapes this package mirrors
// with a mandatory ValueTy on every Expr instead of an optional one.
package core

import "github.com/sunholo/typelang/internal/ast"

// ValueTy is the native-representable type of a Core IR value (spec §3.3).
// Unknown means "polymorphic slot, must flow through a boxed Value at the
// runtime boundary" (spec §9 "Unknown-typed values").
type ValueTy struct {
	Kind ValueKind
	// Tuple
	Items []ValueTy
	// List
	Elem *ValueTy
	// Function
	Params []ValueTy
	Result *ValueTy
	// Data
	CtorName string
	Args     []ValueTy
	// Dictionary
	ClassName string
}

type ValueKind int

const (
	VInt ValueKind = iota
	VDouble
	VBool
	VChar
	VString
	VUnit
	VTuple
	VList
	VFunction
	VData
	VDictionary
	VUnknown
)

func (k ValueKind) String() string {
	switch k {
	case VInt:
		return "Int"
	case VDouble:
		return "Double"
	case VBool:
		return "Bool"
	case VChar:
		return "Char"
	case VString:
		return "String"
	case VUnit:
		return "Unit"
	case VTuple:
		return "Tuple"
	case VList:
		return "List"
	case VFunction:
		return "Function"
	case VData:
		return "Data"
	case VDictionary:
		return "Dictionary"
	default:
		return "Unknown"
	}
}

// Equals reports structural equality of two ValueTys.
func (v ValueTy) Equals(o ValueTy) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case VTuple:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equals(o.Items[i]) {
				return false
			}
		}
		return true
	case VList:
		return v.Elem.Equals(*o.Elem)
	case VFunction:
		if len(v.Params) != len(o.Params) {
			return false
		}
		for i := range v.Params {
			if !v.Params[i].Equals(o.Params[i]) {
				return false
			}
		}
		return v.Result.Equals(*o.Result)
	case VData:
		return v.CtorName == o.CtorName
	case VDictionary:
		return v.ClassName == o.ClassName
	default:
		return true
	}
}

// Convenience constructors.
func TyInt() ValueTy    { return ValueTy{Kind: VInt} }
func TyDouble() ValueTy { return ValueTy{Kind: VDouble} }
func TyBool() ValueTy   { return ValueTy{Kind: VBool} }
func TyChar() ValueTy   { return ValueTy{Kind: VChar} }
func TyString() ValueTy { return ValueTy{Kind: VString} }
func TyUnit() ValueTy   { return ValueTy{Kind: VUnit} }
func TyUnknown() ValueTy { return ValueTy{Kind: VUnknown} }
func TyList(elem ValueTy) ValueTy { return ValueTy{Kind: VList, Elem: &elem} }
func TyTuple(items ...ValueTy) ValueTy { return ValueTy{Kind: VTuple, Items: items} }
func TyFunc(params []ValueTy, result ValueTy) ValueTy {
	return ValueTy{Kind: VFunction, Params: params, Result: &result}
}
func TyData(ctor string, args ...ValueTy) ValueTy { return ValueTy{Kind: VData, CtorName: ctor, Args: args} }
func TyDict(class string) ValueTy                 { return ValueTy{Kind: VDictionary, ClassName: class} }

// ParamKind distinguishes an ordinary value parameter from a dictionary
// parameter injected for a class constraint (spec §3.3).
type ParamKind int

const (
	PKValue ParamKind = iota
	PKDictionary
)

// Parameter is one entry of a Function's ordered parameter list.
type Parameter struct {
	Name string
	Ty   ValueTy
	Kind ParamKind
	// ClassName and TypeRepr are populated only when Kind == PKDictionary.
	ClassName string
	TypeRepr  string
	// Underlying is the argument ValueTy the dictionary carries, when known.
	Underlying *ValueTy
}

// Function is one top-level Core IR function (spec §3.3).
type Function struct {
	Name   string
	Params []Parameter
	Result ValueTy
	Body   Expr
	Span   ast.Span
}

// Module is a full compiled unit (spec §3.3).
type Module struct {
	Functions  map[string]*Function
	FuncOrder  []string // function names, kept sorted on insert
	Entry      string   // empty if none
	DataTypes  map[string]*DataTypeLayout
	DataOrder  []string
	Dicts      []*DictionaryInit
}

// NewModule returns an empty Module ready for incremental construction.
func NewModule() *Module {
	return &Module{
		Functions: make(map[string]*Function),
		DataTypes: make(map[string]*DataTypeLayout),
	}
}

// AddFunction registers fn, keeping FuncOrder name-sorted on insert.
func (m *Module) AddFunction(fn *Function) {
	if _, exists := m.Functions[fn.Name]; !exists {
		m.FuncOrder = insertSorted(m.FuncOrder, fn.Name)
	}
	m.Functions[fn.Name] = fn
}

// AddDataType registers a DataTypeLayout, keeping DataOrder name-sorted.
func (m *Module) AddDataType(d *DataTypeLayout) {
	if _, exists := m.DataTypes[d.Name]; !exists {
		m.DataOrder = insertSorted(m.DataOrder, d.Name)
	}
	m.DataTypes[d.Name] = d
}

func insertSorted(xs []string, x string) []string {
	i := 0
	for i < len(xs) && xs[i] < x {
		i++
	}
	xs = append(xs, "")
	copy(xs[i+1:], xs[i:])
	xs[i] = x
	return xs
}

// ConstructorLayout is one constructor of a DataTypeLayout (spec §3.3).
type ConstructorLayout struct {
	Name       string
	Tag        int
	Arity      int
	ParentName string
	FieldTypes []ast.TypeSyntax
}

// DataTypeLayout describes one declared algebraic data type.
type DataTypeLayout struct {
	Name       string
	TypeParams []string
	Ctors      []ConstructorLayout
}

// BuilderVariant distinguishes a dictionary whose methods resolve to
// concrete runtime symbols from one left unresolved (spec §4.3).
type BuilderVariant int

const (
	BuilderUnresolved BuilderVariant = iota
	BuilderResolved
)

// DictionaryMethod is one entry of a DictionaryInit's method list.
type DictionaryMethod struct {
	Name       string
	Signature  string
	Symbol     string
	MethodID   int
}

// DictionaryInit is the compile-time descriptor attached to a Module for
// every distinct (className, typeRepresentation) pair encountered while
// processing Schemes (spec §3.3, §9 "Shared catalog").
type DictionaryInit struct {
	ClassName        string
	TypeRepresentation string
	CarrierTy        ValueTy
	Methods          []DictionaryMethod
	SchemePrinted    string
	Builder          BuilderVariant
	BuilderSymbol    string // set iff Builder == BuilderResolved
	OriginFunction   string
	Span             ast.Span
}
