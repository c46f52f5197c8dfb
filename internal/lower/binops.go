package lower

import "github.com/sunholo/typelang/internal/core"

// BinOpCase is one concrete operand-kind pairing a BinOpSpec accepts.
type BinOpCase struct {
	Lhs, Rhs core.ValueKind
	Op       core.PrimOpKind
	Result   core.ValueKind
}

// BinOpFallback names the class method a BinOpSpec falls back to when at
// least one operand is Unknown (spec §4.3 "Binary operators").
type BinOpFallback struct {
	Class, Method string
	Op            core.PrimOpKind
	Result        core.ValueKind
}

// BinOpSpec is the static per-surface-operator table spec §4.3 names.
type BinOpSpec struct {
	Cases    []BinOpCase
	Fallback *BinOpFallback
}

// BinOpSpecs maps each surface operator to its spec. Grounded on the
// original's `core_ir/dict_specs.rs` BINOP_TABLE: every arithmetic operator
// carries both an Int and a Double concrete case plus a dictionary
// fallback; comparisons add a Bool case for equality operators only.
var BinOpSpecs = map[string]BinOpSpec{
	"+": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpIAdd, core.VInt},
			{core.VDouble, core.VDouble, core.OpDAdd, core.VDouble},
		},
		Fallback: &BinOpFallback{Class: "Num", Method: "add", Op: core.OpIAdd, Result: core.VUnknown},
	},
	"-": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpISub, core.VInt},
			{core.VDouble, core.VDouble, core.OpDSub, core.VDouble},
		},
		Fallback: &BinOpFallback{Class: "Num", Method: "sub", Op: core.OpISub, Result: core.VUnknown},
	},
	"*": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpIMul, core.VInt},
			{core.VDouble, core.VDouble, core.OpDMul, core.VDouble},
		},
		Fallback: &BinOpFallback{Class: "Num", Method: "mul", Op: core.OpIMul, Result: core.VUnknown},
	},
	"/": {
		Cases: []BinOpCase{
			{core.VDouble, core.VDouble, core.OpDDiv, core.VDouble},
		},
		Fallback: &BinOpFallback{Class: "Fractional", Method: "divide", Op: core.OpDDiv, Result: core.VUnknown},
	},
	"==": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpIEq, core.VBool},
			{core.VDouble, core.VDouble, core.OpDEq, core.VBool},
			{core.VBool, core.VBool, core.OpBEq, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "Eq", Method: "eq", Op: core.OpIEq, Result: core.VBool},
	},
	"/=": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpINeq, core.VBool},
			{core.VDouble, core.VDouble, core.OpDNeq, core.VBool},
			{core.VBool, core.VBool, core.OpBNeq, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "Eq", Method: "neq", Op: core.OpINeq, Result: core.VBool},
	},
	"<": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpILt, core.VBool},
			{core.VDouble, core.VDouble, core.OpDLt, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "Ord", Method: "lt", Op: core.OpILt, Result: core.VBool},
	},
	"<=": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpILe, core.VBool},
			{core.VDouble, core.VDouble, core.OpDLe, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "Ord", Method: "le", Op: core.OpILe, Result: core.VBool},
	},
	">": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpIGt, core.VBool},
			{core.VDouble, core.VDouble, core.OpDGt, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "Ord", Method: "gt", Op: core.OpIGt, Result: core.VBool},
	},
	">=": {
		Cases: []BinOpCase{
			{core.VInt, core.VInt, core.OpIGe, core.VBool},
			{core.VDouble, core.VDouble, core.OpDGe, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "Ord", Method: "ge", Op: core.OpIGe, Result: core.VBool},
	},
	"&&": {
		Cases: []BinOpCase{
			{core.VBool, core.VBool, core.OpAnd, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "BoolLogic", Method: "and", Op: core.OpAnd, Result: core.VBool},
	},
	"||": {
		Cases: []BinOpCase{
			{core.VBool, core.VBool, core.OpOr, core.VBool},
		},
		Fallback: &BinOpFallback{Class: "BoolLogic", Method: "or", Op: core.OpOr, Result: core.VBool},
	},
}

// findCase returns the first concrete case matching the given operand
// kinds, per spec §4.3 "Lowering picks the first concrete case whose
// operand kinds match."
func (s BinOpSpec) findCase(lhs, rhs core.ValueKind) (BinOpCase, bool) {
	for _, c := range s.Cases {
		if c.Lhs == lhs && c.Rhs == rhs {
			return c, true
		}
	}
	return BinOpCase{}, false
}
