package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/core"
)

// declareFunctions runs the "declare" half of the teacher's declare-all-
// then-define-all pass (transform.go's GenLLVM), so a function may call
// another declared later in FuncOrder.
func (cg *codegen) declareFunctions() error {
	for _, name := range cg.mod.FuncOrder {
		fn := cg.mod.Functions[name]
		sig, err := cg.buildSignature(fn)
		if err != nil {
			return err
		}
		cg.sigs[name] = sig
		llfn := llvm.AddFunction(cg.m, name, sig.llvmFn)
		llfn.SetLinkage(llvm.ExternalLinkage)
		cg.fns[name] = llfn
	}
	return nil
}

// genCtx is the per-function generation state: Core-level local bindings to
// their LLVM values, the function's own dictionary parameters keyed by
// class, and the memoization cache for DictionaryPlaceholder resolution
// (spec.md §5: "materialized at most once per (class, typeRepr) per
// function").
type genCtx struct {
	cg       *codegen
	fn       llvm.Value
	locals   map[string]localVal
	dictParams map[string]llvm.Value // class name -> this function's own dict param value
	dictMemo map[string]llvm.Value  // "class::typeRepr" -> already-materialized dict pointer
}

type localVal struct {
	val llvm.Value
	ty  core.ValueTy
}

func (g *genCtx) lookup(name string) (localVal, bool) {
	v, ok := g.locals[name]
	return v, ok
}

func (g *genCtx) bind(name string, v llvm.Value, ty core.ValueTy) {
	g.locals[name] = localVal{val: v, ty: ty}
}

// defineFunction lowers one Core Function's body into its declared LLVM
// function (spec.md §4.4, per-Expr-variant rules in expr.go).
func (cg *codegen) defineFunction(fn *core.Function) error {
	llfn := cg.fns[fn.Name]
	entry := cg.ctx.AddBasicBlock(llfn, "entry")
	cg.b.SetInsertPointAtEnd(entry)

	g := &genCtx{
		cg:         cg,
		fn:         llfn,
		locals:     map[string]localVal{},
		dictParams: map[string]llvm.Value{},
		dictMemo:   map[string]llvm.Value{},
	}

	vi := 0
	for i, p := range fn.Params {
		arg := llfn.Param(i)
		if p.Kind == core.PKDictionary {
			g.dictParams[p.ClassName] = arg
			g.dictMemo[p.ClassName+"::"+p.TypeRepr] = arg
			continue
		}
		arg.SetName(p.Name)
		g.bind(p.Name, arg, p.Ty)
		vi++
	}

	result, err := g.genExpr(fn.Body)
	if err != nil {
		return err
	}

	// Unit maps to an 8-bit integer (spec.md §4.4 "machine-type mapping"),
	// not void, so every function returns a value of its declared result
	// type even when that value carries no information.
	cg.b.CreateRet(result)
	return nil
}
