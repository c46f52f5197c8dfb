package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/classcatalog"
	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// genExpr lowers one Core IR Expr to an SSA value, per spec.md §4.4
// "Lowering rules by Expr variant". Each case is grounded on the matching
// paragraph of §4.4; dispatch mirrors transform.go's per-node-kind switch in
// _examples/other_examples/730544c1_hhramberg-go-vslc.
func (g *genCtx) genExpr(e core.Expr) (llvm.Value, error) {
	switch n := e.(type) {
	case *core.Literal:
		return g.genLiteral(n)
	case *core.Var:
		return g.genVar(n)
	case *core.Let:
		return g.genLet(n)
	case *core.If:
		return g.genIf(n)
	case *core.PrimOp:
		return g.genPrimOp(n)
	case *core.Apply:
		return g.genApply(n)
	case *core.Match:
		return g.genMatch(n)
	case *core.ListExpr:
		return g.genList(n)
	case *core.DictionaryPlaceholder:
		return g.genDictPlaceholder(n)
	case *core.TupleExpr:
		return llvm.Value{}, codegenErr(tlerrors.CODEGEN100, "tuple values are not representable at the native boundary")
	case *core.Lambda:
		return llvm.Value{}, codegenErr(tlerrors.CODEGEN041, "local lambdas are not supported in codegen")
	default:
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unsupported Core expression %T", e)
	}
}

func (g *genCtx) genLiteral(n *core.Literal) (llvm.Value, error) {
	cg := g.cg
	switch n.Ty().Kind {
	case core.VInt:
		return llvm.ConstInt(cg.iTy, uint64(n.Int), true), nil
	case core.VDouble:
		return llvm.ConstFloat(cg.dTy, n.Flt), nil
	case core.VBool:
		v := uint64(0)
		if n.Bool {
			v = 1
		}
		return llvm.ConstInt(cg.i8Ty, v, false), nil
	case core.VUnit:
		return llvm.ConstInt(cg.i8Ty, 0, false), nil
	default:
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN100, "unsupported literal type %s", n.Ty().Kind.String())
	}
}

func (g *genCtx) genVar(n *core.Var) (llvm.Value, error) {
	switch n.Kind {
	case core.VarLocal, core.VarParam:
		lv, ok := g.lookup(n.Name)
		if !ok {
			return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unbound local %q", n.Name)
		}
		return lv.val, nil
	default:
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN041, "function %q used as a first-class value", n.Name)
	}
}

func (g *genCtx) genLet(n *core.Let) (llvm.Value, error) {
	for _, b := range n.Bindings {
		if b.Ty.Kind == core.VFunction {
			return llvm.Value{}, codegenErrf(tlerrors.CODEGEN050, "function-typed let binding %q", b.Name)
		}
		v, err := g.genExpr(b.Value)
		if err != nil {
			return llvm.Value{}, err
		}
		g.bind(b.Name, v, b.Ty)
	}
	return g.genExpr(n.Body)
}

func (g *genCtx) genIf(n *core.If) (llvm.Value, error) {
	cg := g.cg
	cond, err := g.genExpr(n.Cond)
	if err != nil {
		return llvm.Value{}, err
	}
	pred := cg.b.CreateICmp(llvm.IntNE, cond, llvm.ConstInt(cond.Type(), 0, false), "ifcond")

	thenBB := cg.ctx.AddBasicBlock(g.fn, "then")
	elseBB := cg.ctx.AddBasicBlock(g.fn, "else")
	mergeBB := cg.ctx.AddBasicBlock(g.fn, "ifmerge")
	cg.b.CreateCondBr(pred, thenBB, elseBB)

	resultTy, err := cg.machineType(n.Ty())
	if err != nil {
		return llvm.Value{}, err
	}

	cg.b.SetInsertPointAtEnd(thenBB)
	thenVal, err := g.genExpr(n.Then)
	if err != nil {
		return llvm.Value{}, err
	}
	thenVal, err = g.coerce(thenVal, n.Then.Ty(), n.Ty())
	if err != nil {
		return llvm.Value{}, err
	}
	thenEndBB := cg.b.GetInsertBlock()
	cg.b.CreateBr(mergeBB)

	cg.b.SetInsertPointAtEnd(elseBB)
	elseVal, err := g.genExpr(n.Else)
	if err != nil {
		return llvm.Value{}, err
	}
	elseVal, err = g.coerce(elseVal, n.Else.Ty(), n.Ty())
	if err != nil {
		return llvm.Value{}, err
	}
	elseEndBB := cg.b.GetInsertBlock()
	cg.b.CreateBr(mergeBB)

	cg.b.SetInsertPointAtEnd(mergeBB)
	phi := cg.b.CreatePHI(resultTy, "ifresult")
	phi.AddIncoming([]llvm.Value{thenVal, elseVal}, []llvm.BasicBlock{thenEndBB, elseEndBB})
	return phi, nil
}

// coerce converts v from "from" to "to" per spec.md §4.4 "Coercion": same
// type is a no-op; Int/Double/Bool <-> Unknown goes through the boxing ABI;
// anything else is CODEGEN214.
func (g *genCtx) coerce(v llvm.Value, from, to core.ValueTy) (llvm.Value, error) {
	cg := g.cg
	if from.Equals(to) {
		return v, nil
	}
	if to.Kind == core.VUnknown {
		switch from.Kind {
		case core.VInt:
			return cg.b.CreateCall(cg.runtime["tl_value_from_int"], []llvm.Value{v}, "box"), nil
		case core.VDouble:
			return cg.b.CreateCall(cg.runtime["tl_value_from_double"], []llvm.Value{v}, "box"), nil
		case core.VBool:
			return cg.b.CreateCall(cg.runtime["tl_value_from_bool"], []llvm.Value{v}, "box"), nil
		}
	}
	if from.Kind == core.VUnknown {
		switch to.Kind {
		case core.VInt:
			return cg.b.CreateCall(cg.runtime["tl_value_to_int"], []llvm.Value{v}, "unbox"), nil
		case core.VDouble:
			return cg.b.CreateCall(cg.runtime["tl_value_to_double"], []llvm.Value{v}, "unbox"), nil
		case core.VBool:
			return cg.b.CreateCall(cg.runtime["tl_value_to_bool"], []llvm.Value{v}, "unbox"), nil
		}
	}
	return llvm.Value{}, codegenErrf(tlerrors.CODEGEN214, "unsupported coercion from %s to %s", from.Kind.String(), to.Kind.String())
}

func (g *genCtx) genPrimOp(n *core.PrimOp) (llvm.Value, error) {
	args := make([]llvm.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := g.genExpr(a)
		if err != nil {
			return llvm.Value{}, err
		}
		args[i] = v
	}
	if n.DictionaryFallback {
		return g.genDictDispatch(n, args)
	}
	return g.genDirectPrimOp(n, args)
}

func (g *genCtx) genDirectPrimOp(n *core.PrimOp, args []llvm.Value) (llvm.Value, error) {
	b := g.cg.b
	switch n.Op {
	case core.OpIAdd:
		return b.CreateAdd(args[0], args[1], "iadd"), nil
	case core.OpISub:
		return b.CreateSub(args[0], args[1], "isub"), nil
	case core.OpIMul:
		return b.CreateMul(args[0], args[1], "imul"), nil
	case core.OpIDiv:
		return b.CreateSDiv(args[0], args[1], "idiv"), nil
	case core.OpIMod:
		return b.CreateSRem(args[0], args[1], "imod"), nil
	case core.OpDAdd:
		return b.CreateFAdd(args[0], args[1], "dadd"), nil
	case core.OpDSub:
		return b.CreateFSub(args[0], args[1], "dsub"), nil
	case core.OpDMul:
		return b.CreateFMul(args[0], args[1], "dmul"), nil
	case core.OpDDiv:
		return b.CreateFDiv(args[0], args[1], "ddiv"), nil
	case core.OpIEq:
		return g.boolFromI1(b.CreateICmp(llvm.IntEQ, args[0], args[1], "ieq")), nil
	case core.OpINeq:
		return g.boolFromI1(b.CreateICmp(llvm.IntNE, args[0], args[1], "ineq")), nil
	case core.OpILt:
		return g.boolFromI1(b.CreateICmp(llvm.IntSLT, args[0], args[1], "ilt")), nil
	case core.OpILe:
		return g.boolFromI1(b.CreateICmp(llvm.IntSLE, args[0], args[1], "ile")), nil
	case core.OpIGt:
		return g.boolFromI1(b.CreateICmp(llvm.IntSGT, args[0], args[1], "igt")), nil
	case core.OpIGe:
		return g.boolFromI1(b.CreateICmp(llvm.IntSGE, args[0], args[1], "ige")), nil
	case core.OpDEq:
		return g.boolFromI1(b.CreateFCmp(llvm.FloatOEQ, args[0], args[1], "deq")), nil
	case core.OpDNeq:
		return g.boolFromI1(b.CreateFCmp(llvm.FloatONE, args[0], args[1], "dneq")), nil
	case core.OpDLt:
		return g.boolFromI1(b.CreateFCmp(llvm.FloatOLT, args[0], args[1], "dlt")), nil
	case core.OpDLe:
		return g.boolFromI1(b.CreateFCmp(llvm.FloatOLE, args[0], args[1], "dle")), nil
	case core.OpDGt:
		return g.boolFromI1(b.CreateFCmp(llvm.FloatOGT, args[0], args[1], "dgt")), nil
	case core.OpDGe:
		return g.boolFromI1(b.CreateFCmp(llvm.FloatOGE, args[0], args[1], "dge")), nil
	case core.OpBEq:
		return g.boolFromI1(b.CreateICmp(llvm.IntEQ, args[0], args[1], "beq")), nil
	case core.OpBNeq:
		return g.boolFromI1(b.CreateICmp(llvm.IntNE, args[0], args[1], "bneq")), nil
	case core.OpAnd:
		return b.CreateAnd(args[0], args[1], "and"), nil
	case core.OpOr:
		return b.CreateOr(args[0], args[1], "or"), nil
	case core.OpNot:
		return b.CreateXor(args[0], llvm.ConstInt(g.cg.i8Ty, 1, false), "not"), nil
	default:
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unsupported primop %v", n.Op)
	}
}

// boolFromI1 widens an i1 comparison flag into the i8 boolean representation
// via a select, per spec.md §4.4 "comparisons return a one-byte boolean via
// a select on the flag".
func (g *genCtx) boolFromI1(flag llvm.Value) llvm.Value {
	cg := g.cg
	return cg.b.CreateSelect(flag, llvm.ConstInt(cg.i8Ty, 1, false), llvm.ConstInt(cg.i8Ty, 0, false), "booled")
}

// genDictDispatch implements spec.md §4.4's "PrimOp dict_fallback" rule:
// find the function's own dictionary parameter for the method's class,
// tl_dict_lookup the method identifier, unbox to a function pointer, coerce
// operands to the carrier type, and issue an indirect call.
func (g *genCtx) genDictDispatch(n *core.PrimOp, args []llvm.Value) (llvm.Value, error) {
	cg := g.cg
	dictVal, ok := g.dictParams[n.FallbackClass]
	if !ok {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "no dictionary parameter in scope for class %s", n.FallbackClass)
	}
	cms, ok := classcatalog.Lookup(n.FallbackClass)
	if !ok {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unknown class %s in catalog", n.FallbackClass)
	}
	var methodID int
	found := false
	for _, m := range cms.Methods {
		if m.Name == n.FallbackMethod {
			methodID = m.MethodID
			found = true
			break
		}
	}
	if !found {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unknown method %s for class %s", n.FallbackMethod, n.FallbackClass)
	}

	lookupFn := cg.runtime["tl_dict_lookup"]
	methodVal := cg.b.CreateCall(lookupFn,
		[]llvm.Value{dictVal, llvm.ConstInt(cg.iTy, uint64(methodID), false)}, "method_box")
	methodPtr := cg.b.CreateCall(cg.runtime["tl_value_to_ptr"], []llvm.Value{methodVal}, "method_ptr")

	carrierTy := n.Ty()
	if n.Op >= core.OpIEq && n.Op <= core.OpBNeq {
		// Comparison results are Bool, but the operands carry the carrier
		// type for unboxing purposes; infer it from the first argument's
		// expression type instead of the PrimOp's own (Bool) result type.
		carrierTy = n.Args[0].Ty()
	}
	machineCarrier, err := cg.machineType(carrierTy)
	if err != nil {
		return llvm.Value{}, err
	}
	coercedArgs := make([]llvm.Value, len(args))
	for i, a := range args {
		ca, err := g.coerce(a, n.Args[i].Ty(), carrierTy)
		if err != nil {
			return llvm.Value{}, err
		}
		coercedArgs[i] = ca
	}

	resultTy, err := cg.machineType(n.Ty())
	if err != nil {
		return llvm.Value{}, err
	}
	paramTys := make([]llvm.Type, len(coercedArgs))
	for i := range paramTys {
		paramTys[i] = machineCarrier
	}
	fnTy := llvm.FunctionType(resultTy, paramTys, false)
	castFn := cg.b.CreateBitCast(methodPtr, llvm.PointerType(fnTy, 0), "method_fn")
	return cg.b.CreateCall(castFn, coercedArgs, "dict_call"), nil
}

func (g *genCtx) genApply(n *core.Apply) (llvm.Value, error) {
	cg := g.cg
	fnVar, ok := n.Func.(*core.Var)
	if !ok {
		return llvm.Value{}, codegenErr(tlerrors.CODEGEN041, "apply target is not a resolved function reference")
	}
	if fnVar.Kind == core.VarPrimitive {
		return g.genCtorApply(n)
	}
	if fnVar.Kind != core.VarFunction {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN041, "%q used as a first-class value", fnVar.Name)
	}
	llfn, ok := cg.fns[fnVar.Name]
	if !ok {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unknown function %q", fnVar.Name)
	}
	target := cg.mod.Functions[fnVar.Name]

	args := make([]llvm.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := g.genExpr(a)
		if err != nil {
			return llvm.Value{}, err
		}
		var expectedCore core.ValueTy
		if i < len(target.Params) {
			expectedCore = target.Params[i].Ty
			if target.Params[i].Kind == core.PKDictionary {
				expectedCore = core.TyDict(target.Params[i].ClassName)
			}
		}
		coerced, err := g.coerce(v, a.Ty(), expectedCore)
		if err != nil {
			args[i] = v
		} else {
			args[i] = coerced
		}
	}
	return cg.b.CreateCall(llfn, args, callName(target)), nil
}

// genCtorApply lowers construction of an algebraic data value (spec.md §4.4
// "Apply of a constructor"): box each field, stack-allocate a pointer array,
// and call tl_data_pack(tag, fields, len).
func (g *genCtx) genCtorApply(n *core.Apply) (llvm.Value, error) {
	cg := g.cg
	ctorVar := n.Func.(*core.Var)
	ctor, ok := cg.findCtor(ctorVar.Name)
	if !ok {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "unknown constructor %q", ctorVar.Name)
	}

	if ctor.Arity == 0 {
		return cg.b.CreateCall(cg.runtime["tl_data_pack"],
			[]llvm.Value{
				llvm.ConstInt(cg.iTy, uint64(ctor.Tag), false),
				llvm.ConstPointerNull(llvm.PointerType(cg.ptrTy, 0)),
				llvm.ConstInt(cg.iTy, 0, false),
			}, "data_pack"), nil
	}

	arr := cg.b.CreateAlloca(llvm.ArrayType(cg.ptrTy, ctor.Arity), "ctor_fields")
	for i, a := range n.Args {
		v, err := g.genExpr(a)
		if err != nil {
			return llvm.Value{}, err
		}
		boxed, err := g.coerce(v, a.Ty(), core.TyUnknown())
		if err != nil {
			return llvm.Value{}, err
		}
		slot := cg.b.CreateGEP(arr,
			[]llvm.Value{llvm.ConstInt(cg.iTy, 0, false), llvm.ConstInt(cg.iTy, uint64(i), false)}, "field_slot")
		cg.b.CreateStore(boxed, slot)
	}
	fieldsPtr := cg.b.CreateGEP(arr,
		[]llvm.Value{llvm.ConstInt(cg.iTy, 0, false), llvm.ConstInt(cg.iTy, 0, false)}, "fields_ptr")

	return cg.b.CreateCall(cg.runtime["tl_data_pack"],
		[]llvm.Value{
			llvm.ConstInt(cg.iTy, uint64(ctor.Tag), false),
			fieldsPtr,
			llvm.ConstInt(cg.iTy, uint64(ctor.Arity), false),
		}, "data_pack"), nil
}

// findCtor looks up a ConstructorLayout by name across every declared data
// type in the module.
func (cg *codegen) findCtor(name string) (core.ConstructorLayout, bool) {
	for _, dname := range cg.mod.DataOrder {
		for _, c := range cg.mod.DataTypes[dname].Ctors {
			if c.Name == name {
				return c, true
			}
		}
	}
	return core.ConstructorLayout{}, false
}

func callName(fn *core.Function) string {
	if fn.Result.Kind == core.VUnit {
		return ""
	}
	return fn.Name + "_ret"
}

func (g *genCtx) genList(n *core.ListExpr) (llvm.Value, error) {
	cg := g.cg
	elemTy := *n.Ty().Elem
	cur := cg.b.CreateCall(cg.runtime["tl_list_empty"], nil, "list_empty")
	for i := len(n.Items) - 1; i >= 0; i-- {
		v, err := g.genExpr(n.Items[i])
		if err != nil {
			return llvm.Value{}, err
		}
		boxed, err := g.coerce(v, elemTy, core.TyUnknown())
		if err != nil {
			return llvm.Value{}, err
		}
		cur = cg.b.CreateCall(cg.runtime["tl_list_cons"], []llvm.Value{boxed, cur}, "list_cons")
	}
	return cur, nil
}

// genDictPlaceholder materializes "the dictionary for class C at type T" at
// most once per function (spec.md §5 memoization invariant), calling the
// builder symbol declared in declareRuntime and caching the result.
func (g *genCtx) genDictPlaceholder(n *core.DictionaryPlaceholder) (llvm.Value, error) {
	key := n.ClassName + "::" + n.TypeRepresentation
	if v, ok := g.dictMemo[key]; ok {
		return v, nil
	}
	var found *core.DictionaryInit
	for _, d := range g.cg.mod.Dicts {
		if d.ClassName == n.ClassName && d.TypeRepresentation == n.TypeRepresentation {
			found = d
			break
		}
	}
	if found == nil || found.Builder != core.BuilderResolved {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "no resolved dictionary for %s %s", n.ClassName, n.TypeRepresentation)
	}
	builderFn, ok := g.cg.dictBuilders[found.BuilderSymbol]
	if !ok {
		return llvm.Value{}, codegenErrf(tlerrors.CODEGEN070, "builder symbol %s not declared", found.BuilderSymbol)
	}
	v := g.cg.b.CreateCall(builderFn, nil, "dict_"+n.ClassName)
	g.dictMemo[key] = v
	return v, nil
}
