package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// genMatch lowers a Core Match per spec.md §4.4 "Match": load the
// scrutinee's tag once, then test each arm's tag in order, falling through
// unconditionally for an arm with no constructor (the wildcard/catch-all
// case), and trapping via tl_abort_with_code if no arm matches.
func (g *genCtx) genMatch(n *core.Match) (llvm.Value, error) {
	cg := g.cg
	scrutinee, err := g.genExpr(n.Scrutinee)
	if err != nil {
		return llvm.Value{}, err
	}
	isAlgebraic := n.Scrutinee.Ty().Kind == core.VData

	var tag llvm.Value
	if isAlgebraic {
		tag = cg.b.CreateCall(cg.runtime["tl_data_tag"], []llvm.Value{scrutinee}, "scrutinee_tag")
	}

	resultTy, err := cg.machineType(n.Ty())
	if err != nil {
		return llvm.Value{}, err
	}
	mergeBB := cg.ctx.AddBasicBlock(g.fn, "match_merge")

	var incomingVals []llvm.Value
	var incomingBlocks []llvm.BasicBlock

	for i, arm := range n.Arms {
		armBB := cg.ctx.AddBasicBlock(g.fn, "match_arm")
		var nextBB llvm.BasicBlock
		last := i == len(n.Arms)-1
		if !last {
			nextBB = cg.ctx.AddBasicBlock(g.fn, "match_next")
		}

		if arm.HasCtor {
			want := llvm.ConstInt(cg.iTy, uint64(arm.Tag), false)
			eq := cg.b.CreateICmp(llvm.IntEQ, tag, want, "tag_eq")
			if last {
				// No further arm to fall to: trap on mismatch instead of
				// falling through (non-exhaustive match, spec.md §4.4).
				trapBB := cg.ctx.AddBasicBlock(g.fn, "match_trap")
				cg.b.CreateCondBr(eq, armBB, trapBB)
				cg.b.SetInsertPointAtEnd(trapBB)
				g.emitTrap()
			} else {
				cg.b.CreateCondBr(eq, armBB, nextBB)
			}
		} else {
			cg.b.CreateBr(armBB)
		}

		cg.b.SetInsertPointAtEnd(armBB)
		v, endBB, err := g.genMatchArm(arm, scrutinee, resultTy, n.Ty(), isAlgebraic, nextBB, !last)
		if err != nil {
			return llvm.Value{}, err
		}
		incomingVals = append(incomingVals, v)
		incomingBlocks = append(incomingBlocks, endBB)
		cg.b.CreateBr(mergeBB)

		if !last {
			cg.b.SetInsertPointAtEnd(nextBB)
		}
	}

	cg.b.SetInsertPointAtEnd(mergeBB)
	if len(incomingVals) == 0 {
		return llvm.Undef(resultTy), nil
	}
	phi := cg.b.CreatePHI(resultTy, "match_result")
	phi.AddIncoming(incomingVals, incomingBlocks)
	return phi, nil
}

// emitTrap lowers the "no arm matches" path: abort_with_code plus an
// unreachable terminator, per spec.md §4.4 "the generated code calls
// abort-with-code with a sentinel value and then traps."
func (g *genCtx) emitTrap() {
	cg := g.cg
	const nonExhaustiveSentinel = 1
	cg.b.CreateCall(cg.runtime["tl_abort_with_code"],
		[]llvm.Value{llvm.ConstInt(cg.iTy, nonExhaustiveSentinel, false)}, "")
	cg.b.CreateUnreachable()
}

// genMatchArm binds the arm's pattern variables, lowers its optional guard
// (a false guard branches to nextBB, the next arm's tag test, when hasNext
// is set, and traps when this is the last arm), lowers the body, frees the
// scrutinee if algebraic, and returns the coerced value plus the block it
// was produced in (for the PHI).
func (g *genCtx) genMatchArm(arm core.MatchArm, scrutinee llvm.Value, resultTy llvm.Type, resultCoreTy core.ValueTy, isAlgebraic bool, nextBB llvm.BasicBlock, hasNext bool) (llvm.Value, llvm.BasicBlock, error) {
	cg := g.cg
	for _, mb := range arm.Bindings {
		v, err := g.extractField(scrutinee, mb)
		if err != nil {
			return llvm.Value{}, llvm.BasicBlock{}, err
		}
		g.bind(mb.Name, v, mb.Ty)
	}

	if arm.Guard != nil {
		guardVal, err := g.genExpr(arm.Guard)
		if err != nil {
			return llvm.Value{}, llvm.BasicBlock{}, err
		}
		passBB := cg.ctx.AddBasicBlock(g.fn, "guard_pass")
		failBB := cg.ctx.AddBasicBlock(g.fn, "guard_fail")
		pred := cg.b.CreateICmp(llvm.IntNE, guardVal, llvm.ConstInt(guardVal.Type(), 0, false), "guard")
		cg.b.CreateCondBr(pred, passBB, failBB)
		cg.b.SetInsertPointAtEnd(failBB)
		if hasNext {
			cg.b.CreateBr(nextBB)
		} else {
			g.emitTrap()
		}
		cg.b.SetInsertPointAtEnd(passBB)
	}

	body, err := g.genExpr(arm.Body)
	if err != nil {
		return llvm.Value{}, llvm.BasicBlock{}, err
	}
	body, err = g.coerce(body, arm.Body.Ty(), resultCoreTy)
	if err != nil {
		return llvm.Value{}, llvm.BasicBlock{}, err
	}

	if isAlgebraic {
		cg.b.CreateCall(cg.runtime["tl_data_free"], []llvm.Value{scrutinee}, "")
	}

	return body, cg.b.GetInsertBlock(), nil
}

// extractField walks a one-level MatchBinding.Path via tl_data_field and
// unboxes to the binding's declared ValueTy (spec.md §4.4 "bind each
// MatchBinding by walking its one-level path via data-field").
func (g *genCtx) extractField(scrutinee llvm.Value, mb core.MatchBinding) (llvm.Value, error) {
	cg := g.cg
	if len(mb.Path) != 1 {
		return llvm.Value{}, codegenErr(tlerrors.CODEGEN070, "match bindings must have a one-level field path")
	}
	idx := mb.Path[0]
	boxed := cg.b.CreateCall(cg.runtime["tl_data_field"],
		[]llvm.Value{scrutinee, llvm.ConstInt(cg.iTy, uint64(idx), false)}, "field")
	return g.coerce(boxed, core.TyUnknown(), mb.Ty)
}
