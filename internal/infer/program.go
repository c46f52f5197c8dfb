package infer

import (
	"github.com/sunholo/typelang/internal/ast"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/types"
)

// InferProgram type-checks every top-level declaration of prog in source
// order (spec §5 "Top-level declarations are processed in source order;
// each declaration's binding is visible to its successors"), returning the
// Ctx (carrying the final substitution and every expression's recorded
// Annotation, consumed by internal/lower) and each function's generalized
// Scheme.
//
// A function is bound to a fresh monomorphic placeholder before its own
// body is inferred, so that self-recursive calls type-check; the binding is
// replaced by the generalized Scheme once the body is done, exactly the
// standard letrec treatment the teacher's InferenceContext uses for
// top-level bindings.
func InferProgram(prog *ast.Program) (*Ctx, map[string]types.Scheme, error) {
	c := NewCtx()
	env := PreludeEnv(c)
	schemes := make(map[string]types.Scheme)

	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.DataDecl); ok {
			c.RegisterDataDecl(d)
		}
	}

	for _, decl := range prog.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		placeholder := c.FreshVar()
		recEnv := env.Extend(fd.Name, types.Scheme{Qual: types.QualifiedType{Type: placeholder}})

		bodyEnv := recEnv
		var paramVars []types.Type
		for _, p := range fd.Params {
			v := c.FreshVar()
			paramVars = append(paramVars, v)
			bodyEnv = bodyEnv.Extend(p, types.Scheme{Qual: types.QualifiedType{Type: v}})
		}

		bodyQT, err := c.Infer(bodyEnv, fd.Body)
		if err != nil {
			return c, nil, err
		}

		fnType := bodyQT.Type
		for i := len(paramVars) - 1; i >= 0; i-- {
			fnType = &types.TFun{Param: c.Apply(paramVars[i]), Result: fnType}
		}
		if err := c.Unify(placeholder, fnType, fd.Pos); err != nil {
			return c, nil, err
		}

		qual := c.ApplyQual(types.NewQualifiedType(c.Apply(placeholder), bodyQT.Constraints))
		if fd.Sig != nil {
			sigTy, sigConstraints := resolveSigType(c, fd.Sig)
			if err := c.Unify(qual.Type, sigTy, fd.Pos); err != nil {
				return c, nil, err
			}
			qual = c.ApplyQual(types.NewQualifiedType(qual.Type, append(qual.Constraints, sigConstraints...)))
		}

		scheme := types.Generalize(env.FreeVars(), qual)
		schemes[fd.Name] = scheme
		env = env.Extend(fd.Name, scheme)
	}

	if len(schemes) == 0 {
		return c, schemes, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.TYPE010,
			"program has no function declarations", nil))
	}

	return c, schemes, nil
}

// resolveSigType turns a source SchemeSyntax's Type into an internal Type,
// pre-assigning one fresh TVar per distinct type-variable name it mentions
// so every occurrence of e.g. `a` in `a -> a` resolves to the same identity.
// It also resolves the signature's declared class constraints (`Num a =>`)
// against that same var identity, so a constraint named only in the
// signature — never generated by the body itself — still reaches the
// function's QualifiedType instead of being silently dropped.
func resolveSigType(c *Ctx, sig *ast.SchemeSyntax) (types.Type, []types.Constraint) {
	vars := map[string]*types.TVar{}
	collectTypeVarNames(sig.Type, vars, c)
	for _, cons := range sig.Constraints {
		if _, ok := vars[cons.TypeVar]; !ok {
			vars[cons.TypeVar] = c.FreshVar()
		}
	}

	sigTy := resolveTypeSyntax(sig.Type, vars)

	var constraints []types.Constraint
	for _, cons := range sig.Constraints {
		constraints = append(constraints, types.Constraint{Class: cons.ClassName, Type: vars[cons.TypeVar]})
	}
	return sigTy, constraints
}

func collectTypeVarNames(t ast.TypeSyntax, vars map[string]*types.TVar, c *Ctx) {
	switch x := t.(type) {
	case ast.TEVar:
		if _, ok := vars[x.Name]; !ok {
			vars[x.Name] = c.FreshVar()
		}
	case ast.TEApp:
		collectTypeVarNames(x.Func, vars, c)
		collectTypeVarNames(x.Arg, vars, c)
	case ast.TEFun:
		collectTypeVarNames(x.Param, vars, c)
		collectTypeVarNames(x.Return, vars, c)
	case ast.TEList:
		collectTypeVarNames(x.Elem, vars, c)
	case ast.TETuple:
		for _, it := range x.Items {
			collectTypeVarNames(it, vars, c)
		}
	}
}
