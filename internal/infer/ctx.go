package infer

import (
	"github.com/sunholo/typelang/internal/ast"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/types"
)

// Ctx carries the inferencer's state: the fresh-variable supply and the
// current substitution (spec §4.2 "State"), owned exclusively by the
// inferencer (spec §5 "Shared-resource policy").
type Ctx struct {
	fresh   int
	Sub     types.Substitution
	Classes *types.ClassEnv
	// Ctors maps a constructor name to its declaring data type and field
	// type syntax, populated by RegisterDataDecl before inference begins.
	Ctors map[string]CtorSig
	// Annotations records, for every expression node seen by Infer, the
	// Type judged for it at that point (pre-final-substitution). Consumed by
	// internal/lower via TypeOf once a function's body has been fully
	// inferred, so lowering never needs to re-run Algorithm W.
	Annotations map[ast.Expr]types.Type
}

// CtorSig records a data constructor's shape for pattern type-checking.
type CtorSig struct {
	DataName   string
	TypeParams []string
	Fields     []ast.TypeSyntax
}

// NewCtx returns a fresh inference context seeded with the standard class
// environment (spec §3.2).
func NewCtx() *Ctx {
	return &Ctx{
		Sub:         types.Substitution{},
		Classes:     types.NewStdClassEnv(),
		Ctors:       map[string]CtorSig{},
		Annotations: map[ast.Expr]types.Type{},
	}
}

// TypeOf returns the fully-substituted type judged for e, or Unknown's
// underlying TVar zero value if e was never visited by Infer.
func (c *Ctx) TypeOf(e ast.Expr) types.Type {
	t, ok := c.Annotations[e]
	if !ok {
		return &types.TVar{ID: 0}
	}
	return c.Apply(t)
}

// RegisterDataDecl records every constructor of d for later pattern
// type-checking in Case arms (spec §4.3 "Case lowering" relies on the same
// constructor table at the lowering stage).
func (c *Ctx) RegisterDataDecl(d *ast.DataDecl) {
	for _, ctor := range d.Ctors {
		c.Ctors[ctor.Name] = CtorSig{DataName: d.Name, TypeParams: d.TypeParams, Fields: ctor.Fields}
	}
}

// FreshVar draws the next type-variable identity from the monotonically
// increasing supply (spec §4.1 "Instantiation").
func (c *Ctx) FreshVar() *types.TVar {
	c.fresh++
	return &types.TVar{ID: c.fresh}
}

func (c *Ctx) freshID() int {
	c.fresh++
	return c.fresh
}

// Unify unifies two types under the current substitution and composes the
// result into c.Sub.
func (c *Ctx) Unify(t1, t2 types.Type, pos ast.Pos) error {
	a := types.Apply(c.Sub, t1)
	b := types.Apply(c.Sub, t2)
	s, err := types.Unify(a, b)
	if err != nil {
		if rep, ok := tlerrors.AsReport(err); ok {
			rep.Span = &ast.Span{Start: pos, End: pos}
			return tlerrors.WrapReport(rep)
		}
		return err
	}
	c.Sub = types.Compose(s, c.Sub)
	return nil
}

// Apply applies the current substitution to t.
func (c *Ctx) Apply(t types.Type) types.Type { return types.Apply(c.Sub, t) }

// ApplyQual applies the current substitution to a QualifiedType.
func (c *Ctx) ApplyQual(q types.QualifiedType) types.QualifiedType { return types.ApplyQual(c.Sub, q) }
