package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tlerrors "github.com/sunholo/typelang/internal/errors"
)

func TestUnifyIdempotence(t *testing.T) {
	ty := TList(&TVar{ID: 1})
	s, err := Unify(ty, ty)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestUnifyOccursCheck(t *testing.T) {
	v := &TVar{ID: 7}
	target := &TApp{Func: TListCon, Arg: v}
	_, err := Unify(v, target)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, "TYPE002", rep.Code)
}

func TestUnifyMismatch(t *testing.T) {
	_, err := Unify(TInt, TBool)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, "TYPE001", rep.Code)
}

func TestUnifyTuple(t *testing.T) {
	a := &TTuple{Items: []Type{&TVar{ID: 1}, TBool}}
	b := &TTuple{Items: []Type{TInt, TBool}}
	s, err := Unify(a, b)
	require.NoError(t, err)
	assert.True(t, Apply(s, a).Equals(b))
}

func TestSubstitutionPreservesStructure(t *testing.T) {
	s := Substitution{1: TInt}
	ty := TList(&TVar{ID: 1})
	got := Apply(s, ty)
	app, ok := got.(*TApp)
	require.True(t, ok)
	assert.True(t, app.Func.Equals(TListCon))
	assert.True(t, app.Arg.Equals(TInt))
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	a := Substitution{1: &TVar{ID: 2}}
	b := Substitution{2: TInt}
	composed := Compose(b, a)
	ty := &TVar{ID: 1}
	assert.True(t, Apply(composed, ty).Equals(Apply(b, Apply(a, ty))))
}

func TestGeneralizeQuantifiesOnlyNonEnvVars(t *testing.T) {
	envFTV := map[int]bool{1: true}
	qt := QualifiedType{Type: &TFun{Param: &TVar{ID: 1}, Result: &TVar{ID: 2}}}
	scheme := Generalize(envFTV, qt)
	assert.Equal(t, []int{2}, scheme.Quantified)
}
