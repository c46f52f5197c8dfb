package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleFuncOrderIsNameSorted(t *testing.T) {
	m := NewModule()
	m.AddFunction(&Function{Name: "square", Result: TyInt()})
	m.AddFunction(&Function{Name: "main", Result: TyInt()})
	assert.Equal(t, []string{"main", "square"}, m.FuncOrder)
}

func TestValueTyEqualsStructural(t *testing.T) {
	a := TyFunc([]ValueTy{TyInt(), TyInt()}, TyInt())
	b := TyFunc([]ValueTy{TyInt(), TyInt()}, TyInt())
	assert.True(t, a.Equals(b))

	c := TyFunc([]ValueTy{TyInt()}, TyInt())
	assert.False(t, a.Equals(c))
}

func TestDictionaryInitUniquenessHelper(t *testing.T) {
	m := NewModule()
	m.Dicts = append(m.Dicts, &DictionaryInit{ClassName: "Num", TypeRepresentation: "Int"})
	dup := &DictionaryInit{ClassName: "Num", TypeRepresentation: "Int"}
	assert.True(t, hasDict(m, dup.ClassName, dup.TypeRepresentation))
}

func hasDict(m *Module, class, typeRepr string) bool {
	for _, d := range m.Dicts {
		if d.ClassName == class && d.TypeRepresentation == typeRepr {
			return true
		}
	}
	return false
}
