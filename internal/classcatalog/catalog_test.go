package classcatalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumMethodOrderMatchesScenario2(t *testing.T) {
	cms, ok := Lookup("Num")
	require.True(t, ok)
	var names []string
	for _, m := range cms.Methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"add", "sub", "mul", "fromInt"}, names)
}

func TestMethodByIDRoundTrip(t *testing.T) {
	cms, ok := Lookup("Eq")
	require.True(t, ok)
	class, spec, ok := MethodByID(cms.Methods[0].MethodID)
	require.True(t, ok)
	assert.Equal(t, "Eq", class)
	assert.Equal(t, "eq", spec.Name)
}

func TestBuilderSymbolNaming(t *testing.T) {
	assert.Equal(t, "tl_dict_build_Num_Int", BuilderSymbol("Num", "Int"))
}

func TestLoadFallsBackWithoutEnv(t *testing.T) {
	t.Setenv("TYPELANG_CLASS_CATALOG", "")
	cms, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, CLASS_METHODS, cms)
}

func TestActivateOverridesLookupAndMethodByID(t *testing.T) {
	t.Cleanup(func() { active = CLASS_METHODS })

	Activate([]ClassMethodSet{
		{ClassName: "Num", Methods: []MethodSpec{{Name: "double", MethodID: 900, Signature: "%T -> %T"}}},
	})

	cms, ok := Lookup("Num")
	require.True(t, ok)
	assert.Equal(t, []MethodSpec{{Name: "double", MethodID: 900, Signature: "%T -> %T"}}, cms.Methods)

	class, spec, ok := MethodByID(900)
	require.True(t, ok)
	assert.Equal(t, "Num", class)
	assert.Equal(t, "double", spec.Name)
}

func TestActivateIgnoresEmptyCatalog(t *testing.T) {
	t.Cleanup(func() { active = CLASS_METHODS })

	Activate(nil)
	cms, ok := Lookup("Num")
	require.True(t, ok)
	assert.Equal(t, CLASS_METHODS[0].Methods, cms.Methods)
}
