package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeProgramFunc(t *testing.T) {
	src := []byte(`{
		"decls": [
			{
				"kind": "func",
				"name": "square",
				"params": ["x"],
				"body": {
					"kind": "binop",
					"op": "*",
					"left": {"kind": "var", "name": "x", "pos": {"line": 1, "col": 1}},
					"right": {"kind": "var", "name": "x", "pos": {"line": 1, "col": 5}},
					"pos": {"line": 1, "col": 3}
				},
				"pos": {"line": 1, "col": 1}
			}
		]
	}`)

	prog, err := DecodeProgram(src)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)

	want := &FuncDecl{
		Name:   "square",
		Params: []string{"x"},
		Body: &BinOp{
			Op:    "*",
			Left:  &Var{Name: "x", Pos: Pos{Line: 1, Col: 1}},
			Right: &Var{Name: "x", Pos: Pos{Line: 1, Col: 5}},
			Pos:   Pos{Line: 1, Col: 3},
		},
		Pos: Pos{Line: 1, Col: 1},
	}
	got := prog.Decls[0]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded func decl mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeProgramDataAndCase(t *testing.T) {
	src := []byte(`{
		"decls": [
			{
				"kind": "data",
				"name": "Box",
				"typeParams": ["a"],
				"ctors": [
					{"name": "MkBox", "fields": [{"kind": "tvar", "name": "a"}], "pos": {}}
				],
				"pos": {}
			},
			{
				"kind": "func",
				"name": "unbox",
				"params": ["b"],
				"body": {
					"kind": "case",
					"scrutinee": {"kind": "var", "name": "b", "pos": {}},
					"arms": [
						{
							"pattern": {"kind": "pctor", "name": "MkBox", "args": [{"kind": "pvar", "name": "v", "pos": {}}], "pos": {}},
							"guard": null,
							"body": {"kind": "var", "name": "v", "pos": {}}
						}
					],
					"pos": {}
				},
				"pos": {}
			}
		]
	}`)

	prog, err := DecodeProgram(src)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 2)

	dataDecl, ok := prog.Decls[0].(*DataDecl)
	require.True(t, ok)
	require.Equal(t, "Box", dataDecl.Name)
	require.Len(t, dataDecl.Ctors, 1)
	require.Equal(t, "MkBox", dataDecl.Ctors[0].Name)

	funcDecl, ok := prog.Decls[1].(*FuncDecl)
	require.True(t, ok)
	caseExpr, ok := funcDecl.Body.(*Case)
	require.True(t, ok)
	require.Len(t, caseExpr.Arms, 1)
	require.Nil(t, caseExpr.Arms[0].Guard)

	ctor, ok := caseExpr.Arms[0].Pattern.(*PCtor)
	require.True(t, ok)
	require.Equal(t, "MkBox", ctor.Name)
	require.Len(t, ctor.Args, 1)
}

func TestDecodeNormalizesUnicode(t *testing.T) {
	// decomposedName spells "cafe" followed by a combining acute accent
	// (U+0301) rather than the precomposed "é". Decoding must fold it
	// to the same NFC spelling a front end emitting precomposed text would
	// already produce.
	const decomposedName = "café"
	const precomposedName = "café"

	src := []byte(`{"decls": [{"kind": "func", "name": "` + decomposedName + `", "params": [], "body": {"kind": "unitLit", "pos": {}}, "pos": {}}]}`)

	prog, err := DecodeProgram(src)
	require.NoError(t, err)
	fd, ok := prog.Decls[0].(*FuncDecl)
	require.True(t, ok)
	require.Equal(t, precomposedName, fd.Name)
	require.NotEqual(t, decomposedName, fd.Name)
}

func TestDecodeProgramDecodesCharLiteralExprAndPattern(t *testing.T) {
	src := []byte(`{
		"decls": [
			{
				"kind": "func",
				"name": "isA",
				"params": ["c"],
				"body": {
					"kind": "case",
					"scrutinee": {"kind": "var", "name": "c", "pos": {}},
					"arms": [
						{
							"pattern": {"kind": "plit", "litKind": "charLit", "char": "a", "pos": {}},
							"guard": null,
							"body": {"kind": "charLit", "char": "a", "pos": {}}
						}
					],
					"pos": {}
				},
				"pos": {}
			}
		]
	}`)

	prog, err := DecodeProgram(src)
	require.NoError(t, err)
	funcDecl, ok := prog.Decls[0].(*FuncDecl)
	require.True(t, ok)
	caseExpr, ok := funcDecl.Body.(*Case)
	require.True(t, ok)

	pat, ok := caseExpr.Arms[0].Pattern.(*PLit)
	require.True(t, ok)
	require.Equal(t, CharLit, pat.Kind)
	require.Equal(t, 'a', pat.Char)

	body, ok := caseExpr.Arms[0].Body.(*Lit)
	require.True(t, ok)
	require.Equal(t, CharLit, body.Kind)
	require.Equal(t, 'a', body.Char)
}

func TestDecodeProgramRejectsUnknownKind(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"decls": [{"kind": "bogus"}]}`))
	require.Error(t, err)
}
