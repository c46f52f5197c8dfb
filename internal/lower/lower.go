// Package lower transforms a type-checked internal/ast.Program into the
// internal/core Core IR, grounded on the teacher's internal/elaborate
// package: resolveVar mirrors elaborate.go's variable resolution priority
// order, dictionary descriptor recording mirrors dictionaries.go's
// DictElaborator, and Case lowering mirrors exhaustiveness.go's arm walk,
// narrowed to one-level patterns per spec.
package lower

import (
	"fmt"

	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/classcatalog"
	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/infer"
	"github.com/sunholo/typelang/internal/types"
)

type funcSig struct {
	DictParams  []core.Parameter
	ValueParams []core.ValueTy
	Result      core.ValueTy
}

type ctorEntry struct {
	DataName   string
	Tag        int
	Arity      int
	TypeParams []string
	Fields     []ast.TypeSyntax
}

// Lowerer carries the append-only state spec §5 assigns exclusively to the
// lowering context.
type Lowerer struct {
	Module    *core.Module
	Classes   *types.ClassEnv
	ctx       *infer.Ctx
	funcSigs  map[string]*funcSig
	ctors     map[string]ctorEntry
	dictIndex map[string]int
	curFunc   string
}

// Lower runs the full AST-to-Core-IR transformation of spec §4.3. ctx and
// schemes must come from a successful infer.InferProgram(prog) call.
func Lower(prog *ast.Program, ctx *infer.Ctx, schemes map[string]types.Scheme) (*core.Module, error) {
	lw := &Lowerer{
		Module:    core.NewModule(),
		Classes:   ctx.Classes,
		ctx:       ctx,
		funcSigs:  map[string]*funcSig{},
		ctors:     map[string]ctorEntry{},
		dictIndex: map[string]int{},
	}

	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.DataDecl); ok {
			lw.lowerDataDecl(d)
		}
	}

	var funcDecls []*ast.FuncDecl
	for _, decl := range prog.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			funcDecls = append(funcDecls, fd)
		}
	}

	for _, fd := range funcDecls {
		scheme, ok := schemes[fd.Name]
		if !ok {
			return nil, lw.err(tlerrors.COREIR033, "no inferred scheme for "+fd.Name, fd.Pos)
		}
		sig, err := lw.buildSignature(fd, scheme)
		if err != nil {
			return nil, err
		}
		lw.funcSigs[fd.Name] = sig
	}

	for _, fd := range funcDecls {
		fn, err := lw.lowerFunction(fd)
		if err != nil {
			return nil, err
		}
		lw.Module.AddFunction(fn)
	}

	if _, ok := lw.Module.Functions["main"]; ok {
		lw.Module.Entry = "main"
	}

	return lw.Module, nil
}

func (lw *Lowerer) err(code, msg string, pos ast.Pos) error {
	return tlerrors.WrapReport(tlerrors.New("lower", code, msg, &ast.Span{Start: pos, End: pos}))
}

func (lw *Lowerer) lowerDataDecl(d *ast.DataDecl) {
	layout := &core.DataTypeLayout{Name: d.Name, TypeParams: d.TypeParams}
	for i, ctor := range d.Ctors {
		layout.Ctors = append(layout.Ctors, core.ConstructorLayout{
			Name: ctor.Name, Tag: i, Arity: len(ctor.Fields), ParentName: d.Name, FieldTypes: ctor.Fields,
		})
		lw.ctors[ctor.Name] = ctorEntry{DataName: d.Name, Tag: i, Arity: len(ctor.Fields), TypeParams: d.TypeParams, Fields: ctor.Fields}
	}
	lw.Module.AddDataType(layout)
}

// buildSignature implements spec §4.3 "Per-function signature resolution"
// and "Dictionary descriptor recording".
func (lw *Lowerer) buildSignature(fd *ast.FuncDecl, scheme types.Scheme) (*funcSig, error) {
	sig := &funcSig{}

	for i, con := range scheme.Qual.Constraints {
		typeRepr := con.Type.String()
		sig.DictParams = append(sig.DictParams, core.Parameter{
			Name:      fmt.Sprintf("$dict%d", i),
			Ty:        core.TyDict(con.Class),
			Kind:      core.PKDictionary,
			ClassName: con.Class,
			TypeRepr:  typeRepr,
		})
		lw.recordDictionary(con.Class, con.Type, fd.Name, fd.Pos)
	}

	params, result := flattenTFun2(scheme.Qual.Type, len(fd.Params))
	if len(params) != len(fd.Params) {
		return nil, lw.err(tlerrors.COREIR021, "parameter count mismatch in "+fd.Name, fd.Pos)
	}
	for _, p := range params {
		sig.ValueParams = append(sig.ValueParams, lw.valueTyOf(p))
	}
	sig.Result = lw.valueTyOf(result)
	return sig, nil
}

// flattenTFun2 peels off up to n TFun layers (spec §4.3 step 2: "flattening
// the function type").
func flattenTFun2(t types.Type, n int) ([]types.Type, types.Type) {
	var params []types.Type
	cur := t
	for i := 0; i < n; i++ {
		fn, ok := cur.(*types.TFun)
		if !ok {
			break
		}
		params = append(params, fn.Param)
		cur = fn.Result
	}
	return params, cur
}

// recordDictionary appends one DictionaryInit per distinct (class,
// typeRepresentation) pair (append-only uniqueness per spec §5).
func (lw *Lowerer) recordDictionary(class string, t types.Type, origin string, pos ast.Pos) {
	lw.recordDictionaryCarrier(class, t.String(), lw.valueTyOf(t), isBuiltinCarrier(t), origin, pos)
}

// recordDictionaryByCarrier records a DictionaryInit from a carrier ValueTy
// alone, for a caller that has no full inferencer Type. lowerBinOp's
// dictionary-fallback path does not call it (see the note there).
func (lw *Lowerer) recordDictionaryByCarrier(class, typeRepr string, carrier core.ValueTy) {
	if typeRepr == "" {
		return
	}
	builtin := carrier.Kind == core.VInt || carrier.Kind == core.VDouble || carrier.Kind == core.VBool
	lw.recordDictionaryCarrier(class, typeRepr, carrier, builtin, lw.curFunc, ast.Pos{})
}

func (lw *Lowerer) recordDictionaryCarrier(class, typeRepr string, carrier core.ValueTy, builtin bool, origin string, pos ast.Pos) {
	key := class + "::" + typeRepr
	if _, exists := lw.dictIndex[key]; exists {
		return
	}

	d := &core.DictionaryInit{
		ClassName:          class,
		TypeRepresentation: typeRepr,
		CarrierTy:          carrier,
		OriginFunction:     origin,
		Span:               ast.Span{Start: pos, End: pos},
	}

	cms, hasCatalog := classcatalog.Lookup(class)

	if builtin {
		d.Builder = core.BuilderResolved
		d.BuilderSymbol = classcatalog.BuilderSymbol(class, typeRepr)
		if hasCatalog {
			for _, m := range cms.Methods {
				d.Methods = append(d.Methods, core.DictionaryMethod{
					Name: m.Name, Signature: string(m.Signature), MethodID: m.MethodID,
					Symbol: classcatalog.MethodSymbol(class, typeRepr, m.Name),
				})
			}
		}
	} else {
		d.Builder = core.BuilderUnresolved
		if hasCatalog {
			for _, m := range cms.Methods {
				d.Methods = append(d.Methods, core.DictionaryMethod{Name: m.Name, Signature: string(m.Signature), MethodID: m.MethodID})
			}
		}
	}

	lw.dictIndex[key] = len(lw.Module.Dicts)
	lw.Module.Dicts = append(lw.Module.Dicts, d)
}

func isBuiltinCarrier(t types.Type) bool {
	c, ok := t.(*types.TCon)
	return ok && (c.Name == "Int" || c.Name == "Integer" || c.Name == "Double" || c.Name == "Bool")
}
