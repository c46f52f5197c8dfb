package ast

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// nfc applies the same Unicode NFC normalization the teacher's lexer applies
// at its input boundary (internal/lexer/normalize.go), so two programs that
// spell an identifier or string literal with different combining-character
// sequences decode to identical trees.
func nfc(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

func normalizeNames(names []string) []string {
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = nfc(n)
	}
	return out
}

// decodeChar reads a char literal's single code point out of its JSON string
// encoding (NFC-normalized first, like every other decoded string), taking
// its first rune. An empty string decodes to the zero rune.
func decodeChar(s string) rune {
	s = nfc(s)
	for _, r := range s {
		return r
	}
	return 0
}

// DecodeProgram reads the JSON encoding of a Program: the on-disk form
// cmd/typelangc's `build`/`check` subcommands accept (spec.md §1 excludes a
// surface lexer/parser from scope, so this package's own JSON shape stands
// in for "whatever an external front end produces", exercised the same way
// a front end would produce this package's tree directly). The shape is a
// straightforward discriminated union keyed by a "kind" field per node,
// using only encoding/json: no parsing grammar is implemented here, only
// deserialization of the already-defined tree.
func DecodeProgram(data []byte) (*Program, error) {
	var raw struct {
		Decls []json.RawMessage `json:"decls"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	prog := &Program{}
	for _, d := range raw.Decls {
		decl, err := decodeDecl(d)
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog, nil
}

type kinded struct {
	Kind string `json:"kind"`
}

func decodeDecl(data []byte) (Decl, error) {
	var k kinded
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	switch k.Kind {
	case "func":
		var w struct {
			Name   string          `json:"name"`
			Params []string        `json:"params"`
			Sig    *wireScheme     `json:"sig"`
			Body   json.RawMessage `json:"body"`
			Pos    Pos             `json:"pos"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		fd := &FuncDecl{Name: nfc(w.Name), Params: normalizeNames(w.Params), Body: body, Pos: w.Pos}
		if w.Sig != nil {
			sig, err := w.Sig.decode()
			if err != nil {
				return nil, err
			}
			fd.Sig = sig
		}
		return fd, nil
	case "data":
		var w struct {
			Name       string `json:"name"`
			TypeParams []string `json:"typeParams"`
			Ctors      []struct {
				Name   string            `json:"name"`
				Fields []json.RawMessage `json:"fields"`
				Pos    Pos               `json:"pos"`
			} `json:"ctors"`
			Pos Pos `json:"pos"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		dd := &DataDecl{Name: nfc(w.Name), TypeParams: normalizeNames(w.TypeParams), Pos: w.Pos}
		for _, c := range w.Ctors {
			ctor := CtorDecl{Name: nfc(c.Name), Pos: c.Pos}
			for _, f := range c.Fields {
				ty, err := decodeType(f)
				if err != nil {
					return nil, err
				}
				ctor.Fields = append(ctor.Fields, ty)
			}
			dd.Ctors = append(dd.Ctors, ctor)
		}
		return dd, nil
	default:
		return nil, fmt.Errorf("decode decl: unknown kind %q", k.Kind)
	}
}

type wireScheme struct {
	Constraints []struct {
		Class string `json:"class"`
		Var   string `json:"var"`
	} `json:"constraints"`
	Type json.RawMessage `json:"type"`
}

func (w *wireScheme) decode() (*SchemeSyntax, error) {
	ty, err := decodeType(w.Type)
	if err != nil {
		return nil, err
	}
	s := &SchemeSyntax{Type: ty}
	for _, c := range w.Constraints {
		s.Constraints = append(s.Constraints, ConstraintSyntax{ClassName: c.Class, TypeVar: c.Var})
	}
	return s, nil
}

func decodeType(data []byte) (TypeSyntax, error) {
	var k kinded
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	switch k.Kind {
	case "tvar":
		var w struct {
			Name string `json:"name"`
		}
		json.Unmarshal(data, &w)
		return TEVar{Name: nfc(w.Name)}, nil
	case "tcon":
		var w struct {
			Name string `json:"name"`
		}
		json.Unmarshal(data, &w)
		return TECon{Name: nfc(w.Name)}, nil
	case "tapp":
		var w struct {
			Func json.RawMessage `json:"func"`
			Arg  json.RawMessage `json:"arg"`
		}
		json.Unmarshal(data, &w)
		fn, err := decodeType(w.Func)
		if err != nil {
			return nil, err
		}
		arg, err := decodeType(w.Arg)
		if err != nil {
			return nil, err
		}
		return TEApp{Func: fn, Arg: arg}, nil
	case "tfun":
		var w struct {
			Param  json.RawMessage `json:"param"`
			Return json.RawMessage `json:"return"`
		}
		json.Unmarshal(data, &w)
		p, err := decodeType(w.Param)
		if err != nil {
			return nil, err
		}
		r, err := decodeType(w.Return)
		if err != nil {
			return nil, err
		}
		return TEFun{Param: p, Return: r}, nil
	case "tlist":
		var w struct {
			Elem json.RawMessage `json:"elem"`
		}
		json.Unmarshal(data, &w)
		e, err := decodeType(w.Elem)
		if err != nil {
			return nil, err
		}
		return TEList{Elem: e}, nil
	case "ttuple":
		var w struct {
			Items []json.RawMessage `json:"items"`
		}
		json.Unmarshal(data, &w)
		var items []TypeSyntax
		for _, it := range w.Items {
			ty, err := decodeType(it)
			if err != nil {
				return nil, err
			}
			items = append(items, ty)
		}
		return TETuple{Items: items}, nil
	default:
		return nil, fmt.Errorf("decode type: unknown kind %q", k.Kind)
	}
}

func decodeExpr(data []byte) (Expr, error) {
	var k kinded
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	switch k.Kind {
	case "intLit", "floatLit", "stringLit", "boolLit", "unitLit", "charLit":
		var w struct {
			Int  int64   `json:"int"`
			Flt  float64 `json:"flt"`
			Str  string  `json:"str"`
			Bool bool    `json:"bool"`
			Char string  `json:"char"`
			Pos  Pos     `json:"pos"`
		}
		json.Unmarshal(data, &w)
		kindMap := map[string]LitKind{
			"intLit": IntLit, "floatLit": FloatLit, "stringLit": StringLit,
			"boolLit": BoolLit, "unitLit": UnitLit, "charLit": CharLit,
		}
		return &Lit{Kind: kindMap[k.Kind], Int: w.Int, Flt: w.Flt, Str: nfc(w.Str), Bool: w.Bool, Char: decodeChar(w.Char), Pos: w.Pos}, nil
	case "var":
		var w struct {
			Name string `json:"name"`
			Pos  Pos    `json:"pos"`
		}
		json.Unmarshal(data, &w)
		return &Var{Name: nfc(w.Name), Pos: w.Pos}, nil
	case "wildcard":
		var w struct {
			Pos Pos `json:"pos"`
		}
		json.Unmarshal(data, &w)
		return &Wildcard{Pos: w.Pos}, nil
	case "lambda":
		var w struct {
			Params []string        `json:"params"`
			Body   json.RawMessage `json:"body"`
			Pos    Pos             `json:"pos"`
		}
		json.Unmarshal(data, &w)
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		return &Lambda{Params: normalizeNames(w.Params), Body: body, Pos: w.Pos}, nil
	case "let":
		var w struct {
			Bindings []struct {
				Name   string          `json:"name"`
				Params []string        `json:"params"`
				Value  json.RawMessage `json:"value"`
			} `json:"bindings"`
			Body json.RawMessage `json:"body"`
			Rec  bool            `json:"rec"`
			Pos  Pos             `json:"pos"`
		}
		json.Unmarshal(data, &w)
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		let := &Let{Body: body, Rec: w.Rec, Pos: w.Pos}
		for _, b := range w.Bindings {
			v, err := decodeExpr(b.Value)
			if err != nil {
				return nil, err
			}
			let.Bindings = append(let.Bindings, Binding{Name: nfc(b.Name), Params: normalizeNames(b.Params), Value: v})
		}
		return let, nil
	case "if":
		var w struct {
			Cond, Then, Else json.RawMessage
			Pos              Pos `json:"pos"`
		}
		json.Unmarshal(data, &w)
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(w.Else)
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: then, Else: els, Pos: w.Pos}, nil
	case "app":
		var w struct {
			Func json.RawMessage `json:"func"`
			Arg  json.RawMessage `json:"arg"`
			Pos  Pos             `json:"pos"`
		}
		json.Unmarshal(data, &w)
		fn, err := decodeExpr(w.Func)
		if err != nil {
			return nil, err
		}
		arg, err := decodeExpr(w.Arg)
		if err != nil {
			return nil, err
		}
		return &App{Func: fn, Arg: arg, Pos: w.Pos}, nil
	case "binop":
		var w struct {
			Op    string          `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
			Pos   Pos             `json:"pos"`
		}
		json.Unmarshal(data, &w)
		left, err := decodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &BinOp{Op: w.Op, Left: left, Right: right, Pos: w.Pos}, nil
	case "tuple":
		var w struct {
			Items []json.RawMessage `json:"items"`
			Pos   Pos               `json:"pos"`
		}
		json.Unmarshal(data, &w)
		t := &Tuple{Pos: w.Pos}
		for _, it := range w.Items {
			e, err := decodeExpr(it)
			if err != nil {
				return nil, err
			}
			t.Items = append(t.Items, e)
		}
		return t, nil
	case "listLit":
		var w struct {
			Items []json.RawMessage `json:"items"`
			Pos   Pos               `json:"pos"`
		}
		json.Unmarshal(data, &w)
		l := &ListLit{Pos: w.Pos}
		for _, it := range w.Items {
			e, err := decodeExpr(it)
			if err != nil {
				return nil, err
			}
			l.Items = append(l.Items, e)
		}
		return l, nil
	case "case":
		var w struct {
			Scrutinee json.RawMessage `json:"scrutinee"`
			Arms      []struct {
				Pattern json.RawMessage `json:"pattern"`
				Guard   json.RawMessage `json:"guard"`
				Body    json.RawMessage `json:"body"`
			} `json:"arms"`
			Pos Pos `json:"pos"`
		}
		json.Unmarshal(data, &w)
		scrutinee, err := decodeExpr(w.Scrutinee)
		if err != nil {
			return nil, err
		}
		c := &Case{Scrutinee: scrutinee, Pos: w.Pos}
		for _, a := range w.Arms {
			pat, err := decodePattern(a.Pattern)
			if err != nil {
				return nil, err
			}
			body, err := decodeExpr(a.Body)
			if err != nil {
				return nil, err
			}
			var guard Expr
			if len(a.Guard) > 0 && string(a.Guard) != "null" {
				guard, err = decodeExpr(a.Guard)
				if err != nil {
					return nil, err
				}
			}
			c.Arms = append(c.Arms, CaseArm{Pattern: pat, Guard: guard, Body: body})
		}
		return c, nil
	case "annot":
		var w struct {
			Expr json.RawMessage `json:"expr"`
			Type json.RawMessage `json:"type"`
			Pos  Pos             `json:"pos"`
		}
		json.Unmarshal(data, &w)
		e, err := decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		ty, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		return &Annot{Expr: e, Type: ty, Pos: w.Pos}, nil
	default:
		return nil, fmt.Errorf("decode expr: unknown kind %q", k.Kind)
	}
}

func decodePattern(data []byte) (Pattern, error) {
	var k kinded
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	switch k.Kind {
	case "pwildcard":
		var w struct {
			Pos Pos `json:"pos"`
		}
		json.Unmarshal(data, &w)
		return &PWildcard{Pos: w.Pos}, nil
	case "pvar":
		var w struct {
			Name string `json:"name"`
			Pos  Pos    `json:"pos"`
		}
		json.Unmarshal(data, &w)
		return &PVar{Name: nfc(w.Name), Pos: w.Pos}, nil
	case "plit":
		var w struct {
			Kind string  `json:"litKind"`
			Int  int64   `json:"int"`
			Flt  float64 `json:"flt"`
			Str  string  `json:"str"`
			Bool bool    `json:"bool"`
			Char string  `json:"char"`
			Pos  Pos     `json:"pos"`
		}
		json.Unmarshal(data, &w)
		kindMap := map[string]LitKind{
			"intLit": IntLit, "floatLit": FloatLit, "stringLit": StringLit,
			"boolLit": BoolLit, "unitLit": UnitLit, "charLit": CharLit,
		}
		return &PLit{Kind: kindMap[w.Kind], Int: w.Int, Flt: w.Flt, Str: nfc(w.Str), Bool: w.Bool, Char: decodeChar(w.Char), Pos: w.Pos}, nil
	case "pas":
		var w struct {
			Name  string          `json:"name"`
			Inner json.RawMessage `json:"inner"`
			Pos   Pos             `json:"pos"`
		}
		json.Unmarshal(data, &w)
		inner, err := decodePattern(w.Inner)
		if err != nil {
			return nil, err
		}
		return &PAs{Name: nfc(w.Name), Inner: inner, Pos: w.Pos}, nil
	case "pctor":
		var w struct {
			Name string            `json:"name"`
			Args []json.RawMessage `json:"args"`
			Pos  Pos               `json:"pos"`
		}
		json.Unmarshal(data, &w)
		p := &PCtor{Name: nfc(w.Name), Pos: w.Pos}
		for _, a := range w.Args {
			arg, err := decodePattern(a)
			if err != nil {
				return nil, err
			}
			p.Args = append(p.Args, arg)
		}
		return p, nil
	case "plist":
		var w struct {
			Items []json.RawMessage `json:"items"`
			Pos   Pos               `json:"pos"`
		}
		json.Unmarshal(data, &w)
		p := &PList{Pos: w.Pos}
		for _, it := range w.Items {
			item, err := decodePattern(it)
			if err != nil {
				return nil, err
			}
			p.Items = append(p.Items, item)
		}
		return p, nil
	case "ptuple":
		var w struct {
			Items []json.RawMessage `json:"items"`
			Pos   Pos               `json:"pos"`
		}
		json.Unmarshal(data, &w)
		p := &PTuple{Pos: w.Pos}
		for _, it := range w.Items {
			item, err := decodePattern(it)
			if err != nil {
				return nil, err
			}
			p.Items = append(p.Items, item)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("decode pattern: unknown kind %q", k.Kind)
	}
}
