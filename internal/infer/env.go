// Package infer implements Algorithm W with qualified types over the AST
// of internal/ast, grounded on the teacher's InferenceContext/CoreTypeChecker
// judgement structure (same literal/variable/lambda/let/if/apply dispatch
// shape), generalized to explicit class-constraint sets instead of the
// teacher's row-polymorphic effect tracking.
package infer

import "github.com/sunholo/typelang/internal/types"

// Env is a persistent type environment: name to Scheme, with parent
// chaining so that extending a child scope never mutates its parent (spec
// §4.2 "Lambda": one fresh variable per parameter bound... in the
// environment").
type Env struct {
	bindings map[string]types.Scheme
	parent   *Env
}

// NewEnv returns an empty root environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]types.Scheme)}
}

// Extend returns a child environment with name bound to scheme.
func (e *Env) Extend(name string, scheme types.Scheme) *Env {
	return &Env{bindings: map[string]types.Scheme{name: scheme}, parent: e}
}

// Lookup walks the parent chain for name.
func (e *Env) Lookup(name string) (types.Scheme, bool) {
	for env := e; env != nil; env = env.parent {
		if s, ok := env.bindings[name]; ok {
			return s, true
		}
	}
	return types.Scheme{}, false
}

// FreeVars is the union of free variables over every binding reachable from
// e, used to compute "ftv of the environment" during generalization (spec
// §4.1 "Generalization").
func (e *Env) FreeVars() map[int]bool {
	out := make(map[int]bool)
	seen := make(map[string]bool)
	for env := e; env != nil; env = env.parent {
		for name, scheme := range env.bindings {
			if seen[name] {
				continue
			}
			seen[name] = true
			free := scheme.Qual.FTV()
			for _, q := range scheme.Quantified {
				delete(free, q)
			}
			for id := range free {
				out[id] = true
			}
		}
	}
	return out
}
