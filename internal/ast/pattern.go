package ast

// Pattern is a case-arm pattern. internal/lower only accepts PList/PTuple
// when they carry zero items (see COREIR162/COREIR163 in internal/errors);
// anything deeper must already have been flattened by the caller.
type Pattern interface {
	Node
	patternNode()
}

type PWildcard struct{ Pos Pos }

func (p *PWildcard) patternNode()   {}
func (p *PWildcard) Position() Pos  { return p.Pos }
func (p *PWildcard) String() string { return "_" }

type PVar struct {
	Name string
	Pos  Pos
}

func (p *PVar) patternNode()   {}
func (p *PVar) Position() Pos  { return p.Pos }
func (p *PVar) String() string { return p.Name }

type PLit struct {
	Kind LitKind
	Int  int64
	Flt  float64
	Str  string
	Bool bool
	Char rune
	Pos  Pos
}

func (p *PLit) patternNode()   {}
func (p *PLit) Position() Pos  { return p.Pos }
func (p *PLit) String() string { return "litpat" }

// PAs binds Name to the whole value matched by Inner, e.g. `xs@(Cons h t)`.
type PAs struct {
	Name  string
	Inner Pattern
	Pos   Pos
}

func (p *PAs) patternNode()   {}
func (p *PAs) Position() Pos  { return p.Pos }
func (p *PAs) String() string { return p.Name + "@..." }

// PCtor matches a single-level application of a data constructor.
type PCtor struct {
	Name string
	Args []Pattern
	Pos  Pos
}

func (p *PCtor) patternNode()   {}
func (p *PCtor) Position() Pos  { return p.Pos }
func (p *PCtor) String() string { return p.Name }

// PList and PTuple exist only to represent the empty-list/empty-tuple
// patterns `[]` and `()`; any pattern carrying items is rejected by
// internal/lower with COREIR162/COREIR163.
type PList struct {
	Items []Pattern
	Pos   Pos
}

func (p *PList) patternNode()   {}
func (p *PList) Position() Pos  { return p.Pos }
func (p *PList) String() string { return "[]" }

type PTuple struct {
	Items []Pattern
	Pos   Pos
}

func (p *PTuple) patternNode()   {}
func (p *PTuple) Position() Pos  { return p.Pos }
func (p *PTuple) String() string { return "()" }
