// Package domain builds a striplan.DomainProblem without a PDDL front end.
// PDDL grammar parsing remains explicitly out of scope for this repo (see
// SPEC_FULL.md §1/§6); Builder and LoadYAML are the minimal concrete stand-in
// the CLI needs to have something to read from disk and hand to a Planner,
// grounded on the teacher library's own pattern of hand-built State/problem
// fixtures (pabt_test.go's mockState, the tcell example's sim.State).
package domain

import (
	"fmt"

	"github.com/strips-go/striplan"
)

// SchemaDef is one action schema definition: a name, its typed variables, and
// its four fact patterns, expressed with raw predicate literals (variable
// tokens and object constants are not distinguished syntactically — a token
// is a variable iff it names one of Variables).
type SchemaDef struct {
	Name       string
	Variables  []striplan.Variable
	PrecondPos []striplan.Literal
	PrecondNeg []striplan.Literal
	EffectPos  []striplan.Literal
	EffectNeg  []striplan.Literal
}

// prototype adapts a SchemaDef into a striplan.GroundingPrototype. varList
// overrides the canonicalization values used to count distinct variables;
// when nil, it defaults to the identity map (each variable maps to itself),
// which is what every ordinary, non-degenerate schema wants.
type prototype struct {
	def     SchemaDef
	varList map[string]string
}

func (p *prototype) VariableList() map[string]string {
	if p.varList != nil {
		return p.varList
	}
	out := make(map[string]string, len(p.def.Variables))
	for _, v := range p.def.Variables {
		out[v.Name] = v.Name
	}
	return out
}
func (p *prototype) Variables() []striplan.Variable   { return p.def.Variables }
func (p *prototype) PreconditionPos() []striplan.Literal { return p.def.PrecondPos }
func (p *prototype) PreconditionNeg() []striplan.Literal { return p.def.PrecondNeg }
func (p *prototype) EffectPos() []striplan.Literal       { return p.def.EffectPos }
func (p *prototype) EffectNeg() []striplan.Literal       { return p.def.EffectNeg }

// Problem is a concrete striplan.DomainProblem: a fixed set of typed world
// objects, one or more prototypical groundings per named schema, an initial
// state, and a goal.
type Problem struct {
	objects    map[string]string // object -> type
	prototypes map[string][]striplan.GroundingPrototype
	order      []string // operator names, in declaration order
	initial    striplan.FactSet
	goals      striplan.FactSet
}

func (p *Problem) OperatorNames() []string { return append([]string(nil), p.order...) }
func (p *Problem) GroundOperator(name string) []striplan.GroundingPrototype {
	return p.prototypes[name]
}
func (p *Problem) WorldObjects() map[string]string {
	out := make(map[string]string, len(p.objects))
	for k, v := range p.objects {
		out[k] = v
	}
	return out
}
func (p *Problem) InitialState() striplan.FactSet { return p.initial.Clone() }
func (p *Problem) Goals() striplan.FactSet         { return p.goals.Clone() }

// Builder fluently constructs a Problem.
type Builder struct {
	objects    map[string]string
	prototypes map[string][]striplan.GroundingPrototype
	order      []string
	initial    striplan.FactSet
	goals      striplan.FactSet

	// conflict records the first validation failure detected eagerly (by
	// Object), so Build can still return it without making every fluent
	// setter return an error.
	conflict error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		objects:    make(map[string]string),
		prototypes: make(map[string][]striplan.GroundingPrototype),
		initial:    striplan.NewFactSet(),
		goals:      striplan.NewFactSet(),
	}
}

// Object declares a world object and its type. Declaring the same object name
// twice with two different types is recorded as a conflict and surfaced by
// Build, rather than silently letting the later call win.
func (b *Builder) Object(name, typ string) *Builder {
	if prev, ok := b.objects[name]; ok && prev != typ && b.conflict == nil {
		b.conflict = fmt.Errorf("domain: object %q declared with conflicting types %q and %q", name, prev, typ)
	}
	b.objects[name] = typ
	return b
}

// Schema declares a single canonical grounding for an action schema. Most
// callers only ever need this; AddDegenerateGrounding exists solely to
// exercise the canonicalization rule in tests.
func (b *Builder) Schema(def SchemaDef) *Builder {
	if _, seen := b.prototypes[def.Name]; !seen {
		b.order = append(b.order, def.Name)
	}
	b.prototypes[def.Name] = append(b.prototypes[def.Name], &prototype{def: def})
	return b
}

// AddDegenerateGrounding registers an additional candidate grounding for an
// already-declared schema name, with an explicit variable-list override —
// for exercising spec.md §4.2's "greatest number of distinct variable names"
// canonicalization rule.
func (b *Builder) AddDegenerateGrounding(name string, def SchemaDef, varList map[string]string) *Builder {
	if _, seen := b.prototypes[name]; !seen {
		b.order = append(b.order, name)
	}
	b.prototypes[name] = append(b.prototypes[name], &prototype{def: def, varList: varList})
	return b
}

// Initial adds facts to the initial state.
func (b *Builder) Initial(atoms ...striplan.Atom) *Builder {
	for _, a := range atoms {
		b.initial.Add(a)
	}
	return b
}

// Goal adds facts to the goal condition.
func (b *Builder) Goal(atoms ...striplan.Atom) *Builder {
	for _, a := range atoms {
		b.goals.Add(a)
	}
	return b
}

// Build returns the assembled Problem, or an error if a declared object had
// conflicting types (see Object) or a goal fact names a predicate that
// neither the initial state nor any schema's precondition/effect ever
// mentions — almost certainly a typo, since such a goal could never be
// reasoned about by any operator.
func (b *Builder) Build() (*Problem, error) {
	if b.conflict != nil {
		return nil, b.conflict
	}

	known := make(map[string]struct{})
	for a := range b.initial {
		known[a.Predicate] = struct{}{}
	}
	for _, protos := range b.prototypes {
		for _, p := range protos {
			for _, lits := range [][]striplan.Literal{
				p.(*prototype).def.PrecondPos,
				p.(*prototype).def.PrecondNeg,
				p.(*prototype).def.EffectPos,
				p.(*prototype).def.EffectNeg,
			} {
				for _, lit := range lits {
					known[lit.Predicate] = struct{}{}
				}
			}
		}
	}
	for a := range b.goals {
		if _, ok := known[a.Predicate]; !ok {
			return nil, fmt.Errorf("domain: goal predicate %q is never mentioned by the initial state or any schema", a.Predicate)
		}
	}

	return &Problem{
		objects:    b.objects,
		prototypes: b.prototypes,
		order:      append([]string(nil), b.order...),
		initial:    b.initial,
		goals:      b.goals,
	}, nil
}
