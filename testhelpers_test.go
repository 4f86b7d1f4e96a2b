package striplan

// fakeProto is a minimal GroundingPrototype used by the core package's own
// tests, so they don't need to import the domain package (which itself
// imports striplan, and would cycle).
type fakeProto struct {
	vars       []Variable
	varList    map[string]string
	precondPos []Literal
	precondNeg []Literal
	effectPos  []Literal
	effectNeg  []Literal
}

func (p *fakeProto) VariableList() map[string]string {
	if p.varList != nil {
		return p.varList
	}
	out := make(map[string]string, len(p.vars))
	for _, v := range p.vars {
		out[v.Name] = v.Name
	}
	return out
}
func (p *fakeProto) Variables() []Variable       { return p.vars }
func (p *fakeProto) PreconditionPos() []Literal { return p.precondPos }
func (p *fakeProto) PreconditionNeg() []Literal { return p.precondNeg }
func (p *fakeProto) EffectPos() []Literal       { return p.effectPos }
func (p *fakeProto) EffectNeg() []Literal       { return p.effectNeg }

// fakeProblem is a minimal in-package DomainProblem fixture.
type fakeProblem struct {
	objects    map[string]string
	prototypes map[string][]GroundingPrototype
	order      []string
	initial    FactSet
	goals      FactSet
}

func newFakeProblem() *fakeProblem {
	return &fakeProblem{
		objects:    make(map[string]string),
		prototypes: make(map[string][]GroundingPrototype),
		initial:    NewFactSet(),
		goals:      NewFactSet(),
	}
}

func (p *fakeProblem) object(name, typ string) *fakeProblem {
	p.objects[name] = typ
	return p
}

func (p *fakeProblem) schema(name string, proto *fakeProto) *fakeProblem {
	if _, ok := p.prototypes[name]; !ok {
		p.order = append(p.order, name)
	}
	p.prototypes[name] = append(p.prototypes[name], proto)
	return p
}

func (p *fakeProblem) OperatorNames() []string { return append([]string(nil), p.order...) }
func (p *fakeProblem) GroundOperator(name string) []GroundingPrototype {
	return p.prototypes[name]
}
func (p *fakeProblem) WorldObjects() map[string]string {
	out := make(map[string]string, len(p.objects))
	for k, v := range p.objects {
		out[k] = v
	}
	return out
}
func (p *fakeProblem) InitialState() FactSet { return p.initial.Clone() }
func (p *fakeProblem) Goals() FactSet         { return p.goals.Clone() }
