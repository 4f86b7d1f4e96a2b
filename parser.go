package striplan

// Literal is a single raw precondition/effect statement as exposed by a
// GroundingPrototype: a predicate symbol plus an argument vector whose
// elements may be variable tokens or object constants. It mirrors the shape
// pddlpy literals take in the original Python implementation this design is
// grounded on (see original_source/operators.py).
type Literal struct {
	Predicate string
	Args      []string
}

// GroundingPrototype is one candidate grounding of an action schema, as
// produced by DomainProblem.GroundOperator. A parser may emit more than one
// prototype per schema name when its variable-naming is degenerate (two
// logically distinct variables sharing a name); OperatorCell picks the one
// with the greatest number of distinct variable-list values (spec.md §4.2,
// "Schema canonicalization").
type GroundingPrototype interface {
	// VariableList returns, for this grounding, a map from variable token to
	// the value used for canonicalization counting. It is consulted solely
	// to count distinct values; it does not substitute into patterns.
	VariableList() map[string]string
	// Variables returns the schema's declared typed variable list for this
	// grounding.
	Variables() []Variable
	PreconditionPos() []Literal
	PreconditionNeg() []Literal
	EffectPos() []Literal
	EffectNeg() []Literal
}

// DomainProblem is the external collaborator contract (spec.md §6): a parser
// (or, in this repo, the non-PDDL domain package) must supply operator
// schema names, their groundings, world object types, the initial state, and
// the goal.
type DomainProblem interface {
	// OperatorNames returns every declared action schema name.
	OperatorNames() []string
	// GroundOperator returns the prototypical groundings for name, used by
	// OperatorCell to pick a canonical pattern-set definition.
	GroundOperator(name string) []GroundingPrototype
	// WorldObjects returns the object -> type map for every world object.
	WorldObjects() map[string]string
	// InitialState returns the problem's initial fact set.
	InitialState() FactSet
	// Goals returns the problem's goal fact set.
	Goals() FactSet
}

// literalsToPatternSet converts raw prototype literals into a PatternSet.
func literalsToPatternSet(lits []Literal) PatternSet {
	out := make(PatternSet)
	for _, lit := range lits {
		out[lit.Predicate] = append(out[lit.Predicate], ArgVector(append([]string(nil), lit.Args...)))
	}
	return out
}

// canonicalGrounding picks, from protos, the grounding with the greatest
// number of distinct VariableList values, ties broken by first occurrence
// (spec.md §4.2).
func canonicalGrounding(protos []GroundingPrototype) GroundingPrototype {
	best, bestN := -1, -1
	for i, p := range protos {
		distinct := make(map[string]struct{})
		for _, v := range p.VariableList() {
			distinct[v] = struct{}{}
		}
		if len(distinct) > bestN {
			bestN = len(distinct)
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return protos[best]
}
