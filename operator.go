package striplan

// OperatorCell handles one (schema, direction) pair: given a fact set, it
// enumerates every applicable ground action for that schema (spec.md §4.2).
type OperatorCell struct {
	schemaName string
	direction  Direction

	iPos, iNeg, oPos, oNeg PatternSet
	inputStatements        PatternSet // iPos merged with iNeg, keyed by predicate

	vars       map[string]struct{} // every variable referenced by iPos ∪ iNeg
	negOnlyDom map[string][]string // only-negative variables -> candidate object domain (extended variant)

	enumerator *Enumerator
}

// NewOperatorCell builds the cell for schemaName in the given direction,
// choosing the canonical grounding (most distinct variable-list values) from
// dp.GroundOperator(schemaName), and pre-computing the candidate domain for
// variables that only occur in negative preconditions (spec.md §4.2,
// "extended variant").
func NewOperatorCell(dp DomainProblem, schemaName string, direction Direction) *OperatorCell {
	protos := dp.GroundOperator(schemaName)
	proto := canonicalGrounding(protos)
	if proto == nil {
		return nil
	}

	precondPos := literalsToPatternSet(proto.PreconditionPos())
	precondNeg := literalsToPatternSet(proto.PreconditionNeg())
	effectPos := literalsToPatternSet(proto.EffectPos())
	effectNeg := literalsToPatternSet(proto.EffectNeg())

	c := &OperatorCell{schemaName: schemaName, direction: direction}
	switch direction {
	case Forward:
		c.iPos, c.iNeg, c.oPos, c.oNeg = precondPos, precondNeg, effectPos, effectNeg
	case Backward:
		// i_pos = eff_pos ∪ (pre_pos \ eff_neg); i_neg = eff_neg;
		// o_pos = pre_pos ∩ eff_neg; o_neg = eff_pos (spec.md §4.2 table).
		c.iPos = effectPos.Merge(patternSetMinus(precondPos, effectNeg))
		c.iNeg = effectNeg
		c.oPos = patternSetIntersect(precondPos, effectNeg)
		c.oNeg = effectPos
	}
	c.inputStatements = c.iPos.Merge(c.iNeg)

	varSet := make(map[string]struct{})
	for v := range c.inputStatements.Variables(allTokens(proto.Variables())) {
		varSet[v] = struct{}{}
	}
	c.vars = varSet
	c.enumerator = NewEnumerator(c.vars)

	posVars := c.iPos.Variables(allTokens(proto.Variables()))
	negVars := c.iNeg.Variables(allTokens(proto.Variables()))
	negOnly := make(map[string]struct{})
	for v := range negVars {
		if _, ok := posVars[v]; !ok {
			negOnly[v] = struct{}{}
		}
	}
	if len(negOnly) > 0 {
		objToType := dp.WorldObjects()
		typeToObjs := make(map[string][]string)
		for obj, typ := range objToType {
			typeToObjs[typ] = append(typeToObjs[typ], obj)
		}
		c.negOnlyDom = make(map[string][]string, len(negOnly))
		for v := range negOnly {
			typ := ""
			for _, decl := range proto.Variables() {
				if decl.Name == v {
					typ = decl.Type
					break
				}
			}
			c.negOnlyDom[v] = typeToObjs[typ]
		}
	}

	return c
}

func allTokens(vars []Variable) map[string]struct{} {
	out := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		out[v.Name] = struct{}{}
	}
	return out
}

func patternSetMinus(a, b PatternSet) PatternSet {
	out := make(PatternSet)
	for pred, vecs := range a {
		bvecs := b[pred]
		for _, v := range vecs {
			if !containsVec(bvecs, v) {
				out[pred] = append(out[pred], v)
			}
		}
	}
	return out
}

func patternSetIntersect(a, b PatternSet) PatternSet {
	out := make(PatternSet)
	for pred, vecs := range a {
		bvecs := b[pred]
		for _, v := range vecs {
			if containsVec(bvecs, v) {
				out[pred] = append(out[pred], v)
			}
		}
	}
	return out
}

func containsVec(vecs []ArgVector, v ArgVector) bool {
	for _, o := range vecs {
		if len(o) != len(v) {
			continue
		}
		match := true
		for i := range o {
			if o[i] != v[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// InputPredicates returns every predicate this cell reads from a state, for
// the Operators Manager's predicate->cells routing index.
func (c *OperatorCell) InputPredicates() []string {
	out := make([]string, 0, len(c.inputStatements))
	for pred := range c.inputStatements {
		out = append(out, pred)
	}
	return out
}

// ApplicableActions implements spec.md §4.2's applicable_actions(S): given a
// fact set s (already filtered to facts relevant to this cell by the
// Operators Manager, but correct even if it isn't), returns every ground
// action this cell's schema admits.
func (c *OperatorCell) ApplicableActions(s FactSet) []GroundAction {
	var partials []Binding

	for f := range s {
		if _, ok := c.iPos[f.Predicate]; !ok {
			// only facts whose predicate appears in i_pos seed partials
			// (spec.md §4.2 step 1); i_neg alone can never be satisfied by a
			// fact actually present in s.
			continue
		}
		vecs := c.inputStatements[f.Predicate]
		args := f.Arguments()
		for _, vec := range vecs {
			if len(vec) != len(args) {
				continue
			}
			p := make(Binding, len(vec))
			ok := true
			for i, tok := range vec {
				if _, isVar := c.vars[tok]; isVar {
					if prev, exists := p[tok]; exists && prev != args[i] {
						ok = false
						break
					}
					p[tok] = args[i]
				} else if tok != args[i] {
					ok = false
					break
				}
			}
			if ok {
				partials = append(partials, p)
			}
		}
	}

	for v, domain := range c.negOnlyDom {
		for _, obj := range domain {
			partials = append(partials, Binding{v: obj})
		}
	}

	candidates := c.enumerator.Process(partials)
	c.enumerator.Reset()

	var actions []GroundAction
	for _, b := range candidates {
		pos := c.iPos.Instantiate(b)
		if !s.Contains(pos) {
			continue
		}
		neg := c.iNeg.Instantiate(b)
		if s.Intersects(neg) {
			continue
		}
		actions = append(actions, GroundAction{
			SchemaName: c.schemaName,
			Binding:    b,
			PrecondPos: pos,
			PrecondNeg: neg,
			EffectPos:  c.oPos.Instantiate(b),
			EffectNeg:  c.oNeg.Instantiate(b),
		})
	}
	return actions
}
