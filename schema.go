package striplan

import "sort"

// Variable is a typed parameter of an action schema, e.g. "?x:block".
type Variable struct {
	Name string
	Type string
}

// Binding maps variable names to object names. A binding is total with
// respect to a variable set V when every name in V has an entry.
type Binding map[string]string

// Clone returns an independent copy of b.
func (b Binding) Clone() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Key returns a canonical string for b, sorted by variable name, used to
// de-duplicate bindings and as a component of ground-action hashing.
func (b Binding) Key() string {
	names := make([]string, 0, len(b))
	for k := range b {
		names = append(names, k)
	}
	sort.Strings(names)
	var out []byte
	for _, n := range names {
		out = append(out, n...)
		out = append(out, '=')
		out = append(out, b[n]...)
		out = append(out, '|')
	}
	return string(out)
}

// ArgVector is one argument vector for a predicate within a pattern set: each
// element is either a variable name (present in the owning schema's Variables)
// or an object constant.
type ArgVector []string

// PatternSet maps a predicate symbol to the set of argument vectors declared
// for it. A predicate may appear with more than one argument vector, e.g. a
// schema with two distinct (on ?x ?y) style preconditions under different
// variables.
type PatternSet map[string][]ArgVector

// Clone returns an independent copy of ps.
func (ps PatternSet) Clone() PatternSet {
	out := make(PatternSet, len(ps))
	for pred, vecs := range ps {
		cp := make([]ArgVector, len(vecs))
		for i, v := range vecs {
			cp[i] = append(ArgVector(nil), v...)
		}
		out[pred] = cp
	}
	return out
}

// Merge returns a new PatternSet containing every (predicate, vector) pair of
// ps and other.
func (ps PatternSet) Merge(other PatternSet) PatternSet {
	out := ps.Clone()
	for pred, vecs := range other {
		out[pred] = append(out[pred], vecs...)
	}
	return out
}

// Instantiate applies binding b to every argument vector in ps, producing the
// ground facts that result: instantiate(pattern, b) = { (pred, b[a1..ak]) }.
// A pattern argument that is not a key of b is treated as an object constant
// and passed through unchanged (this lets PatternSet encode schemas where a
// precondition/effect argument is a literal object rather than a variable).
func (ps PatternSet) Instantiate(b Binding) FactSet {
	out := make(FactSet)
	for pred, vecs := range ps {
		for _, vec := range vecs {
			args := make([]string, len(vec))
			for i, tok := range vec {
				if val, ok := b[tok]; ok {
					args[i] = val
				} else {
					args[i] = tok
				}
			}
			out[NewAtom(pred, args...)] = struct{}{}
		}
	}
	return out
}

// Variables returns the set of variable tokens referenced anywhere in ps,
// i.e. every argument-vector element that is a key of vars.
func (ps PatternSet) Variables(vars map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, vecs := range ps {
		for _, vec := range vecs {
			for _, tok := range vec {
				if _, ok := vars[tok]; ok {
					out[tok] = struct{}{}
				}
			}
		}
	}
	return out
}

// Schema is a lifted action operator: a name, its typed variable list, and
// the four fact patterns describing its positive/negative preconditions and
// effects.
type Schema struct {
	Name          string
	Variables     []Variable
	PrecondPos    PatternSet
	PrecondNeg    PatternSet
	EffectPos     PatternSet
	EffectNeg     PatternSet
}

// VarSet returns the schema's declared variable names as a set, for use with
// PatternSet.Variables and the Assignment Enumerator.
func (s *Schema) VarSet() map[string]struct{} {
	out := make(map[string]struct{}, len(s.Variables))
	for _, v := range s.Variables {
		out[v.Name] = struct{}{}
	}
	return out
}

// VarType returns the declared type of variable name, or "" if name isn't a
// declared variable of s.
func (s *Schema) VarType(name string) string {
	for _, v := range s.Variables {
		if v.Name == name {
			return v.Type
		}
	}
	return ""
}
