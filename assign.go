package striplan

import "math/rand"

// assignNode is one node of the Assignment Tree (§3, §4.1): a nested
// partial-binding tree where each edge is labeled by a partial binding and a
// root-to-node path concatenates into a cumulative binding.
type assignNode struct {
	children map[string]*assignNode // keyed by the child partial's Binding.Key()
	partial  map[string]Binding     // the actual partial bindings keyed the same way
}

func newAssignNode() *assignNode {
	return &assignNode{children: make(map[string]*assignNode), partial: make(map[string]Binding)}
}

// Enumerator is the Assignment Enumerator of spec.md §4.1: constructed with a
// finite variable set V, it turns a collection of partial bindings into the
// set of all total bindings consistent with them.
type Enumerator struct {
	vars map[string]struct{}
	root *assignNode
	rng  *rand.Rand
}

// NewEnumerator constructs an Enumerator over the given variable names.
func NewEnumerator(vars map[string]struct{}) *Enumerator {
	cp := make(map[string]struct{}, len(vars))
	for v := range vars {
		cp[v] = struct{}{}
	}
	return &Enumerator{
		vars: cp,
		root: newAssignNode(),
		rng:  rand.New(rand.NewSource(rand.Int63())),
	}
}

// SetRand overrides the random source used to permute incoming partials,
// purely a performance heuristic (§4.1 "Input order") — the result set does
// not depend on it. Tests that want reproducible tree-shape behavior can pin
// a seeded source here.
func (e *Enumerator) SetRand(r *rand.Rand) { e.rng = r }

// Reset clears the tree, as required before reuse (§4.1 "Lifecycle").
func (e *Enumerator) Reset() { e.root = newAssignNode() }

// restrict applies the entry filter of §4.1 ("Filtering on entry"): a partial
// referencing a variable outside V is kept only if its value equals the
// variable symbol itself (an identity constant), then the partial is
// restricted to V.
func (e *Enumerator) restrict(p Binding) (Binding, bool) {
	out := make(Binding, len(p))
	for k, v := range p {
		if _, ok := e.vars[k]; ok {
			out[k] = v
			continue
		}
		if v != k {
			return nil, false
		}
	}
	return out, true
}

// Process implements the algorithm of §4.1: it accepts an unordered
// collection of partial bindings and returns the set of all total bindings
// (one entry in the map per distinct binding, keyed by Binding.Key) that are
// a union of one or more inputs and internally consistent.
func (e *Enumerator) Process(partials []Binding) map[string]Binding {
	out := make(map[string]Binding)
	order := e.rng.Perm(len(partials))
	for _, idx := range order {
		p, ok := e.restrict(partials[idx])
		if !ok {
			continue
		}
		for _, total := range e.insert(e.root, Binding{}, p) {
			out[total.Key()] = total
		}
	}
	return out
}

// insert pushes partial into tree, rooted at node, with cache the cumulative
// binding along the path so far, and returns every newly-observed total
// binding produced in the process (§4.1 steps 1-3).
func (e *Enumerator) insert(node *assignNode, cache Binding, partial Binding) []Binding {
	if len(partial) == 0 {
		if len(cache) == len(e.vars) {
			return []Binding{cache}
		}
		return nil
	}
	if len(partial) == len(e.vars) {
		return []Binding{partial}
	}

	var (
		compatible   []string
		fullyContain string
		hasFull      bool
	)
	for key, q := range node.partial {
		if !compatibleBindings(partial, q) {
			continue
		}
		if isSubsetBinding(q, partial) {
			fullyContain = key
			hasFull = true
			break
		}
		compatible = append(compatible, key)
	}

	var branches []string
	if hasFull {
		branches = []string{fullyContain}
	} else {
		key := partial.Key()
		if _, exists := node.partial[key]; !exists {
			node.partial[key] = partial.Clone()
			node.children[key] = newAssignNode()
		}
		branches = append(compatible, key)
	}

	var result []Binding
	for _, key := range branches {
		q := node.partial[key]
		residual := make(Binding, len(partial))
		for k, v := range partial {
			if _, ok := q[k]; !ok {
				residual[k] = v
			}
		}
		nextCache := cache.Clone()
		for k, v := range q {
			nextCache[k] = v
		}
		result = append(result, e.insert(node.children[key], nextCache, residual)...)
	}
	return result
}

// compatibleBindings reports whether p and q agree on every variable they
// share.
func compatibleBindings(p, q Binding) bool {
	for k, v := range p {
		if qv, ok := q[k]; ok && qv != v {
			return false
		}
	}
	return true
}

// isSubsetBinding reports whether every variable of sub appears (with the
// same value, guaranteed by the compatibility check already performed) in
// super.
func isSubsetBinding(sub, super Binding) bool {
	for k := range sub {
		if _, ok := super[k]; !ok {
			return false
		}
	}
	return true
}
