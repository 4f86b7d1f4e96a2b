package striplan

import (
	"math/rand"
	"testing"
)

func TestEnumerator_SingleVariablePartialIsItsOwnTotal(t *testing.T) {
	e := NewEnumerator(map[string]struct{}{"?x": {}})
	got := e.Process([]Binding{{"?x": "a"}, {"?x": "b"}})
	if len(got) != 2 {
		t.Fatalf("Process() returned %d totals, want 2: %v", len(got), got)
	}
	if _, ok := got[(Binding{"?x": "a"}).Key()]; !ok {
		t.Fatalf("missing total {?x:a} in %v", got)
	}
	if _, ok := got[(Binding{"?x": "b"}).Key()]; !ok {
		t.Fatalf("missing total {?x:b} in %v", got)
	}
}

// TestEnumerator_CombinesIndependentPartialsIntoCrossProduct covers spec.md
// §8 scenario S6: two variables, two independent single-variable candidate
// partials each, and every one of the four consistent combinations must
// appear exactly once.
func TestEnumerator_CombinesIndependentPartialsIntoCrossProduct(t *testing.T) {
	vars := map[string]struct{}{"?x": {}, "?y": {}}
	partials := []Binding{
		{"?x": "a"},
		{"?x": "b"},
		{"?y": "c"},
		{"?y": "d"},
	}
	want := []Binding{
		{"?x": "a", "?y": "c"},
		{"?x": "a", "?y": "d"},
		{"?x": "b", "?y": "c"},
		{"?x": "b", "?y": "d"},
	}

	e := NewEnumerator(vars)
	got := e.Process(partials)
	if len(got) != len(want) {
		t.Fatalf("Process() returned %d totals, want %d: %v", len(got), len(want), got)
	}
	for _, w := range want {
		if _, ok := got[w.Key()]; !ok {
			t.Fatalf("missing expected total %v in %v", w, got)
		}
	}
}

// TestEnumerator_ResultIsOrderIndependent re-runs the cross-product scenario
// under several seeded random sources (§4.1's "random but order-independent
// result") and asserts the resulting total-binding set never changes.
func TestEnumerator_ResultIsOrderIndependent(t *testing.T) {
	vars := map[string]struct{}{"?x": {}, "?y": {}}
	partials := []Binding{
		{"?x": "a"},
		{"?x": "b"},
		{"?y": "c"},
		{"?y": "d"},
	}

	var baseline map[string]Binding
	for seed := int64(0); seed < 5; seed++ {
		e := NewEnumerator(vars)
		e.SetRand(rand.New(rand.NewSource(seed)))
		got := e.Process(partials)
		if baseline == nil {
			baseline = got
			continue
		}
		if len(got) != len(baseline) {
			t.Fatalf("seed %d: got %d totals, baseline had %d", seed, len(got), len(baseline))
		}
		for k := range baseline {
			if _, ok := got[k]; !ok {
				t.Fatalf("seed %d: missing total %q present under a different seed", seed, k)
			}
		}
	}
}

func TestEnumerator_RestrictAcceptsIdentityConstant(t *testing.T) {
	e := NewEnumerator(map[string]struct{}{"?x": {}})
	// "roomA" isn't a declared variable, but maps to itself, so it's an
	// accepted (and dropped) constant rather than a rejected foreign binding.
	got := e.Process([]Binding{{"?x": "a", "roomA": "roomA"}})
	if len(got) != 1 {
		t.Fatalf("Process() returned %d totals, want 1: %v", len(got), got)
	}
	if _, ok := got[(Binding{"?x": "a"}).Key()]; !ok {
		t.Fatalf("missing total {?x:a} in %v", got)
	}
}

func TestEnumerator_RestrictRejectsForeignBinding(t *testing.T) {
	e := NewEnumerator(map[string]struct{}{"?x": {}})
	// "extra" isn't declared and doesn't map to itself: the whole partial is
	// dropped rather than silently truncated.
	got := e.Process([]Binding{{"?x": "a", "extra": "other"}})
	if len(got) != 0 {
		t.Fatalf("Process() returned %d totals, want 0 for a rejected partial: %v", len(got), got)
	}
}

// TestEnumerator_ProcessCombinesCompatiblePartialsWithinOneCall checks that
// a single Process call unions compatible partials from the same input list
// into a complete total, not just partials that are already total on their
// own (§4.1: a returned total is "a union of one or more inputs").
func TestEnumerator_ProcessCombinesCompatiblePartialsWithinOneCall(t *testing.T) {
	e := NewEnumerator(map[string]struct{}{"?x": {}, "?y": {}})
	got := e.Process([]Binding{{"?x": "a"}, {"?y": "c"}})
	if len(got) != 1 {
		t.Fatalf("Process() returned %d totals, want 1: %v", len(got), got)
	}
	if _, ok := got[(Binding{"?x": "a", "?y": "c"}).Key()]; !ok {
		t.Fatalf("missing total {?x:a,?y:c} in %v", got)
	}
}

// TestEnumerator_ResetClearsAccumulatedTree confirms a partial from a prior
// Process call cannot leak into, and complete, a later call's totals once
// Reset has run in between.
func TestEnumerator_ResetClearsAccumulatedTree(t *testing.T) {
	e := NewEnumerator(map[string]struct{}{"?x": {}, "?y": {}})
	if got := e.Process([]Binding{{"?x": "a"}}); len(got) != 0 {
		t.Fatalf("first Process() = %v, want no totals (a lone partial can't complete)", got)
	}
	e.Reset()

	got := e.Process([]Binding{{"?y": "c"}})
	if len(got) != 0 {
		t.Fatalf("Process() after Reset = %v, want no totals — stale ?x:a leaked across Reset", got)
	}
}

func TestCompatibleAndSubsetBindings(t *testing.T) {
	p := Binding{"?x": "a"}
	q := Binding{"?x": "a", "?y": "b"}
	r := Binding{"?x": "z"}

	if !compatibleBindings(p, q) {
		t.Fatalf("expected p and q to be compatible (agree on ?x)")
	}
	if compatibleBindings(p, r) {
		t.Fatalf("did not expect p and r to be compatible (disagree on ?x)")
	}
	if !isSubsetBinding(p, q) {
		t.Fatalf("expected p to be a subset of q")
	}
	if isSubsetBinding(q, p) {
		t.Fatalf("did not expect q to be a subset of p")
	}
}
