package striplan

import "testing"

func TestOperatorsManager_RoutesFactsToMatchingCells(t *testing.T) {
	dp := newFakeProblem().
		object("r1", "room").
		schema("move", &fakeProto{
			vars:       []Variable{{Name: "?x", Type: "room"}},
			precondPos: []Literal{{Predicate: "clear", Args: []string{"?x"}}},
			effectPos:  []Literal{{Predicate: "at", Args: []string{"?x"}}},
			effectNeg:  []Literal{{Predicate: "clear", Args: []string{"?x"}}},
		})

	m := NewOperatorsManager(dp)
	state := NewFactSet(NewAtom("clear", "r1"), NewAtom("unrelatedPredicate", "x"))
	actions := m.ApplicableActions(state, Forward)
	if len(actions) != 1 {
		t.Fatalf("ApplicableActions() returned %d actions, want 1: %v", len(actions), actions)
	}
	if actions[0].SchemaName != "move" {
		t.Fatalf("SchemaName = %q, want move", actions[0].SchemaName)
	}
}

func TestOperatorsManager_UnknownPredicateDoesNotPanicOrContributeActions(t *testing.T) {
	dp := newFakeProblem().
		object("r1", "room").
		schema("move", &fakeProto{
			vars:       []Variable{{Name: "?x", Type: "room"}},
			precondPos: []Literal{{Predicate: "clear", Args: []string{"?x"}}},
			effectPos:  []Literal{{Predicate: "at", Args: []string{"?x"}}},
		})

	m := NewOperatorsManager(dp)
	state := NewFactSet(NewAtom("mysteryPredicate", "z"))
	actions := m.ApplicableActions(state, Forward)
	if len(actions) != 0 {
		t.Fatalf("ApplicableActions() = %v, want none for a state with only an unrouted predicate", actions)
	}

	// Calling it twice must not panic (logUnknownPredicate dedupes by
	// predicate name internally but must remain safe to call repeatedly).
	m.ApplicableActions(state, Forward)
}

func TestOperatorsManager_EmptyStateYieldsNoActions(t *testing.T) {
	dp := newFakeProblem().
		object("r1", "room").
		schema("move", &fakeProto{
			vars:       []Variable{{Name: "?x", Type: "room"}},
			precondPos: []Literal{{Predicate: "clear", Args: []string{"?x"}}},
			effectPos:  []Literal{{Predicate: "at", Args: []string{"?x"}}},
		})

	m := NewOperatorsManager(dp)
	if actions := m.ApplicableActions(NewFactSet(), Forward); len(actions) != 0 {
		t.Fatalf("ApplicableActions(empty) = %v, want none", actions)
	}
}

func TestVoidAction_CarriesStateForwardUnchanged(t *testing.T) {
	s := NewFactSet(NewAtom("clear", "r1"))
	a := VoidAction(s)
	if !a.IsVoid() {
		t.Fatalf("expected VoidAction to report IsVoid() == true")
	}
	if !a.PrecondPos.Equal(s) || !a.EffectPos.Equal(s) {
		t.Fatalf("VoidAction should carry s as both PrecondPos and EffectPos: %+v", a)
	}
	if len(a.PrecondNeg) != 0 || len(a.EffectNeg) != 0 {
		t.Fatalf("VoidAction should have empty negative sets: %+v", a)
	}
}
