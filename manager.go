package striplan

import "github.com/rs/zerolog/log"

// OperatorsManager owns every OperatorCell (forward and backward flavors,
// one per schema) and routes facts to the cells that care about them
// (spec.md §4.3).
type OperatorsManager struct {
	forward, backward       []*OperatorCell
	forwardIndex, backwardIndex map[string][]int // predicate -> cell indices

	warnedPredicates map[string]struct{}
}

// NewOperatorsManager builds forward and backward cells for every operator
// name dp exposes.
func NewOperatorsManager(dp DomainProblem) *OperatorsManager {
	m := &OperatorsManager{warnedPredicates: make(map[string]struct{})}
	m.forward, m.forwardIndex = m.build(dp, Forward)
	m.backward, m.backwardIndex = m.build(dp, Backward)
	return m
}

func (m *OperatorsManager) build(dp DomainProblem, dir Direction) ([]*OperatorCell, map[string][]int) {
	var cells []*OperatorCell
	index := make(map[string][]int)
	for _, name := range dp.OperatorNames() {
		cell := NewOperatorCell(dp, name, dir)
		if cell == nil {
			continue
		}
		i := len(cells)
		cells = append(cells, cell)
		for _, pred := range cell.InputPredicates() {
			index[pred] = append(index[pred], i)
		}
	}
	return cells, index
}

// ApplicableActions returns the concatenation of every routed cell's
// ApplicableActions applied to the facts of s relevant to that cell (spec.md
// §4.3). Facts whose predicate isn't mentioned by any cell are dropped
// silently by the routing (as the reference implementation does), but are
// logged once per distinct predicate over the manager's lifetime, per
// spec.md §7's "UnknownPredicate" handling.
func (m *OperatorsManager) ApplicableActions(s FactSet, dir Direction) []GroundAction {
	cells, index := m.forward, m.forwardIndex
	if dir == Backward {
		cells, index = m.backward, m.backwardIndex
	}

	perCell := make([]FactSet, len(cells))
	for f := range s {
		ids, ok := index[f.Predicate]
		if !ok {
			m.logUnknownPredicate(f.Predicate)
			continue
		}
		for _, i := range ids {
			if perCell[i] == nil {
				perCell[i] = make(FactSet)
			}
			perCell[i][f] = struct{}{}
		}
	}

	var out []GroundAction
	for i, cell := range cells {
		if perCell[i] == nil {
			continue
		}
		out = append(out, cell.ApplicableActions(perCell[i])...)
	}
	return out
}

func (m *OperatorsManager) logUnknownPredicate(pred string) {
	if _, ok := m.warnedPredicates[pred]; ok {
		return
	}
	m.warnedPredicates[pred] = struct{}{}
	log.Warn().Str("predicate", pred).Msg("striplan: fact predicate not mentioned by any operator schema, dropped during routing")
}

// VoidAction returns the no-op described in spec.md §3, used during RPG
// construction to guarantee fact-layer monotonicity.
func (m *OperatorsManager) VoidAction(s FactSet) GroundAction { return VoidAction(s) }
