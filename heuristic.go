package striplan

// HeuristicMode selects the heuristic aggregation function extracted from
// the RPG (spec.md §4.5 Phase B).
type HeuristicMode int

const (
	// HMax aggregates per-goal-fact cost by max: admissible, but typically
	// less informative.
	HMax HeuristicMode = iota
	// HAdd aggregates per-goal-fact cost by sum: inadmissible, but more
	// informative in practice. Note spec.md §9: the historical source
	// compared the mode string against the wrong literal ('plus' vs
	// 'h_plus'), making this mode unreachable via its CLI; this repo
	// compares against the HeuristicMode enum directly, so there is no
	// equivalent bug here.
	HAdd
)

func (m HeuristicMode) String() string {
	if m == HAdd {
		return "h_add"
	}
	return "h_max"
}

// gTable memoizes G(state, f) within a single Heuristic call, keyed by fact
// identity (spec.md §4.5: "the fact identity used in RPG indexing is the
// last (largest) RPG index recorded for that fact").
type gTable map[Atom]int

// factCost computes G(state, f): 0 if f holds in state; depthBound if f has
// no producing action recorded in the RPG; otherwise the minimum over producing
// actions of 1 + the max G-cost of that action's positive preconditions.
func (p *Planner) factCost(state FactSet, f Atom, memo gTable) int {
	if v, ok := memo[f]; ok {
		return v
	}
	if state.Has(f) {
		memo[f] = 0
		return 0
	}

	idx := p.rpg.LastIndexOf(f)
	if idx < 0 {
		memo[f] = p.depthBound
		return p.depthBound
	}
	producerLayer := p.rpg.LayerOf(idx) - 1

	best := -1
	for _, n := range p.rpg.Neighbors(idx) {
		if p.rpg.LayerOf(n) != producerLayer {
			continue
		}
		act, ok := p.rpg.Label(n).(GroundAction)
		if !ok {
			continue
		}
		cost := 0
		for pre := range act.PrecondPos {
			if c := p.factCost(state, pre, memo); c > cost {
				cost = c
			}
		}
		cost++
		if best < 0 || cost < best {
			best = cost
		}
	}
	if best < 0 {
		best = p.depthBound
	}
	memo[f] = best
	return best
}

// Heuristic computes h_max or h_add (per p.mode) for state, with respect to
// the RPG already built from the initial state at construction time.
func (p *Planner) Heuristic(state FactSet) int {
	memo := make(gTable)
	switch p.mode {
	case HAdd:
		sum := 0
		for g := range p.goal {
			sum += p.factCost(state, g, memo)
		}
		return sum
	default:
		max := 0
		for g := range p.goal {
			if c := p.factCost(state, g, memo); c > max {
				max = c
			}
		}
		return max
	}
}
