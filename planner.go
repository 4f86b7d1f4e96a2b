package striplan

import (
	"container/heap"
	"errors"

	bt "github.com/joeycumines/go-behaviortree"
	"github.com/rs/zerolog/log"
)

// ErrNoPlan is returned by Solve (and reported by SearchNode's Failure
// status) when no plan exists from the given state to the goal — a terminal
// outcome, not a programming error (spec.md §7).
var ErrNoPlan = errors.New("striplan: no plan found")

// Planner builds the relaxed planning graph once (from the problem's initial
// state), then runs forward A* search from arbitrary states against the
// selected heuristic (spec.md §4.5).
type Planner struct {
	dp      DomainProblem
	manager *OperatorsManager
	goal    FactSet
	mode    HeuristicMode

	rpg        *LayeredGraph
	unsolvable bool
	depthBound int

	// populated by SearchNode/Solve; see those methods
	open   *openList
	closed map[string]struct{}
	seq    int
	plan   []GroundAction
}

// NewPlanner constructs a Planner for dp, immediately building the relaxed
// planning graph from dp.InitialState() (Phase A). mode selects h_max or
// h_add for subsequent Heuristic/Solve calls.
func NewPlanner(dp DomainProblem, mode HeuristicMode) *Planner {
	p := &Planner{
		dp:      dp,
		manager: NewOperatorsManager(dp),
		goal:    dp.Goals(),
		mode:    mode,
	}
	p.buildRPG(dp.InitialState())
	return p
}

// buildRPG implements spec.md §4.5 Phase A.
func (p *Planner) buildRPG(initial FactSet) {
	g := NewLayeredGraph()
	total := initial.Clone()

	toLabels := func(atoms []Atom) []interface{} {
		out := make([]interface{}, len(atoms))
		for i, a := range atoms {
			out[i] = a
		}
		return out
	}
	g.AddLayer(toLabels(total.Sorted()), FactLayer, nil, nil)

	for {
		actions := p.manager.ApplicableActions(total, Forward)
		actions = append(actions, p.manager.VoidAction(total))

		next := total.Clone()
		for _, a := range actions {
			for f := range a.EffectPos {
				next[f] = struct{}{}
			}
		}

		if total.Contains(next) {
			p.unsolvable = true
			break
		}

		actionLabels := make([]interface{}, len(actions))
		for i, a := range actions {
			actionLabels[i] = a
		}
		g.AddLayer(actionLabels, ActionLayer, nil, func(factLabel, actionLabel interface{}) bool {
			f := factLabel.(Atom)
			a := actionLabel.(GroundAction)
			return a.PrecondPos.Has(f)
		})

		newFacts := next.Minus(total)
		factLabels := toLabels(newFacts.Sorted())
		g.AddLayer(factLabels, FactLayer, nil, func(actionLabel, factLabel interface{}) bool {
			a := actionLabel.(GroundAction)
			f := factLabel.(Atom)
			return a.EffectPos.Has(f)
		})

		total = next
		if total.Contains(p.goal) {
			break
		}
	}

	p.rpg = g
	p.depthBound = (g.NumLayers() + 2) / 2 // ceil((numLayers+1)/2)

	log.Debug().
		Int("layers", g.NumLayers()).
		Bool("unsolvable", p.unsolvable).
		Int("depth_bound", p.depthBound).
		Msg("striplan: relaxed planning graph built")
}

// Unsolvable reports whether Phase A's fixpoint detected the relaxed problem
// is unreachable; when true, Solve returns ErrNoPlan without running A*.
func (p *Planner) Unsolvable() bool { return p.unsolvable }

// RPG returns the planner's relaxed planning graph, for --explain dumping.
func (p *Planner) RPG() *LayeredGraph { return p.rpg }

// OpenLen reports the current open-list size, for progress reporting by a
// caller ticking SearchNode directly (e.g. the watch CLI subcommand).
func (p *Planner) OpenLen() int {
	if p.open == nil {
		return 0
	}
	return p.open.Len()
}

// Expanded reports how many distinct states have been expanded (added to the
// closed set) so far in the in-progress search, for progress reporting.
func (p *Planner) Expanded() int {
	if p.closed == nil {
		return 0
	}
	return len(p.closed)
}

// searchEntry is one A* open-list item.
type searchEntry struct {
	state    FactSet
	actions  []GroundAction
	g        int
	priority int
	seq      int // insertion order, for deterministic FIFO tie-breaking
}

// openList is a container/heap priority queue ordered by (priority, seq).
type openList []*searchEntry

func (o openList) Len() int { return len(o) }
func (o openList) Less(i, j int) bool {
	if o[i].priority != o[j].priority {
		return o[i].priority < o[j].priority
	}
	return o[i].seq < o[j].seq
}
func (o openList) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *openList) Push(x interface{}) { *o = append(*o, x.(*searchEntry)) }
func (o *openList) Pop() interface{} {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}

// Solve runs forward best-first (A*) search from state to the goal (spec.md
// §4.5 Phase C), returning the ground-action plan or ErrNoPlan. It is the
// synchronous convenience wrapper around SearchNode.
func (p *Planner) Solve(state FactSet) ([]GroundAction, error) {
	p.resetSearch(state)
	node := p.SearchNode(state)
	tick, _ := node()
	for {
		status, err := tick(nil)
		if err != nil {
			return nil, err
		}
		switch status {
		case bt.Success:
			return p.plan, nil
		case bt.Failure:
			return nil, ErrNoPlan
		}
	}
}

func (p *Planner) resetSearch(state FactSet) {
	p.open = &openList{}
	heap.Init(p.open)
	p.closed = make(map[string]struct{})
	p.seq = 0
	p.plan = nil
	heap.Push(p.open, &searchEntry{state: state, actions: nil, g: 0, priority: p.Heuristic(state), seq: p.seq})
	p.seq++
}

// SearchNode exposes Phase C as a single-ticking bt.Node (§5's cooperative
// execution model): each tick performs one bounded unit of search — pop one
// open-list entry, check it against the goal, and expand it — returning
// bt.Running while the search continues, bt.Success (with the plan recorded
// on p) once a goal state is popped, or bt.Failure once the open list is
// exhausted. If Phase A already determined the relaxed problem is
// unsolvable, the first tick returns Failure immediately without running
// Phase C at all (spec.md §4.5: "If Phase A reported unsolvable, Phase C is
// skipped").
func (p *Planner) SearchNode(state FactSet) bt.Node {
	started := false
	return bt.New(func(children []bt.Node) (bt.Status, error) {
		if !started {
			started = true
			p.resetSearch(state)
			if p.unsolvable {
				return bt.Failure, nil
			}
		}
		return p.searchStep()
	})
}

// searchStep performs one bounded unit of A* search.
func (p *Planner) searchStep() (bt.Status, error) {
	if p.open.Len() == 0 {
		return bt.Failure, nil
	}
	entry := heap.Pop(p.open).(*searchEntry)

	if entry.state.Contains(p.goal) {
		p.plan = entry.actions
		return bt.Success, nil
	}

	key := entry.state.Key()
	if _, seen := p.closed[key]; seen {
		return bt.Running, nil
	}
	p.closed[key] = struct{}{}

	for _, a := range p.manager.ApplicableActions(entry.state, Forward) {
		next := entry.state.Minus(a.EffectNeg).Union(a.EffectPos)
		nextKey := next.Key()
		if _, seen := p.closed[nextKey]; seen {
			continue
		}
		actions := append(append([]GroundAction(nil), entry.actions...), a)
		g := entry.g + 1
		heap.Push(p.open, &searchEntry{
			state:    next,
			actions:  actions,
			g:        g,
			priority: g + p.Heuristic(next),
			seq:      p.seq,
		})
		p.seq++
	}
	return bt.Running, nil
}
