package striplan

import (
	"context"

	bt "github.com/joeycumines/go-behaviortree"
)

// Executor performs the real-world (or simulated) effect of a single
// GroundAction. Implementations are supplied by the caller; the planner
// itself never executes anything.
type Executor interface {
	Execute(ctx context.Context, action GroundAction) error
}

// ExecNode builds a bt.Node that ticks through plan in order, invoking
// exec.Execute for each GroundAction in turn. It is a bt.Sequence of
// per-action leaf nodes, grounded on the teacher library's own leaf-building
// idiom (util.go's newConditionNode / node.bt()): each leaf maps the
// Executor's error to bt.Failure, success to bt.Success, and the sequence as
// a whole succeeds only if every action does.
func ExecNode(ctx context.Context, plan []GroundAction, exec Executor) bt.Node {
	children := make([]bt.Node, len(plan))
	for i, action := range plan {
		action := action
		children[i] = bt.New(func([]bt.Node) (bt.Status, error) {
			if err := exec.Execute(ctx, action); err != nil {
				return bt.Failure, err
			}
			return bt.Success, nil
		})
	}
	// built directly as a (tick, children) literal rather than via bt.New,
	// matching util.go's node.bt()/group() idiom for branch nodes.
	return func() (bt.Tick, []bt.Node) { return bt.Sequence, children }
}
