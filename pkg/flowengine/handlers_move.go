package flowengine

import "github.com/opflow/flowengine/internal/domain"

// moveAction implements MOVE_ACTION: the named step is detached from its
// current position and re-attached at NewParentStep/NewStepLocation.
//
// Detaching clears the moved step's own Next only when the step itself is a
// Loop or Branch — there, only the step and its structural children move,
// and whatever used to follow it in its chain stays behind at the old site.
// A Router or plain leaf keeps its Next, so its whole trailing chain travels
// with it. This asymmetry is intentional: a loop/branch's Next slot holds
// "the rest of the enclosing sequence", which is a different thing from its
// body, whereas a router or leaf's Next is read as part of what's being
// relocated.
func (e *Engine) moveAction(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	target, err := mustFindStep(flow, op.Name, string(domain.OpMoveAction))
	if err != nil {
		return nil, err
	}

	if target.IsTrigger() {
		return nil, invalidf(string(domain.OpMoveAction), op.Name, "trigger cannot be moved")
	}

	// spliceOut relinks target.Next into the vacated slot. A Loop or Branch
	// leaves its chain there; any other step takes its chain along, so its
	// Next is detached first and the vacated slot is left empty.
	carried := target.Next
	if target.Kind == domain.StepKindActionLoop || target.Kind == domain.StepKindActionBranch {
		carried = nil
	} else {
		target.Next = nil
	}

	flow.Trigger = transferStep(flow.Trigger, spliceOut(op.Name))
	target.Next = carried

	newParent, err := mustFindStep(flow, op.NewParentStep, string(domain.OpMoveAction))
	if err != nil {
		return nil, err
	}

	return flow, attachChain(newParent, op.NewStepLocation, op.NewBranchIndex, target)
}

// attachChain inserts chainHead (and whatever follows it via Next) at the
// slot on parent identified by location, preserving the rest of the chain
// already at the destination by relinking it after the moved chain's tail.
func attachChain(parent *domain.Step, location domain.StepLocation, branchIndex *int, chainHead *domain.Step) error {
	tail := chainHead
	for tail.Next != nil {
		tail = tail.Next
	}

	if location == domain.LocationAfter {
		tail.Next = parent.Next
		parent.Next = chainHead

		return nil
	}

	switch parent.Kind {
	case domain.StepKindActionLoop:
		if location != domain.LocationInsideLoop {
			return invalidf(string(domain.OpMoveAction), parent.Name, "loop parent requires INSIDE_LOOP or AFTER, got %s", location)
		}

		tail.Next = parent.FirstLoopAction
		parent.FirstLoopAction = chainHead

	case domain.StepKindActionBranch:
		switch location {
		case domain.LocationInsideTrueBranch:
			tail.Next = parent.OnSuccess
			parent.OnSuccess = chainHead
		case domain.LocationInsideFalseBranch:
			tail.Next = parent.OnFailure
			parent.OnFailure = chainHead
		default:
			return invalidf(string(domain.OpMoveAction), parent.Name, "branch parent requires INSIDE_TRUE_BRANCH or INSIDE_FALSE_BRANCH, got %s", location)
		}

	case domain.StepKindActionRouter:
		if location != domain.LocationInsideBranch {
			return invalidf(string(domain.OpMoveAction), parent.Name, "router parent requires INSIDE_BRANCH, got %s", location)
		}

		if branchIndex == nil || *branchIndex < 0 || *branchIndex >= len(parent.Children) {
			return invalidf(string(domain.OpMoveAction), parent.Name, "branch index out of range")
		}

		tail.Next = parent.Children[*branchIndex]
		parent.Children[*branchIndex] = chainHead

	default:
		tail.Next = parent.Next
		parent.Next = chainHead
	}

	return nil
}
