package flowengine

import "github.com/opflow/flowengine/internal/domain"

// addAction implements ADD_ACTION. Only a Loop, Branch, or Router parent
// validates the requested StepLocation against its own shape and rejects a
// mismatch; every other parent kind (a plain action, a trigger, a code step)
// always falls through to AFTER semantics regardless of what location was
// requested.
func (e *Engine) addAction(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	parent, err := mustFindStep(flow, op.ParentStep, string(domain.OpAddAction))
	if err != nil {
		return nil, err
	}

	if op.Action == nil {
		return nil, invalidf(string(domain.OpAddAction), op.ParentStep, "action definition required")
	}

	fresh := e.buildFreshAction(op.Action, op.ActionValid)

	// AFTER always means "attach via the parent's own Next", regardless of
	// the parent's kind — a composite step's trailing chain is addressed
	// through it the same way a leaf's is. Only the INSIDE_* locations are
	// constrained to the matching composite kind.
	if op.StepLocation == domain.LocationAfter {
		fresh.Next = parent.Next
		parent.Next = fresh

		return flow, nil
	}

	switch parent.Kind {
	case domain.StepKindActionLoop:
		if op.StepLocation != domain.LocationInsideLoop {
			return nil, invalidf(string(domain.OpAddAction), op.ParentStep, "loop parent requires INSIDE_LOOP or AFTER, got %s", op.StepLocation)
		}

		fresh.Next = parent.FirstLoopAction
		parent.FirstLoopAction = fresh

	case domain.StepKindActionBranch:
		switch op.StepLocation {
		case domain.LocationInsideTrueBranch:
			fresh.Next = parent.OnSuccess
			parent.OnSuccess = fresh
		case domain.LocationInsideFalseBranch:
			fresh.Next = parent.OnFailure
			parent.OnFailure = fresh
		default:
			return nil, invalidf(string(domain.OpAddAction), op.ParentStep, "branch parent requires INSIDE_TRUE_BRANCH, INSIDE_FALSE_BRANCH, or AFTER, got %s", op.StepLocation)
		}

	case domain.StepKindActionRouter:
		if op.StepLocation != domain.LocationInsideBranch {
			return nil, invalidf(string(domain.OpAddAction), op.ParentStep, "router parent requires INSIDE_BRANCH or AFTER, got %s", op.StepLocation)
		}

		if op.BranchIndex == nil || *op.BranchIndex < 0 || *op.BranchIndex >= len(parent.Children) {
			return nil, invalidf(string(domain.OpAddAction), op.ParentStep, "branch index out of range")
		}

		fresh.Next = parent.Children[*op.BranchIndex]
		parent.Children[*op.BranchIndex] = fresh

	default:
		fresh.Next = parent.Next
		parent.Next = fresh
	}

	return flow, nil
}
