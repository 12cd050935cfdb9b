package flowengine

import "github.com/opflow/flowengine/internal/domain"

// buildFreshAction copies the caller-supplied action definition into a new
// *domain.Step, clearing any structural slots the caller might have set —
// ADD_ACTION and UPDATE_ACTION only ever place a leaf or an empty composite,
// never a pre-built subtree — and resolves its Valid flag against the
// schema validator.
func (e *Engine) buildFreshAction(action *domain.Step, requestedValid *bool) *domain.Step {
	fresh := &domain.Step{
		Name:        action.Name,
		DisplayName: action.DisplayName,
		Kind:        action.Kind,
		Settings:    action.Settings,
	}

	if fresh.Kind == domain.StepKindActionRouter {
		fresh.Children = make([]*domain.Step, len(fresh.Settings.Branches))
	}

	fresh.Valid = e.resolveValid(fresh, requestedValid)

	return fresh
}

// spliceOut returns a Rewriter that removes the step named name from
// wherever it sits, replacing every reference to it with its own Next. This
// is the primitive behind DELETE_ACTION and MOVE_ACTION's removal of the
// source.
func spliceOut(name string) Rewriter {
	return func(step *domain.Step) *domain.Step {
		switch step.Kind {
		case domain.StepKindActionBranch:
			if step.OnSuccess != nil && step.OnSuccess.Name == name {
				step.OnSuccess = step.OnSuccess.Next
			}

			if step.OnFailure != nil && step.OnFailure.Name == name {
				step.OnFailure = step.OnFailure.Next
			}
		case domain.StepKindActionLoop:
			if step.FirstLoopAction != nil && step.FirstLoopAction.Name == name {
				step.FirstLoopAction = step.FirstLoopAction.Next
			}
		case domain.StepKindActionRouter:
			for i, child := range step.Children {
				if child != nil && child.Name == name {
					step.Children[i] = child.Next
				}
			}
		}

		if step.Next != nil && step.Next.Name == name {
			step.Next = step.Next.Next
		}

		return step
	}
}
