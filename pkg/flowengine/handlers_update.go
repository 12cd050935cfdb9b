package flowengine

import "github.com/opflow/flowengine/internal/domain"

// updateAction implements UPDATE_ACTION: the step named N is replaced with a
// newly constructed action of the requested kind, carrying over the old
// step's Next always, and its OnSuccess/OnFailure/FirstLoopAction/Children
// only where the old and new kind agree on which slots exist. When the kind
// changes, only Next survives; a new router starts with every child nil,
// sized to its own branch count.
func (e *Engine) updateAction(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	if _, err := mustFindStep(flow, op.Name, string(domain.OpUpdateAction)); err != nil {
		return nil, err
	}

	if op.Action == nil {
		return nil, invalidf(string(domain.OpUpdateAction), op.Name, "action definition required")
	}

	flow.Trigger = transferStep(flow.Trigger, func(step *domain.Step) *domain.Step {
		if step.Name != op.Name {
			return step
		}

		rebuilt := &domain.Step{
			Name:        step.Name,
			DisplayName: op.Action.DisplayName,
			Kind:        op.Action.Kind,
			Settings:    op.Action.Settings,
			Next:        step.Next,
		}

		if rebuilt.Kind == step.Kind {
			rebuilt.OnSuccess = step.OnSuccess
			rebuilt.OnFailure = step.OnFailure
			rebuilt.FirstLoopAction = step.FirstLoopAction
			rebuilt.Children = step.Children
		} else if rebuilt.Kind == domain.StepKindActionRouter {
			rebuilt.Children = make([]*domain.Step, len(rebuilt.Settings.Branches))
		}

		rebuilt.Valid = e.resolveValid(rebuilt, op.ActionValid)

		return rebuilt
	})

	return flow, nil
}
