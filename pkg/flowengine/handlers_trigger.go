package flowengine

import "github.com/opflow/flowengine/internal/domain"

// lockFlow implements LOCK_FLOW: the flow is marked LOCKED. A flow can be
// locked regardless of its current validity — locking freezes it for
// execution, it does not certify it.
func (e *Engine) lockFlow(flow *domain.Flow) (*domain.Flow, error) {
	flow.State = domain.FlowStateLocked

	return flow, nil
}

// changeName implements CHANGE_NAME: only the flow's display name changes.
func (e *Engine) changeName(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	flow.DisplayName = op.DisplayName

	return flow, nil
}

// updateTrigger implements UPDATE_TRIGGER: the trigger step's kind and
// settings are replaced wholesale, but its Next chain is preserved — a
// trigger always has exactly one successor chain and swapping the trigger
// piece never touches what it fires into.
func (e *Engine) updateTrigger(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	if op.Trigger == nil {
		return nil, invalidf(string(domain.OpUpdateTrigger), "", "trigger definition required")
	}

	next := flow.Trigger.Next

	trigger := &domain.Step{
		Name:        flow.Trigger.Name,
		DisplayName: op.Trigger.DisplayName,
		Kind:        op.Trigger.Kind,
		Settings:    op.Trigger.Settings,
		Next:        next,
	}

	trigger.Valid = e.resolveValid(trigger, nil)
	flow.Trigger = trigger

	return flow, nil
}
