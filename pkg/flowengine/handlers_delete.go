package flowengine

import "github.com/opflow/flowengine/internal/domain"

// deleteAction implements DELETE_ACTION: the named step is removed and every
// reference to it — Next, a branch arm, a loop body, a router child — is
// replaced by that step's own Next, splicing its successor chain into place.
func (e *Engine) deleteAction(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	target, err := mustFindStep(flow, op.Name, string(domain.OpDeleteAction))
	if err != nil {
		return nil, err
	}

	if target.IsTrigger() {
		return nil, invalidf(string(domain.OpDeleteAction), op.Name, "trigger cannot be deleted")
	}

	flow.Trigger = transferStep(flow.Trigger, spliceOut(op.Name))

	return flow, nil
}
