package flowengine

import "github.com/opflow/flowengine/internal/domain"

// duplicateAction implements DUPLICATE_ACTION: the named step — including
// any structural subtree it owns (a branch's arms, a loop's body, a
// router's children) but never its trailing chain — is deep-cloned, every
// step in the clone renamed to a fresh unused name, and the clone is
// inserted immediately after the source.
func (e *Engine) duplicateAction(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	target, err := mustFindStep(flow, op.Name, string(domain.OpDuplicateAction))
	if err != nil {
		return nil, err
	}

	if target.IsTrigger() {
		return nil, invalidf(string(domain.OpDuplicateAction), op.Name, "trigger cannot be duplicated")
	}

	originalNext := target.Next
	target.Next = nil
	clone := cloneSubtreeWithFreshNames(flow, target)
	target.Next = originalNext

	clone.Next = target.Next
	target.Next = clone

	return flow, nil
}
