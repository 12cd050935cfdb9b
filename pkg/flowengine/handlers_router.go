package flowengine

import (
	"fmt"

	"github.com/opflow/flowengine/internal/domain"
)

// addBranch implements ADD_BRANCH: a nil child and a fresh, empty CONDITION
// branch are inserted at BranchIdx in lockstep across Children and
// Settings.Branches, which are always kept the same length and order.
func (e *Engine) addBranch(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	router, err := mustRouter(flow, op.RouterName, string(domain.OpAddBranch))
	if err != nil {
		return nil, err
	}

	at := op.BranchIdx
	if at < 0 || at > len(router.Children) {
		return nil, invalidf(string(domain.OpAddBranch), op.RouterName, "branch index out of range")
	}

	branch := domain.RouterBranch{
		Conditions: [][]domain.Condition{{}},
		BranchType: domain.BranchTypeCondition,
		BranchName: fmt.Sprintf("Branch %d", len(router.Children)+1),
	}

	router.Children = insertChild(router.Children, at, nil)
	router.Settings.Branches = insertBranch(router.Settings.Branches, at, branch)

	return flow, nil
}

// deleteBranch implements DELETE_BRANCH: the branch at BranchIdx, and
// whatever subtree hangs from it, is removed from both Children and
// Settings.Branches.
func (e *Engine) deleteBranch(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	router, err := mustRouter(flow, op.RouterName, string(domain.OpDeleteBranch))
	if err != nil {
		return nil, err
	}

	if op.BranchIdx < 0 || op.BranchIdx >= len(router.Children) {
		return nil, invalidf(string(domain.OpDeleteBranch), op.RouterName, "branch index out of range")
	}

	router.Children = append(router.Children[:op.BranchIdx], router.Children[op.BranchIdx+1:]...)
	router.Settings.Branches = append(router.Settings.Branches[:op.BranchIdx], router.Settings.Branches[op.BranchIdx+1:]...)

	return flow, nil
}

// duplicateBranch implements DUPLICATE_BRANCH: the branch at BranchIdx is
// deep-cloned, every step in the clone is renamed to a fresh unused name,
// and the clone is inserted at the penultimate position (length-1) of
// Children/Settings.Branches, whatever the source index was.
func (e *Engine) duplicateBranch(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	router, err := mustRouter(flow, op.RouterName, string(domain.OpDuplicateBranch))
	if err != nil {
		return nil, err
	}

	if op.BranchIdx < 0 || op.BranchIdx >= len(router.Children) {
		return nil, invalidf(string(domain.OpDuplicateBranch), op.RouterName, "branch index out of range")
	}

	clone := cloneSubtreeWithFreshNames(flow, router.Children[op.BranchIdx])
	branchClone := router.Settings.Branches[op.BranchIdx]
	branchClone.BranchName += " Copy"

	insertAt := len(router.Children) - 1
	if insertAt < 0 {
		insertAt = 0
	}

	router.Children = insertChild(router.Children, insertAt, clone)
	router.Settings.Branches = insertBranch(router.Settings.Branches, insertAt, branchClone)

	return flow, nil
}

func mustRouter(flow *domain.Flow, name, op string) (*domain.Step, error) {
	step, err := mustFindStep(flow, name, op)
	if err != nil {
		return nil, err
	}

	if step.Kind != domain.StepKindActionRouter {
		return nil, invalidf(op, name, "step is not a router")
	}

	return step, nil
}

func insertChild(children []*domain.Step, at int, child *domain.Step) []*domain.Step {
	out := make([]*domain.Step, 0, len(children)+1)
	out = append(out, children[:at]...)
	out = append(out, child)
	out = append(out, children[at:]...)

	return out
}

func insertBranch(branches []domain.RouterBranch, at int, branch domain.RouterBranch) []domain.RouterBranch {
	out := make([]domain.RouterBranch, 0, len(branches)+1)
	out = append(out, branches[:at]...)
	out = append(out, branch)
	out = append(out, branches[at:]...)

	return out
}
