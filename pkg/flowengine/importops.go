package flowengine

import (
	"fmt"

	"github.com/opflow/flowengine/internal/domain"
)

// GetImportOperations returns the ordered sequence of ADD_ACTION operations
// that, replayed against a flow where root already exists with every
// structural slot and Next cleared, reconstructs root's entire descendant
// structure. Operations are emitted in the same DFS order AllSteps visits
// the tree, so a parent is always emitted before any operation that names
// it as ParentStep.
//
// A router's branch metadata is carried on its own ADD_ACTION, not as
// separate ADD_BRANCH operations — but the emitted branch names are always
// "Branch <i>", discarding whatever names the original branches had.
func GetImportOperations(root *domain.Step) []domain.Operation {
	if root == nil {
		return nil
	}

	all := AllSteps(root)

	var ops []domain.Operation

	for i, step := range all {
		if i == 0 {
			continue
		}

		parent, slot, idx, found := GetDirectParentStep(root, step.Name)
		if !found {
			continue
		}

		location, branchIndex := locationForSlot(slot, idx)

		valid := step.Valid

		ops = append(ops, domain.Operation{
			Type:         domain.OpAddAction,
			ParentStep:   parent.Name,
			StepLocation: location,
			BranchIndex:  branchIndex,
			Action:       leafCopyForImport(step),
			ActionValid:  &valid,
		})
	}

	return ops
}

func locationForSlot(slot Slot, idx int) (domain.StepLocation, *int) {
	switch slot {
	case SlotOnSuccess:
		return domain.LocationInsideTrueBranch, nil
	case SlotOnFailure:
		return domain.LocationInsideFalseBranch, nil
	case SlotFirstLoopAction:
		return domain.LocationInsideLoop, nil
	case SlotChild:
		i := idx
		return domain.LocationInsideBranch, &i
	default:
		return domain.LocationAfter, nil
	}
}

// leafCopyForImport strips a step down to its own fields — no structural
// children, since those are reconstructed by their own later operations —
// and, for a router, renames every branch to "Branch <i>".
func leafCopyForImport(step *domain.Step) *domain.Step {
	leaf := &domain.Step{
		Name:        step.Name,
		DisplayName: step.DisplayName,
		Kind:        step.Kind,
		Settings:    step.Settings,
	}

	if step.Kind == domain.StepKindActionRouter {
		branches := make([]domain.RouterBranch, len(step.Settings.Branches))
		for i, branch := range step.Settings.Branches {
			branch.BranchName = fmt.Sprintf("Branch %d", i)
			branches[i] = branch
		}

		leaf.Settings.Branches = branches
	}

	return leaf
}
