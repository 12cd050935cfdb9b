package flowengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opflow/flowengine/internal/domain"
)

// Testable property 5: replaying GetImportOperations against a trigger-only
// shell reconstructs the original tree's step names and shapes.
func TestGetImportOperations_ReplayReconstructsTree(t *testing.T) {
	// Setup: trigger -> loop{first_loop_action: inner} -> tail
	inner := piece("inner")
	inner.Valid = true
	loop := &domain.Step{Name: "l", Kind: domain.StepKindActionLoop, FirstLoopAction: inner, Valid: true}
	tail := piece("tail")
	tail.Valid = true
	loop.Next = tail
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: loop, Valid: true}

	ops := GetImportOperations(trigger)
	require.Len(t, ops, 3)

	shell := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Valid: true}
	flow := &domain.Flow{Trigger: shell, Valid: true}

	engine := testEngine()

	var err error
	for _, op := range ops {
		flow, err = engine.Apply(flow, op)
		require.NoError(t, err)
	}

	assert.Equal(t, stepNames(AllSteps(trigger)), stepNames(AllSteps(flow.Trigger)))

	rebuiltLoop := GetStep(flow.Trigger, "l")
	require.NotNil(t, rebuiltLoop)
	require.NotNil(t, rebuiltLoop.FirstLoopAction)
	assert.Equal(t, "inner", rebuiltLoop.FirstLoopAction.Name)
	require.NotNil(t, rebuiltLoop.Next)
	assert.Equal(t, "tail", rebuiltLoop.Next.Name)
}

func TestGetImportOperations_RootOnlyFlowHasNoOperations(t *testing.T) {
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Valid: true}

	assert.Empty(t, GetImportOperations(trigger))
}

func TestGetImportOperations_RouterBranchesAreRenumbered(t *testing.T) {
	router := &domain.Step{
		Name: "r",
		Kind: domain.StepKindActionRouter,
		Settings: domain.Settings{Branches: []domain.RouterBranch{
			{BranchName: "Onboarding"},
			{BranchName: "Fallback"},
		}},
		Children: []*domain.Step{nil, nil},
		Valid:    true,
	}
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: router, Valid: true}

	ops := GetImportOperations(trigger)
	require.Len(t, ops, 1)

	branches := ops[0].Action.Settings.Branches
	require.Len(t, branches, 2)
	assert.Equal(t, "Branch 0", branches[0].BranchName)
	assert.Equal(t, "Branch 1", branches[1].BranchName)
}
