package flowengine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opflow/flowengine/internal/domain"
)

func piece(name string) *domain.Step {
	return &domain.Step{Name: name, Kind: domain.StepKindActionPiece}
}

func TestAllSteps_CanonicalOrder(t *testing.T) {
	// Setup: trigger -> branch{on_success: a1, on_failure: a2} -> a3
	a1 := piece("a1")
	a2 := piece("a2")
	a3 := piece("a3")
	branch := &domain.Step{Name: "b", Kind: domain.StepKindActionBranch, OnSuccess: a1, OnFailure: a2, Next: a3}
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: branch}

	// Execute
	names := stepNames(AllSteps(trigger))

	// Verify
	assert.Equal(t, []string{"trigger", "b", "a1", "a2", "a3"}, names)
}

func TestIsChildOf_OnlyStructuralDescendants(t *testing.T) {
	// Setup
	loopBody := piece("body")
	loop := &domain.Step{Name: "l", Kind: domain.StepKindActionLoop, FirstLoopAction: loopBody}
	after := piece("after")
	loop.Next = after

	// Verify
	assert.True(t, IsChildOf(loop, "body"))
	assert.False(t, IsChildOf(loop, "after"))
}

func TestGetDirectParentStep_FindsRouterChildSlot(t *testing.T) {
	// Setup
	child := piece("c0")
	router := &domain.Step{Name: "r", Kind: domain.StepKindActionRouter, Children: []*domain.Step{child, nil}}
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: router}

	// Execute
	parent, slot, idx, found := GetDirectParentStep(trigger, "c0")

	// Verify
	assert.True(t, found)
	assert.Equal(t, "r", parent.Name)
	assert.Equal(t, SlotChild, slot)
	assert.Equal(t, 0, idx)
}

func TestFindPathToStep_BacktracksDeadEnds(t *testing.T) {
	// Setup: trigger -> branch{on_success: a1, on_failure: a2}
	a1 := piece("a1")
	a2 := piece("a2")
	branch := &domain.Step{Name: "b", Kind: domain.StepKindActionBranch, OnSuccess: a1, OnFailure: a2}
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: branch}

	// Execute
	path, found := FindPathToStep(trigger, "a2")

	// Verify
	assert.True(t, found)
	assert.Equal(t, []string{"trigger", "b", "a2"}, pathNames(path))
}

func stepNames(steps []*domain.Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}

	return names
}

func pathNames(path []PathEntry) []string {
	names := make([]string, len(path))
	for i, e := range path {
		names[i] = e.Step.Name
	}

	return names
}
