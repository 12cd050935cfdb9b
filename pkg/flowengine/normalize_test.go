package flowengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opflow/flowengine/internal/domain"
)

func TestGetUsedPieces_DedupesInFirstSeenOrder(t *testing.T) {
	// Setup: trigger(slack) -> code -> piece(slack) -> piece(gmail)
	gmail := &domain.Step{Name: "a3", Kind: domain.StepKindActionPiece, Settings: domain.Settings{PieceName: "gmail", PieceVersion: "1.0.0"}}
	slackAgain := &domain.Step{Name: "a2", Kind: domain.StepKindActionPiece, Settings: domain.Settings{PieceName: "slack", PieceVersion: "^1.0.0"}, Next: gmail}
	code := &domain.Step{Name: "a1", Kind: domain.StepKindActionCode, Next: slackAgain}
	trigger := &domain.Step{
		Name: "trigger", Kind: domain.StepKindTriggerPiece,
		Settings: domain.Settings{PieceName: "slack", PieceVersion: "^1.0.0"},
		Next:     code,
	}
	flow := &domain.Flow{Trigger: trigger}

	used := GetUsedPieces(flow.Trigger)

	require.Len(t, used, 2)
	assert.Equal(t, "slack", used[0])
	assert.Equal(t, "gmail", used[1])
}

func TestGetUsedPieces_NilTriggerReturnsNil(t *testing.T) {
	assert.Nil(t, GetUsedPieces(nil))
}

func TestUpdateFlowSecrets_CarriesForwardAuthByStepName(t *testing.T) {
	// Setup: old flow has credentials on "a" and "b"; new flow (e.g. a
	// normalized copy) has both wiped but still has steps named "a" and "b".
	oldA := &domain.Step{Name: "a", Kind: domain.StepKindActionPiece, Settings: domain.Settings{PieceName: "slack", Input: map[string]any{"auth": "conn-a"}}}
	oldB := &domain.Step{Name: "b", Kind: domain.StepKindActionPiece, Settings: domain.Settings{PieceName: "gmail", Input: map[string]any{"auth": "conn-b"}}}
	oldA.Next = oldB
	oldFlow := &domain.Flow{Trigger: &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: oldA}}

	newA := &domain.Step{Name: "a", Kind: domain.StepKindActionPiece, Settings: domain.Settings{PieceName: "slack"}}
	newC := &domain.Step{Name: "c", Kind: domain.StepKindActionPiece, Settings: domain.Settings{PieceName: "notion"}}
	newA.Next = newC
	newFlow := &domain.Flow{Trigger: &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: newA}}

	result := UpdateFlowSecrets(oldFlow, newFlow)

	assert.Equal(t, "conn-a", GetStep(result.Trigger, "a").Settings.InputAuth())
	assert.Equal(t, "", GetStep(result.Trigger, "c").Settings.InputAuth())
}

func TestEngineNormalize_ClearsInputUIInfoAndAuth(t *testing.T) {
	// Setup
	step := &domain.Step{
		Name: "p", Kind: domain.StepKindActionPiece,
		Settings: domain.Settings{
			PieceName: "gmail", PieceVersion: "0.2.0",
			Input:       map[string]any{"auth": "conn-1"},
			InputUIInfo: &domain.InputUIInfo{},
		},
		Valid: true,
	}
	trigger := &domain.Step{Name: "trigger", Kind: domain.StepKindTriggerEmpty, Next: step, Valid: true}
	flow := &domain.Flow{Trigger: trigger, Valid: true}

	result := testEngine().Normalize(flow)

	got := GetStep(result.Trigger, "p")
	require.NotNil(t, got)
	assert.Nil(t, got.Settings.InputUIInfo)
	assert.Equal(t, "", got.Settings.InputAuth())
}
