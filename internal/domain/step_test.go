package domain

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestStep_Validation_RequiresNameAndKind(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(&Step{})
	assert.Error(t, err)

	var validationErrors validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrors)
	assert.Len(t, validationErrors, 2)
}

func TestStep_Validation_NameAndKindIsSufficient(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(&Step{Name: "a", Kind: StepKindActionCode})
	assert.NoError(t, err)
}

func TestStepKind_IsTrigger(t *testing.T) {
	assert.True(t, StepKindTriggerEmpty.IsTrigger())
	assert.True(t, StepKindTriggerPiece.IsTrigger())
	assert.False(t, StepKindActionPiece.IsTrigger())
}

func TestStepKind_IsComposite(t *testing.T) {
	assert.True(t, StepKindActionBranch.IsComposite())
	assert.True(t, StepKindActionLoop.IsComposite())
	assert.True(t, StepKindActionRouter.IsComposite())
	assert.False(t, StepKindActionCode.IsComposite())
	assert.False(t, StepKindTriggerEmpty.IsComposite())
}

func TestStep_IsActionAndIsTrigger_NilSafe(t *testing.T) {
	var nilStep *Step

	assert.False(t, nilStep.IsAction())
	assert.False(t, nilStep.IsTrigger())
}

func TestStep_IsActionAndIsTrigger(t *testing.T) {
	trigger := &Step{Name: "t", Kind: StepKindTriggerEmpty}
	action := &Step{Name: "a", Kind: StepKindActionCode}

	assert.True(t, trigger.IsTrigger())
	assert.False(t, trigger.IsAction())
	assert.True(t, action.IsAction())
	assert.False(t, action.IsTrigger())
}
