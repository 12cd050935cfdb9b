package flowengine

import (
	"fmt"

	"github.com/opflow/flowengine/internal/domain"
	"github.com/opflow/flowengine/pkg/cloner"
	"github.com/opflow/flowengine/pkg/pieceversion"
	"github.com/opflow/flowengine/pkg/schema"
)

// Engine applies operations to flow versions. It holds the two external
// collaborators the core logic cannot do without: a schema validator and a
// piece-version comparator. Everything else about the engine is pure.
type Engine struct {
	Validator schema.Validator
	Upgrader  *pieceversion.Upgrader
}

// NewEngine builds an Engine. A nil validator defaults to schema.AlwaysValid;
// a nil upgrader defaults to pieceversion.NewUpgrader().
func NewEngine(validator schema.Validator, upgrader *pieceversion.Upgrader) *Engine {
	if validator == nil {
		validator = schema.AlwaysValid{}
	}

	if upgrader == nil {
		upgrader = pieceversion.NewUpgrader()
	}

	return &Engine{Validator: validator, Upgrader: upgrader}
}

// Apply clones flow, dispatches op to the matching handler, upgrades piece
// versions (the named step for ADD_ACTION/UPDATE_ACTION, every step for
// UPDATE_TRIGGER), and recomputes the flow-level Valid flag. The input flow
// is never mutated.
func (e *Engine) Apply(flow *domain.Flow, op domain.Operation) (*domain.Flow, error) {
	working := cloner.Clone(flow)

	var (
		result *domain.Flow
		err    error
	)

	switch op.Type {
	case domain.OpDeleteAction:
		result, err = e.deleteAction(working, op)
	case domain.OpAddAction:
		result, err = e.addAction(working, op)
	case domain.OpUpdateAction:
		result, err = e.updateAction(working, op)
	case domain.OpMoveAction:
		result, err = e.moveAction(working, op)
	case domain.OpDuplicateAction:
		result, err = e.duplicateAction(working, op)
	case domain.OpAddBranch:
		result, err = e.addBranch(working, op)
	case domain.OpDeleteBranch:
		result, err = e.deleteBranch(working, op)
	case domain.OpDuplicateBranch:
		result, err = e.duplicateBranch(working, op)
	case domain.OpLockFlow:
		result, err = e.lockFlow(working)
	case domain.OpChangeName:
		result, err = e.changeName(working, op)
	case domain.OpUpdateTrigger:
		result, err = e.updateTrigger(working, op)
	default:
		err = domain.NewOperationError(string(op.Type), "", "unknown operation type", domain.ErrInvalidOperation)
	}

	if err != nil {
		return nil, err
	}

	switch op.Type {
	case domain.OpAddAction, domain.OpUpdateAction:
		result.Trigger = transferStep(result.Trigger, e.upgradeIfNamed(stepName(op)))
	case domain.OpUpdateTrigger:
		result.Trigger = transferStep(result.Trigger, e.upgradePiece)
	}

	result.Valid = e.recomputeValid(result)

	return result, nil
}

func stepName(op domain.Operation) string {
	if op.Name != "" {
		return op.Name
	}

	if op.Action != nil {
		return op.Action.Name
	}

	return ""
}

func (e *Engine) upgradeIfNamed(name string) Rewriter {
	return func(step *domain.Step) *domain.Step {
		if step.Name == name {
			e.Upgrader.Upgrade(step)
		}

		return step
	}
}

func (e *Engine) upgradePiece(step *domain.Step) *domain.Step {
	e.Upgrader.Upgrade(step)

	return step
}

// recomputeValid implements the validity law: flow.Valid iff every reachable
// step's Valid flag is true.
func (e *Engine) recomputeValid(flow *domain.Flow) bool {
	for _, step := range AllSteps(flow.Trigger) {
		if !step.Valid {
			return false
		}
	}

	return true
}

// IsValid reports whether flow is valid: its Valid flag is set and every
// reachable step's Valid flag is true.
func IsValid(flow *domain.Flow) bool {
	if flow == nil || flow.Trigger == nil {
		return false
	}

	for _, step := range AllSteps(flow.Trigger) {
		if !step.Valid {
			return false
		}
	}

	return flow.Valid
}

// resolveValid ANDs the schema-validity of step with the caller-supplied bit,
// which defaults to true when absent.
func (e *Engine) resolveValid(step *domain.Step, requested *bool) bool {
	want := true
	if requested != nil {
		want = *requested
	}

	return want && e.Validator.ValidateStep(step)
}

func mustFindStep(flow *domain.Flow, name, op string) (*domain.Step, error) {
	step := GetStep(flow.Trigger, name)
	if step == nil {
		return nil, domain.NewOperationError(op, name, "step not found", domain.ErrStepNotFound)
	}

	return step, nil
}

func invalidf(op, name, format string, args ...any) error {
	return domain.NewOperationError(op, name, fmt.Sprintf(format, args...), domain.ErrInvalidOperation)
}
