// Package domain defines the step/flow tree that the flow engine rewrites.
package domain

// StepKind is the closed tagged-union discriminator for every node in a flow
// tree. Switches over StepKind in pkg/flowengine name the composite kinds
// explicitly; a kind with no case there is treated as a leaf, so adding a
// kind here means reviewing each of those switches.
type StepKind string

const (
	StepKindTriggerEmpty StepKind = "TRIGGER_EMPTY"
	StepKindTriggerPiece StepKind = "TRIGGER_PIECE"
	StepKindActionPiece  StepKind = "ACTION_PIECE"
	StepKindActionCode   StepKind = "ACTION_CODE"
	StepKindActionBranch StepKind = "ACTION_BRANCH"
	StepKindActionLoop   StepKind = "ACTION_LOOP"
	StepKindActionRouter StepKind = "ACTION_ROUTER"
)

// IsTrigger reports whether the kind may only appear at the root of a flow.
func (k StepKind) IsTrigger() bool {
	return k == StepKindTriggerEmpty || k == StepKindTriggerPiece
}

// IsComposite reports whether the kind owns structural child slots beyond Next.
func (k StepKind) IsComposite() bool {
	switch k {
	case StepKindActionBranch, StepKindActionLoop, StepKindActionRouter:
		return true
	default:
		return false
	}
}

// Step is a single node of the flow tree. Every step owns its structural
// children and its Next successor exclusively: nothing else in a well-formed
// flow holds a pointer to the same *Step value.
type Step struct {
	Name        string   `json:"name"         validate:"required"`
	DisplayName string   `json:"display_name"`
	Kind        StepKind `json:"type"         validate:"required"`
	Valid       bool     `json:"valid"`
	Settings    Settings `json:"settings"`

	// Next is the linear successor. Populated for any step; always an
	// action, never a trigger.
	Next *Step `json:"next,omitempty"`

	// OnSuccess/OnFailure are populated only when Kind == StepKindActionBranch.
	OnSuccess *Step `json:"on_success,omitempty"`
	OnFailure *Step `json:"on_failure,omitempty"`

	// FirstLoopAction is populated only when Kind == StepKindActionLoop.
	FirstLoopAction *Step `json:"first_loop_action,omitempty"`

	// Children is populated only when Kind == StepKindActionRouter. It is
	// always index-aligned with Settings.Branches.
	Children []*Step `json:"children,omitempty"`
}

// IsAction reports whether the step may appear anywhere but the flow root.
func (s *Step) IsAction() bool {
	return s != nil && !s.Kind.IsTrigger()
}

// IsTrigger reports whether the step may only appear at the root of a flow.
func (s *Step) IsTrigger() bool {
	return s != nil && s.Kind.IsTrigger()
}
