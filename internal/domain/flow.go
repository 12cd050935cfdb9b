package domain

// FlowState is the lifecycle state of a flow version.
type FlowState string

const (
	FlowStateDraft  FlowState = "DRAFT"
	FlowStateLocked FlowState = "LOCKED"
)

// Flow is the root container returned and consumed by every engine
// operation. A Flow value is never mutated in place by the engine; every
// entry point returns a freshly built Flow.
type Flow struct {
	DisplayName string    `json:"display_name" validate:"required"`
	State       FlowState `json:"state"         validate:"required"`
	Trigger     *Step     `json:"trigger"       validate:"required"`
	Valid       bool      `json:"valid"`
}
