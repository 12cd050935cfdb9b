// Package flowengine implements the flow-graph transformation engine: a pure
// apply(flow, operation) -> flow function plus the traversal, rewrite, and
// naming primitives its operation handlers are built from.
package flowengine

import "github.com/opflow/flowengine/internal/domain"

// AllSteps returns every step reachable from root in canonical DFS order:
// the node itself, then its structural children (branch success then
// failure, loop body, router children in index order) each fully
// recursed, then the node reached via Next.
func AllSteps(root *domain.Step) []*domain.Step {
	if root == nil {
		return nil
	}

	steps := []*domain.Step{root}

	switch root.Kind {
	case domain.StepKindActionBranch:
		steps = append(steps, AllSteps(root.OnSuccess)...)
		steps = append(steps, AllSteps(root.OnFailure)...)
	case domain.StepKindActionLoop:
		steps = append(steps, AllSteps(root.FirstLoopAction)...)
	case domain.StepKindActionRouter:
		for _, child := range root.Children {
			steps = append(steps, AllSteps(child)...)
		}
	}

	steps = append(steps, AllSteps(root.Next)...)

	return steps
}

// ChainFrom walks head via Next pointers only, returning the linear sequence
// of steps forming that chain. It does not descend into any step's own
// structural children — this is the "direct children of a composite step"
// notion used to tell whether a step is the last one along its chain.
func ChainFrom(head *domain.Step) []*domain.Step {
	var chain []*domain.Step

	for step := head; step != nil; step = step.Next {
		chain = append(chain, step)
	}

	return chain
}

// IsLastInChain reports whether step has no successor in its chain.
func IsLastInChain(step *domain.Step) bool {
	return step != nil && step.Next == nil
}

// GetStep returns the step named name reachable from root, or nil.
func GetStep(root *domain.Step, name string) *domain.Step {
	for _, step := range AllSteps(root) {
		if step.Name == name {
			return step
		}
	}

	return nil
}

// IsChildOf reports whether name is reachable from composite's structural
// slots — branch's on_success/on_failure, loop's body, or router's
// children — without following composite's own Next. A plain (non-
// composite) step has no structural children, so this is always false.
func IsChildOf(composite *domain.Step, name string) bool {
	if composite == nil {
		return false
	}

	for _, head := range structuralHeads(composite) {
		for _, step := range AllSteps(head) {
			if step.Name == name {
				return true
			}
		}
	}

	return false
}

func structuralHeads(step *domain.Step) []*domain.Step {
	if step == nil {
		return nil
	}

	switch step.Kind {
	case domain.StepKindActionBranch:
		return []*domain.Step{step.OnSuccess, step.OnFailure}
	case domain.StepKindActionLoop:
		return []*domain.Step{step.FirstLoopAction}
	case domain.StepKindActionRouter:
		return step.Children
	default:
		return nil
	}
}

// Slot identifies which field of a parent step holds a pointer to a child.
type Slot string

const (
	SlotNext            Slot = "next"
	SlotOnSuccess       Slot = "on_success"
	SlotOnFailure       Slot = "on_failure"
	SlotFirstLoopAction Slot = "first_loop_action"
	SlotChild           Slot = "children"
)

// GetDirectParentStep locates the unique step whose Next or structural slot
// points at the step named name. It returns the parent, which slot holds the
// reference, and — when the slot is SlotChild — the index into Children.
// The search only descends into a composite's structural subtree when
// IsChildOf confirms name lives there, short-circuiting chains that clearly
// don't contain it.
func GetDirectParentStep(root *domain.Step, name string) (*domain.Step, Slot, int, bool) {
	if root == nil {
		return nil, "", 0, false
	}

	if root.Next != nil && root.Next.Name == name {
		return root, SlotNext, 0, true
	}

	switch root.Kind {
	case domain.StepKindActionBranch:
		if root.OnSuccess != nil && root.OnSuccess.Name == name {
			return root, SlotOnSuccess, 0, true
		}

		if root.OnFailure != nil && root.OnFailure.Name == name {
			return root, SlotOnFailure, 0, true
		}
	case domain.StepKindActionLoop:
		if root.FirstLoopAction != nil && root.FirstLoopAction.Name == name {
			return root, SlotFirstLoopAction, 0, true
		}
	case domain.StepKindActionRouter:
		for i, child := range root.Children {
			if child != nil && child.Name == name {
				return root, SlotChild, i, true
			}
		}
	}

	if IsChildOf(root, name) {
		for _, head := range structuralHeads(root) {
			if parent, slot, idx, found := GetDirectParentStep(head, name); found {
				return parent, slot, idx, true
			}
		}
	}

	return GetDirectParentStep(root.Next, name)
}

// PathEntry is one hop of the ancestor path returned by FindPathToStep.
type PathEntry struct {
	Step  *domain.Step
	Index int // position of Step within the global DFS order of the flow
}

// FindPathToStep returns the ordered sequence of steps from trigger down to
// and including the step named name, each tagged with its index in the
// canonical DFS order. The second return value is false if name is not
// reachable from trigger.
func FindPathToStep(trigger *domain.Step, name string) ([]PathEntry, bool) {
	index := 0

	var path []PathEntry

	var walk func(step *domain.Step) bool

	walk = func(step *domain.Step) bool {
		if step == nil {
			return false
		}

		entry := PathEntry{Step: step, Index: index}
		index++
		path = append(path, entry)

		if step.Name == name {
			return true
		}

		for _, head := range structuralHeads(step) {
			if walk(head) {
				return true
			}
		}

		if walk(step.Next) {
			return true
		}

		path = path[:len(path)-1]

		return false
	}

	if walk(trigger) {
		return path, true
	}

	return nil, false
}
