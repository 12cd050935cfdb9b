package flowengine

import "github.com/opflow/flowengine/internal/domain"

// Normalize strips per-session UI state from every step's settings, wipes
// piece credentials, and turns every bare piece version into a range pin
// (legacy pieces excepted, see pieceversion.Upgrader). It is meant to be run
// before a flow is persisted or exported, never during interactive editing.
func (e *Engine) Normalize(flow *domain.Flow) *domain.Flow {
	return Transfer(flow, func(step *domain.Step) *domain.Step {
		step.Settings.InputUIInfo = nil

		if step.Kind == domain.StepKindActionPiece || step.Kind == domain.StepKindTriggerPiece {
			step.Settings.SetInputAuth("")
		}

		e.Upgrader.Upgrade(step)

		return step
	})
}

// GetUsedPieces returns the distinct piece names referenced anywhere in the
// subtree rooted at trigger (trigger or action), in the order they're first
// encountered.
func GetUsedPieces(trigger *domain.Step) []string {
	if trigger == nil {
		return nil
	}

	seen := map[string]bool{}

	var pieces []string

	for _, step := range AllSteps(trigger) {
		if step.Kind != domain.StepKindTriggerPiece && step.Kind != domain.StepKindActionPiece {
			continue
		}

		name := step.Settings.PieceName
		if !seen[name] {
			seen[name] = true
			pieces = append(pieces, name)
		}
	}

	return pieces
}

// UpdateFlowSecrets returns a copy of newFlow with every piece step's
// credential reference carried forward from the same-named step in
// oldFlow, when one exists. Used when a new flow version is built from a
// normalized flow (which wipes auth, see Normalize) and needs its
// credentials restored before being persisted.
func UpdateFlowSecrets(oldFlow, newFlow *domain.Flow) *domain.Flow {
	oldAuth := map[string]string{}

	if oldFlow != nil {
		for _, step := range AllSteps(oldFlow.Trigger) {
			if step.Kind != domain.StepKindActionPiece && step.Kind != domain.StepKindTriggerPiece {
				continue
			}

			if auth := step.Settings.InputAuth(); auth != "" {
				oldAuth[step.Name] = auth
			}
		}
	}

	return Transfer(newFlow, func(step *domain.Step) *domain.Step {
		if step.Kind != domain.StepKindActionPiece && step.Kind != domain.StepKindTriggerPiece {
			return step
		}

		if auth, ok := oldAuth[step.Name]; ok {
			step.Settings.SetInputAuth(auth)
		}

		return step
	})
}
