package flowengine

import (
	"fmt"

	"github.com/opflow/flowengine/internal/domain"
)

// FindUnusedName returns "<prefix>_K" for the smallest K >= 1 such that the
// name is not present in existing.
func FindUnusedName(existing map[string]bool, prefix string) string {
	for k := 1; ; k++ {
		candidate := fmt.Sprintf("%s_%d", prefix, k)
		if !existing[candidate] {
			return candidate
		}
	}
}

// FindAvailableStepName returns a fresh name unused anywhere in flow.
func FindAvailableStepName(flow *domain.Flow, prefix string) string {
	return FindUnusedName(namesOf(AllSteps(flow.Trigger)), prefix)
}

func namesOf(steps []*domain.Step) map[string]bool {
	names := make(map[string]bool, len(steps))
	for _, step := range steps {
		names[step.Name] = true
	}

	return names
}
